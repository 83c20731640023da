package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"tarefa-planner/internal/model"
	"tarefa-planner/internal/notify"
)

// Os lembretes disparam às 09:00 locais do dia da data limite.
const horaNotificacao = 9

// ReminderService keeps the notification schedule in sync with the tasks due
// today or tomorrow. It always rebuilds the whole schedule: cancel everything
// pending, then schedule the current due-soon set from scratch.
type ReminderService struct {
	tarefas *TarefaService
	gateway notify.Gateway
	agora   func() time.Time
}

func NewReminderService(tarefas *TarefaService, gateway notify.Gateway) *ReminderService {
	return &ReminderService{tarefas: tarefas, gateway: gateway, agora: time.Now}
}

// Reschedule cancels every pending notification and schedules one reminder
// per due-soon task, with sequential ids starting at 1. It is a no-op when
// no delivery channel is available.
func (s *ReminderService) Reschedule(ctx context.Context) error {
	if !s.gateway.Available() {
		return nil
	}

	pendentes, err := s.gateway.Pending(ctx)
	if err != nil {
		return fmt.Errorf("notificações pendentes: %w", err)
	}
	if len(pendentes) > 0 {
		ids := make([]int, 0, len(pendentes))
		for _, n := range pendentes {
			ids = append(ids, n.ID)
		}
		if err := s.gateway.Cancel(ctx, ids); err != nil {
			return fmt.Errorf("cancelar notificações: %w", err)
		}
	}

	agora := s.agora()
	proximas := tarefasProximas(s.tarefas.GetAll(ctx), agora)
	if len(proximas) == 0 {
		return nil
	}

	batch := make([]notify.Notification, 0, len(proximas))
	for i, proxima := range proximas {
		disparo := time.Date(
			proxima.limite.Year(), proxima.limite.Month(), proxima.limite.Day(),
			horaNotificacao, 0, 0, 0, agora.Location(),
		)
		// Se as 09:00 do dia já passaram, adia um dia.
		if !disparo.After(agora) {
			disparo = disparo.AddDate(0, 0, 1)
		}

		var mensagem string
		if proxima.tarefa.EmAtraso {
			mensagem = fmt.Sprintf("⚠️ Tarefa em atraso: %s", proxima.tarefa.Titulo)
		} else {
			mensagem = fmt.Sprintf("📋 Lembrete: %s - Data limite: %s", proxima.tarefa.Titulo, proxima.limite.Format("02/01/2006"))
		}

		batch = append(batch, notify.Notification{
			ID:    i + 1,
			Title: "Tarefa Próxima",
			Body:  mensagem,
			At:    disparo,
		})
	}

	if err := s.gateway.Schedule(ctx, batch); err != nil {
		return fmt.Errorf("agendar notificações: %w", err)
	}
	log.Printf("[info] %d notificação(ões) agendada(s)", len(batch))
	return nil
}

type tarefaProxima struct {
	tarefa model.Tarefa
	limite time.Time
}

// tarefasProximas filters tasks whose due date (date-only) falls within
// [hoje, amanhã] inclusive.
func tarefasProximas(tarefas []model.Tarefa, agora time.Time) []tarefaProxima {
	hoje := model.DataOnly(agora)
	amanha := hoje.AddDate(0, 0, 1)

	proximas := make([]tarefaProxima, 0)
	for _, tarefa := range tarefas {
		limite, err := model.ParseDataLimite(tarefa.DataLimite)
		if err != nil {
			continue
		}
		dia := model.DataOnly(limite.In(agora.Location()))
		if !dia.Before(hoje) && !dia.After(amanha) {
			proximas = append(proximas, tarefaProxima{tarefa: tarefa, limite: dia})
		}
	}
	return proximas
}
