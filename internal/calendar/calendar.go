// Package calendar builds the monthly 6x7 grid of day cells shown by the
// planner, annotated with tasks and public holidays.
package calendar

import (
	"time"

	"tarefa-planner/internal/model"
)

// DiaCalendario is a single cell of the monthly grid.
type DiaCalendario struct {
	// Data do dia, com horas a zero.
	Data time.Time
	// Número do dia no mês.
	Numero int
	// EhMesAtual indica se o dia pertence ao mês exibido.
	EhMesAtual bool
	// EhHoje indica se o dia é a data corrente.
	EhHoje bool
	// Tarefas cuja data limite cai neste dia.
	Tarefas []model.Tarefa
	// TarefasAtraso conta as tarefas deste dia que estão em atraso.
	TarefasAtraso int
	// Feriado é o nome do feriado neste dia, se existir.
	Feriado string
}

// Gerar builds the grid for the given month: always 6 weeks of 7 days, with
// leading and trailing cells borrowed from the adjacent months. Cell dates
// come from date arithmetic on the first of the month, so year boundaries
// need no special handling.
func Gerar(ano int, mes time.Month, tarefas []model.Tarefa, feriados map[string]string, agora time.Time) [][]DiaCalendario {
	primeiro := time.Date(ano, mes, 1, 0, 0, 0, 0, agora.Location())
	offset := int(primeiro.Weekday()) // 0 = domingo
	hoje := model.DataOnly(agora)

	semanas := make([][]DiaCalendario, 0, 6)
	for semana := 0; semana < 6; semana++ {
		dias := make([]DiaCalendario, 0, 7)
		for dia := 0; dia < 7; dia++ {
			data := primeiro.AddDate(0, 0, semana*7+dia-offset)
			celula := DiaCalendario{
				Data:       data,
				Numero:     data.Day(),
				EhMesAtual: data.Month() == mes && data.Year() == ano,
				EhHoje:     data.Equal(hoje),
				Tarefas:    []model.Tarefa{},
			}
			if nome, ok := feriados[data.Format("2006-01-02")]; ok {
				celula.Feriado = nome
			}
			for _, tarefa := range tarefas {
				limite, err := model.ParseDataLimite(tarefa.DataLimite)
				if err != nil {
					continue
				}
				if model.DataOnly(limite.In(agora.Location())).Equal(data) {
					celula.Tarefas = append(celula.Tarefas, tarefa)
					if tarefa.EmAtraso {
						celula.TarefasAtraso++
					}
				}
			}
			dias = append(dias, celula)
		}
		semanas = append(semanas, dias)
	}
	return semanas
}
