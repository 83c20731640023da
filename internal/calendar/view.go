package calendar

import (
	"context"
	"time"

	"tarefa-planner/internal/holiday"
	"tarefa-planner/internal/model"
)

// FonteTarefas is the slice of the task service the view needs.
type FonteTarefas interface {
	GetAll(ctx context.Context) []model.Tarefa
}

// FonteFeriados is the slice of the holiday client the view needs.
type FonteFeriados interface {
	Feriados(ctx context.Context, ano int) []holiday.Feriado
}

// View tracks the month being displayed and caches the holiday map for the
// displayed year. Navigating to a different year refetches holidays before
// the grid is regenerated.
type View struct {
	tarefas  FonteTarefas
	feriados FonteFeriados
	agora    func() time.Time

	ano          int
	mes          time.Month
	mapaFeriados map[string]string
	anoCarregado int
}

func NewView(tarefas FonteTarefas, feriados FonteFeriados) *View {
	v := &View{tarefas: tarefas, feriados: feriados, agora: time.Now}
	hoje := v.agora()
	v.ano, v.mes = hoje.Year(), hoje.Month()
	return v
}

// Atual returns the year and month currently displayed.
func (v *View) Atual() (int, time.Month) {
	return v.ano, v.mes
}

// Anterior navigates one month back.
func (v *View) Anterior() {
	anterior := time.Date(v.ano, v.mes-1, 1, 0, 0, 0, 0, time.UTC)
	v.ano, v.mes = anterior.Year(), anterior.Month()
}

// Proximo navigates one month forward.
func (v *View) Proximo() {
	proximo := time.Date(v.ano, v.mes+1, 1, 0, 0, 0, 0, time.UTC)
	v.ano, v.mes = proximo.Year(), proximo.Month()
}

// Gerar produces the grid for the displayed month, loading holidays first
// when the displayed year changed since the last generation.
func (v *View) Gerar(ctx context.Context) [][]DiaCalendario {
	if v.anoCarregado != v.ano {
		v.mapaFeriados = holiday.Mapa(v.feriados.Feriados(ctx, v.ano))
		v.anoCarregado = v.ano
	}
	return Gerar(v.ano, v.mes, v.tarefas.GetAll(ctx), v.mapaFeriados, v.agora())
}
