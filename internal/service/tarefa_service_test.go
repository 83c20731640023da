package service

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tarefa-planner/internal/kvstore"
	"tarefa-planner/internal/model"
)

func newTarefaFixture(t *testing.T) (kvstore.Store, *TarefaService, model.Projeto) {
	t.Helper()
	ctx := context.Background()
	store := kvstore.NewMemory()
	categorias := NewCategoriaService(store)
	projetos := NewProjetoService(store, categorias)
	tarefas := NewTarefaService(store, projetos)

	cat, err := categorias.Create(ctx, "Escola")
	require.NoError(t, err)
	proj, err := projetos.Create(ctx, "Tese", cat.ID)
	require.NoError(t, err)
	return store, tarefas, proj
}

func TestTarefaCreateValidacoes(t *testing.T) {
	ctx := context.Background()
	_, tarefas, proj := newTarefaFixture(t)

	_, err := tarefas.Create(ctx, TarefaInput{Titulo: "  ", DataLimite: "2025-01-10", ProjetoID: proj.ID})
	assert.ErrorIs(t, err, ErrTituloObrigatorio)

	_, err = tarefas.Create(ctx, TarefaInput{Titulo: "Capítulo 1", DataLimite: "amanhã", ProjetoID: proj.ID})
	assert.Error(t, err)

	_, err = tarefas.Create(ctx, TarefaInput{Titulo: "Capítulo 1", DataLimite: "2025-01-10", ProjetoID: "proj_inexistente"})
	assert.ErrorIs(t, err, ErrProjetoNaoEncontrado)

	criada, err := tarefas.Create(ctx, TarefaInput{
		Titulo:     "  Capítulo 1  ",
		Descricao:  " introdução ",
		DataLimite: "2025-01-10",
		ProjetoID:  proj.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Capítulo 1", criada.Titulo)
	assert.Equal(t, "introdução", criada.Descricao)
	assert.True(t, strings.HasPrefix(criada.ID, "tarefa_"))
}

func TestTarefaEmAtrasoRecalculadoEmCadaLeitura(t *testing.T) {
	ctx := context.Background()
	store, tarefas, proj := newTarefaFixture(t)

	tarefas.agora = func() time.Time { return time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC) }

	_, err := tarefas.Create(ctx, TarefaInput{Titulo: "Antiga", DataLimite: "2024-06-14", ProjetoID: proj.ID})
	require.NoError(t, err)
	_, err = tarefas.Create(ctx, TarefaInput{Titulo: "De hoje", DataLimite: "2024-06-15", ProjetoID: proj.ID})
	require.NoError(t, err)

	todas := tarefas.GetAll(ctx)
	require.Len(t, todas, 2)
	assert.True(t, todas[0].EmAtraso)
	assert.False(t, todas[1].EmAtraso)

	// O flag nunca é persistido: os registos guardados têm EmAtraso a zero.
	var guardadas []model.Tarefa
	found, err := store.Get(ctx, "tarefas", &guardadas)
	require.NoError(t, err)
	require.True(t, found)
	for _, tarefa := range guardadas {
		assert.False(t, tarefa.EmAtraso)
	}

	// Com o relógio noutro dia, a mesma tarefa muda de estado.
	tarefas.agora = func() time.Time { return time.Date(2024, time.June, 14, 8, 0, 0, 0, time.UTC) }
	todas = tarefas.GetAll(ctx)
	assert.False(t, todas[0].EmAtraso)
}

func TestTarefaImagemAcimaDoLimiteEDescartada(t *testing.T) {
	ctx := context.Background()
	_, tarefas, proj := newTarefaFixture(t)

	pequena := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	grande := "data:image/png;base64," + strings.Repeat("A", 8*1024*1024)

	criada, err := tarefas.Create(ctx, TarefaInput{Titulo: "Com foto", DataLimite: "2025-01-10", ProjetoID: proj.ID, Imagem: pequena})
	require.NoError(t, err)
	assert.Equal(t, pequena, criada.Imagem)

	criada, err = tarefas.Create(ctx, TarefaInput{Titulo: "Foto enorme", DataLimite: "2025-01-10", ProjetoID: proj.ID, Imagem: grande})
	require.NoError(t, err, "a tarefa é criada na mesma, sem o anexo")
	assert.Empty(t, criada.Imagem)
}

func TestTarefaUpdate(t *testing.T) {
	ctx := context.Background()
	_, tarefas, proj := newTarefaFixture(t)

	criada, err := tarefas.Create(ctx, TarefaInput{Titulo: "Capítulo 1", DataLimite: "2025-01-10", ProjetoID: proj.ID})
	require.NoError(t, err)

	criada.Titulo = " Capítulo 1 revisto "
	assert.True(t, tarefas.Update(ctx, criada))
	assert.Equal(t, "Capítulo 1 revisto", tarefas.GetByID(ctx, criada.ID).Titulo)

	criada.ProjetoID = "proj_inexistente"
	assert.False(t, tarefas.Update(ctx, criada))

	assert.False(t, tarefas.Update(ctx, model.Tarefa{ID: "tarefa_x", Titulo: "X", DataLimite: "2025-01-10", ProjetoID: proj.ID}))
}

func TestTarefaDeleteEGetByProjeto(t *testing.T) {
	ctx := context.Background()
	_, tarefas, proj := newTarefaFixture(t)

	a, err := tarefas.Create(ctx, TarefaInput{Titulo: "A", DataLimite: "2025-01-10", ProjetoID: proj.ID})
	require.NoError(t, err)
	_, err = tarefas.Create(ctx, TarefaInput{Titulo: "B", DataLimite: "2025-01-11", ProjetoID: proj.ID})
	require.NoError(t, err)

	doProjeto := tarefas.GetByProjeto(ctx, proj.ID)
	assert.Len(t, doProjeto, 2)

	assert.True(t, tarefas.Delete(ctx, a.ID))
	assert.False(t, tarefas.Delete(ctx, a.ID))
	assert.Len(t, tarefas.GetByProjeto(ctx, proj.ID), 1)
}

func TestTarefaExistePorTitulo(t *testing.T) {
	ctx := context.Background()
	_, tarefas, proj := newTarefaFixture(t)

	criada, err := tarefas.Create(ctx, TarefaInput{Titulo: "Capítulo 1", DataLimite: "2025-01-10", ProjetoID: proj.ID})
	require.NoError(t, err)

	assert.True(t, tarefas.ExistePorTitulo(ctx, "capítulo 1", proj.ID, ""))
	assert.False(t, tarefas.ExistePorTitulo(ctx, "capítulo 1", "proj_outro", ""))
	assert.False(t, tarefas.ExistePorTitulo(ctx, "capítulo 1", proj.ID, criada.ID))
}
