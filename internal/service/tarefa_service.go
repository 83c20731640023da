package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tarefa-planner/internal/kvstore"
	"tarefa-planner/internal/model"
)

const chaveTarefas = "tarefas"

// Limite de 5MB para imagens embebidas (data-URI) numa tarefa.
const maxImagemBytes = 5 * 1024 * 1024

var (
	ErrProjetoNaoEncontrado = errors.New("projeto não encontrado")
	ErrTituloObrigatorio    = errors.New("título é obrigatório")
)

// TarefaInput represents data required to create a tarefa.
type TarefaInput struct {
	Titulo     string
	Descricao  string
	DataLimite string
	Imagem     string
	ProjetoID  string
}

// TarefaService manages the "tarefas" collection. EmAtraso is derived on
// every read against the current date and never persisted.
type TarefaService struct {
	store    kvstore.Store
	projetos *ProjetoService
	agora    func() time.Time
}

func NewTarefaService(store kvstore.Store, projetos *ProjetoService) *TarefaService {
	return &TarefaService{store: store, projetos: projetos, agora: time.Now}
}

// GetAll returns every tarefa with EmAtraso recomputed. Storage failures
// degrade to an empty list.
func (s *TarefaService) GetAll(ctx context.Context) []model.Tarefa {
	tarefas, err := s.load(ctx)
	if err != nil {
		log.Printf("[warn] obter tarefas: %v", err)
		return []model.Tarefa{}
	}
	agora := s.agora()
	for i := range tarefas {
		tarefas[i].EmAtraso = model.EstaEmAtraso(tarefas[i].DataLimite, agora)
	}
	return tarefas
}

// GetByID returns the tarefa with the given id, or nil when absent.
func (s *TarefaService) GetByID(ctx context.Context, id string) *model.Tarefa {
	for _, tarefa := range s.GetAll(ctx) {
		if tarefa.ID == id {
			t := tarefa
			return &t
		}
	}
	return nil
}

// GetByProjeto returns the tarefas that belong to the given projeto.
func (s *TarefaService) GetByProjeto(ctx context.Context, projetoID string) []model.Tarefa {
	filtradas := []model.Tarefa{}
	for _, tarefa := range s.GetAll(ctx) {
		if tarefa.ProjetoID == projetoID {
			filtradas = append(filtradas, tarefa)
		}
	}
	return filtradas
}

// Create stores a new tarefa after validating that the projeto exists and
// that the data limite parses. Oversized images are dropped with a warning;
// the tarefa is still created without the attachment.
func (s *TarefaService) Create(ctx context.Context, input TarefaInput) (model.Tarefa, error) {
	input.Titulo = strings.TrimSpace(input.Titulo)
	input.Descricao = strings.TrimSpace(input.Descricao)
	if input.Titulo == "" {
		return model.Tarefa{}, ErrTituloObrigatorio
	}
	if _, err := model.ParseDataLimite(input.DataLimite); err != nil {
		return model.Tarefa{}, err
	}
	if s.projetos.GetByID(ctx, input.ProjetoID) == nil {
		return model.Tarefa{}, ErrProjetoNaoEncontrado
	}
	if input.Imagem != "" && !ImagemDentroDoLimite(input.Imagem) {
		log.Printf("[warn] imagem acima de %dMB rejeitada para a tarefa %q", maxImagemBytes/(1024*1024), input.Titulo)
		input.Imagem = ""
	}

	tarefas, err := s.load(ctx)
	if err != nil {
		return model.Tarefa{}, fmt.Errorf("create tarefa: %w", err)
	}

	nova := model.Tarefa{
		ID:         model.NovoID("tarefa"),
		Titulo:     input.Titulo,
		Descricao:  input.Descricao,
		DataLimite: input.DataLimite,
		Imagem:     input.Imagem,
		ProjetoID:  input.ProjetoID,
	}
	tarefas = append(tarefas, nova)
	if err := s.save(ctx, tarefas); err != nil {
		return model.Tarefa{}, fmt.Errorf("create tarefa: %w", err)
	}

	nova.EmAtraso = model.EstaEmAtraso(nova.DataLimite, s.agora())
	return nova, nil
}

// Update replaces the stored tarefa with the same id. It returns false when
// the id or the referenced projeto is unknown, or the write fails.
func (s *TarefaService) Update(ctx context.Context, tarefa model.Tarefa) bool {
	if s.projetos.GetByID(ctx, tarefa.ProjetoID) == nil {
		return false
	}
	if tarefa.Imagem != "" && !ImagemDentroDoLimite(tarefa.Imagem) {
		log.Printf("[warn] imagem acima de %dMB rejeitada para a tarefa %q", maxImagemBytes/(1024*1024), tarefa.Titulo)
		tarefa.Imagem = ""
	}

	tarefas, err := s.load(ctx)
	if err != nil {
		log.Printf("[warn] atualizar tarefa: %v", err)
		return false
	}

	for i := range tarefas {
		if tarefas[i].ID == tarefa.ID {
			tarefa.Titulo = strings.TrimSpace(tarefa.Titulo)
			tarefa.Descricao = strings.TrimSpace(tarefa.Descricao)
			tarefa.EmAtraso = false // derived, never stored
			tarefas[i] = tarefa
			if err := s.save(ctx, tarefas); err != nil {
				log.Printf("[warn] atualizar tarefa: %v", err)
				return false
			}
			return true
		}
	}
	return false
}

// Delete removes the tarefa with the given id.
func (s *TarefaService) Delete(ctx context.Context, id string) bool {
	tarefas, err := s.load(ctx)
	if err != nil {
		log.Printf("[warn] eliminar tarefa: %v", err)
		return false
	}

	restantes := tarefas[:0:0]
	for _, tarefa := range tarefas {
		if tarefa.ID != id {
			restantes = append(restantes, tarefa)
		}
	}
	if len(restantes) == len(tarefas) {
		return false
	}
	if err := s.save(ctx, restantes); err != nil {
		log.Printf("[warn] eliminar tarefa: %v", err)
		return false
	}
	return true
}

// ExistePorTitulo reports whether another tarefa in the same projeto already
// uses the given title, case-insensitively, ignoring excludeID.
func (s *TarefaService) ExistePorTitulo(ctx context.Context, titulo, projetoID, excludeID string) bool {
	normalizado := strings.ToLower(strings.TrimSpace(titulo))
	for _, tarefa := range s.GetAll(ctx) {
		if strings.ToLower(tarefa.Titulo) == normalizado && tarefa.ProjetoID == projetoID && tarefa.ID != excludeID {
			return true
		}
	}
	return false
}

// ImagemDentroDoLimite reports whether a base64 data-URI image decodes to at
// most 5MB.
func ImagemDentroDoLimite(imagem string) bool {
	payload := imagem
	if idx := strings.Index(imagem, ","); idx >= 0 {
		payload = imagem[idx+1:]
	}
	return base64.StdEncoding.DecodedLen(len(payload)) <= maxImagemBytes
}

func (s *TarefaService) load(ctx context.Context) ([]model.Tarefa, error) {
	var tarefas []model.Tarefa
	if _, err := s.store.Get(ctx, chaveTarefas, &tarefas); err != nil {
		return nil, err
	}
	return tarefas, nil
}

func (s *TarefaService) save(ctx context.Context, tarefas []model.Tarefa) error {
	for i := range tarefas {
		tarefas[i].EmAtraso = false // derived, never stored
	}
	return s.store.Set(ctx, chaveTarefas, tarefas)
}
