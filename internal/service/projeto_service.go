package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"tarefa-planner/internal/kvstore"
	"tarefa-planner/internal/model"
)

const chaveProjetos = "projetos"

var ErrCategoriaNaoEncontrada = errors.New("categoria não encontrada")

// ProjetoService manages the "projetos" collection. Every projeto must
// reference an existing categoria at write time; deleting the categoria
// afterwards leaves the reference dangling on purpose.
type ProjetoService struct {
	store      kvstore.Store
	categorias *CategoriaService
}

func NewProjetoService(store kvstore.Store, categorias *CategoriaService) *ProjetoService {
	return &ProjetoService{store: store, categorias: categorias}
}

// GetAll returns every projeto. Storage failures degrade to an empty list.
func (s *ProjetoService) GetAll(ctx context.Context) []model.Projeto {
	projetos, err := s.load(ctx)
	if err != nil {
		log.Printf("[warn] obter projetos: %v", err)
		return []model.Projeto{}
	}
	return projetos
}

// GetByID returns the projeto with the given id, or nil when absent.
func (s *ProjetoService) GetByID(ctx context.Context, id string) *model.Projeto {
	for _, proj := range s.GetAll(ctx) {
		if proj.ID == id {
			p := proj
			return &p
		}
	}
	return nil
}

// GetByCategoria returns the projetos that belong to the given categoria.
func (s *ProjetoService) GetByCategoria(ctx context.Context, categoriaID string) []model.Projeto {
	filtrados := []model.Projeto{}
	for _, proj := range s.GetAll(ctx) {
		if proj.CategoriaID == categoriaID {
			filtrados = append(filtrados, proj)
		}
	}
	return filtrados
}

// Create stores a new projeto after validating that the categoria exists.
func (s *ProjetoService) Create(ctx context.Context, nome, categoriaID string) (model.Projeto, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return model.Projeto{}, ErrNomeObrigatorio
	}
	if s.categorias.GetByID(ctx, categoriaID) == nil {
		return model.Projeto{}, ErrCategoriaNaoEncontrada
	}

	projetos, err := s.load(ctx)
	if err != nil {
		return model.Projeto{}, fmt.Errorf("create projeto: %w", err)
	}

	novo := model.Projeto{ID: model.NovoID("proj"), Nome: nome, CategoriaID: categoriaID}
	projetos = append(projetos, novo)
	if err := s.save(ctx, projetos); err != nil {
		return model.Projeto{}, fmt.Errorf("create projeto: %w", err)
	}
	return novo, nil
}

// Update replaces the stored projeto with the same id. It returns false when
// the id or the referenced categoria is unknown, or the write fails.
func (s *ProjetoService) Update(ctx context.Context, projeto model.Projeto) bool {
	if s.categorias.GetByID(ctx, projeto.CategoriaID) == nil {
		return false
	}

	projetos, err := s.load(ctx)
	if err != nil {
		log.Printf("[warn] atualizar projeto: %v", err)
		return false
	}

	for i := range projetos {
		if projetos[i].ID == projeto.ID {
			projeto.Nome = strings.TrimSpace(projeto.Nome)
			projetos[i] = projeto
			if err := s.save(ctx, projetos); err != nil {
				log.Printf("[warn] atualizar projeto: %v", err)
				return false
			}
			return true
		}
	}
	return false
}

// Delete removes the projeto with the given id. Tarefas that reference it
// are left untouched (no cascade).
func (s *ProjetoService) Delete(ctx context.Context, id string) bool {
	projetos, err := s.load(ctx)
	if err != nil {
		log.Printf("[warn] eliminar projeto: %v", err)
		return false
	}

	restantes := projetos[:0:0]
	for _, proj := range projetos {
		if proj.ID != id {
			restantes = append(restantes, proj)
		}
	}
	if len(restantes) == len(projetos) {
		return false
	}
	if err := s.save(ctx, restantes); err != nil {
		log.Printf("[warn] eliminar projeto: %v", err)
		return false
	}
	return true
}

// ExistePorNome reports whether another projeto in the same categoria already
// uses the given name, case-insensitively, ignoring excludeID.
func (s *ProjetoService) ExistePorNome(ctx context.Context, nome, categoriaID, excludeID string) bool {
	normalizado := strings.ToLower(strings.TrimSpace(nome))
	for _, proj := range s.GetAll(ctx) {
		if strings.ToLower(proj.Nome) == normalizado && proj.CategoriaID == categoriaID && proj.ID != excludeID {
			return true
		}
	}
	return false
}

func (s *ProjetoService) load(ctx context.Context) ([]model.Projeto, error) {
	var projetos []model.Projeto
	if _, err := s.store.Get(ctx, chaveProjetos, &projetos); err != nil {
		return nil, err
	}
	return projetos, nil
}

func (s *ProjetoService) save(ctx context.Context, projetos []model.Projeto) error {
	return s.store.Set(ctx, chaveProjetos, projetos)
}
