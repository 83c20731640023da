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

const chaveCategorias = "categorias"

// Categorias criadas na primeira execução, quando o store está vazio.
var categoriasPadrao = []string{"Escola", "Trabalho", "Pessoal"}

var ErrNomeObrigatorio = errors.New("nome é obrigatório")

// CategoriaService manages the "categorias" collection in the key-value store.
// Every mutation reads the whole collection, changes it in memory and writes
// it back; a single local writer is assumed.
type CategoriaService struct {
	store kvstore.Store
}

func NewCategoriaService(store kvstore.Store) *CategoriaService {
	return &CategoriaService{store: store}
}

// Init seeds the default categories when the collection is empty.
func (s *CategoriaService) Init(ctx context.Context) error {
	categorias, err := s.load(ctx)
	if err != nil {
		return fmt.Errorf("init categorias: %w", err)
	}
	if len(categorias) > 0 {
		return nil
	}
	for _, nome := range categoriasPadrao {
		categorias = append(categorias, model.Categoria{ID: model.NovoID("cat"), Nome: nome})
	}
	if err := s.save(ctx, categorias); err != nil {
		return fmt.Errorf("init categorias: %w", err)
	}
	log.Printf("[info] categorias padrão criadas: %s", strings.Join(categoriasPadrao, ", "))
	return nil
}

// GetAll returns every categoria. Storage failures degrade to an empty list.
func (s *CategoriaService) GetAll(ctx context.Context) []model.Categoria {
	categorias, err := s.load(ctx)
	if err != nil {
		log.Printf("[warn] obter categorias: %v", err)
		return []model.Categoria{}
	}
	return categorias
}

// GetByID returns the categoria with the given id, or nil when absent.
func (s *CategoriaService) GetByID(ctx context.Context, id string) *model.Categoria {
	for _, cat := range s.GetAll(ctx) {
		if cat.ID == id {
			c := cat
			return &c
		}
	}
	return nil
}

// Create stores a new categoria with a generated id. The name is trimmed.
func (s *CategoriaService) Create(ctx context.Context, nome string) (model.Categoria, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return model.Categoria{}, ErrNomeObrigatorio
	}

	categorias, err := s.load(ctx)
	if err != nil {
		return model.Categoria{}, fmt.Errorf("create categoria: %w", err)
	}

	nova := model.Categoria{ID: model.NovoID("cat"), Nome: nome}
	categorias = append(categorias, nova)
	if err := s.save(ctx, categorias); err != nil {
		return model.Categoria{}, fmt.Errorf("create categoria: %w", err)
	}
	return nova, nil
}

// Update replaces the stored categoria with the same id. It returns false
// when the id is unknown or the write fails.
func (s *CategoriaService) Update(ctx context.Context, categoria model.Categoria) bool {
	categorias, err := s.load(ctx)
	if err != nil {
		log.Printf("[warn] atualizar categoria: %v", err)
		return false
	}

	for i := range categorias {
		if categorias[i].ID == categoria.ID {
			categoria.Nome = strings.TrimSpace(categoria.Nome)
			categorias[i] = categoria
			if err := s.save(ctx, categorias); err != nil {
				log.Printf("[warn] atualizar categoria: %v", err)
				return false
			}
			return true
		}
	}
	return false
}

// Delete removes the categoria with the given id. Projetos that reference it
// are left untouched: orphaned references are deliberate (no cascade).
func (s *CategoriaService) Delete(ctx context.Context, id string) bool {
	categorias, err := s.load(ctx)
	if err != nil {
		log.Printf("[warn] eliminar categoria: %v", err)
		return false
	}

	restantes := categorias[:0:0]
	for _, cat := range categorias {
		if cat.ID != id {
			restantes = append(restantes, cat)
		}
	}
	if len(restantes) == len(categorias) {
		return false
	}
	if err := s.save(ctx, restantes); err != nil {
		log.Printf("[warn] eliminar categoria: %v", err)
		return false
	}
	return true
}

// ExistePorNome reports whether a categoria with the given name already
// exists, case-insensitively, ignoring the record with excludeID (useful
// when editing).
func (s *CategoriaService) ExistePorNome(ctx context.Context, nome, excludeID string) bool {
	normalizado := strings.ToLower(strings.TrimSpace(nome))
	for _, cat := range s.GetAll(ctx) {
		if strings.ToLower(cat.Nome) == normalizado && cat.ID != excludeID {
			return true
		}
	}
	return false
}

func (s *CategoriaService) load(ctx context.Context) ([]model.Categoria, error) {
	var categorias []model.Categoria
	if _, err := s.store.Get(ctx, chaveCategorias, &categorias); err != nil {
		return nil, err
	}
	return categorias, nil
}

func (s *CategoriaService) save(ctx context.Context, categorias []model.Categoria) error {
	return s.store.Set(ctx, chaveCategorias, categorias)
}
