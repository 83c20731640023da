package model

// Projeto é um conjunto de tarefas dentro de uma categoria.
type Projeto struct {
	ID          string `json:"id"`
	Nome        string `json:"nome"`
	CategoriaID string `json:"categoriaId"`
}
