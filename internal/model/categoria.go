package model

// Categoria agrupa projetos por área (Escola, Trabalho, Pessoal, ...).
type Categoria struct {
	ID   string `json:"id"`
	Nome string `json:"nome"`
}
