package model

// Tarefa representa um item de trabalho com data limite dentro de um projeto.
// EmAtraso nunca é persistido: é recalculado em cada leitura a partir da
// DataLimite e da data corrente.
type Tarefa struct {
	ID         string `json:"id"`
	Titulo     string `json:"titulo"`
	Descricao  string `json:"descricao"`
	DataLimite string `json:"dataLimite"`
	Imagem     string `json:"imagem,omitempty"`
	ProjetoID  string `json:"projetoId"`
	EmAtraso   bool   `json:"emAtraso"`
}
