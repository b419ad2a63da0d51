// internal/repasse/dto.go
package repasse

// RepasseDTO carrega apenas os campos editáveis de um repasse; os campos
// derivados (descontos e valor líquido) são sempre recalculados no servidor.
type RepasseDTO struct {
	Data          string `json:"data"` // "2006-01-02"
	MesReferencia string `json:"mesReferencia"`
	NomeMedico    string `json:"nomeMedico"`

	TipoOpcao string `json:"tipoOpcao"`
	Categoria string `json:"categoria"`
	Descricao string `json:"descricao"`

	Valor          float64 `json:"valor"`
	FormaPagamento string  `json:"formaPagamento"`

	CategoriaDespesa string  `json:"categoriaDespesa"`
	ValorDespesa     float64 `json:"valorDespesa"`
}
