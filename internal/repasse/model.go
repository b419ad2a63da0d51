package repasse

import (
	"time"

	"gorm.io/gorm"
)

// Tipos de opção de um repasse. Cada opção define o percentual de desconto
// aplicado sobre o valor bruto; "expense" marca um lançamento que é pura
// despesa (campos de entrada zerados).
const (
	TipoOpcao1  = "option1"
	TipoOpcao2  = "option2"
	TipoOpcao3  = "option3"
	TipoDespesa = "expense"
)

// Formas de pagamento aceitas.
const (
	PagamentoDinheiro      = "cash"
	PagamentoPix           = "pix"
	PagamentoCartaoDebito  = "debit_card"
	PagamentoCartaoCredito = "credit_card"
)

// Repasse representa um procedimento repassado a um médico ou uma despesa
// lançada diretamente no repasse
type Repasse struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	UsuarioID uint   `gorm:"not null;index" json:"usuarioId"`

	Data          time.Time `gorm:"not null" json:"data"`
	MesReferencia string    `gorm:"size:7;not null;index" json:"mesReferencia"`
	NomeMedico    string    `gorm:"size:255;not null;index" json:"nomeMedico"`

	TipoOpcao string `gorm:"size:20;not null" json:"tipoOpcao"`
	Categoria string `gorm:"size:100" json:"categoria"`
	Descricao string `json:"descricao"`

	Valor                       float64 `gorm:"not null;default:0" json:"valor"`
	PercentualDesconto          float64 `gorm:"not null;default:0" json:"percentualDesconto"`
	ValorDesconto               float64 `gorm:"not null;default:0" json:"valorDesconto"`
	FormaPagamento              string  `gorm:"size:20" json:"formaPagamento"`
	PercentualDescontoPagamento float64 `gorm:"not null;default:0" json:"percentualDescontoPagamento"`
	ValorDescontoPagamento      float64 `gorm:"not null;default:0" json:"valorDescontoPagamento"`
	ValorLiquido                float64 `gorm:"not null;default:0" json:"valorLiquido"`

	// Despesa embutida no repasse (deduzida do próprio procedimento)
	CategoriaDespesa string  `gorm:"size:100" json:"categoriaDespesa"`
	ValorDespesa     float64 `gorm:"not null;default:0" json:"valorDespesa"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Repasse{})
}
