package despesa

import (
	"time"

	"gorm.io/gorm"
)

// Lados do lançamento no livro-caixa.
const (
	TipoDespesa = "expense"
	TipoEntrada = "income"
)

// Despesa é um lançamento avulso do livro-caixa, fora do ledger de repasses.
// O vínculo com um médico é fraco: o campo Subcategoria carrega o nome do
// médico, sem chave estrangeira. A integridade desse vínculo não é garantida
// pelo banco.
type Despesa struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	UsuarioID uint   `gorm:"not null;index" json:"usuarioId"`

	Tipo         string    `gorm:"size:20;not null;index" json:"tipo"`
	Data         time.Time `gorm:"not null" json:"data"`
	Valor        float64   `gorm:"not null;default:0" json:"valor"`
	Descricao    string    `json:"descricao"`
	Categoria    string    `gorm:"size:100" json:"categoria"`
	Subcategoria string    `gorm:"size:255;index" json:"subcategoria"`

	// Pode ficar vazio; nesse caso o mês é derivado da data
	MesReferencia string `gorm:"size:7" json:"mesReferencia"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// Mes retorna o mês de referência do lançamento, derivando da data quando o
// campo não foi informado
func (d *Despesa) Mes() string {
	if d.MesReferencia != "" {
		return d.MesReferencia
	}
	return d.Data.Format("2006-01")
}

// Migrate cria a tabela no banco de dados
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Despesa{})
}
