// internal/despesa/repository.go
package despesa

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Despesa
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo lançamento
func (r *Repository) Create(d *Despesa) error {
	return r.DB.Create(d).Error
}

// FindByID retorna um lançamento pelo ID, restrito ao usuário
func (r *Repository) FindByID(usuarioID uint, id string) (*Despesa, error) {
	var d Despesa
	if err := r.DB.Where("usuario_id = ?", usuarioID).First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// ListByUsuario retorna todos os lançamentos do usuário
func (r *Repository) ListByUsuario(usuarioID uint) ([]Despesa, error) {
	var list []Despesa
	err := r.DB.Where("usuario_id = ?", usuarioID).Order("data DESC").Find(&list).Error
	return list, err
}

// ListAvulsasPorMedico retorna as despesas avulsas vinculadas a um médico
// pelo campo subcategoria
func (r *Repository) ListAvulsasPorMedico(usuarioID uint, nomeMedico string) ([]Despesa, error) {
	var list []Despesa
	err := r.DB.
		Where("usuario_id = ? AND tipo = ? AND subcategoria = ?", usuarioID, TipoDespesa, nomeMedico).
		Order("data DESC").
		Find(&list).Error
	return list, err
}

// ListMedicos retorna os nomes de médicos distintos presentes nas despesas
func (r *Repository) ListMedicos(usuarioID uint) ([]string, error) {
	var nomes []string
	err := r.DB.Model(&Despesa{}).
		Where("usuario_id = ? AND tipo = ? AND subcategoria <> ''", usuarioID, TipoDespesa).
		Distinct().
		Pluck("subcategoria", &nomes).Error
	return nomes, err
}

// Update salva alterações em um lançamento existente
func (r *Repository) Update(d *Despesa) error {
	return r.DB.Save(d).Error
}

// Delete remove um lançamento (soft delete)
func (r *Repository) Delete(d *Despesa) error {
	return r.DB.Delete(d).Error
}
