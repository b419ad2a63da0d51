// internal/repasse/repository.go
package repasse

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Repasse
type Repository struct {
	DB *gorm.DB
}

// NewRepository cria um novo repositório
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Create insere um novo repasse
func (r *Repository) Create(rep *Repasse) error {
	return r.DB.Create(rep).Error
}

// FindByID retorna um repasse pelo ID, restrito ao usuário
func (r *Repository) FindByID(usuarioID uint, id string) (*Repasse, error) {
	var rep Repasse
	if err := r.DB.Where("usuario_id = ?", usuarioID).First(&rep, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

// ListByUsuario retorna todos os repasses do usuário, mais recentes primeiro
func (r *Repository) ListByUsuario(usuarioID uint) ([]Repasse, error) {
	var list []Repasse
	err := r.DB.Where("usuario_id = ?", usuarioID).Order("data DESC").Find(&list).Error
	return list, err
}

// ListByMedico retorna os repasses de um médico específico
func (r *Repository) ListByMedico(usuarioID uint, nomeMedico string) ([]Repasse, error) {
	var list []Repasse
	err := r.DB.
		Where("usuario_id = ? AND nome_medico = ?", usuarioID, nomeMedico).
		Order("data DESC").
		Find(&list).Error
	return list, err
}

// ListMedicos retorna os nomes de médicos distintos presentes nos repasses
func (r *Repository) ListMedicos(usuarioID uint) ([]string, error) {
	var nomes []string
	err := r.DB.Model(&Repasse{}).
		Where("usuario_id = ? AND nome_medico <> ''", usuarioID).
		Distinct().
		Pluck("nome_medico", &nomes).Error
	return nomes, err
}

// ExisteMedico verifica se o usuário já tem algum repasse para o médico
func (r *Repository) ExisteMedico(usuarioID uint, nomeMedico string) (bool, error) {
	var total int64
	err := r.DB.Model(&Repasse{}).
		Where("usuario_id = ? AND nome_medico = ?", usuarioID, nomeMedico).
		Count(&total).Error
	return total > 0, err
}

// Update salva alterações em um repasse existente
func (r *Repository) Update(rep *Repasse) error {
	return r.DB.Save(rep).Error
}

// Delete remove um repasse (soft delete)
func (r *Repository) Delete(rep *Repasse) error {
	return r.DB.Delete(rep).Error
}
