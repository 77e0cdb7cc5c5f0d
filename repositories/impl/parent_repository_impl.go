package impl

import (
	"errors"

	"PaiDeFerro/models"
	"PaiDeFerro/repositories"

	"gorm.io/gorm"
)

type ParentRepositoryImpl struct {
	DB *gorm.DB
}

func NewParentRepository(db *gorm.DB) repositories.ParentRepository {
	return &ParentRepositoryImpl{DB: db}
}

func (r *ParentRepositoryImpl) FindByID(id string) (models.Parent, error) {
	var parent models.Parent
	err := r.DB.Where("id = ?", id).First(&parent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Parent{}, repositories.ErrNotFound
	}
	if err != nil {
		return models.Parent{}, err
	}
	return parent, nil
}

func (r *ParentRepositoryImpl) FindByEmail(email string) (models.Parent, error) {
	var parent models.Parent
	err := r.DB.Where("email = ?", email).First(&parent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Parent{}, repositories.ErrNotFound
	}
	if err != nil {
		return models.Parent{}, err
	}
	return parent, nil
}

func (r *ParentRepositoryImpl) Save(parent models.Parent) error {
	return r.DB.Save(&parent).Error
}
