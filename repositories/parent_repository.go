package repositories

import "PaiDeFerro/models"

type ParentRepository interface {
	FindByID(id string) (models.Parent, error)
	FindByEmail(email string) (models.Parent, error)
	Save(parent models.Parent) error
}
