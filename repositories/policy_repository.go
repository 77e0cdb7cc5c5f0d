package repositories

import "PaiDeFerro/models"

type PolicyRepository interface {
	// Load returns the persisted configuration, or (nil, nil) when none has
	// been stored yet.
	Load() (*models.PolicyConfiguration, error)
	Store(cfg *models.PolicyConfiguration) error
}
