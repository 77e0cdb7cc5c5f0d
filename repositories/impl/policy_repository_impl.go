package impl

import (
	"encoding/json"
	"errors"

	"PaiDeFerro/models"
	"PaiDeFerro/repositories"

	"gorm.io/gorm"
)

// policyRowID is the primary key of the single configuration row.
const policyRowID = 1

type PolicyRepositoryImpl struct {
	DB *gorm.DB
}

func NewPolicyRepository(db *gorm.DB) repositories.PolicyRepository {
	return &PolicyRepositoryImpl{DB: db}
}

func (r *PolicyRepositoryImpl) Load() (*models.PolicyConfiguration, error) {
	var record models.PolicyRecord
	err := r.DB.First(&record, policyRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg models.PolicyConfiguration
	if err := json.Unmarshal([]byte(record.Data), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *PolicyRepositoryImpl) Store(cfg *models.PolicyConfiguration) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return r.DB.Save(&models.PolicyRecord{ID: policyRowID, Data: string(data)}).Error
}
