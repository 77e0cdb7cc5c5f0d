package impl

import (
	"errors"

	"PaiDeFerro/models"
	"PaiDeFerro/repositories"

	"gorm.io/gorm"
)

type PairingRepositoryImpl struct {
	DB *gorm.DB
}

func NewPairingRepository(db *gorm.DB) repositories.PairingRepository {
	return &PairingRepositoryImpl{DB: db}
}

func (r *PairingRepositoryImpl) CreateCode(code *models.PairCode) error {
	return r.DB.Create(code).Error
}

func (r *PairingRepositoryImpl) FindUnusedCode(code string) (models.PairCode, error) {
	var pc models.PairCode
	err := r.DB.Where("code = ? AND used = ?", code, false).First(&pc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PairCode{}, repositories.ErrNotFound
	}
	if err != nil {
		return models.PairCode{}, err
	}
	return pc, nil
}

func (r *PairingRepositoryImpl) ConsumeCode(codeID uint, device *models.Device) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		// Compare-and-set on the used flag: under concurrent redemption of
		// the same code exactly one transaction flips it.
		res := tx.Model(&models.PairCode{}).
			Where("id = ? AND used = ?", codeID, false).
			Update("used", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repositories.ErrAlreadyUsed
		}
		return tx.Create(device).Error
	})
}

func (r *PairingRepositoryImpl) FindDevice(id string) (models.Device, error) {
	var device models.Device
	err := r.DB.Where("id = ?", id).First(&device).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Device{}, repositories.ErrNotFound
	}
	if err != nil {
		return models.Device{}, err
	}
	return device, nil
}

func (r *PairingRepositoryImpl) SaveDevice(device *models.Device) error {
	return r.DB.Save(device).Error
}

func (r *PairingRepositoryImpl) DevicesByParent(parentID string) ([]models.Device, error) {
	var devices []models.Device
	err := r.DB.Where("parent_id = ?", parentID).Order("paired_at").Find(&devices).Error
	return devices, err
}
