package repositories

import "PaiDeFerro/models"

type PairingRepository interface {
	CreateCode(code *models.PairCode) error
	// FindUnusedCode returns the first unused record with the given code
	// string, ErrNotFound when none exists (missing and already-used codes
	// are indistinguishable here, by design).
	FindUnusedCode(code string) (models.PairCode, error)
	// ConsumeCode marks the code used and creates the device as one atomic
	// unit. It returns ErrAlreadyUsed if another caller consumed the code
	// first; in that case no device is created.
	ConsumeCode(codeID uint, device *models.Device) error
	FindDevice(id string) (models.Device, error)
	SaveDevice(device *models.Device) error
	DevicesByParent(parentID string) ([]models.Device, error)
}
