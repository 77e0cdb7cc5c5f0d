// Package memory provides map-backed implementations of the repository
// interfaces. They back the unit tests and let the service run without a
// database, with the same atomicity contracts as the GORM implementations.
package memory

import (
	"sync"

	"PaiDeFerro/models"
	"PaiDeFerro/repositories"
)

type PairingStore struct {
	mu          sync.Mutex
	nextCodeID  uint
	codesByID   map[uint]*models.PairCode
	codesByCode map[string][]uint
	devices     map[string]*models.Device
	// deviceOrder keeps insertion order per parent so listings are stable.
	deviceOrder map[string][]string
}

func NewPairingStore() *PairingStore {
	return &PairingStore{
		codesByID:   make(map[uint]*models.PairCode),
		codesByCode: make(map[string][]uint),
		devices:     make(map[string]*models.Device),
		deviceOrder: make(map[string][]string),
	}
}

func (s *PairingStore) CreateCode(code *models.PairCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCodeID++
	code.ID = s.nextCodeID
	stored := *code
	s.codesByID[code.ID] = &stored
	// Codes are not checked for collisions at issue time, so the same code
	// string may map to several records; redemption takes the first unused.
	s.codesByCode[code.Code] = append(s.codesByCode[code.Code], code.ID)
	return nil
}

func (s *PairingStore) FindUnusedCode(code string) (models.PairCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.codesByCode[code] {
		if pc := s.codesByID[id]; pc != nil && !pc.Used {
			return *pc, nil
		}
	}
	return models.PairCode{}, repositories.ErrNotFound
}

func (s *PairingStore) ConsumeCode(codeID uint, device *models.Device) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pc := s.codesByID[codeID]
	if pc == nil {
		return repositories.ErrNotFound
	}
	if pc.Used {
		return repositories.ErrAlreadyUsed
	}
	pc.Used = true
	stored := *device
	s.devices[device.ID] = &stored
	s.deviceOrder[device.ParentID] = append(s.deviceOrder[device.ParentID], device.ID)
	return nil
}

func (s *PairingStore) FindDevice(id string) (models.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	device := s.devices[id]
	if device == nil {
		return models.Device{}, repositories.ErrNotFound
	}
	return *device, nil
}

func (s *PairingStore) SaveDevice(device *models.Device) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing := s.devices[device.ID]; existing == nil {
		s.deviceOrder[device.ParentID] = append(s.deviceOrder[device.ParentID], device.ID)
	}
	stored := *device
	s.devices[device.ID] = &stored
	return nil
}

func (s *PairingStore) DevicesByParent(parentID string) ([]models.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.deviceOrder[parentID]
	devices := make([]models.Device, 0, len(ids))
	for _, id := range ids {
		if device := s.devices[id]; device != nil {
			devices = append(devices, *device)
		}
	}
	return devices, nil
}
