package memory

import (
	"sync"

	"PaiDeFerro/models"
)

type PolicyStore struct {
	mu  sync.Mutex
	cfg *models.PolicyConfiguration
}

func NewPolicyStore() *PolicyStore {
	return &PolicyStore{}
}

func (s *PolicyStore) Load() (*models.PolicyConfiguration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg, nil
}

func (s *PolicyStore) Store(cfg *models.PolicyConfiguration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	return nil
}
