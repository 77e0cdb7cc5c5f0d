package services

import (
	"sync/atomic"

	"PaiDeFerro/models"
	"PaiDeFerro/repositories"
)

// PolicyService owns the live PolicyConfiguration. The current snapshot is
// held behind an atomic pointer, so readers always see a configuration that
// is entirely old or entirely new, never a mix. Snapshots are treated as
// immutable: Replace publishes a fresh value instead of mutating in place.
type PolicyService struct {
	Repo    repositories.PolicyRepository
	current atomic.Pointer[models.PolicyConfiguration]
}

// NewPolicyService loads the persisted configuration, seeding the store
// with the defaults when none exists yet.
func NewPolicyService(repo repositories.PolicyRepository) (*PolicyService, error) {
	s := &PolicyService{Repo: repo}

	cfg, err := repo.Load()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = models.DefaultPolicy()
		if err := repo.Store(cfg); err != nil {
			return nil, err
		}
	}
	s.current.Store(cfg)
	return s, nil
}

// Current returns the live snapshot. Callers must not modify it.
func (s *PolicyService) Current() *models.PolicyConfiguration {
	return s.current.Load()
}

// Replace persists the new configuration and publishes it. The write-through
// happens first so a crash between the two steps loses the swap, not the
// persisted state.
func (s *PolicyService) Replace(cfg *models.PolicyConfiguration) error {
	if err := s.Repo.Store(cfg); err != nil {
		return err
	}
	s.current.Store(cfg)
	return nil
}
