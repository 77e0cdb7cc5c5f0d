package memory

import (
	"sync"

	"PaiDeFerro/models"
	"PaiDeFerro/repositories"
)

type ParentStore struct {
	mu      sync.Mutex
	byID    map[string]*models.Parent
	byEmail map[string]string
}

func NewParentStore() *ParentStore {
	return &ParentStore{
		byID:    make(map[string]*models.Parent),
		byEmail: make(map[string]string),
	}
}

func (s *ParentStore) FindByID(id string) (models.Parent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	parent := s.byID[id]
	if parent == nil {
		return models.Parent{}, repositories.ErrNotFound
	}
	return *parent, nil
}

func (s *ParentStore) FindByEmail(email string) (models.Parent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[email]
	if !ok {
		return models.Parent{}, repositories.ErrNotFound
	}
	return *s.byID[id], nil
}

func (s *ParentStore) Save(parent models.Parent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := parent
	s.byID[parent.ID] = &stored
	s.byEmail[parent.Email] = parent.ID
	return nil
}
