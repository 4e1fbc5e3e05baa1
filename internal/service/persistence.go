package service

import (
	"context"

	"controlling_lights/internal/logger"
)

// PersistenceService acknowledges save/load requests without doing anything.
// Light and group state is memory-only; a fresh process starts from the two
// seeded default lights regardless of what ran before.
type PersistenceService struct {
	log *logger.Logger
}

func NewPersistenceService(log *logger.Logger) *PersistenceService {
	return &PersistenceService{log: log}
}

func (s *PersistenceService) Save(ctx context.Context) error {
	if s.log != nil {
		s.log.Infow("state_save_requested", "persisted", false)
	}
	return nil
}

func (s *PersistenceService) Load(ctx context.Context) error {
	if s.log != nil {
		s.log.Infow("state_load_requested", "persisted", false)
	}
	return nil
}
