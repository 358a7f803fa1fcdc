package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Validation failures are caught before any store call.
var (
	ErrEmptyName = errors.New("diagnosis name must not be empty")
	ErrDuplicate = errors.New("diagnosis already exists")
)

// Service owns the merged diagnosis catalog: the compiled-in base list plus
// the live snapshot of the custom list. Snapshots can arrive at any time
// from the store subscription, so all state is mutex-guarded and
// ApplySnapshot is safe to call repeatedly.
type Service struct {
	repo   Repository
	logger zerolog.Logger

	mu     sync.RWMutex
	base   []string
	custom []string
	merged []string
}

// NewService creates a catalog service seeded with the base diagnosis list.
func NewService(repo Repository, logger zerolog.Logger) *Service {
	s := &Service{
		repo:   repo,
		logger: logger.With().Str("component", "catalog").Logger(),
		base:   BaseDiagnoses(),
	}
	s.merged = Merge(s.base, nil)
	return s
}

// Load fetches the current custom list from the store and merges it.
// Called once at startup; later changes arrive through ApplySnapshot.
func (s *Service) Load(ctx context.Context) error {
	custom, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	s.ApplySnapshot(custom)
	return nil
}

// ApplySnapshot replaces the custom list with a complete new snapshot and
// recomputes the merged catalog.
func (s *Service) ApplySnapshot(custom []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.custom = append([]string(nil), custom...)
	s.merged = Merge(s.base, s.custom)
	s.logger.Debug().Int("custom", len(s.custom)).Int("merged", len(s.merged)).
		Msg("catalog snapshot applied")
}

// Merged returns a copy of the merged catalog.
func (s *Service) Merged() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.merged))
	copy(out, s.merged)
	return out
}

// Snapshot returns the merged catalog together with source counts.
func (s *Service) Snapshot() Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.merged))
	copy(out, s.merged)
	return Catalog{Diagnoses: out, BaseCount: len(s.base), CustomCount: len(s.custom)}
}

// Contains reports case-sensitive membership in the merged catalog.
func (s *Service) Contains(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.merged {
		if d == name {
			return true
		}
	}
	return false
}

// containsFold reports case-insensitive membership. Callers hold s.mu.
func (s *Service) containsFold(name string) bool {
	for _, d := range s.merged {
		if strings.EqualFold(d, name) {
			return true
		}
	}
	return false
}

// Add validates and persists a new custom diagnosis. Names matching an
// existing catalog entry case-insensitively are rejected; the merged
// catalog itself only dedupes case-sensitively (see Merge).
func (s *Service) Add(ctx context.Context, name, createdBy string) (*CustomDiagnosis, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	s.mu.Lock()
	if s.containsFold(name) {
		s.mu.Unlock()
		return nil, ErrDuplicate
	}
	s.mu.Unlock()

	d, err := s.repo.Add(ctx, name, createdBy)
	if err != nil {
		return nil, err
	}

	// The store notification will deliver a full snapshot shortly; apply the
	// new name locally so callers in this process see it immediately.
	s.mu.Lock()
	s.custom = append(s.custom, d.Name)
	s.merged = Merge(s.base, s.custom)
	s.mu.Unlock()

	s.logger.Info().Str("name", d.Name).Str("created_by", createdBy).
		Msg("custom diagnosis added")
	return d, nil
}
