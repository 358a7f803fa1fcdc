package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/neoward/neoward/internal/storage"
)

// ErrNameRequired is returned when a form arrives without a patient name.
// A record always has a name; this is checked before any store call.
var ErrNameRequired = errors.New("patient name is required")

// Service exposes the record operations. All store failures pass through
// typed (storage.StoreError) so operation boundaries can distinguish
// missing-index rejections from transient errors.
type Service struct {
	repo     Repository
	logger   zerolog.Logger
	onChange func()
}

// NewService creates a patient record service.
func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger.With().Str("component", "patient").Logger()}
}

// OnChange registers fn to run after every successful mutation. The server
// uses it to fan a roster change event out to connected clients. Must be
// set before the service starts handling requests.
func (s *Service) OnChange(fn func()) {
	s.onChange = fn
}

func (s *Service) notifyChange() {
	if s.onChange != nil {
		s.onChange()
	}
}

func (f *Form) toRecord(userID string) *Record {
	return &Record{
		Name:            f.Name,
		BirthDate:       f.BirthDate,
		WeightGrams:     f.WeightGrams,
		GestationalAge:  f.GestationalAge,
		Origin:          f.Origin,
		AdmissionDate:   f.AdmissionDate,
		DischargeDate:   f.DischargeDate,
		DischargeStatus: f.DischargeStatus,
		Diagnoses:       append([]string(nil), f.Diagnoses...),
		CreatedBy:       userID,
		UpdatedBy:       userID,
	}
}

// Create validates the form and inserts a new record.
func (s *Service) Create(ctx context.Context, form *Form, userID string) (uuid.UUID, error) {
	if form.Name == "" {
		return uuid.Nil, ErrNameRequired
	}
	id, err := s.repo.Create(ctx, form.toRecord(userID))
	if err != nil {
		s.logger.Error().Err(err).Msg("create failed")
		return uuid.Nil, err
	}
	s.logger.Info().Str("id", id.String()).Str("user", userID).Msg("patient created")
	s.notifyChange()
	return id, nil
}

// Update validates the form and overwrites the record in place
// (last write wins).
func (s *Service) Update(ctx context.Context, id uuid.UUID, form *Form, userID string) error {
	if form.Name == "" {
		return ErrNameRequired
	}
	if err := s.repo.Update(ctx, id, form.toRecord(userID)); err != nil {
		s.logger.Error().Err(err).Str("id", id.String()).Msg("update failed")
		return err
	}
	s.logger.Info().Str("id", id.String()).Str("user", userID).Msg("patient updated")
	s.notifyChange()
	return nil
}

// Delete removes the record.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("id", id.String()).Msg("delete failed")
		return err
	}
	s.logger.Info().Str("id", id.String()).Msg("patient deleted")
	s.notifyChange()
	return nil
}

// Search builds the constraint set and queries the store. The second
// result is false when the spec has no populated field: no query was run
// and the caller should show the prompt state instead of an empty result.
func (s *Service) Search(ctx context.Context, spec FilterSpec) ([]*Record, bool, error) {
	constraints, ok := spec.Build()
	if !ok {
		return nil, false, nil
	}
	rows, err := s.repo.Search(ctx, constraints)
	if err != nil {
		if errors.Is(err, storage.ErrMissingIndex) {
			s.logger.Warn().Err(err).Msg("search rejected: constraint combination unsupported")
		} else {
			s.logger.Error().Err(err).Msg("search failed")
		}
		return nil, true, err
	}
	return rows, true, nil
}

// CountAll returns the unfiltered record count. Refreshed by callers after
// create and delete, but not after update — updates cannot change
// cardinality.
func (s *Service) CountAll(ctx context.Context) (int, error) {
	n, err := s.repo.CountAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("count failed")
		return 0, err
	}
	return n, nil
}
