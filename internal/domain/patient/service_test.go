package patient

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/neoward/neoward/internal/storage"
)

// =========== Mock Repository ===========

type mockPatientRepo struct {
	records map[uuid.UUID]*Record

	searchCalls int
	countCalls  int
	searchErr   error
	lastSearch  []storage.Constraint
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{records: make(map[uuid.UUID]*Record)}
}

func (m *mockPatientRepo) Create(_ context.Context, rec *Record) (uuid.UUID, error) {
	id := uuid.New()
	cp := *rec
	cp.ID = id
	m.records[id] = &cp
	return id, nil
}

func (m *mockPatientRepo) Update(_ context.Context, id uuid.UUID, rec *Record) error {
	if _, ok := m.records[id]; !ok {
		return storage.Transient(errors.New("not found"))
	}
	cp := *rec
	cp.ID = id
	m.records[id] = &cp
	return nil
}

func (m *mockPatientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.records, id)
	return nil
}

func (m *mockPatientRepo) Search(_ context.Context, cs []storage.Constraint) ([]*Record, error) {
	m.searchCalls++
	m.lastSearch = cs
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	var out []*Record
	for _, rec := range m.records {
		out = append(out, rec)
	}
	return out, nil
}

func (m *mockPatientRepo) CountAll(_ context.Context) (int, error) {
	m.countCalls++
	return len(m.records), nil
}

// =========== Tests ===========

func TestCreate_RequiresName(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo, zerolog.Nop())
	if _, err := svc.Create(context.Background(), &Form{}, "u1"); !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
	if len(repo.records) != 0 {
		t.Error("invalid form must not reach the store")
	}
}

func TestCreate_AttributesAuthor(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo, zerolog.Nop())
	id, err := svc.Create(context.Background(), &Form{Name: "Ana García"}, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := repo.records[id]
	if rec.CreatedBy != "u1" || rec.UpdatedBy != "u1" {
		t.Errorf("author not recorded: %+v", rec)
	}
}

func TestUpdate_RequiresName(t *testing.T) {
	svc := NewService(newMockPatientRepo(), zerolog.Nop())
	err := svc.Update(context.Background(), uuid.New(), &Form{}, "u1")
	if !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
}

func TestMutations_NotifyChange(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo, zerolog.Nop())
	var events int
	svc.OnChange(func() { events++ })

	id, err := svc.Create(context.Background(), &Form{Name: "Ana García"}, "u1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if events != 1 {
		t.Fatalf("create must notify exactly once, got %d", events)
	}

	if err := svc.Update(context.Background(), id, &Form{Name: "Ana García"}, "u1"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if events != 2 {
		t.Fatalf("update must notify exactly once, got %d total", events)
	}

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if events != 3 {
		t.Fatalf("delete must notify exactly once, got %d total", events)
	}
}

func TestFailedMutation_DoesNotNotify(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo, zerolog.Nop())
	var events int
	svc.OnChange(func() { events++ })

	if _, err := svc.Create(context.Background(), &Form{}, "u1"); err == nil {
		t.Fatal("expected validation failure")
	}
	if err := svc.Update(context.Background(), uuid.New(), &Form{Name: "Ana García"}, "u1"); err == nil {
		t.Fatal("expected update of unknown id to fail")
	}
	if _, _, err := svc.Search(context.Background(), FilterSpec{NameTerm: "Ana"}); err != nil {
		t.Fatalf("search: %v", err)
	}
	if events != 0 {
		t.Errorf("failed mutations and reads must not notify, got %d", events)
	}
}

func TestSearch_EmptySpecSkipsStore(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo, zerolog.Nop())
	rows, filtered, err := svc.Search(context.Background(), FilterSpec{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filtered {
		t.Error("empty spec must report unfiltered")
	}
	if rows != nil {
		t.Errorf("expected no rows, got %v", rows)
	}
	if repo.searchCalls != 0 {
		t.Errorf("store must not be queried, got %d calls", repo.searchCalls)
	}
}

func TestSearch_ForwardsConstraints(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewService(repo, zerolog.Nop())
	_, filtered, err := svc.Search(context.Background(), FilterSpec{NameTerm: "Ana"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filtered {
		t.Error("expected filtered result")
	}
	if repo.searchCalls != 1 {
		t.Errorf("expected 1 store call, got %d", repo.searchCalls)
	}
	if len(repo.lastSearch) != 2 {
		t.Errorf("expected prefix-range constraints, got %v", repo.lastSearch)
	}
}

func TestSearch_MissingIndexPassedThrough(t *testing.T) {
	repo := newMockPatientRepo()
	repo.searchErr = storage.MissingIndex(errors.New("no index covers field"))
	svc := NewService(repo, zerolog.Nop())
	_, _, err := svc.Search(context.Background(), FilterSpec{NameTerm: "Ana"})
	if !errors.Is(err, storage.ErrMissingIndex) {
		t.Errorf("expected ErrMissingIndex, got %v", err)
	}
}
