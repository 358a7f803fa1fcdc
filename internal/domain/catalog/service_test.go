package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// =========== Mock Repository ===========

type mockRepo struct {
	custom   []string
	listErr  error
	addErr   error
	addCalls int
}

func (m *mockRepo) List(_ context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]string(nil), m.custom...), nil
}

func (m *mockRepo) Add(_ context.Context, name, createdBy string) (*CustomDiagnosis, error) {
	m.addCalls++
	if m.addErr != nil {
		return nil, m.addErr
	}
	m.custom = append(m.custom, name)
	return &CustomDiagnosis{ID: uuid.New(), Name: name, CreatedBy: createdBy}, nil
}

func newTestService(repo *mockRepo) *Service {
	return NewService(repo, zerolog.Nop())
}

// =========== Tests ===========

func TestLoad_MergesCustomIntoBase(t *testing.T) {
	repo := &mockRepo{custom: []string{"Síndrome genético raro"}}
	svc := newTestService(repo)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.Contains("Síndrome genético raro") {
		t.Error("custom entry missing from merged catalog")
	}
	if !svc.Contains("Sepsis Neonatal Precoz Confirmada") {
		t.Error("base entry missing from merged catalog")
	}
}

func TestAdd_EmptyNameRejected(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)
	if _, err := svc.Add(context.Background(), "   ", "u1"); err != ErrEmptyName {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
	if repo.addCalls != 0 {
		t.Errorf("expected no store call, got %d", repo.addCalls)
	}
}

func TestAdd_CaseInsensitiveDuplicateRejected(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)
	// The name matches a base entry except for case; it must be rejected
	// before the store is touched.
	if _, err := svc.Add(context.Background(), "SEPSIS NEONATAL PRECOZ CONFIRMADA", "u1"); err != ErrDuplicate {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
	if repo.addCalls != 0 {
		t.Errorf("expected no store call, got %d", repo.addCalls)
	}
}

func TestAdd_VisibleImmediately(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)
	d, err := svc.Add(context.Background(), "Cardiopatía congénita compleja", "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Name != "Cardiopatía congénita compleja" {
		t.Errorf("unexpected name %q", d.Name)
	}
	if !svc.Contains("Cardiopatía congénita compleja") {
		t.Error("added diagnosis not visible before snapshot arrives")
	}
}

func TestAdd_StoreFailureSurfaced(t *testing.T) {
	repo := &mockRepo{addErr: fmt.Errorf("connection reset")}
	svc := newTestService(repo)
	if _, err := svc.Add(context.Background(), "Hipoglucemia refractaria", "u1"); err == nil {
		t.Fatal("expected error")
	}
	if svc.Contains("Hipoglucemia refractaria") {
		t.Error("failed add must not appear in catalog")
	}
}

func TestApplySnapshot_ReplacesCustomList(t *testing.T) {
	repo := &mockRepo{custom: []string{"Dx temporal"}}
	svc := newTestService(repo)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A later snapshot no longer contains the entry; it must disappear.
	svc.ApplySnapshot([]string{"Otro dx"})
	if svc.Contains("Dx temporal") {
		t.Error("stale custom entry survived snapshot")
	}
	if !svc.Contains("Otro dx") {
		t.Error("new custom entry missing after snapshot")
	}

	snap := svc.Snapshot()
	if snap.CustomCount != 1 {
		t.Errorf("CustomCount = %d, want 1", snap.CustomCount)
	}
}

func TestContains_CaseSensitive(t *testing.T) {
	svc := newTestService(&mockRepo{})
	if svc.Contains("sepsis neonatal precoz confirmada") {
		t.Error("Contains must be case-sensitive")
	}
	if !svc.Contains("Sepsis Neonatal Precoz Confirmada") {
		t.Error("expected exact match to succeed")
	}
}
