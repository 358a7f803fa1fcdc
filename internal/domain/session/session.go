// Package session holds the per-caregiver workspace: the in-progress
// diagnosis selection, the edit/delete targets, the currently held filtered
// roster and its running total. It is the only place this state lives; the
// handlers mutate it exclusively through the operations below.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/neoward/neoward/internal/domain/catalog"
	"github.com/neoward/neoward/internal/domain/patient"
)

// ErrNotHeld means an edit was requested for a record that is not in the
// currently held filtered set. No extra fetch is attempted; the caregiver
// re-runs the search instead.
var ErrNotHeld = errors.New("patient not found in current results")

// ErrNoDeleteTarget means confirm/cancel arrived with no delete pending.
var ErrNoDeleteTarget = errors.New("no deletion pending")

// IntentKind discriminates create from update at submit time. It is
// computed exactly once, from the session state; nothing else infers the
// mode.
type IntentKind int

const (
	IntentCreate IntentKind = iota
	IntentUpdate
)

// Intent is the tagged submit decision.
type Intent struct {
	Kind IntentKind
	ID   uuid.UUID // valid only for IntentUpdate
}

// DeleteTarget is the pending deletion, carrying the name for the
// confirmation prompt.
type DeleteTarget struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Workspace is one caregiver's session state. Methods are safe for
// concurrent use; store calls happen outside the lock so a slow query
// cannot wedge the session, and search results are applied only if no
// newer search has been issued since (the sequence token guard).
type Workspace struct {
	patients *patient.Service
	catalog  *catalog.Service
	logger   zerolog.Logger

	mu            sync.Mutex
	selection     []string
	editing       *uuid.UUID
	pendingDelete *DeleteTarget

	lastSpec   patient.FilterSpec
	held       []*patient.Record
	filtered   bool
	totalCount int

	searchSeq uint64 // last issued token
}

// New creates an empty workspace.
func New(patients *patient.Service, cat *catalog.Service, logger zerolog.Logger) *Workspace {
	return &Workspace{
		patients: patients,
		catalog:  cat,
		logger:   logger.With().Str("component", "session").Logger(),
	}
}

// -- Selection state --

// SelectDiagnosis adds a name to the working selection. Membership is
// case-sensitive and independent of catalog membership: a name may be
// selected before it exists in the catalog.
func (w *Workspace) SelectDiagnosis(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, d := range w.selection {
		if d == name {
			return
		}
	}
	w.selection = append(w.selection, name)
}

// DeselectDiagnosis removes a name from the working selection.
func (w *Workspace) DeselectDiagnosis(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	kept := w.selection[:0]
	for _, d := range w.selection {
		if d != name {
			kept = append(kept, d)
		}
	}
	w.selection = kept
}

// Selection returns a copy of the working selection.
func (w *Workspace) Selection() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.selection...)
}

// -- Edit session --

// BeginEdit targets a record from the currently held filtered set and
// seeds the selection from its diagnoses. Unknown ids fail without a
// fetch.
func (w *Workspace) BeginEdit(id uuid.UUID) (*patient.Record, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, rec := range w.held {
		if rec.ID == id {
			target := rec.ID
			w.editing = &target
			w.selection = append([]string(nil), rec.Diagnoses...)
			return rec, nil
		}
	}
	return nil, ErrNotHeld
}

// CancelEdit clears the edit target and the selection.
func (w *Workspace) CancelEdit() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.editing = nil
	w.selection = nil
}

// EditingID returns the current edit target, if any.
func (w *Workspace) EditingID() *uuid.UUID {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.editing == nil {
		return nil
	}
	id := *w.editing
	return &id
}

// submitIntent computes the tagged create/update decision from the session
// state and resets the edit target — the session leaves Editing on every
// submit outcome, success or failure.
func (w *Workspace) submitIntent() Intent {
	w.mu.Lock()
	defer w.mu.Unlock()
	intent := Intent{Kind: IntentCreate}
	if w.editing != nil {
		intent = Intent{Kind: IntentUpdate, ID: *w.editing}
	}
	w.editing = nil
	return intent
}

// Submit persists the form: an update when an edit target was set, a
// creation otherwise. The working selection becomes the record's diagnosis
// list. Creation changes cardinality, so it refreshes the total; update
// does not. On success the selection is cleared.
func (w *Workspace) Submit(ctx context.Context, form *patient.Form, userID string) (Intent, error) {
	w.mu.Lock()
	form.Diagnoses = append([]string(nil), w.selection...)
	w.mu.Unlock()

	intent := w.submitIntent()

	var err error
	switch intent.Kind {
	case IntentUpdate:
		err = w.patients.Update(ctx, intent.ID, form, userID)
	default:
		_, err = w.patients.Create(ctx, form, userID)
	}
	if err != nil {
		return intent, err
	}

	w.mu.Lock()
	w.selection = nil
	w.mu.Unlock()

	if intent.Kind == IntentCreate {
		w.RefreshCount(ctx)
	}
	return intent, nil
}

// -- Delete session --

// RequestDelete marks a record as pending deletion.
func (w *Workspace) RequestDelete(id uuid.UUID, name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pendingDelete = &DeleteTarget{ID: id, Name: name}
}

// CancelDelete clears the pending deletion without touching the store.
func (w *Workspace) CancelDelete() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pendingDelete = nil
}

// PendingDelete returns the pending deletion, if any.
func (w *Workspace) PendingDelete() *DeleteTarget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pendingDelete == nil {
		return nil
	}
	t := *w.pendingDelete
	return &t
}

// ConfirmDelete attempts the deletion and always returns to idle,
// whatever the outcome. A successful delete changes cardinality, so it
// triggers exactly one recount and a re-run of the current search.
func (w *Workspace) ConfirmDelete(ctx context.Context) error {
	w.mu.Lock()
	target := w.pendingDelete
	w.pendingDelete = nil
	spec := w.lastSpec
	w.mu.Unlock()

	if target == nil {
		return ErrNoDeleteTarget
	}

	if err := w.patients.Delete(ctx, target.ID); err != nil {
		return err
	}

	w.RefreshCount(ctx)
	if spec.HasFilters() {
		if _, err := w.Search(ctx, spec); err != nil {
			w.logger.Warn().Err(err).Msg("refresh after delete failed")
		}
	}
	return nil
}

// -- Search and projection --

// Search issues a filtered query and holds its results. Each call takes a
// monotonically increasing token; a response is discarded if a newer
// search was issued while it was in flight, so stale results can never
// overwrite fresher ones. An empty spec runs no query at all and resets
// the held set to the prompt state.
func (w *Workspace) Search(ctx context.Context, spec patient.FilterSpec) (patient.DisplayModel, error) {
	w.mu.Lock()
	w.searchSeq++
	seq := w.searchSeq
	w.lastSpec = spec
	w.mu.Unlock()

	rows, filtered, err := w.patients.Search(ctx, spec)

	w.mu.Lock()
	defer w.mu.Unlock()
	if seq < w.searchSeq {
		// Superseded while in flight; keep whatever the newer call applied.
		w.logger.Debug().Uint64("seq", seq).Uint64("latest", w.searchSeq).
			Msg("stale search response discarded")
		return patient.Project(w.held, w.totalCount, w.filtered), nil
	}
	if err != nil {
		return patient.Project(nil, w.totalCount, true), err
	}

	w.held = rows
	w.filtered = filtered
	return patient.Project(w.held, w.totalCount, w.filtered), nil
}

// Display projects the currently held results without querying.
func (w *Workspace) Display() patient.DisplayModel {
	w.mu.Lock()
	defer w.mu.Unlock()
	return patient.Project(w.held, w.totalCount, w.filtered)
}

// Held returns the currently held filtered records.
func (w *Workspace) Held() []*patient.Record {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]*patient.Record(nil), w.held...)
}

// RefreshCount re-runs the unfiltered aggregate count. Called at session
// start and after create/delete; update never calls it.
func (w *Workspace) RefreshCount(ctx context.Context) {
	n, err := w.patients.CountAll(ctx)
	if err != nil {
		w.logger.Warn().Err(err).Msg("total count refresh failed")
		return
	}
	w.mu.Lock()
	w.totalCount = n
	w.mu.Unlock()
}

// TotalCount returns the last known unfiltered count.
func (w *Workspace) TotalCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.totalCount
}

// ReconcileCatalog is invoked when a new catalog snapshot arrives. The
// active diagnosis filter survives the re-merge if the value still exists
// in the merged catalog, otherwise it resets to "no filter". The working
// selection is never disturbed: a snapshot can land mid-edit.
func (w *Workspace) ReconcileCatalog() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.lastSpec.Diagnosis == "" {
		return
	}
	if !w.catalog.Contains(w.lastSpec.Diagnosis) {
		w.logger.Info().Str("diagnosis", w.lastSpec.Diagnosis).
			Msg("active diagnosis filter no longer in catalog; cleared")
		w.lastSpec.Diagnosis = ""
	}
}

// LastSpec returns the most recent filter specification.
func (w *Workspace) LastSpec() patient.FilterSpec {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSpec
}
