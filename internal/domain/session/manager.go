package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/neoward/neoward/internal/domain/catalog"
	"github.com/neoward/neoward/internal/domain/patient"
)

// Manager hands out one workspace per authenticated user and keeps it
// across requests. Idle workspaces are swept after a TTL so a long-running
// server does not accumulate state for every caregiver that ever signed in.
type Manager struct {
	patients *patient.Service
	catalog  *catalog.Service
	logger   zerolog.Logger
	ttl      time.Duration

	mu         sync.Mutex
	workspaces map[string]*entry
}

type entry struct {
	ws      *Workspace
	touched time.Time
}

// NewManager creates a workspace manager. A non-positive ttl disables
// sweeping.
func NewManager(patients *patient.Service, cat *catalog.Service, ttl time.Duration, logger zerolog.Logger) *Manager {
	return &Manager{
		patients:   patients,
		catalog:    cat,
		logger:     logger.With().Str("component", "session-manager").Logger(),
		ttl:        ttl,
		workspaces: make(map[string]*entry),
	}
}

// Get returns the user's workspace, creating and priming it on first use.
// The initial total count is fetched once here; afterwards the workspace
// refreshes it only on cardinality changes.
func (m *Manager) Get(ctx context.Context, userID string) *Workspace {
	m.mu.Lock()
	e, ok := m.workspaces[userID]
	if !ok {
		e = &entry{ws: New(m.patients, m.catalog, m.logger)}
		m.workspaces[userID] = e
	}
	e.touched = time.Now()
	m.mu.Unlock()

	if !ok {
		e.ws.RefreshCount(ctx)
	}
	return e.ws
}

// Drop discards the user's workspace.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.workspaces, userID)
}

// ReconcileCatalog propagates a catalog snapshot to every live workspace.
func (m *Manager) ReconcileCatalog() {
	m.mu.Lock()
	live := make([]*Workspace, 0, len(m.workspaces))
	for _, e := range m.workspaces {
		live = append(live, e.ws)
	}
	m.mu.Unlock()

	for _, ws := range live {
		ws.ReconcileCatalog()
	}
}

// Sweep evicts workspaces idle longer than the TTL. Run it from a ticker
// goroutine owned by the server.
func (m *Manager) Sweep() {
	if m.ttl <= 0 {
		return
	}
	cutoff := time.Now().Add(-m.ttl)
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, e := range m.workspaces {
		if e.touched.Before(cutoff) {
			delete(m.workspaces, id)
			m.logger.Debug().Str("user", id).Msg("idle workspace evicted")
		}
	}
}
