package session

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/neoward/neoward/internal/domain/patient"
	"github.com/neoward/neoward/internal/platform/auth"
	"github.com/neoward/neoward/internal/storage"
)

// Handler exposes the workspace flows over REST. Every route resolves the
// caller's workspace from the authenticated user id, so two caregivers
// never share selection, edit or delete state.
type Handler struct {
	mgr *Manager
}

// NewHandler creates a new workspace handler.
func NewHandler(mgr *Manager) *Handler {
	return &Handler{mgr: mgr}
}

// RegisterRoutes registers workspace routes on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/workspace")
	g.GET("", h.Show)
	g.POST("/search", h.Search)
	g.GET("/export", h.Export)

	g.POST("/selection", h.SelectDiagnosis)
	g.DELETE("/selection/:name", h.DeselectDiagnosis)

	g.POST("/edit/:id", h.BeginEdit)
	g.DELETE("/edit", h.CancelEdit)
	g.POST("/submit", h.Submit)

	g.POST("/delete/:id", h.RequestDelete)
	g.POST("/delete/confirm", h.ConfirmDelete)
	g.POST("/delete/cancel", h.CancelDelete)
}

func (h *Handler) workspace(c echo.Context) *Workspace {
	ctx := c.Request().Context()
	return h.mgr.Get(ctx, auth.UserIDFromContext(ctx))
}

type stateResponse struct {
	Display   patient.DisplayModel `json:"display"`
	Selection []string             `json:"selection"`
	EditingID *uuid.UUID           `json:"editing_id,omitempty"`
	Pending   *DeleteTarget        `json:"pending_delete,omitempty"`
}

func (h *Handler) state(ws *Workspace) stateResponse {
	return stateResponse{
		Display:   ws.Display(),
		Selection: ws.Selection(),
		EditingID: ws.EditingID(),
		Pending:   ws.PendingDelete(),
	}
}

// Show handles GET /api/v1/workspace.
func (h *Handler) Show(c echo.Context) error {
	return c.JSON(http.StatusOK, h.state(h.workspace(c)))
}

// Search handles POST /api/v1/workspace/search. The response reflects the
// freshest applied results; a request overtaken by a newer one still gets
// a coherent view, never stale rows.
func (h *Handler) Search(c echo.Context) error {
	var spec patient.FilterSpec
	if err := c.Bind(&spec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid filter parameters")
	}

	ws := h.workspace(c)
	display, err := ws.Search(c.Request().Context(), spec)
	switch {
	case errors.Is(err, storage.ErrMissingIndex):
		return echo.NewHTTPError(http.StatusBadRequest,
			"this filter combination is not supported by the store indexes")
	case err != nil:
		return echo.NewHTTPError(http.StatusBadGateway, "search failed, try again")
	}
	return c.JSON(http.StatusOK, display)
}

// Export handles GET /api/v1/workspace/export: the currently held result
// set as a CSV attachment. An empty set is a warning, not a file.
func (h *Handler) Export(c echo.Context) error {
	table, err := patient.ToTable(h.workspace(c).Held())
	if errors.Is(err, patient.ErrNoRows) {
		return echo.NewHTTPError(http.StatusConflict, "no results to export")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "export failed")
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="pacientes_neo_filtrado.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(table))
}

type selectRequest struct {
	Name string `json:"name"`
}

// SelectDiagnosis handles POST /api/v1/workspace/selection.
func (h *Handler) SelectDiagnosis(c echo.Context) error {
	var req selectRequest
	if err := c.Bind(&req); err != nil || req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "diagnosis name required")
	}
	ws := h.workspace(c)
	ws.SelectDiagnosis(req.Name)
	return c.JSON(http.StatusOK, map[string][]string{"selection": ws.Selection()})
}

// DeselectDiagnosis handles DELETE /api/v1/workspace/selection/:name.
func (h *Handler) DeselectDiagnosis(c echo.Context) error {
	ws := h.workspace(c)
	ws.DeselectDiagnosis(c.Param("name"))
	return c.JSON(http.StatusOK, map[string][]string{"selection": ws.Selection()})
}

// BeginEdit handles POST /api/v1/workspace/edit/:id. The target must be in
// the held result set; otherwise the caregiver is told to search again.
func (h *Handler) BeginEdit(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	rec, err := h.workspace(c).BeginEdit(id)
	if errors.Is(err, ErrNotHeld) {
		return echo.NewHTTPError(http.StatusNotFound, "patient not in current results; run the search again")
	}
	return c.JSON(http.StatusOK, rec)
}

// CancelEdit handles DELETE /api/v1/workspace/edit.
func (h *Handler) CancelEdit(c echo.Context) error {
	h.workspace(c).CancelEdit()
	return c.NoContent(http.StatusNoContent)
}

type submitResponse struct {
	Updated bool                 `json:"updated"`
	Display patient.DisplayModel `json:"display"`
}

// Submit handles POST /api/v1/workspace/submit. Create or update is
// decided by the workspace state, never by the request body.
func (h *Handler) Submit(c echo.Context) error {
	var form patient.Form
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ws := h.workspace(c)
	ctx := c.Request().Context()
	intent, err := ws.Submit(ctx, &form, auth.UserIDFromContext(ctx))
	switch {
	case errors.Is(err, patient.ErrNameRequired):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusBadGateway, "could not save patient, try again")
	}
	return c.JSON(http.StatusOK, submitResponse{
		Updated: intent.Kind == IntentUpdate,
		Display: ws.Display(),
	})
}

type deleteRequest struct {
	Name string `json:"name"`
}

// RequestDelete handles POST /api/v1/workspace/delete/:id.
func (h *Handler) RequestDelete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	var req deleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	ws := h.workspace(c)
	ws.RequestDelete(id, req.Name)
	return c.JSON(http.StatusOK, map[string]*DeleteTarget{"pending_delete": ws.PendingDelete()})
}

// ConfirmDelete handles POST /api/v1/workspace/delete/confirm. The pending
// state clears on every outcome; only a store failure surfaces as an error.
func (h *Handler) ConfirmDelete(c echo.Context) error {
	ws := h.workspace(c)
	err := ws.ConfirmDelete(c.Request().Context())
	switch {
	case errors.Is(err, ErrNoDeleteTarget):
		return echo.NewHTTPError(http.StatusConflict, "no deletion pending")
	case err != nil:
		return echo.NewHTTPError(http.StatusBadGateway, "could not delete patient, try again")
	}
	return c.JSON(http.StatusOK, ws.Display())
}

// CancelDelete handles POST /api/v1/workspace/delete/cancel.
func (h *Handler) CancelDelete(c echo.Context) error {
	h.workspace(c).CancelDelete()
	return c.NoContent(http.StatusNoContent)
}
