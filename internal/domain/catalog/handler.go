package catalog

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/neoward/neoward/internal/platform/auth"
)

// Handler provides REST endpoints for the diagnosis catalog.
type Handler struct {
	svc *Service
}

// NewHandler creates a new catalog handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers catalog routes on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/diagnoses")
	g.GET("", h.List)
	g.POST("", h.Add)
}

// List handles GET /api/v1/diagnoses?q=...
// Without q it returns the full merged catalog; with q it filters by
// case-insensitive substring, which is the picker's search box behavior.
func (h *Handler) List(c echo.Context) error {
	snap := h.svc.Snapshot()
	if q := strings.ToLower(c.QueryParam("q")); q != "" {
		filtered := snap.Diagnoses[:0]
		for _, d := range snap.Diagnoses {
			if strings.Contains(strings.ToLower(d), q) {
				filtered = append(filtered, d)
			}
		}
		snap.Diagnoses = filtered
	}
	return c.JSON(http.StatusOK, snap)
}

type addRequest struct {
	Name string `json:"name"`
}

// Add handles POST /api/v1/diagnoses.
func (h *Handler) Add(c echo.Context) error {
	var req addRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	d, err := h.svc.Add(c.Request().Context(), req.Name, auth.UserIDFromContext(c.Request().Context()))
	switch {
	case errors.Is(err, ErrEmptyName):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDuplicate):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusBadGateway, "could not save diagnosis, try again")
	}
	return c.JSON(http.StatusCreated, d)
}
