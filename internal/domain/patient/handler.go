package patient

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/neoward/neoward/internal/platform/auth"
	"github.com/neoward/neoward/internal/storage"
)

// Handler provides the stateless record endpoints. The stateful flows
// (edit sessions, delete confirmation, held result sets) live in the
// session package; this handler is for direct programmatic access.
type Handler struct {
	svc *Service
}

// NewHandler creates a new patient handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers patient routes on the API group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/patients")
	g.GET("", h.Search)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	g.GET("/count", h.Count)
}

type searchResponse struct {
	Filtered bool      `json:"filtered"`
	Rows     []*Record `json:"rows"`
	Message  string    `json:"message,omitempty"`
}

// Search handles GET /api/v1/patients with filter query parameters. With
// no populated filter it runs no query and says so, instead of dumping the
// whole roster.
func (h *Handler) Search(c echo.Context) error {
	var spec FilterSpec
	if err := c.Bind(&spec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid filter parameters")
	}

	rows, filtered, err := h.svc.Search(c.Request().Context(), spec)
	switch {
	case errors.Is(err, storage.ErrMissingIndex):
		return echo.NewHTTPError(http.StatusBadRequest,
			"this filter combination is not supported by the store indexes")
	case err != nil:
		return echo.NewHTTPError(http.StatusBadGateway, "search failed, try again")
	}
	if !filtered {
		return c.JSON(http.StatusOK, searchResponse{
			Rows:    []*Record{},
			Message: "no filters given; use the filters to search",
		})
	}
	if rows == nil {
		rows = []*Record{}
	}
	return c.JSON(http.StatusOK, searchResponse{Filtered: true, Rows: rows})
}

// Create handles POST /api/v1/patients.
func (h *Handler) Create(c echo.Context) error {
	var form Form
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	id, err := h.svc.Create(c.Request().Context(), &form, auth.UserIDFromContext(c.Request().Context()))
	switch {
	case errors.Is(err, ErrNameRequired):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusBadGateway, "could not save patient, try again")
	}
	return c.JSON(http.StatusCreated, map[string]string{"id": id.String()})
}

// Update handles PUT /api/v1/patients/:id. Whole-record replace, last
// write wins.
func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	var form Form
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	err = h.svc.Update(c.Request().Context(), id, &form, auth.UserIDFromContext(c.Request().Context()))
	switch {
	case errors.Is(err, ErrNameRequired):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusBadGateway, "could not save patient, try again")
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/patients/:id.
func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "could not delete patient, try again")
	}
	return c.NoContent(http.StatusNoContent)
}

// Count handles GET /api/v1/patients/count.
func (h *Handler) Count(c echo.Context) error {
	n, err := h.svc.CountAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "could not count patients")
	}
	return c.JSON(http.StatusOK, map[string]int{"total": n})
}
