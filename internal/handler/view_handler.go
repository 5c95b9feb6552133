package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promeet/roster-api/internal/dto"
	"github.com/promeet/roster-api/internal/models"
	"github.com/promeet/roster-api/internal/service"
	appErrors "github.com/promeet/roster-api/pkg/errors"
	"github.com/promeet/roster-api/pkg/response"
)

type viewService interface {
	View(ctx context.Context) (service.RosterView, error)
	SetFilter(ctx context.Context, text string, status models.FilterStatus) (service.RosterView, error)
	ToggleSort(ctx context.Context, field models.SortField) (service.RosterView, error)
	Vocabulary(ctx context.Context, field models.SortField) ([]string, error)
	Summary(ctx context.Context) (models.RosterSummary, error)
	ToggleSelect(ctx context.Context, id string) (service.RosterView, error)
	ToggleSelectAll(ctx context.Context) (service.RosterView, error)
	ClearSelection()
}

// ViewHandler exposes the filtered, sorted roster projection and the row
// selection of the current meeting.
type ViewHandler struct {
	service viewService
}

// NewViewHandler builds a new handler.
func NewViewHandler(service viewService) *ViewHandler {
	return &ViewHandler{service: service}
}

// Get godoc
// @Summary Get the visible roster projection
// @Tags View
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /meetings/current/view [get]
func (h *ViewHandler) Get(c *gin.Context) {
	view, err := h.service.View(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Filter godoc
// @Summary Replace the text and status filters
// @Tags View
// @Accept json
// @Produce json
// @Param payload body dto.FilterRequest true "Filter state"
// @Success 200 {object} response.Envelope
// @Router /meetings/current/view/filter [put]
func (h *ViewHandler) Filter(c *gin.Context) {
	var req dto.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid filter payload"))
		return
	}

	view, err := h.service.SetFilter(c.Request.Context(), req.Text, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Sort godoc
// @Summary Toggle the sort order on a column
// @Tags View
// @Accept json
// @Produce json
// @Param payload body dto.SortRequest true "Sort column"
// @Success 200 {object} response.Envelope
// @Router /meetings/current/view/sort [post]
func (h *ViewHandler) Sort(c *gin.Context) {
	var req dto.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid sort payload"))
		return
	}

	view, err := h.service.ToggleSort(c.Request.Context(), req.Field)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Vocabulary godoc
// @Summary List distinct values of a column for autocomplete
// @Tags View
// @Produce json
// @Param field path string true "Column name"
// @Success 200 {object} response.Envelope
// @Router /meetings/current/view/vocabulary/{field} [get]
func (h *ViewHandler) Vocabulary(c *gin.Context) {
	field := models.SortField(c.Param("field"))
	if !field.Valid() {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown vocabulary field"))
		return
	}

	values, err := h.service.Vocabulary(c.Request.Context(), field)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, values, nil)
}

// Summary godoc
// @Summary Count the unfiltered roster by status
// @Tags View
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /meetings/current/view/summary [get]
func (h *ViewHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary, nil)
}

// ToggleSelect godoc
// @Summary Toggle one row in the selection
// @Tags View
// @Produce json
// @Param id path string true "Attendee id"
// @Success 200 {object} response.Envelope
// @Router /meetings/current/view/selection/{id} [post]
func (h *ViewHandler) ToggleSelect(c *gin.Context) {
	view, err := h.service.ToggleSelect(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// ToggleSelectAll godoc
// @Summary Select all visible rows, or clear a full selection
// @Tags View
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /meetings/current/view/selection [post]
func (h *ViewHandler) ToggleSelectAll(c *gin.Context) {
	view, err := h.service.ToggleSelectAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// ClearSelection godoc
// @Summary Clear the selection
// @Tags View
// @Produce json
// @Success 204
// @Router /meetings/current/view/selection [delete]
func (h *ViewHandler) ClearSelection(c *gin.Context) {
	h.service.ClearSelection()
	response.NoContent(c)
}
