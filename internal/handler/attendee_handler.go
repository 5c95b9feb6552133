package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promeet/roster-api/internal/dto"
	"github.com/promeet/roster-api/internal/models"
	appErrors "github.com/promeet/roster-api/pkg/errors"
	"github.com/promeet/roster-api/pkg/response"
)

type attendeeService interface {
	AddAttendee(ctx context.Context, patch models.AttendeePatch) ([]models.Attendee, error)
	DuplicateAttendee(ctx context.Context, id string) ([]models.Attendee, error)
	UpdateAttendee(ctx context.Context, id string, patch models.AttendeePatch) ([]models.Attendee, error)
	BatchUpdateAttendees(ctx context.Context, ids []string, patch models.AttendeePatch) ([]models.Attendee, error)
	DeleteAttendees(ctx context.Context, ids []string, confirm bool) ([]models.Attendee, error)
	AutofillDepartment(ctx context.Context, id, department string) ([]models.Attendee, error)
	DepartmentDefaults(ctx context.Context, department string) (models.AttendeePatch, error)
}

// AttendeeHandler exposes roster mutations on the current meeting. Every
// endpoint responds with the full updated attendee list.
type AttendeeHandler struct {
	service attendeeService
}

// NewAttendeeHandler builds a new handler.
func NewAttendeeHandler(service attendeeService) *AttendeeHandler {
	return &AttendeeHandler{service: service}
}

// Add godoc
// @Summary Add an attendee to the current meeting
// @Tags Attendees
// @Accept json
// @Produce json
// @Param payload body dto.AttendeeRequest false "Initial field values"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /meetings/current/attendees [post]
func (h *AttendeeHandler) Add(c *gin.Context) {
	var req dto.AttendeeRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attendee payload"))
			return
		}
	}

	attendees, err := h.service.AddAttendee(c.Request.Context(), req.Patch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, attendees)
}

// Duplicate godoc
// @Summary Duplicate an attendee row
// @Tags Attendees
// @Produce json
// @Param id path string true "Attendee id"
// @Success 201 {object} response.Envelope
// @Router /meetings/current/attendees/{id}/duplicate [post]
func (h *AttendeeHandler) Duplicate(c *gin.Context) {
	attendees, err := h.service.DuplicateAttendee(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, attendees)
}

// Update godoc
// @Summary Update fields on one attendee
// @Tags Attendees
// @Accept json
// @Produce json
// @Param id path string true "Attendee id"
// @Param payload body dto.AttendeeRequest true "Field overlay"
// @Success 200 {object} response.Envelope
// @Router /meetings/current/attendees/{id} [patch]
func (h *AttendeeHandler) Update(c *gin.Context) {
	var req dto.AttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attendee payload"))
		return
	}

	attendees, err := h.service.UpdateAttendee(c.Request.Context(), c.Param("id"), req.Patch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, attendees, nil)
}

// BatchUpdate godoc
// @Summary Apply one overlay to several attendees
// @Tags Attendees
// @Accept json
// @Produce json
// @Param payload body dto.BatchAttendeeRequest true "Ids and overlay"
// @Success 200 {object} response.Envelope
// @Router /meetings/current/attendees/batch [patch]
func (h *AttendeeHandler) BatchUpdate(c *gin.Context) {
	var req dto.BatchAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid batch payload"))
		return
	}

	attendees, err := h.service.BatchUpdateAttendees(c.Request.Context(), req.IDs, req.Patch.Patch())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, attendees, nil)
}

// Delete godoc
// @Summary Delete attendees by id
// @Tags Attendees
// @Accept json
// @Produce json
// @Param confirm query bool true "Must be true"
// @Param payload body dto.DeleteAttendeesRequest true "Ids to delete"
// @Success 200 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /meetings/current/attendees/delete [post]
func (h *AttendeeHandler) Delete(c *gin.Context) {
	var req dto.DeleteAttendeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid delete payload"))
		return
	}

	confirm := c.Query("confirm") == "true"
	attendees, err := h.service.DeleteAttendees(c.Request.Context(), req.IDs, confirm)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, attendees, nil)
}

// Autofill godoc
// @Summary Set a department and autofill its contact fields
// @Tags Attendees
// @Accept json
// @Produce json
// @Param id path string true "Attendee id"
// @Param payload body dto.AutofillRequest true "Department"
// @Success 200 {object} response.Envelope
// @Router /meetings/current/attendees/{id}/autofill [post]
func (h *AttendeeHandler) Autofill(c *gin.Context) {
	var req dto.AutofillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid autofill payload"))
		return
	}

	attendees, err := h.service.AutofillDepartment(c.Request.Context(), c.Param("id"), req.Department)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, attendees, nil)
}

// AutofillDraft godoc
// @Summary Derive contact fields for a department before the row exists
// @Tags Attendees
// @Accept json
// @Produce json
// @Param payload body dto.AutofillRequest true "Department"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /meetings/current/attendees/autofill [post]
func (h *AttendeeHandler) AutofillDraft(c *gin.Context) {
	var req dto.AutofillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid autofill payload"))
		return
	}

	patch, err := h.service.DepartmentDefaults(c.Request.Context(), req.Department)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, patch, nil)
}
