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

type meetingService interface {
	List(ctx context.Context) []models.Meeting
	Create(ctx context.Context) models.Meeting
	Delete(ctx context.Context, id string, confirm bool) error
	UpdateDetails(ctx context.Context, patch models.MeetingPatch) (models.Meeting, error)
	Select(ctx context.Context, id string) (models.Meeting, error)
	Current(ctx context.Context) (models.Meeting, error)
}

// MeetingHandler exposes the meeting collection and current-selection endpoints.
type MeetingHandler struct {
	service meetingService
}

// NewMeetingHandler builds a new handler.
func NewMeetingHandler(service meetingService) *MeetingHandler {
	return &MeetingHandler{service: service}
}

// List godoc
// @Summary List meetings, newest first
// @Tags Meetings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /meetings [get]
func (h *MeetingHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.List(c.Request.Context()), nil)
}

// Create godoc
// @Summary Create a blank meeting and select it
// @Tags Meetings
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /meetings [post]
func (h *MeetingHandler) Create(c *gin.Context) {
	meeting := h.service.Create(c.Request.Context())
	response.Created(c, meeting)
}

// Delete godoc
// @Summary Delete a meeting record
// @Tags Meetings
// @Produce json
// @Param id path string true "Meeting id"
// @Param confirm query bool true "Deletion confirmation"
// @Success 204
// @Failure 412 {object} response.Envelope
// @Router /meetings/{id} [delete]
func (h *MeetingHandler) Delete(c *gin.Context) {
	confirm := c.Query("confirm") == "true"
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), confirm); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Select godoc
// @Summary Make a meeting current
// @Tags Meetings
// @Produce json
// @Param id path string true "Meeting id"
// @Success 200 {object} response.Envelope
// @Router /meetings/{id}/select [post]
func (h *MeetingHandler) Select(c *gin.Context) {
	meeting, err := h.service.Select(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, meeting, nil)
}

// Current godoc
// @Summary Get the current meeting
// @Tags Meetings
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /meetings/current [get]
func (h *MeetingHandler) Current(c *gin.Context) {
	meeting, err := h.service.Current(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, meeting, nil)
}

// Update godoc
// @Summary Edit the current meeting's title or date
// @Tags Meetings
// @Accept json
// @Produce json
// @Param payload body dto.UpdateMeetingRequest true "Meeting details"
// @Success 200 {object} response.Envelope
// @Router /meetings/current [patch]
func (h *MeetingHandler) Update(c *gin.Context) {
	var req dto.UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid meeting payload"))
		return
	}

	meeting, err := h.service.UpdateDetails(c.Request.Context(), models.MeetingPatch{Title: req.Title, Date: req.Date})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, meeting, nil)
}
