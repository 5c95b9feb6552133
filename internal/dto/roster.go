// Package dto defines the request payloads of the roster API. Responses are
// built from the service layer's own types.
package dto

import "github.com/promeet/roster-api/internal/models"

// UpdateMeetingRequest edits the current meeting's header fields.
type UpdateMeetingRequest struct {
	Title *string `json:"title"`
	Date  *string `json:"date"`
}

// AttendeeRequest carries a field overlay for add and update operations.
// Omitted fields leave the record untouched.
type AttendeeRequest struct {
	Department  *string                `json:"department"`
	JobTitle    *string                `json:"jobTitle"`
	Name        *string                `json:"name"`
	ContactName *string                `json:"contactName"`
	Phone       *string                `json:"phone"`
	IsNotified  *bool                  `json:"isNotified"`
	HasRsvp     *bool                  `json:"hasRsvp"`
	Status      *models.AttendeeStatus `json:"status"`
	LeaveReason *string                `json:"leaveReason"`
}

// Patch converts the request into the model overlay.
func (r AttendeeRequest) Patch() models.AttendeePatch {
	return models.AttendeePatch{
		Department:  r.Department,
		JobTitle:    r.JobTitle,
		Name:        r.Name,
		ContactName: r.ContactName,
		Phone:       r.Phone,
		IsNotified:  r.IsNotified,
		HasRsvp:     r.HasRsvp,
		Status:      r.Status,
		LeaveReason: r.LeaveReason,
	}
}

// BatchAttendeeRequest applies one overlay to several records.
type BatchAttendeeRequest struct {
	IDs   []string        `json:"ids" binding:"required,min=1"`
	Patch AttendeeRequest `json:"patch"`
}

// DeleteAttendeesRequest removes the listed records.
type DeleteAttendeesRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// AutofillRequest sets a department and pulls its known contact fields.
type AutofillRequest struct {
	Department string `json:"department"`
}

// FilterRequest updates the view's text and status filters.
type FilterRequest struct {
	Text   string              `json:"text"`
	Status models.FilterStatus `json:"status" binding:"required"`
}

// SortRequest toggles the sort order on a column.
type SortRequest struct {
	Field models.SortField `json:"field" binding:"required"`
}

// ExportRequest selects the rendered file format.
type ExportRequest struct {
	Format string `json:"format" binding:"required,oneof=csv pdf"`
}
