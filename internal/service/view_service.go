package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/promeet/roster-api/internal/models"
	"github.com/promeet/roster-api/internal/roster"
	appErrors "github.com/promeet/roster-api/pkg/errors"
)

type attendeeSource interface {
	CurrentAttendees(ctx context.Context) ([]models.Attendee, error)
}

// RosterView is the projection served to the table: the visible rows plus
// the state that produced them and the summary over the unfiltered list.
type RosterView struct {
	Attendees  []models.Attendee    `json:"attendees"`
	FilterText string               `json:"filterText"`
	Status     models.FilterStatus  `json:"statusFilter"`
	SortField  models.SortField     `json:"sortField"`
	SortDir    models.SortDirection `json:"sortDirection"`
	Selected   []string             `json:"selectedIds"`
	Summary    models.RosterSummary `json:"summary"`
}

// ViewService keeps the ephemeral presentation state for the current
// meeting: text and status filters, sort order and the row selection. The
// state belongs to the selection, not the data; it resets when the current
// meeting changes.
type ViewService struct {
	mu         sync.Mutex
	filterText string
	status     models.FilterStatus
	sortField  models.SortField
	sortDir    models.SortDirection
	selection  roster.Selection

	source attendeeSource
	logger *zap.Logger
}

// NewViewService constructs a ViewService and hooks the reset into the
// meeting selection when the source supports it.
func NewViewService(source attendeeSource, logger *zap.Logger) *ViewService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ViewService{
		status:    models.FilterAll,
		sortField: models.SortByDepartment,
		sortDir:   models.SortAsc,
		selection: roster.NewSelection(),
		source:    source,
		logger:    logger,
	}
	if ms, ok := source.(*MeetingService); ok {
		ms.OnSelectionChange(s.Reset)
		ms.OnBatchMutation(s.ClearSelection)
	}
	return s
}

// Reset drops filters, sort order and selection back to their defaults.
func (s *ViewService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filterText = ""
	s.status = models.FilterAll
	s.sortField = models.SortByDepartment
	s.sortDir = models.SortAsc
	s.selection.Clear()
}

// SetFilter updates the text and status filters.
func (s *ViewService) SetFilter(ctx context.Context, text string, status models.FilterStatus) (RosterView, error) {
	if !status.Valid() {
		return RosterView{}, appErrors.Clone(appErrors.ErrValidation, "unknown status filter")
	}
	s.mu.Lock()
	s.filterText = text
	s.status = status
	s.mu.Unlock()
	return s.View(ctx)
}

// ToggleSort resolves a header click: same field flips direction, a new
// field starts ascending.
func (s *ViewService) ToggleSort(ctx context.Context, field models.SortField) (RosterView, error) {
	if !field.Valid() {
		return RosterView{}, appErrors.Clone(appErrors.ErrValidation, "unknown sort field")
	}
	s.mu.Lock()
	s.sortField, s.sortDir = roster.ToggleSort(s.sortField, s.sortDir, field)
	s.mu.Unlock()
	return s.View(ctx)
}

// View projects the current meeting's roster through the active filters and
// sort order.
func (s *ViewService) View(ctx context.Context) (RosterView, error) {
	attendees, err := s.source.CurrentAttendees(ctx)
	if err != nil {
		return RosterView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	visible := roster.Filter(attendees, s.filterText, s.status)
	visible = roster.Sort(visible, s.sortField, s.sortDir)
	return RosterView{
		Attendees:  visible,
		FilterText: s.filterText,
		Status:     s.status,
		SortField:  s.sortField,
		SortDir:    s.sortDir,
		Selected:   s.selection.IDs(),
		Summary:    roster.Summarize(attendees),
	}, nil
}

// Vocabulary returns autocomplete suggestions for the given field over the
// unfiltered roster.
func (s *ViewService) Vocabulary(ctx context.Context, field models.SortField) ([]string, error) {
	attendees, err := s.source.CurrentAttendees(ctx)
	if err != nil {
		return nil, err
	}
	return roster.Vocabulary(attendees, field), nil
}

// Summary counts the unfiltered roster by status.
func (s *ViewService) Summary(ctx context.Context) (models.RosterSummary, error) {
	attendees, err := s.source.CurrentAttendees(ctx)
	if err != nil {
		return models.RosterSummary{}, err
	}
	return roster.Summarize(attendees), nil
}

// ToggleSelect flips selection membership for one row.
func (s *ViewService) ToggleSelect(ctx context.Context, id string) (RosterView, error) {
	s.mu.Lock()
	s.selection.ToggleOne(id)
	s.mu.Unlock()
	return s.View(ctx)
}

// ToggleSelectAll selects exactly the visible rows, or clears the selection
// when they are all already selected.
func (s *ViewService) ToggleSelectAll(ctx context.Context) (RosterView, error) {
	attendees, err := s.source.CurrentAttendees(ctx)
	if err != nil {
		return RosterView{}, err
	}

	s.mu.Lock()
	visible := roster.Filter(attendees, s.filterText, s.status)
	s.selection.ToggleAll(visible)
	s.mu.Unlock()
	return s.View(ctx)
}

// ClearSelection empties the selection, typically after a batch action.
func (s *ViewService) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Clear()
}

// SelectedIDs returns the ids marked for the next batch action.
func (s *ViewService) SelectedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.IDs()
}
