package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/promeet/roster-api/internal/models"
	"github.com/promeet/roster-api/internal/roster"
	appErrors "github.com/promeet/roster-api/pkg/errors"
)

type snapshotRepository interface {
	Load(ctx context.Context) ([]models.Meeting, error)
	Save(ctx context.Context, meetings []models.Meeting) error
}

type meetingMetrics interface {
	RecordRosterMutation(op string)
	ObserveSnapshotSave(duration time.Duration, err error)
}

// MeetingService owns the in-memory meeting collection and the current
// selection, routing every attendee operation to the selected meeting. Each
// mutation replaces the affected meeting's attendee slice with a fresh
// snapshot and persists the whole collection afterwards; a failed save is
// logged and the in-memory state stays authoritative.
type MeetingService struct {
	mu       sync.RWMutex
	meetings []models.Meeting
	current  string

	repo     snapshotRepository
	metrics  meetingMetrics
	logger   *zap.Logger
	onSelect []func()
	onBatch  []func()
}

// NewMeetingService constructs a MeetingService.
func NewMeetingService(repo snapshotRepository, metrics meetingMetrics, logger *zap.Logger) *MeetingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeetingService{repo: repo, metrics: metrics, logger: logger}
}

// OnSelectionChange registers a callback fired whenever the current meeting
// changes; the view layer uses it to drop its ephemeral selection.
func (s *MeetingService) OnSelectionChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSelect = append(s.onSelect, fn)
}

// OnBatchMutation registers a callback fired after a batch update or batch
// delete completes; the view layer uses it to empty the row selection the
// batch consumed.
func (s *MeetingService) OnBatchMutation(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onBatch = append(s.onBatch, fn)
}

// Load hydrates the collection from the snapshot store. The newest meeting
// becomes current so the API is usable right after startup.
func (s *MeetingService) Load(ctx context.Context) error {
	meetings, err := s.repo.Load(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load meeting snapshot")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.meetings = meetings
	s.current = ""
	if len(meetings) > 0 {
		s.current = meetings[0].ID
	}
	s.logger.Info("meeting snapshot loaded", zap.Int("meetings", len(meetings)))
	return nil
}

// List returns a copy of the collection, newest first.
func (s *MeetingService) List(ctx context.Context) []models.Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Meeting, len(s.meetings))
	copy(out, s.meetings)
	return out
}

// Create prepends a blank meeting with the default localized title and
// today's date, selects it and persists the collection.
func (s *MeetingService) Create(ctx context.Context) models.Meeting {
	now := time.Now()
	meeting := models.Meeting{
		ID:        uuid.NewString(),
		Title:     models.DefaultMeetingTitle + " " + now.Format("2006/1/2"),
		Date:      now.Format("2006-01-02"),
		Attendees: []models.Attendee{},
		CreatedAt: now.UnixMilli(),
	}

	s.mu.Lock()
	next := make([]models.Meeting, 0, len(s.meetings)+1)
	next = append(next, meeting)
	next = append(next, s.meetings...)
	s.meetings = next
	s.current = meeting.ID
	callbacks := append([]func(){}, s.onSelect...)
	s.mu.Unlock()

	s.notify(callbacks)
	s.recordMutation("meeting_create")
	s.persist(ctx)
	return meeting
}

// Delete removes a meeting. The caller must set confirm: deleting a whole
// meeting record is irreversible. Deleting the current meeting leaves no
// selection.
func (s *MeetingService) Delete(ctx context.Context, id string, confirm bool) error {
	if !confirm {
		return appErrors.Clone(appErrors.ErrConfirmRequired, "deleting a meeting requires confirmation")
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return appErrors.Clone(appErrors.ErrNotFound, "meeting not found")
	}
	s.meetings = append(s.meetings[:idx], s.meetings[idx+1:]...)
	var callbacks []func()
	if s.current == id {
		s.current = ""
		callbacks = append([]func(){}, s.onSelect...)
	}
	s.mu.Unlock()

	s.notify(callbacks)
	s.recordMutation("meeting_delete")
	s.persist(ctx)
	return nil
}

// UpdateDetails overlays title/date edits onto the current meeting.
func (s *MeetingService) UpdateDetails(ctx context.Context, patch models.MeetingPatch) (models.Meeting, error) {
	s.mu.Lock()
	idx := s.currentIndex()
	if idx < 0 {
		s.mu.Unlock()
		return models.Meeting{}, appErrors.ErrNoCurrentMeeting
	}
	s.meetings[idx] = patch.Apply(s.meetings[idx])
	updated := s.meetings[idx]
	s.mu.Unlock()

	s.recordMutation("meeting_update")
	s.persist(ctx)
	return updated, nil
}

// Select makes the given meeting current.
func (s *MeetingService) Select(ctx context.Context, id string) (models.Meeting, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Meeting{}, appErrors.Clone(appErrors.ErrNotFound, "meeting not found")
	}
	changed := s.current != id
	s.current = id
	selected := s.meetings[idx]
	var callbacks []func()
	if changed {
		callbacks = append([]func(){}, s.onSelect...)
	}
	s.mu.Unlock()

	s.notify(callbacks)
	return selected, nil
}

// Current returns the selected meeting.
func (s *MeetingService) Current(ctx context.Context) (models.Meeting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.currentIndex()
	if idx < 0 {
		return models.Meeting{}, appErrors.ErrNoCurrentMeeting
	}
	return s.meetings[idx], nil
}

// CurrentAttendees returns the selected meeting's attendee snapshot.
func (s *MeetingService) CurrentAttendees(ctx context.Context) ([]models.Attendee, error) {
	meeting, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return meeting.Attendees, nil
}

// AddAttendee prepends a new record built from the overlay. A nil overlay
// yields a blank row, a quick-add overlay keeps the typed draft values.
func (s *MeetingService) AddAttendee(ctx context.Context, patch models.AttendeePatch) ([]models.Attendee, error) {
	return s.mutateAttendees(ctx, "attendee_add", func(seq []models.Attendee) []models.Attendee {
		return roster.Add(seq, patch)
	})
}

// DuplicateAttendee inserts a cleared copy right after its source row.
func (s *MeetingService) DuplicateAttendee(ctx context.Context, id string) ([]models.Attendee, error) {
	return s.mutateAttendees(ctx, "attendee_duplicate", func(seq []models.Attendee) []models.Attendee {
		return roster.Duplicate(seq, id)
	})
}

// UpdateAttendee overlays the patch onto the record with the given id.
func (s *MeetingService) UpdateAttendee(ctx context.Context, id string, patch models.AttendeePatch) ([]models.Attendee, error) {
	return s.mutateAttendees(ctx, "attendee_update", func(seq []models.Attendee) []models.Attendee {
		return roster.Update(seq, id, patch)
	})
}

// BatchUpdateAttendees applies the same overlay to every listed id. The row
// selection that drove the batch is consumed: registered batch callbacks run
// after the mutation.
func (s *MeetingService) BatchUpdateAttendees(ctx context.Context, ids []string, patch models.AttendeePatch) ([]models.Attendee, error) {
	attendees, err := s.mutateAttendees(ctx, "attendee_batch_update", func(seq []models.Attendee) []models.Attendee {
		return roster.BatchUpdate(seq, ids, patch)
	})
	if err != nil {
		return nil, err
	}
	s.notify(s.batchCallbacks())
	return attendees, nil
}

// DeleteAttendees removes every listed id from the current roster. The
// caller must set confirm, same boundary as deleting a meeting. Batch
// callbacks run after the mutation.
func (s *MeetingService) DeleteAttendees(ctx context.Context, ids []string, confirm bool) ([]models.Attendee, error) {
	if !confirm {
		return nil, appErrors.Clone(appErrors.ErrConfirmRequired, "deleting attendees requires confirmation")
	}
	attendees, err := s.mutateAttendees(ctx, "attendee_delete", func(seq []models.Attendee) []models.Attendee {
		return roster.Delete(seq, ids)
	})
	if err != nil {
		return nil, err
	}
	s.notify(s.batchCallbacks())
	return attendees, nil
}

// AutofillDepartment sets the department on a record and copies the contact
// fields from the first other attendee of the same department.
func (s *MeetingService) AutofillDepartment(ctx context.Context, id, department string) ([]models.Attendee, error) {
	return s.mutateAttendees(ctx, "attendee_autofill", func(seq []models.Attendee) []models.Attendee {
		patch := roster.AutofillFromDepartment(seq, department, id)
		return roster.Update(seq, id, patch)
	})
}

// DepartmentDefaults derives the contact overlay for a department from the
// current roster without touching any record. The quick-add draft uses it
// before the row is committed, so no id is excluded from the lookup.
func (s *MeetingService) DepartmentDefaults(ctx context.Context, department string) (models.AttendeePatch, error) {
	attendees, err := s.CurrentAttendees(ctx)
	if err != nil {
		return models.AttendeePatch{}, err
	}
	return roster.AutofillFromDepartment(attendees, department, ""), nil
}

// AppendAttendees adds imported records to the end of the current roster,
// assigning fresh ids through the roster layer. All-or-nothing: the caller
// only gets here with a fully decoded batch.
func (s *MeetingService) AppendAttendees(ctx context.Context, patches []models.AttendeePatch) ([]models.Attendee, error) {
	return s.mutateAttendees(ctx, "attendee_import", func(seq []models.Attendee) []models.Attendee {
		next := make([]models.Attendee, len(seq), len(seq)+len(patches))
		copy(next, seq)
		for _, patch := range patches {
			appended := roster.Add(nil, patch)
			next = append(next, appended[0])
		}
		return next
	})
}

func (s *MeetingService) mutateAttendees(ctx context.Context, op string, apply func([]models.Attendee) []models.Attendee) ([]models.Attendee, error) {
	s.mu.Lock()
	idx := s.currentIndex()
	if idx < 0 {
		s.mu.Unlock()
		return nil, appErrors.ErrNoCurrentMeeting
	}
	s.meetings[idx].Attendees = apply(s.meetings[idx].Attendees)
	result := s.meetings[idx].Attendees
	s.mu.Unlock()

	s.recordMutation(op)
	s.persist(ctx)
	return result, nil
}

// persist writes the whole collection through the snapshot store. Failures
// are logged, not surfaced: the in-memory state already moved on.
func (s *MeetingService) persist(ctx context.Context) {
	s.mu.RLock()
	snapshot := make([]models.Meeting, len(s.meetings))
	copy(snapshot, s.meetings)
	s.mu.RUnlock()

	start := time.Now()
	err := s.repo.Save(ctx, snapshot)
	if s.metrics != nil {
		s.metrics.ObserveSnapshotSave(time.Since(start), err)
	}
	if err != nil {
		s.logger.Warn("failed to persist meeting snapshot", zap.Error(err))
	}
}

func (s *MeetingService) recordMutation(op string) {
	if s.metrics != nil {
		s.metrics.RecordRosterMutation(op)
	}
}

func (s *MeetingService) batchCallbacks() []func() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]func(){}, s.onBatch...)
}

func (s *MeetingService) notify(callbacks []func()) {
	for _, fn := range callbacks {
		fn()
	}
}

// indexOf and currentIndex require the caller to hold the lock.
func (s *MeetingService) indexOf(id string) int {
	for i := range s.meetings {
		if s.meetings[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *MeetingService) currentIndex() int {
	if s.current == "" {
		return -1
	}
	return s.indexOf(s.current)
}
