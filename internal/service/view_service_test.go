package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promeet/roster-api/internal/models"
	appErrors "github.com/promeet/roster-api/pkg/errors"
)

type attendeeSourceStub struct {
	attendees []models.Attendee
	err       error
}

func (s *attendeeSourceStub) CurrentAttendees(ctx context.Context) ([]models.Attendee, error) {
	return s.attendees, s.err
}

func viewFixture() []models.Attendee {
	return []models.Attendee{
		{ID: "a-1", Department: "销售部", Name: "李雷", Status: models.StatusPresent, IsNotified: true},
		{ID: "a-2", Department: "市场部", Name: "韩梅梅", Status: models.StatusLeave},
		{ID: "a-3", Department: "销售部", Name: "王强", Status: models.StatusPending},
	}
}

func TestViewServiceDefaultView(t *testing.T) {
	svc := NewViewService(&attendeeSourceStub{attendees: viewFixture()}, nil)

	view, err := svc.View(context.Background())
	require.NoError(t, err)
	require.Len(t, view.Attendees, 3)

	// default sort is by department ascending, ties keep insertion order
	assert.Equal(t, "a-2", view.Attendees[0].ID)
	assert.Equal(t, "a-1", view.Attendees[1].ID)
	assert.Equal(t, "a-3", view.Attendees[2].ID)
	assert.Equal(t, models.FilterAll, view.Status)
	assert.Equal(t, models.RosterSummary{Total: 3, Present: 1, Leave: 1, Pending: 1}, view.Summary)
}

func TestViewServiceFilterNarrowsButSummaryDoesNot(t *testing.T) {
	svc := NewViewService(&attendeeSourceStub{attendees: viewFixture()}, nil)

	view, err := svc.SetFilter(context.Background(), "", models.FilterPresent)
	require.NoError(t, err)
	require.Len(t, view.Attendees, 1)
	assert.Equal(t, "a-1", view.Attendees[0].ID)
	assert.Equal(t, 3, view.Summary.Total)
}

func TestViewServiceRejectsUnknownFilter(t *testing.T) {
	svc := NewViewService(&attendeeSourceStub{attendees: viewFixture()}, nil)

	_, err := svc.SetFilter(context.Background(), "", models.FilterStatus("BOGUS"))
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestViewServiceToggleSortFlipsDirection(t *testing.T) {
	svc := NewViewService(&attendeeSourceStub{attendees: viewFixture()}, nil)

	view, err := svc.ToggleSort(context.Background(), models.SortByName)
	require.NoError(t, err)
	assert.Equal(t, models.SortByName, view.SortField)
	assert.Equal(t, models.SortAsc, view.SortDir)

	view, err = svc.ToggleSort(context.Background(), models.SortByName)
	require.NoError(t, err)
	assert.Equal(t, models.SortDesc, view.SortDir)

	view, err = svc.ToggleSort(context.Background(), models.SortByStatus)
	require.NoError(t, err)
	assert.Equal(t, models.SortByStatus, view.SortField)
	assert.Equal(t, models.SortAsc, view.SortDir)
}

func TestViewServiceSelectionToggles(t *testing.T) {
	svc := NewViewService(&attendeeSourceStub{attendees: viewFixture()}, nil)

	view, err := svc.ToggleSelect(context.Background(), "a-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a-1"}, view.Selected)

	view, err = svc.ToggleSelect(context.Background(), "a-1")
	require.NoError(t, err)
	assert.Empty(t, view.Selected)
}

func TestViewServiceToggleSelectAllCoversVisibleRows(t *testing.T) {
	svc := NewViewService(&attendeeSourceStub{attendees: viewFixture()}, nil)

	_, err := svc.SetFilter(context.Background(), "", models.FilterPending)
	require.NoError(t, err)

	view, err := svc.ToggleSelectAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a-3"}, view.Selected)

	// a second toggle over a fully selected view clears it
	view, err = svc.ToggleSelectAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, view.Selected)
}

func TestViewServiceResetOnMeetingSwitch(t *testing.T) {
	repo := &snapshotRepoStub{loaded: []models.Meeting{
		{ID: "m-1", Attendees: viewFixture()},
		{ID: "m-2"},
	}}
	meetings := NewMeetingService(repo, nil, nil)
	require.NoError(t, meetings.Load(context.Background()))

	svc := NewViewService(meetings, nil)

	_, err := svc.SetFilter(context.Background(), "李", models.FilterPresent)
	require.NoError(t, err)
	_, err = svc.ToggleSelect(context.Background(), "a-1")
	require.NoError(t, err)

	_, err = meetings.Select(context.Background(), "m-2")
	require.NoError(t, err)

	_, err = svc.View(context.Background())
	require.NoError(t, err)
	assert.Empty(t, svc.SelectedIDs())

	_, err = meetings.Select(context.Background(), "m-1")
	require.NoError(t, err)

	view, err := svc.View(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", view.FilterText)
	assert.Equal(t, models.FilterAll, view.Status)
	assert.Len(t, view.Attendees, 3)
}

func TestViewServiceBatchActionsEmptySelection(t *testing.T) {
	repo := &snapshotRepoStub{loaded: []models.Meeting{
		{ID: "m-1", Attendees: viewFixture()},
	}}
	meetings := NewMeetingService(repo, nil, nil)
	require.NoError(t, meetings.Load(context.Background()))

	svc := NewViewService(meetings, nil)

	view, err := svc.ToggleSelectAll(context.Background())
	require.NoError(t, err)
	require.Len(t, view.Selected, 3)

	_, err = meetings.BatchUpdateAttendees(context.Background(), view.Selected, models.AttendeePatch{IsNotified: boolPtr(true)})
	require.NoError(t, err)
	assert.Empty(t, svc.SelectedIDs())

	view, err = svc.ToggleSelect(context.Background(), "a-1")
	require.NoError(t, err)
	require.Equal(t, []string{"a-1"}, view.Selected)

	_, err = meetings.DeleteAttendees(context.Background(), view.Selected, true)
	require.NoError(t, err)
	assert.Empty(t, svc.SelectedIDs())

	// filters survive a batch action, only the selection is consumed
	view, err = svc.View(context.Background())
	require.NoError(t, err)
	assert.Len(t, view.Attendees, 2)
}

func TestViewServiceVocabulary(t *testing.T) {
	svc := NewViewService(&attendeeSourceStub{attendees: viewFixture()}, nil)

	departments, err := svc.Vocabulary(context.Background(), models.SortByDepartment)
	require.NoError(t, err)
	assert.Equal(t, []string{"市场部", "销售部"}, departments)
}

func TestViewServicePropagatesSourceError(t *testing.T) {
	svc := NewViewService(&attendeeSourceStub{err: appErrors.ErrNoCurrentMeeting}, nil)

	_, err := svc.View(context.Background())
	assert.Equal(t, appErrors.ErrNoCurrentMeeting.Code, appErrors.FromError(err).Code)
}
