package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promeet/roster-api/internal/models"
	appErrors "github.com/promeet/roster-api/pkg/errors"
)

type snapshotRepoStub struct {
	loaded    []models.Meeting
	loadErr   error
	saveErr   error
	saved     [][]models.Meeting
	saveCalls int
}

func (s *snapshotRepoStub) Load(ctx context.Context) ([]models.Meeting, error) {
	return s.loaded, s.loadErr
}

func (s *snapshotRepoStub) Save(ctx context.Context, meetings []models.Meeting) error {
	s.saveCalls++
	s.saved = append(s.saved, meetings)
	return s.saveErr
}

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

func seededMeetingService(t *testing.T, meetings []models.Meeting) (*MeetingService, *snapshotRepoStub) {
	t.Helper()
	repo := &snapshotRepoStub{loaded: meetings}
	svc := NewMeetingService(repo, nil, nil)
	require.NoError(t, svc.Load(context.Background()))
	return svc, repo
}

func TestMeetingServiceLoadSelectsNewest(t *testing.T) {
	svc, _ := seededMeetingService(t, []models.Meeting{
		{ID: "m-2", Title: "second"},
		{ID: "m-1", Title: "first"},
	})

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "m-2", current.ID)
}

func TestMeetingServiceLoadEmpty(t *testing.T) {
	svc, _ := seededMeetingService(t, nil)

	_, err := svc.Current(context.Background())
	assert.Equal(t, appErrors.ErrNoCurrentMeeting.Code, appErrors.FromError(err).Code)
}

func TestMeetingServiceCreatePrependsAndSelects(t *testing.T) {
	svc, repo := seededMeetingService(t, []models.Meeting{{ID: "m-1"}})

	created := svc.Create(context.Background())

	assert.NotEmpty(t, created.ID)
	assert.Contains(t, created.Title, models.DefaultMeetingTitle)
	assert.NotZero(t, created.CreatedAt)

	list := svc.List(context.Background())
	require.Len(t, list, 2)
	assert.Equal(t, created.ID, list[0].ID)

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, created.ID, current.ID)
	assert.Equal(t, 1, repo.saveCalls)
}

func TestMeetingServiceDeleteRequiresConfirmation(t *testing.T) {
	svc, repo := seededMeetingService(t, []models.Meeting{{ID: "m-1"}})

	err := svc.Delete(context.Background(), "m-1", false)
	assert.Equal(t, appErrors.ErrConfirmRequired.Code, appErrors.FromError(err).Code)
	assert.Len(t, svc.List(context.Background()), 1)
	assert.Zero(t, repo.saveCalls)
}

func TestMeetingServiceDeleteCurrentClearsSelection(t *testing.T) {
	svc, _ := seededMeetingService(t, []models.Meeting{{ID: "m-1"}, {ID: "m-2"}})

	var resets int
	svc.OnSelectionChange(func() { resets++ })

	require.NoError(t, svc.Delete(context.Background(), "m-1", true))

	_, err := svc.Current(context.Background())
	assert.Equal(t, appErrors.ErrNoCurrentMeeting.Code, appErrors.FromError(err).Code)
	assert.Equal(t, 1, resets)
	assert.Len(t, svc.List(context.Background()), 1)
}

func TestMeetingServiceDeleteOtherKeepsSelection(t *testing.T) {
	svc, _ := seededMeetingService(t, []models.Meeting{{ID: "m-1"}, {ID: "m-2"}})

	var resets int
	svc.OnSelectionChange(func() { resets++ })

	require.NoError(t, svc.Delete(context.Background(), "m-2", true))

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "m-1", current.ID)
	assert.Zero(t, resets)
}

func TestMeetingServiceDeleteUnknown(t *testing.T) {
	svc, _ := seededMeetingService(t, []models.Meeting{{ID: "m-1"}})

	err := svc.Delete(context.Background(), "nope", true)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestMeetingServiceUpdateDetails(t *testing.T) {
	svc, _ := seededMeetingService(t, []models.Meeting{{ID: "m-1", Title: "old"}})

	updated, err := svc.UpdateDetails(context.Background(), models.MeetingPatch{Title: strPtr("季度复盘会")})
	require.NoError(t, err)
	assert.Equal(t, "季度复盘会", updated.Title)
}

func TestMeetingServiceSelectFiresReset(t *testing.T) {
	svc, _ := seededMeetingService(t, []models.Meeting{{ID: "m-1"}, {ID: "m-2"}})

	var resets int
	svc.OnSelectionChange(func() { resets++ })

	selected, err := svc.Select(context.Background(), "m-2")
	require.NoError(t, err)
	assert.Equal(t, "m-2", selected.ID)
	assert.Equal(t, 1, resets)

	// reselecting the current meeting is not a change
	_, err = svc.Select(context.Background(), "m-2")
	require.NoError(t, err)
	assert.Equal(t, 1, resets)
}

func TestMeetingServiceAttendeeOpsRequireSelection(t *testing.T) {
	svc, _ := seededMeetingService(t, nil)

	_, err := svc.AddAttendee(context.Background(), models.AttendeePatch{})
	assert.Equal(t, appErrors.ErrNoCurrentMeeting.Code, appErrors.FromError(err).Code)

	_, err = svc.DeleteAttendees(context.Background(), []string{"a-1"}, true)
	assert.Equal(t, appErrors.ErrNoCurrentMeeting.Code, appErrors.FromError(err).Code)
}

func TestMeetingServiceDeleteAttendeesRequiresConfirmation(t *testing.T) {
	svc, repo := seededMeetingService(t, []models.Meeting{
		{ID: "m-1", Attendees: []models.Attendee{{ID: "a-1", Name: "李雷"}}},
	})

	_, err := svc.DeleteAttendees(context.Background(), []string{"a-1"}, false)
	assert.Equal(t, appErrors.ErrConfirmRequired.Code, appErrors.FromError(err).Code)

	list := svc.List(context.Background())
	assert.Len(t, list[0].Attendees, 1)
	assert.Zero(t, repo.saveCalls)
}

func TestMeetingServiceBatchMutationsFireCallbacks(t *testing.T) {
	svc, _ := seededMeetingService(t, []models.Meeting{
		{ID: "m-1", Attendees: []models.Attendee{{ID: "a-1"}, {ID: "a-2"}}},
	})

	var fired int
	svc.OnBatchMutation(func() { fired++ })

	_, err := svc.BatchUpdateAttendees(context.Background(), []string{"a-1", "a-2"}, models.AttendeePatch{IsNotified: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, 1, fired)

	_, err = svc.DeleteAttendees(context.Background(), []string{"a-1"}, true)
	require.NoError(t, err)
	assert.Equal(t, 2, fired)

	// a batch that never ran must not consume the selection
	_, err = svc.DeleteAttendees(context.Background(), []string{"a-2"}, false)
	require.Error(t, err)
	assert.Equal(t, 2, fired)
}

func TestMeetingServiceDepartmentDefaults(t *testing.T) {
	svc, _ := seededMeetingService(t, []models.Meeting{
		{ID: "m-1", Attendees: []models.Attendee{
			{ID: "a-1", Department: "销售部", ContactName: "王总", Phone: "555-1"},
		}},
	})

	patch, err := svc.DepartmentDefaults(context.Background(), "销售部")
	require.NoError(t, err)
	require.NotNil(t, patch.Department)
	assert.Equal(t, "销售部", *patch.Department)
	require.NotNil(t, patch.ContactName)
	assert.Equal(t, "王总", *patch.ContactName)
	require.NotNil(t, patch.Phone)
	assert.Equal(t, "555-1", *patch.Phone)

	patch, err = svc.DepartmentDefaults(context.Background(), "无此部门")
	require.NoError(t, err)
	assert.Nil(t, patch.ContactName)
	assert.Nil(t, patch.Phone)
}

func TestMeetingServiceDepartmentDefaultsRequiresSelection(t *testing.T) {
	svc, _ := seededMeetingService(t, nil)

	_, err := svc.DepartmentDefaults(context.Background(), "销售部")
	assert.Equal(t, appErrors.ErrNoCurrentMeeting.Code, appErrors.FromError(err).Code)
}

func TestMeetingServiceAddAttendeeRoutesToCurrent(t *testing.T) {
	svc, repo := seededMeetingService(t, []models.Meeting{
		{ID: "m-1", Attendees: []models.Attendee{{ID: "a-1", Name: "李雷"}}},
		{ID: "m-2"},
	})

	attendees, err := svc.AddAttendee(context.Background(), models.AttendeePatch{Name: strPtr("韩梅梅")})
	require.NoError(t, err)
	require.Len(t, attendees, 2)
	assert.Equal(t, "韩梅梅", attendees[0].Name)
	assert.Equal(t, models.StatusPending, attendees[0].Status)

	list := svc.List(context.Background())
	assert.Len(t, list[0].Attendees, 2)
	assert.Empty(t, list[1].Attendees)
	assert.Equal(t, 1, repo.saveCalls)
}

func TestMeetingServiceAppendAttendeesKeepsOrder(t *testing.T) {
	svc, _ := seededMeetingService(t, []models.Meeting{
		{ID: "m-1", Attendees: []models.Attendee{{ID: "a-1", Name: "existing"}}},
	})

	attendees, err := svc.AppendAttendees(context.Background(), []models.AttendeePatch{
		{Name: strPtr("first")},
		{Name: strPtr("second")},
	})
	require.NoError(t, err)
	require.Len(t, attendees, 3)
	assert.Equal(t, "existing", attendees[0].Name)
	assert.Equal(t, "first", attendees[1].Name)
	assert.Equal(t, "second", attendees[2].Name)
	assert.NotEmpty(t, attendees[1].ID)
	assert.NotEqual(t, attendees[1].ID, attendees[2].ID)
}

func TestMeetingServiceAutofillDepartment(t *testing.T) {
	svc, _ := seededMeetingService(t, []models.Meeting{
		{ID: "m-1", Attendees: []models.Attendee{
			{ID: "a-1", Department: "销售部", ContactName: "王总", Phone: "555-1"},
			{ID: "a-2"},
		}},
	})

	attendees, err := svc.AutofillDepartment(context.Background(), "a-2", "销售部")
	require.NoError(t, err)
	assert.Equal(t, "销售部", attendees[1].Department)
	assert.Equal(t, "王总", attendees[1].ContactName)
	assert.Equal(t, "555-1", attendees[1].Phone)
}

func TestMeetingServicePersistFailureIsNotFatal(t *testing.T) {
	repo := &snapshotRepoStub{loaded: []models.Meeting{{ID: "m-1"}}, saveErr: errors.New("store down")}
	svc := NewMeetingService(repo, nil, nil)
	require.NoError(t, svc.Load(context.Background()))

	_, err := svc.AddAttendee(context.Background(), models.AttendeePatch{Name: strPtr("李雷")})
	require.NoError(t, err)

	list := svc.List(context.Background())
	assert.Len(t, list[0].Attendees, 1)
}
