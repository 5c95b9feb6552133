package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promeet/roster-api/internal/models"
)

func TestFilterTextMatchesNameDepartmentContact(t *testing.T) {
	seq := fixtureRoster()

	byName := Filter(seq, "wang", models.FilterAll)
	require.Len(t, byName, 1)
	assert.Equal(t, "a-3", byName[0].ID)

	byDept := Filter(seq, "市场", models.FilterAll)
	require.Len(t, byDept, 1)
	assert.Equal(t, "a-2", byDept[0].ID)

	byContact := Filter(seq, "li", models.FilterAll)
	require.Len(t, byContact, 2)
}

func TestFilterPhoneIsExactSubstring(t *testing.T) {
	seq := []models.Attendee{{ID: "p", Phone: "555-ABC"}}
	assert.Len(t, Filter(seq, "555-A", models.FilterAll), 1)
	// no case folding on the phone column
	assert.Len(t, Filter(seq, "555-a", models.FilterAll), 0)
}

func TestFilterEmptyTextPassesEveryone(t *testing.T) {
	seq := fixtureRoster()
	assert.Len(t, Filter(seq, "", models.FilterAll), 3)
}

func TestFilterStatusNarrowsIndependently(t *testing.T) {
	seq := fixtureRoster()

	assert.Len(t, Filter(seq, "", models.FilterPresent), 1)
	assert.Len(t, Filter(seq, "", models.FilterLeave), 1)
	assert.Len(t, Filter(seq, "", models.FilterPending), 1)
	assert.Len(t, Filter(seq, "", models.FilterNotified), 1)
	assert.Len(t, Filter(seq, "", models.FilterNotNotified), 2)
	assert.Len(t, Filter(seq, "", models.FilterRsvpYes), 1)
	assert.Len(t, Filter(seq, "", models.FilterRsvpNo), 2)

	// text and status AND together
	assert.Len(t, Filter(seq, "li", models.FilterPending), 1)
}

func TestSortIsStableAndHandlesDirections(t *testing.T) {
	seq := []models.Attendee{
		{ID: "1", Department: "b"},
		{ID: "2", Department: "a"},
		{ID: "3", Department: "a"},
	}

	asc := Sort(seq, models.SortByDepartment, models.SortAsc)
	assert.Equal(t, []string{"2", "3", "1"}, ids(asc))

	desc := Sort(seq, models.SortByDepartment, models.SortDesc)
	assert.Equal(t, []string{"1", "2", "3"}, ids(desc))

	// input order preserved
	assert.Equal(t, []string{"1", "2", "3"}, ids(seq))
}

func TestFilterThenSortComposes(t *testing.T) {
	seq := fixtureRoster()

	view := Sort(Filter(seq, "", models.FilterNotNotified), models.SortByName, models.SortAsc)

	require.Len(t, view, 2)
	assert.Equal(t, "Wang", view[0].Name)
	assert.Equal(t, "韩梅梅", view[1].Name)
	for _, a := range view {
		assert.False(t, a.IsNotified)
	}
}

func TestToggleSort(t *testing.T) {
	field, dir := ToggleSort(models.SortByDepartment, models.SortAsc, models.SortByDepartment)
	assert.Equal(t, models.SortByDepartment, field)
	assert.Equal(t, models.SortDesc, dir)

	field, dir = ToggleSort(models.SortByDepartment, models.SortDesc, models.SortByDepartment)
	assert.Equal(t, models.SortAsc, dir)

	field, dir = ToggleSort(models.SortByDepartment, models.SortDesc, models.SortByName)
	assert.Equal(t, models.SortByName, field)
	assert.Equal(t, models.SortAsc, dir)
}

func TestVocabulary(t *testing.T) {
	seq := fixtureRoster()
	seq = append(seq, models.Attendee{ID: "a-4", Department: ""})

	depts := Vocabulary(seq, models.SortByDepartment)
	assert.Equal(t, []string{"市场部", "销售部"}, depts)

	titles := Vocabulary(seq, models.SortByJobTitle)
	assert.Equal(t, []string{"专员", "总监", "经理"}, titles)
}

func TestSummarize(t *testing.T) {
	summary := Summarize(fixtureRoster())
	assert.Equal(t, models.RosterSummary{Total: 3, Present: 1, Leave: 1, Pending: 1}, summary)

	assert.Equal(t, models.RosterSummary{}, Summarize(nil))
}

func ids(seq []models.Attendee) []string {
	out := make([]string, len(seq))
	for i, a := range seq {
		out[i] = a.ID
	}
	return out
}
