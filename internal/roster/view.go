package roster

import (
	"sort"
	"strings"

	"github.com/promeet/roster-api/internal/models"
)

// Filter keeps attendees matching both the free-text filter and the status
// filter. Text matches case-insensitively against name, department and
// contact name; phone matching is exact-substring since digits have no case.
// Empty text passes everyone.
func Filter(seq []models.Attendee, text string, status models.FilterStatus) []models.Attendee {
	needle := strings.ToLower(text)

	out := make([]models.Attendee, 0, len(seq))
	for _, a := range seq {
		if needle != "" && !matchesText(a, text, needle) {
			continue
		}
		if !matchesStatus(a, status) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func matchesText(a models.Attendee, raw, lower string) bool {
	return strings.Contains(strings.ToLower(a.Name), lower) ||
		strings.Contains(strings.ToLower(a.Department), lower) ||
		strings.Contains(strings.ToLower(a.ContactName), lower) ||
		strings.Contains(a.Phone, raw)
}

func matchesStatus(a models.Attendee, status models.FilterStatus) bool {
	switch status {
	case models.FilterPresent:
		return a.Status == models.StatusPresent
	case models.FilterLeave:
		return a.Status == models.StatusLeave
	case models.FilterPending:
		return a.Status == models.StatusPending
	case models.FilterNotified:
		return a.IsNotified
	case models.FilterNotNotified:
		return !a.IsNotified
	case models.FilterRsvpYes:
		return a.HasRsvp
	case models.FilterRsvpNo:
		return !a.HasRsvp
	default:
		return true
	}
}

// Sort orders a copy of the sequence lexicographically on the chosen field.
// The sort is stable so equal keys keep their insertion order.
func Sort(seq []models.Attendee, field models.SortField, dir models.SortDirection) []models.Attendee {
	out := make([]models.Attendee, len(seq))
	copy(out, seq)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := sortKey(out[i], field), sortKey(out[j], field)
		if dir == models.SortDesc {
			return a > b
		}
		return a < b
	})
	return out
}

func sortKey(a models.Attendee, field models.SortField) string {
	switch field {
	case models.SortByName:
		return a.Name
	case models.SortByJobTitle:
		return a.JobTitle
	case models.SortByStatus:
		return string(a.Status)
	case models.SortByContactName:
		return a.ContactName
	default:
		return a.Department
	}
}

// ToggleSort resolves the next sort state for a header click: clicking the
// active field flips direction, clicking a new field resets to ascending.
func ToggleSort(current models.SortField, dir models.SortDirection, requested models.SortField) (models.SortField, models.SortDirection) {
	if current == requested {
		if dir == models.SortAsc {
			return current, models.SortDesc
		}
		return current, models.SortAsc
	}
	return requested, models.SortAsc
}

// Vocabulary returns the sorted distinct non-empty values of the given field
// across the unfiltered list; used for autocomplete suggestions.
func Vocabulary(seq []models.Attendee, field models.SortField) []string {
	seen := make(map[string]struct{}, len(seq))
	out := make([]string, 0, len(seq))
	for _, a := range seq {
		var v string
		switch field {
		case models.SortByJobTitle:
			v = a.JobTitle
		default:
			v = a.Department
		}
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Summarize counts attendees per status over the full list.
func Summarize(seq []models.Attendee) models.RosterSummary {
	summary := models.RosterSummary{Total: len(seq)}
	for _, a := range seq {
		switch a.Status {
		case models.StatusPresent:
			summary.Present++
		case models.StatusLeave:
			summary.Leave++
		default:
			summary.Pending++
		}
	}
	return summary
}
