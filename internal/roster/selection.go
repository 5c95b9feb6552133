package roster

import "github.com/promeet/roster-api/internal/models"

// Selection is the ephemeral set of attendee ids marked for a batch action.
// Ids of rows that later fall out of the visible view are tolerated, not
// pruned; the set is cleared when the meeting changes or a batch completes.
type Selection map[string]struct{}

// NewSelection returns an empty selection.
func NewSelection() Selection {
	return make(Selection)
}

// ToggleOne flips membership of a single id.
func (s Selection) ToggleOne(id string) {
	if _, ok := s[id]; ok {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

// ToggleAll selects exactly the visible rows, unless they are all already
// selected, in which case the selection is cleared. An empty view is a no-op.
func (s Selection) ToggleAll(visible []models.Attendee) {
	if len(visible) == 0 {
		return
	}
	if s.coversAll(visible) {
		s.Clear()
		return
	}
	s.Clear()
	for _, a := range visible {
		s[a.ID] = struct{}{}
	}
}

// Clear empties the selection in place.
func (s Selection) Clear() {
	for id := range s {
		delete(s, id)
	}
}

// Has reports membership.
func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the selected ids in unspecified order.
func (s Selection) IDs() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}

func (s Selection) coversAll(visible []models.Attendee) bool {
	if len(s) != len(visible) {
		return false
	}
	for _, a := range visible {
		if !s.Has(a.ID) {
			return false
		}
	}
	return true
}
