// Package roster implements the attendee list engine: pure operations over
// immutable attendee snapshots, plus filtered/sorted projections of them.
// Every operation returns a fresh slice and never mutates its input; callers
// treat each returned sequence as the next snapshot.
package roster

import (
	"github.com/google/uuid"

	"github.com/promeet/roster-api/internal/models"
)

// newID is swapped out by tests that need deterministic ids.
var newID = uuid.NewString

// Add overlays the patch onto a field-complete blank record, assigns a fresh
// id and prepends it so the newest entry is visible first.
func Add(seq []models.Attendee, patch models.AttendeePatch) []models.Attendee {
	record := patch.Apply(models.NewAttendee())
	record.ID = newID()

	next := make([]models.Attendee, 0, len(seq)+1)
	next = append(next, record)
	next = append(next, seq...)
	return next
}

// Duplicate copies the record with the given id, clearing the per-person
// fields so the copy is ready for a new name in the same department. The copy
// is inserted immediately after its source. An unknown id leaves the sequence
// unchanged.
func Duplicate(seq []models.Attendee, id string) []models.Attendee {
	idx := indexOf(seq, id)
	if idx < 0 {
		return seq
	}

	copyRecord := seq[idx]
	copyRecord.ID = newID()
	copyRecord.Name = ""
	copyRecord.IsNotified = false
	copyRecord.HasRsvp = false
	copyRecord.Status = models.StatusPending
	copyRecord.LeaveReason = ""

	next := make([]models.Attendee, 0, len(seq)+1)
	next = append(next, seq[:idx+1]...)
	next = append(next, copyRecord)
	next = append(next, seq[idx+1:]...)
	return next
}

// Update applies the overlay to the single record matching id; no-op when the
// id is not present.
func Update(seq []models.Attendee, id string, patch models.AttendeePatch) []models.Attendee {
	idx := indexOf(seq, id)
	if idx < 0 {
		return seq
	}

	next := make([]models.Attendee, len(seq))
	copy(next, seq)
	next[idx] = patch.Apply(next[idx])
	return next
}

// BatchUpdate applies the same overlay to every record whose id is in ids.
func BatchUpdate(seq []models.Attendee, ids []string, patch models.AttendeePatch) []models.Attendee {
	if len(ids) == 0 {
		return seq
	}
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	next := make([]models.Attendee, len(seq))
	copy(next, seq)
	for i := range next {
		if _, ok := idSet[next[i].ID]; ok {
			next[i] = patch.Apply(next[i])
		}
	}
	return next
}

// Delete removes every record whose id is in ids, preserving the order of the
// remainder. Deleting already-absent ids is a no-op.
func Delete(seq []models.Attendee, ids []string) []models.Attendee {
	if len(ids) == 0 {
		return seq
	}
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	next := make([]models.Attendee, 0, len(seq))
	for _, a := range seq {
		if _, ok := idSet[a.ID]; ok {
			continue
		}
		next = append(next, a)
	}
	return next
}

// AutofillFromDepartment derives the overlay for a department change: the
// department itself always, plus the contact name and phone of the first
// other attendee already registered under the same department. Contact fields
// stay untouched when the department is new to this meeting.
func AutofillFromDepartment(seq []models.Attendee, department, excludeID string) models.AttendeePatch {
	patch := models.AttendeePatch{Department: &department}
	if department == "" {
		return patch
	}

	for _, a := range seq {
		if a.ID == excludeID {
			continue
		}
		if a.Department == department {
			contact := a.ContactName
			phone := a.Phone
			patch.ContactName = &contact
			patch.Phone = &phone
			break
		}
	}
	return patch
}

func indexOf(seq []models.Attendee, id string) int {
	for i, a := range seq {
		if a.ID == id {
			return i
		}
	}
	return -1
}
