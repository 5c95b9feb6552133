package models

// DefaultMeetingTitle prefixes newly created meetings; the creation date is
// appended in the organizer's locale.
const DefaultMeetingTitle = "新建商务会议"

// Meeting is a named, dated registration event owning an attendee list.
// Date is a date-only string (YYYY-MM-DD); CreatedAt is unix milliseconds,
// matching the persisted snapshot shape.
type Meeting struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Date      string     `json:"date"`
	Attendees []Attendee `json:"attendees"`
	CreatedAt int64      `json:"createdAt"`
}

// MeetingPatch overlays the editable meeting details.
type MeetingPatch struct {
	Title *string `json:"title,omitempty"`
	Date  *string `json:"date,omitempty"`
}

// Apply overlays the patch onto a copy of the meeting and returns it.
func (p MeetingPatch) Apply(m Meeting) Meeting {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Date != nil {
		m.Date = *p.Date
	}
	return m
}
