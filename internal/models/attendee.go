package models

// AttendeeStatus represents the attendance state of one roster entry.
type AttendeeStatus string

const (
	StatusPresent AttendeeStatus = "present"
	StatusLeave   AttendeeStatus = "leave"
	StatusPending AttendeeStatus = "pending"
)

// Valid returns true when the status is a supported value.
func (s AttendeeStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusLeave, StatusPending:
		return true
	default:
		return false
	}
}

// Attendee is one person's registration record within a meeting.
// ContactName and Phone belong to the attendee's department contact,
// not the attendee themselves.
type Attendee struct {
	ID          string         `json:"id"`
	Department  string         `json:"department"`
	JobTitle    string         `json:"jobTitle"`
	Name        string         `json:"name"`
	ContactName string         `json:"contactName"`
	Phone       string         `json:"phone"`
	IsNotified  bool           `json:"isNotified"`
	HasRsvp     bool           `json:"hasRsvp"`
	Status      AttendeeStatus `json:"status"`
	LeaveReason string         `json:"leaveReason"`
}

// NewAttendee returns a field-complete blank record with default status.
// The id is assigned by the roster operations, not here.
func NewAttendee() Attendee {
	return Attendee{Status: StatusPending}
}

// AttendeePatch is a field-level overlay; nil fields leave the record untouched.
type AttendeePatch struct {
	Department  *string         `json:"department,omitempty"`
	JobTitle    *string         `json:"jobTitle,omitempty"`
	Name        *string         `json:"name,omitempty"`
	ContactName *string         `json:"contactName,omitempty"`
	Phone       *string         `json:"phone,omitempty"`
	IsNotified  *bool           `json:"isNotified,omitempty"`
	HasRsvp     *bool           `json:"hasRsvp,omitempty"`
	Status      *AttendeeStatus `json:"status,omitempty"`
	LeaveReason *string         `json:"leaveReason,omitempty"`
}

// Apply overlays the patch onto a copy of the attendee and returns it.
func (p AttendeePatch) Apply(a Attendee) Attendee {
	if p.Department != nil {
		a.Department = *p.Department
	}
	if p.JobTitle != nil {
		a.JobTitle = *p.JobTitle
	}
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.ContactName != nil {
		a.ContactName = *p.ContactName
	}
	if p.Phone != nil {
		a.Phone = *p.Phone
	}
	if p.IsNotified != nil {
		a.IsNotified = *p.IsNotified
	}
	if p.HasRsvp != nil {
		a.HasRsvp = *p.HasRsvp
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.LeaveReason != nil {
		a.LeaveReason = *p.LeaveReason
	}
	return a
}

// IsZero reports whether the patch carries no overlay at all.
func (p AttendeePatch) IsZero() bool {
	return p.Department == nil && p.JobTitle == nil && p.Name == nil &&
		p.ContactName == nil && p.Phone == nil && p.IsNotified == nil &&
		p.HasRsvp == nil && p.Status == nil && p.LeaveReason == nil
}
