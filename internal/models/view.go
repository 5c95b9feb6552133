package models

// FilterStatus narrows the visible roster independently of the text filter.
type FilterStatus string

const (
	FilterAll         FilterStatus = "ALL"
	FilterPresent     FilterStatus = "PRESENT"
	FilterLeave       FilterStatus = "LEAVE"
	FilterPending     FilterStatus = "PENDING"
	FilterNotified    FilterStatus = "NOTIFIED"
	FilterNotNotified FilterStatus = "NOT_NOTIFIED"
	FilterRsvpYes     FilterStatus = "RSVP_YES"
	FilterRsvpNo      FilterStatus = "RSVP_NO"
)

// Valid returns true when the filter is a supported value.
func (f FilterStatus) Valid() bool {
	switch f {
	case FilterAll, FilterPresent, FilterLeave, FilterPending,
		FilterNotified, FilterNotNotified, FilterRsvpYes, FilterRsvpNo:
		return true
	default:
		return false
	}
}

// SortField names an attendee column usable as a sort key.
type SortField string

const (
	SortByDepartment  SortField = "department"
	SortByName        SortField = "name"
	SortByJobTitle    SortField = "jobTitle"
	SortByStatus      SortField = "status"
	SortByContactName SortField = "contactName"
)

// Valid returns true when the field is sortable.
func (f SortField) Valid() bool {
	switch f {
	case SortByDepartment, SortByName, SortByJobTitle, SortByStatus, SortByContactName:
		return true
	default:
		return false
	}
}

// SortDirection orders a sorted view.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// RosterSummary counts attendees per status over the unfiltered list.
type RosterSummary struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Leave   int `json:"leave"`
	Pending int `json:"pending"`
}
