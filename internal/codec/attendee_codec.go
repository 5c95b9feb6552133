// Package codec maps attendee records onto generic spreadsheet rows and back.
// Import resolves each field through an ordered alias chain so files with
// either English or Chinese headers load without declaring a schema, and
// status strings are normalized through a fixed synonym table.
package codec

import (
	"strings"
	"unicode"

	"github.com/promeet/roster-api/internal/models"
	"github.com/promeet/roster-api/pkg/export"
)

// DatasetName labels the exported sheet.
const DatasetName = "参会名单"

// DatasetNameLatin labels exports rendered without CJK glyph support.
const DatasetNameLatin = "Attendee Roster"

// filenameSuffix is appended to the sanitized meeting title.
const filenameSuffix = "_名单"

// HeaderLocale selects the header set used on export.
type HeaderLocale int

const (
	// LocaleNative writes Chinese headers; round-trips through Import.
	LocaleNative HeaderLocale = iota
	// LocaleLatin writes English headers for renderers without CJK glyphs.
	LocaleLatin
)

var nativeHeaders = []string{
	"部门", "职务", "参会人姓名", "部门联系人", "联系电话", "已通知", "收到回执", "出席状态", "请假事由",
}

var latinHeaders = []string{
	"Department", "Job Title", "Name", "Contact Person", "Phone", "Notified", "RSVP Received", "Attendance Status", "Leave Reason",
}

// Import alias chains, first match wins.
var (
	departmentAliases  = []string{"Department", "department", "部门"}
	jobTitleAliases    = []string{"Job Title", "jobTitle", "职务"}
	nameAliases        = []string{"Name", "name", "姓名", "参会人姓名"}
	contactNameAliases = []string{"Contact Person", "contactName", "部门联系人", "联系人"}
	phoneAliases       = []string{"Phone", "phone", "电话", "联系电话", "手机"}
	notifiedAliases    = []string{"Notified", "已通知"}
	rsvpAliases        = []string{"RSVP Received", "RSVP", "收到回执"}
	statusAliases      = []string{"Attendance Status", "出席状态"}
	leaveReasonAliases = []string{"Leave Reason", "请假事由"}
)

var statusSynonyms = map[string]models.AttendeeStatus{
	"Present":  models.StatusPresent,
	"出席":       models.StatusPresent,
	"On Leave": models.StatusLeave,
	"请假":       models.StatusLeave,
}

var boolSynonyms = map[string]bool{
	"Yes":  true,
	"是":    true,
	"true": true,
	"TRUE": true,
}

func statusLabel(s models.AttendeeStatus, locale HeaderLocale) string {
	if locale == LocaleLatin {
		switch s {
		case models.StatusPresent:
			return "Present"
		case models.StatusLeave:
			return "On Leave"
		default:
			return "Pending"
		}
	}
	switch s {
	case models.StatusPresent:
		return "出席"
	case models.StatusLeave:
		return "请假"
	default:
		return "待定"
	}
}

func boolLabel(b bool, locale HeaderLocale) string {
	if locale == LocaleLatin {
		if b {
			return "Yes"
		}
		return "No"
	}
	if b {
		return "是"
	}
	return "否"
}

// Export renders the attendee list as a dataset in the fixed column order.
func Export(attendees []models.Attendee, locale HeaderLocale) export.Dataset {
	headers := nativeHeaders
	if locale == LocaleLatin {
		headers = latinHeaders
	}

	rows := make([]map[string]string, 0, len(attendees))
	for _, a := range attendees {
		values := []string{
			a.Department,
			a.JobTitle,
			a.Name,
			a.ContactName,
			a.Phone,
			boolLabel(a.IsNotified, locale),
			boolLabel(a.HasRsvp, locale),
			statusLabel(a.Status, locale),
			a.LeaveReason,
		}
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			row[header] = values[i]
		}
		rows = append(rows, row)
	}

	return export.Dataset{Name: DatasetName, Headers: headers, Rows: rows}
}

// Import maps header-keyed rows onto attendee records. Unknown headers are
// ignored, unmatched fields default to empty/false, unrecognized status
// strings coerce to pending. Ids are always freshly assigned by the roster
// layer, never taken from the file.
func Import(rows []map[string]string) []models.AttendeePatch {
	out := make([]models.AttendeePatch, 0, len(rows))
	for _, row := range rows {
		department := firstAlias(row, departmentAliases)
		jobTitle := firstAlias(row, jobTitleAliases)
		name := firstAlias(row, nameAliases)
		contactName := firstAlias(row, contactNameAliases)
		phone := firstAlias(row, phoneAliases)
		isNotified := parseBool(firstAlias(row, notifiedAliases))
		hasRsvp := parseBool(firstAlias(row, rsvpAliases))
		status := parseStatus(firstAlias(row, statusAliases))
		leaveReason := firstAlias(row, leaveReasonAliases)

		out = append(out, models.AttendeePatch{
			Department:  &department,
			JobTitle:    &jobTitle,
			Name:        &name,
			ContactName: &contactName,
			Phone:       &phone,
			IsNotified:  &isNotified,
			HasRsvp:     &hasRsvp,
			Status:      &status,
			LeaveReason: &leaveReason,
		})
	}
	return out
}

/// Filename derives the export file name from the meeting title: characters
// outside ASCII letters, digits and CJK ideographs become underscores, then
// the roster suffix and extension are appended.
func Filename(meetingTitle, extension string) string {
	var b strings.Builder
	for _, r := range meetingTitle {
		if isASCIIAlnum(r) || unicode.Is(unicode.Han, r) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	name := b.String()
	if name == "" {
		name = "roster"
	}
	return name + filenameSuffix + "." + strings.TrimPrefix(extension, ".")
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func firstAlias(row map[string]string, aliases []string) string {
	for _, alias := range aliases {
		if v, ok := row[alias]; ok && v != "" {
			return v
		}
	}
	return ""
}

func parseStatus(raw string) models.AttendeeStatus {
	if s, ok := statusSynonyms[raw]; ok {
		return s
	}
	return models.StatusPending
}

func parseBool(raw string) bool {
	return boolSynonyms[raw]
}
