package roster

import (
	"sort"
	"strings"
)

// AttendedItem is one record a person appeared in.
type AttendedItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Kind  Kind   `json:"kind"`
}

// AttendanceRecord is the derived per-person participation summary. It is
// recomputed from the event and meeting collections and never persisted.
type AttendanceRecord struct {
	Name          string         `json:"name"`
	EventCount    int            `json:"event_count"`
	MeetingCount  int            `json:"meeting_count"`
	TotalCount    int            `json:"total_count"`
	AttendedItems []AttendedItem `json:"attended_items"`
}

// SortKey selects the attendance sort column.
type SortKey string

const (
	SortByName         SortKey = "name"
	SortByTotalCount   SortKey = "totalCount"
	SortByEventCount   SortKey = "eventCount"
	SortByMeetingCount SortKey = "meetingCount"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortByName, SortByTotalCount, SortByEventCount, SortByMeetingCount:
		return true
	default:
		return false
	}
}

// SortDirection orders attendance results ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func (d SortDirection) IsValid() bool {
	return d == SortAsc || d == SortDesc
}

// Defaults used when no sort is requested.
const (
	DefaultSortKey       = SortByTotalCount
	DefaultSortDirection = SortDesc
)

// AggregateAttendance folds both record collections into one attendance
// record per distinct attendee name. Names are trimmed and matched exactly:
// case matters, so "Jane Doe" and "jane doe" are two people. Empty names are
// skipped. Attended items are appended in input order, events first.
func AggregateAttendance(events []Event, meetings []Meeting) []AttendanceRecord {
	byName := make(map[string]*AttendanceRecord)
	var order []string

	record := func(name string) *AttendanceRecord {
		rec, ok := byName[name]
		if !ok {
			rec = &AttendanceRecord{Name: name}
			byName[name] = rec
			order = append(order, name)
		}
		return rec
	}

	for _, ev := range events {
		for _, attendee := range ev.Attendees {
			name := strings.TrimSpace(attendee)
			if name == "" {
				continue
			}
			rec := record(name)
			rec.EventCount++
			rec.TotalCount++
			rec.AttendedItems = append(rec.AttendedItems, AttendedItem{
				ID:    ev.ID,
				Title: ev.Title,
				Date:  ev.Date,
				Kind:  KindEvent,
			})
		}
	}

	for _, m := range meetings {
		for _, attendee := range m.Attendees {
			name := strings.TrimSpace(attendee)
			if name == "" {
				continue
			}
			rec := record(name)
			rec.MeetingCount++
			rec.TotalCount++
			rec.AttendedItems = append(rec.AttendedItems, AttendedItem{
				ID:    m.ID,
				Title: m.Title,
				Date:  m.Date,
				Kind:  KindMeeting,
			})
		}
	}

	out := make([]AttendanceRecord, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out
}

// SortAttendance orders records by the given key and direction. The
// secondary tie-break is always ascending by name. Invalid keys or
// directions fall back to the defaults.
func SortAttendance(records []AttendanceRecord, key SortKey, dir SortDirection) []AttendanceRecord {
	if !key.IsValid() {
		key = DefaultSortKey
	}
	if !dir.IsValid() {
		dir = DefaultSortDirection
	}

	out := make([]AttendanceRecord, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		a := out[i]
		b := out[j]
		less, equal := compareAttendance(a, b, key)
		if !equal {
			if dir == SortDesc {
				return !less
			}
			return less
		}
		return a.Name < b.Name
	})
	return out
}

func compareAttendance(a, b AttendanceRecord, key SortKey) (less, equal bool) {
	switch key {
	case SortByName:
		return a.Name < b.Name, a.Name == b.Name
	case SortByEventCount:
		return a.EventCount < b.EventCount, a.EventCount == b.EventCount
	case SortByMeetingCount:
		return a.MeetingCount < b.MeetingCount, a.MeetingCount == b.MeetingCount
	default:
		return a.TotalCount < b.TotalCount, a.TotalCount == b.TotalCount
	}
}
