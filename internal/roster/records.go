package roster

import "sort"

// Collections are kept sorted descending by date after every add or update.
// Sorting is stable, so records sharing a date keep their insert order.

// AddEvent appends a new event and returns the re-sorted collection. The
// input slice is not modified.
func AddEvent(events []Event, ev Event) []Event {
	out := make([]Event, 0, len(events)+1)
	out = append(out, events...)
	out = append(out, ev)
	sortEventsByDateDesc(out)
	return out
}

// UpdateEvent replaces the event matching ev.ID. It reports whether a match
// was found; when none is, the input collection is returned unchanged.
func UpdateEvent(events []Event, ev Event) ([]Event, bool) {
	found := false
	out := make([]Event, len(events))
	for i, existing := range events {
		if existing.ID == ev.ID {
			out[i] = ev
			found = true
			continue
		}
		out[i] = existing
	}
	if !found {
		return events, false
	}
	sortEventsByDateDesc(out)
	return out, true
}

// RemoveEvent deletes the event with the given id. It reports whether a
// match was found; when none is, the input collection is returned unchanged.
func RemoveEvent(events []Event, id string) ([]Event, bool) {
	out := make([]Event, 0, len(events))
	found := false
	for _, existing := range events {
		if existing.ID == id {
			found = true
			continue
		}
		out = append(out, existing)
	}
	if !found {
		return events, false
	}
	return out, true
}

// AddMeeting appends a new meeting and returns the re-sorted collection.
func AddMeeting(meetings []Meeting, m Meeting) []Meeting {
	out := make([]Meeting, 0, len(meetings)+1)
	out = append(out, meetings...)
	out = append(out, m)
	sortMeetingsByDateDesc(out)
	return out
}

// UpdateMeeting replaces the meeting matching m.ID, reporting whether a
// match was found.
func UpdateMeeting(meetings []Meeting, m Meeting) ([]Meeting, bool) {
	found := false
	out := make([]Meeting, len(meetings))
	for i, existing := range meetings {
		if existing.ID == m.ID {
			out[i] = m
			found = true
			continue
		}
		out[i] = existing
	}
	if !found {
		return meetings, false
	}
	sortMeetingsByDateDesc(out)
	return out, true
}

// RemoveMeeting deletes the meeting with the given id, reporting whether a
// match was found.
func RemoveMeeting(meetings []Meeting, id string) ([]Meeting, bool) {
	out := make([]Meeting, 0, len(meetings))
	found := false
	for _, existing := range meetings {
		if existing.ID == id {
			found = true
			continue
		}
		out = append(out, existing)
	}
	if !found {
		return meetings, false
	}
	return out, true
}

// ISO dates compare lexicographically in chronological order.

func sortEventsByDateDesc(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date > events[j].Date
	})
}

func sortMeetingsByDateDesc(meetings []Meeting) {
	sort.SliceStable(meetings, func(i, j int) bool {
		return meetings[i].Date > meetings[j].Date
	})
}
