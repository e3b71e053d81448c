package roster

import (
	"strings"
	"testing"
)

func TestAddEventSortsDescending(t *testing.T) {
	var events []Event
	events = AddEvent(events, Event{ID: "evt-a", Title: "Older", Date: "2026-01-10"})
	events = AddEvent(events, Event{ID: "evt-b", Title: "Newest", Date: "2026-03-05"})
	events = AddEvent(events, Event{ID: "evt-c", Title: "Middle", Date: "2026-02-01"})

	got := []string{events[0].ID, events[1].ID, events[2].ID}
	want := []string{"evt-b", "evt-c", "evt-a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestAddEventStableOnDateTies(t *testing.T) {
	var events []Event
	events = AddEvent(events, Event{ID: "evt-a", Date: "2026-01-10"})
	events = AddEvent(events, Event{ID: "evt-b", Date: "2026-01-10"})

	if events[0].ID != "evt-a" || events[1].ID != "evt-b" {
		t.Fatalf("ties must keep insert order, got %s then %s", events[0].ID, events[1].ID)
	}
}

func TestUpdateEventResorts(t *testing.T) {
	events := []Event{
		{ID: "evt-a", Date: "2026-03-01"},
		{ID: "evt-b", Date: "2026-01-01"},
	}

	updated, found := UpdateEvent(events, Event{ID: "evt-b", Date: "2026-04-01"})
	if !found {
		t.Fatal("expected update to find evt-b")
	}
	if updated[0].ID != "evt-b" {
		t.Fatalf("expected evt-b first after date change, got %s", updated[0].ID)
	}
	// Input slice untouched.
	if events[0].ID != "evt-a" {
		t.Fatal("UpdateEvent mutated its input")
	}
}

func TestUpdateEventMissingID(t *testing.T) {
	events := []Event{{ID: "evt-a", Date: "2026-01-01"}}

	updated, found := UpdateEvent(events, Event{ID: "evt-zzz", Date: "2026-02-02"})
	if found {
		t.Fatal("expected found=false for unknown id")
	}
	if len(updated) != 1 || updated[0].ID != "evt-a" {
		t.Fatalf("collection must be unchanged, got %+v", updated)
	}
}

func TestRemoveEvent(t *testing.T) {
	events := []Event{
		{ID: "evt-a", Date: "2026-02-01"},
		{ID: "evt-b", Date: "2026-01-01"},
	}

	updated, found := RemoveEvent(events, "evt-a")
	if !found || len(updated) != 1 || updated[0].ID != "evt-b" {
		t.Fatalf("remove failed: found=%v, rest=%+v", found, updated)
	}

	unchanged, found := RemoveEvent(events, "evt-nope")
	if found {
		t.Fatal("expected found=false for unknown id")
	}
	if len(unchanged) != 2 {
		t.Fatalf("collection must be unchanged, got %+v", unchanged)
	}
}

func TestMeetingLifecycle(t *testing.T) {
	var meetings []Meeting
	meetings = AddMeeting(meetings, Meeting{ID: "mtg-a", Title: "Kickoff", Date: "2026-01-05", Notes: "agenda"})
	meetings = AddMeeting(meetings, Meeting{ID: "mtg-b", Title: "Review", Date: "2026-02-05"})

	if meetings[0].ID != "mtg-b" {
		t.Fatalf("expected newest first, got %s", meetings[0].ID)
	}

	updated, found := UpdateMeeting(meetings, Meeting{ID: "mtg-a", Title: "Kickoff v2", Date: "2026-01-05"})
	if !found {
		t.Fatal("expected update to find mtg-a")
	}
	if updated[1].Title != "Kickoff v2" {
		t.Fatalf("title not replaced: %+v", updated[1])
	}

	rest, found := RemoveMeeting(updated, "mtg-b")
	if !found || len(rest) != 1 || rest[0].ID != "mtg-a" {
		t.Fatalf("remove failed: found=%v, rest=%+v", found, rest)
	}
}

func TestNewIDsArePrefixedAndUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewEventID()
		if !strings.HasPrefix(id, "evt-") {
			t.Fatalf("event id %q missing prefix", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate event id %q", id)
		}
		seen[id] = struct{}{}
	}
	if !strings.HasPrefix(NewMeetingID(), "mtg-") {
		t.Fatal("meeting id missing prefix")
	}
}

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2026-02-10"); err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	if _, err := ParseDate("02/10/2026"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}
