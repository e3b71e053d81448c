package roster

import "testing"

func TestProjectCalendarOrder(t *testing.T) {
	events := []Event{
		{ID: "evt-1", Title: "Workshop", Date: "2026-02-10"},
		{ID: "evt-2", Title: "Career Fair", Date: "2026-01-05"},
	}
	meetings := []Meeting{
		{ID: "mtg-1", Title: "Board Meeting", Date: "2026-02-10"},
		{ID: "mtg-2", Title: "Planning", Date: "2026-01-01"},
	}

	items := ProjectCalendar(events, meetings)
	got := []string{items[0].ID, items[1].ID, items[2].ID, items[3].ID}
	want := []string{"mtg-2", "evt-2", "evt-1", "mtg-1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	if items[2].Kind != KindEvent || items[3].Kind != KindMeeting {
		t.Fatal("same-day ordering must place events before meetings")
	}
}

func TestItemsForMonth(t *testing.T) {
	items := []CalendarItem{
		{ID: "a", Date: "2026-01-31"},
		{ID: "b", Date: "2026-02-01"},
		{ID: "c", Date: "2026-02-28"},
	}

	feb := ItemsForMonth(items, "2026-02")
	if len(feb) != 2 || feb[0].ID != "b" || feb[1].ID != "c" {
		t.Fatalf("february filter = %+v", feb)
	}
	if all := ItemsForMonth(items, ""); len(all) != 3 {
		t.Fatalf("empty month must not filter, got %d items", len(all))
	}
}

func TestGroupByDay(t *testing.T) {
	items := []CalendarItem{
		{ID: "a", Date: "2026-02-10"},
		{ID: "b", Date: "2026-02-10"},
		{ID: "c", Date: "2026-02-11"},
	}

	byDay := GroupByDay(items)
	if len(byDay) != 2 {
		t.Fatalf("expected 2 days, got %d", len(byDay))
	}
	day := byDay["2026-02-10"]
	if len(day) != 2 || day[0].ID != "a" || day[1].ID != "b" {
		t.Fatalf("day items = %+v", day)
	}
}
