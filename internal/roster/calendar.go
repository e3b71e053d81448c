package roster

import "sort"

// CalendarItem is a date-indexed display projection of one roster record.
type CalendarItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Kind  Kind   `json:"kind"`
}

// ProjectCalendar merges both collections into calendar items sorted
// ascending by date. Records sharing a date order events before meetings,
// then by title.
func ProjectCalendar(events []Event, meetings []Meeting) []CalendarItem {
	items := make([]CalendarItem, 0, len(events)+len(meetings))
	for _, ev := range events {
		items = append(items, CalendarItem{ID: ev.ID, Title: ev.Title, Date: ev.Date, Kind: KindEvent})
	}
	for _, m := range meetings {
		items = append(items, CalendarItem{ID: m.ID, Title: m.Title, Date: m.Date, Kind: KindMeeting})
	}

	sort.SliceStable(items, func(i, j int) bool {
		a := items[i]
		b := items[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Kind != b.Kind {
			return a.Kind == KindEvent
		}
		return a.Title < b.Title
	})
	return items
}

// ItemsForMonth filters items to a single month given as "YYYY-MM".
func ItemsForMonth(items []CalendarItem, month string) []CalendarItem {
	if month == "" {
		return items
	}
	prefix := month + "-"
	out := make([]CalendarItem, 0, len(items))
	for _, item := range items {
		if len(item.Date) >= len(prefix) && item.Date[:len(prefix)] == prefix {
			out = append(out, item)
		}
	}
	return out
}

// GroupByDay indexes items by their ISO date string. Items within a day keep
// their projected order.
func GroupByDay(items []CalendarItem) map[string][]CalendarItem {
	byDay := make(map[string][]CalendarItem)
	for _, item := range items {
		byDay[item.Date] = append(byDay[item.Date], item)
	}
	return byDay
}
