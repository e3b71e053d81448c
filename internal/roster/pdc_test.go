package roster

import "testing"

func TestSummarizePDCs(t *testing.T) {
	events := []Event{
		{ID: "evt-1", Title: "Workshop", Date: "2026-02-10", PDCs: 2},
		{ID: "evt-2", Title: "Social", Date: "2026-02-12", PDCs: 0},
		{ID: "evt-3", Title: "Conference", Date: "2026-03-01", PDCs: 5},
	}

	summary := SummarizePDCs(events)
	if summary.EventsOffering != 2 {
		t.Fatalf("events offering = %d, want 2", summary.EventsOffering)
	}
	if summary.TotalPDCs != 7 {
		t.Fatalf("total PDCs = %d, want 7", summary.TotalPDCs)
	}
	if len(summary.PerEvent) != 2 || summary.PerEvent[0].ID != "evt-1" || summary.PerEvent[1].ID != "evt-3" {
		t.Fatalf("breakdown = %+v", summary.PerEvent)
	}
}

func TestSummarizePDCsEmpty(t *testing.T) {
	summary := SummarizePDCs(nil)
	if summary.EventsOffering != 0 || summary.TotalPDCs != 0 || summary.PerEvent != nil {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}
