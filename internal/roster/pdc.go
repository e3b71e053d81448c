package roster

// EventPDCs is the per-event line of the PDC breakdown.
type EventPDCs struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	PDCs  int    `json:"pdcs"`
}

// PDCSummary totals professional development credits across events.
type PDCSummary struct {
	EventsOffering int         `json:"events_offering"`
	TotalPDCs      int         `json:"total_pdcs"`
	PerEvent       []EventPDCs `json:"per_event"`
}

// SummarizePDCs counts events offering PDCs and their credit total. Only
// events with a positive credit count appear in the breakdown, in input
// order.
func SummarizePDCs(events []Event) PDCSummary {
	summary := PDCSummary{}
	for _, ev := range events {
		if ev.PDCs <= 0 {
			continue
		}
		summary.EventsOffering++
		summary.TotalPDCs += ev.PDCs
		summary.PerEvent = append(summary.PerEvent, EventPDCs{ID: ev.ID, Title: ev.Title, PDCs: ev.PDCs})
	}
	return summary
}
