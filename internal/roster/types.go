package roster

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind discriminates the two roster record types.
type Kind string

const (
	KindEvent   Kind = "event"
	KindMeeting Kind = "meeting"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindEvent, KindMeeting:
		return true
	default:
		return false
	}
}

// DateLayout is the ISO date format used in persisted records.
const DateLayout = "2006-01-02"

// Event is a chapter event with professional development credits.
type Event struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Attendees []string `json:"attendees"`
	PDCs      int      `json:"pdcs"`
}

// Meeting is a chapter meeting with free-form notes.
type Meeting struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Attendees []string `json:"attendees"`
	Notes     string   `json:"notes"`
}

// NewEventID returns a fresh unique event identifier.
func NewEventID() string { return "evt-" + uuid.NewString() }

// NewMeetingID returns a fresh unique meeting identifier.
func NewMeetingID() string { return "mtg-" + uuid.NewString() }

// ParseDate parses an ISO YYYY-MM-DD date string.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	return t, nil
}
