package statestore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"merittrack/internal/roster"
)

// Keys of the persisted JSON documents.
const (
	KeyCompletionStatus = "completionStatus"
	KeyEvents           = "events"
	KeyMeetings         = "meetings"
)

// State is the in-memory tracker state. It is the source of truth for a
// session; persistence lags behind it and may fail without rolling it back.
type State struct {
	Completion map[string]bool
	Events     []roster.Event
	Meetings   []roster.Meeting
}

// NewState returns an empty tracker state.
func NewState() *State {
	return &State{Completion: make(map[string]bool)}
}

// Store persists tracker state as JSON documents in a SQLite key-value
// table.
type Store struct {
	DBPath string
	db     *sql.DB
}

// Open opens or creates the tracker state database.
func Open(path string) (*Store, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve state db path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return nil, fmt.Errorf("ensure state db dir: %w", err)
	}

	db, err := sql.Open("sqlite", absPath)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}

	store := &Store{DBPath: absPath, db: db}
	if err := store.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS tracker_state (
	key TEXT PRIMARY KEY,
	value TEXT
);
`)
	if err != nil {
		return fmt.Errorf("create state schema: %w", err)
	}
	return nil
}

// Load reads the full tracker state. A missing or malformed document falls
// back to its empty default and is reported as a warning; Load itself only
// fails when the database cannot be read at all.
func (s *Store) Load() (*State, []string, error) {
	state := NewState()
	var warnings []string

	if value, err := s.getValue(KeyCompletionStatus); err != nil {
		return nil, nil, err
	} else if value != "" {
		var completion map[string]bool
		if err := json.Unmarshal([]byte(value), &completion); err != nil {
			warnings = append(warnings, fmt.Sprintf("malformed %s document, starting empty: %v", KeyCompletionStatus, err))
		} else if completion != nil {
			state.Completion = completion
		}
	}

	if value, err := s.getValue(KeyEvents); err != nil {
		return nil, nil, err
	} else if value != "" {
		var events []roster.Event
		if err := json.Unmarshal([]byte(value), &events); err != nil {
			warnings = append(warnings, fmt.Sprintf("malformed %s document, starting empty: %v", KeyEvents, err))
		} else {
			state.Events = events
		}
	}

	if value, err := s.getValue(KeyMeetings); err != nil {
		return nil, nil, err
	} else if value != "" {
		var meetings []roster.Meeting
		if err := json.Unmarshal([]byte(value), &meetings); err != nil {
			warnings = append(warnings, fmt.Sprintf("malformed %s document, starting empty: %v", KeyMeetings, err))
		} else {
			state.Meetings = meetings
		}
	}

	return state, warnings, nil
}

// SaveCompletion writes the completion document.
func (s *Store) SaveCompletion(completion map[string]bool) error {
	if completion == nil {
		completion = map[string]bool{}
	}
	return s.setJSON(KeyCompletionStatus, completion)
}

// SaveEvents writes the events document.
func (s *Store) SaveEvents(events []roster.Event) error {
	if events == nil {
		events = []roster.Event{}
	}
	return s.setJSON(KeyEvents, events)
}

// SaveMeetings writes the meetings document.
func (s *Store) SaveMeetings(meetings []roster.Meeting) error {
	if meetings == nil {
		meetings = []roster.Meeting{}
	}
	return s.setJSON(KeyMeetings, meetings)
}

// Reset deletes all persisted documents.
func (s *Store) Reset() error {
	if _, err := s.db.Exec("DELETE FROM tracker_state"); err != nil {
		return fmt.Errorf("reset state: %w", err)
	}
	return nil
}

func (s *Store) setJSON(key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO tracker_state (key, value)
		VALUES (?, ?)
	`, key, string(data))
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (s *Store) getValue(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM tracker_state WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}
