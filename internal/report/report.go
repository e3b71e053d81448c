package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"merittrack/internal/progress"
	"merittrack/internal/roster"
)

const ReportSchemaVersion = 1

// Report is a dated snapshot of the derived tracker view: award progress,
// attendance totals and PDC credits. It captures derived output only, never
// raw state.
type Report struct {
	SchemaVersion int                       `json:"schema_version"`
	AsOf          string                    `json:"as_of"`
	Progress      progress.Summary          `json:"progress"`
	Attendance    []roster.AttendanceRecord `json:"attendance"`
	PDCs          roster.PDCSummary         `json:"pdcs"`
}

// WriteReport writes the report atomically via a temp file.
func WriteReport(path string, rep Report) error {
	if path == "" {
		return fmt.Errorf("report path is required")
	}
	if rep.AsOf == "" {
		return fmt.Errorf("report as_of is required")
	}
	rep.SchemaVersion = ReportSchemaVersion

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure report dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp report: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename report: %w", err)
	}
	return nil
}

// LoadReport reads a previously written report.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var rep Report
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rep); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	if rep.SchemaVersion != ReportSchemaVersion {
		return nil, fmt.Errorf("unsupported report schema_version %d", rep.SchemaVersion)
	}
	if rep.AsOf == "" {
		return nil, fmt.Errorf("report missing as_of")
	}
	return &rep, nil
}

// ReportPathForDate returns the canonical dated report path.
func ReportPathForDate(dir string, asOf time.Time) string {
	date := asOf.UTC().Format("2006-01-02")
	return filepath.Join(dir, date+".json")
}

// LatestReportPaths returns up to n newest report paths, newest last.
func LatestReportPaths(dir string, n int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read reports dir: %w", err)
	}
	var candidates []string
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		name := ent.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		// YYYY-MM-DD.json compares lexicographically in chronological order.
		candidates = append(candidates, filepath.Join(dir, name))
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no reports found in %s", dir)
	}
	sort.Strings(candidates)
	if len(candidates) > n {
		candidates = candidates[len(candidates)-n:]
	}
	return candidates, nil
}

// DiffReports renders a unified diff between two report files. An empty
// string means the derived view did not change.
func DiffReports(oldPath, newPath string) (string, error) {
	oldBytes, err := os.ReadFile(oldPath)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", oldPath, err)
	}
	newBytes, err := os.ReadFile(newPath)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", newPath, err)
	}

	diff := difflib.UnifiedDiff{
		A:        strings.Split(string(oldBytes), "\n"),
		B:        strings.Split(string(newBytes), "\n"),
		FromFile: filepath.Base(oldPath),
		ToFile:   filepath.Base(newPath),
		Context:  3,
	}
	diffText, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff reports: %w", err)
	}
	if strings.TrimSpace(diffText) == "" {
		return "", nil
	}
	return diffText, nil
}
