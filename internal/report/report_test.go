package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"merittrack/internal/progress"
	"merittrack/internal/roster"
)

func sampleReport(asOf string, completed int) Report {
	return Report{
		SchemaVersion: ReportSchemaVersion,
		AsOf:          asOf,
		Progress: progress.Summary{
			TotalPrerequisites:     8,
			CompletedPrerequisites: 8,
			CompletedActivities:    completed,
			TotalActivities:        12,
		},
		Attendance: []roster.AttendanceRecord{
			{Name: "Alice", EventCount: 1, TotalCount: 1},
		},
		PDCs: roster.PDCSummary{EventsOffering: 1, TotalPDCs: 2},
	}
}

func TestWriteAndLoadReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2026-02-10.json")

	if err := WriteReport(path, sampleReport("2026-02-10", 5)); err != nil {
		t.Fatalf("write: %v", err)
	}

	rep, err := LoadReport(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rep.AsOf != "2026-02-10" || rep.Progress.CompletedActivities != 5 {
		t.Fatalf("round trip mismatch: %+v", rep)
	}
	if len(rep.Attendance) != 1 || rep.Attendance[0].Name != "Alice" {
		t.Fatalf("attendance mismatch: %+v", rep.Attendance)
	}
}

func TestWriteReportRequiresAsOf(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteReport(path, Report{}); err == nil {
		t.Fatal("expected error for missing as_of")
	}
}

func TestLoadReportRejectsUnknownSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"schema_version": 99, "as_of": "2026-01-01", "progress": {}, "attendance": null, "pdcs": {}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadReport(path); err == nil || !strings.Contains(err.Error(), "schema_version") {
		t.Fatalf("expected schema error, got %v", err)
	}
}

func TestReportPathForDate(t *testing.T) {
	asOf := time.Date(2026, 2, 10, 15, 30, 0, 0, time.UTC)
	got := ReportPathForDate("reports", asOf)
	if got != filepath.Join("reports", "2026-02-10.json") {
		t.Fatalf("path = %s", got)
	}
}

func TestLatestReportPaths(t *testing.T) {
	dir := t.TempDir()
	for _, date := range []string{"2026-01-05", "2026-03-01", "2026-02-10"} {
		path := filepath.Join(dir, date+".json")
		if err := WriteReport(path, sampleReport(date, 4)); err != nil {
			t.Fatal(err)
		}
	}

	paths, err := LatestReportPaths(dir, 2)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %v", paths)
	}
	if filepath.Base(paths[0]) != "2026-02-10.json" || filepath.Base(paths[1]) != "2026-03-01.json" {
		t.Fatalf("expected two newest in order, got %v", paths)
	}

	if _, err := LatestReportPaths(t.TempDir(), 2); err == nil {
		t.Fatal("expected error for empty dir")
	}
}

func TestDiffReports(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "2026-02-10.json")
	newPath := filepath.Join(dir, "2026-02-11.json")

	if err := WriteReport(oldPath, sampleReport("2026-02-10", 4)); err != nil {
		t.Fatal(err)
	}
	if err := WriteReport(newPath, sampleReport("2026-02-11", 5)); err != nil {
		t.Fatal(err)
	}

	diff, err := DiffReports(oldPath, newPath)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	if !strings.Contains(diff, `"completed_activities": 5`) {
		t.Fatalf("diff missing activity change:\n%s", diff)
	}

	same, err := DiffReports(oldPath, oldPath)
	if err != nil {
		t.Fatalf("self diff: %v", err)
	}
	if same != "" {
		t.Fatalf("expected empty diff, got:\n%s", same)
	}
}
