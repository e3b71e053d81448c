package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinIsValid(t *testing.T) {
	cat := Builtin()
	if err := Validate(cat, "builtin"); err != nil {
		t.Fatalf("builtin catalog invalid: %v", err)
	}

	activity := cat.ActivitySection()
	if activity == nil {
		t.Fatal("builtin catalog has no activity section")
	}
	total := 0
	for _, category := range activity.Categories {
		total += len(category.Requirements)
	}
	if total != 12 {
		t.Fatalf("builtin activities = %d, want 12", total)
	}
	if got := len(cat.Levels); got != 3 {
		t.Fatalf("builtin levels = %d, want 3", got)
	}
	top := cat.Levels[len(cat.Levels)-1]
	if top.MaxActivities == nil || *top.MaxActivities != total {
		t.Fatalf("top level upper bound = %v, want %d", top.MaxActivities, total)
	}
}

func TestRequirementLookup(t *testing.T) {
	cat := Builtin()
	req, ok := cat.RequirementLookup("2B.7")
	if !ok || req.Title != "Fundraising Plan" {
		t.Fatalf("lookup 2B.7 = %+v, %v", req, ok)
	}
	if _, ok := cat.RequirementLookup("9.9"); ok {
		t.Fatal("expected lookup miss for unknown id")
	}
}

func TestValidateRejectsMultipleActivitySections(t *testing.T) {
	cat := &Catalog{
		Levels: []AwardLevel{{Name: "Only", MinActivities: 1}},
		Sections: []AwardSection{
			{Title: "A", IsPrerequisite: false},
			{Title: "B", IsPrerequisite: false},
		},
	}
	err := Validate(cat, "test")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "exactly one activity section") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	cat := &Catalog{
		Levels: []AwardLevel{{Name: "Only", MinActivities: 1}},
		Sections: []AwardSection{
			{
				Title:          "Activities",
				IsPrerequisite: false,
				Categories: []RequirementCategory{{
					Title: "Cat",
					Requirements: []Requirement{
						{ID: "X.1", Title: "one"},
						{ID: "X.1", Title: "two"},
					},
				}},
			},
		},
	}
	err := Validate(cat, "test")
	if err == nil || !strings.Contains(err.Error(), "already defined") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestValidateLevelOrdering(t *testing.T) {
	cases := []struct {
		name    string
		levels  []AwardLevel
		wantErr string
	}{
		{
			name:    "none",
			levels:  nil,
			wantErr: "at least one award level",
		},
		{
			name: "descending",
			levels: []AwardLevel{
				{Name: "High", MinActivities: 5, MaxActivities: intPtr(8)},
				{Name: "Low", MinActivities: 2, MaxActivities: intPtr(4)},
			},
			wantErr: "levels must ascend",
		},
		{
			name: "gap",
			levels: []AwardLevel{
				{Name: "Low", MinActivities: 1, MaxActivities: intPtr(2)},
				{Name: "High", MinActivities: 5, MaxActivities: intPtr(8)},
			},
			wantErr: "not contiguous",
		},
		{
			name: "open middle",
			levels: []AwardLevel{
				{Name: "Low", MinActivities: 1},
				{Name: "High", MinActivities: 5, MaxActivities: intPtr(8)},
			},
			wantErr: "only the highest level may be open-ended",
		},
		{
			name: "inverted range",
			levels: []AwardLevel{
				{Name: "Low", MinActivities: 4, MaxActivities: intPtr(2)},
			},
			wantErr: "upper bound",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := validateLevels(tc.levels, "test")
			if len(errs) == 0 {
				t.Fatal("expected validation errors")
			}
			if !strings.Contains(errs.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", errs.Error(), tc.wantErr)
			}
		})
	}
}

func TestParseAndValidateYAML(t *testing.T) {
	yml := `
levels:
  - name: Bronze
    min_activities: 1
    max_activities: 2
  - name: Gold
    min_activities: 3
sections:
  - title: Basics
    prerequisite: true
    categories:
      - title: Required
        requirements:
          - id: "1.1"
            title: Sign up
  - title: Activities
    prerequisite: false
    categories:
      - title: Outreach
        short_title: Out
        requirements:
          - id: "2.1"
            title: Host a session
          - id: "2.2"
            title: Publish notes
`
	cat, err := ParseAndValidate([]byte(yml), "test.yml")
	if err != nil {
		t.Fatalf("expected valid catalog, got %v", err)
	}
	if len(cat.Levels) != 2 || cat.Levels[1].MaxActivities != nil {
		t.Fatalf("levels = %+v", cat.Levels)
	}
	activity := cat.ActivitySection()
	if activity == nil || activity.Categories[0].DisplayName() != "Out" {
		t.Fatalf("activity section = %+v", activity)
	}
}

func TestParseAndValidateBadYAML(t *testing.T) {
	_, err := ParseAndValidate([]byte("levels: {not: [valid"), "bad.yml")
	if err == nil {
		t.Fatal("expected error for malformed yaml")
	}
	if _, ok := err.(ValidationErrors); !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
}

func TestParseAndValidateMissingMin(t *testing.T) {
	yml := `
levels:
  - name: Bronze
sections:
  - title: Activities
    prerequisite: false
`
	_, err := ParseAndValidate([]byte(yml), "test.yml")
	if err == nil || !strings.Contains(err.Error(), "min_activities is required") {
		t.Fatalf("expected min_activities error, got %v", err)
	}
}

func TestLoadFallsBackToBuiltin(t *testing.T) {
	dir := t.TempDir()

	cat, err := Load(dir)
	if err != nil {
		t.Fatalf("load with no override: %v", err)
	}
	if len(cat.Sections) != 3 {
		t.Fatalf("expected builtin catalog, got %d sections", len(cat.Sections))
	}

	cat, err = Load("")
	if err != nil || len(cat.Sections) != 3 {
		t.Fatalf("load with empty dir: %v, %d sections", err, len(cat.Sections))
	}
}

func TestLoadOverrideFile(t *testing.T) {
	dir := t.TempDir()
	yml := `
levels:
  - name: Only
    min_activities: 1
sections:
  - title: Activities
    prerequisite: false
    categories:
      - title: Cat
        requirements:
          - id: "A.1"
            title: Do the thing
`
	if err := os.WriteFile(filepath.Join(dir, CatalogFileName), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(dir)
	if err != nil {
		t.Fatalf("load override: %v", err)
	}
	if len(cat.Sections) != 1 || cat.Sections[0].Title != "Activities" {
		t.Fatalf("override not applied: %+v", cat.Sections)
	}
}
