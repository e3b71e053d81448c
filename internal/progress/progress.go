package progress

import "merittrack/internal/catalog"

// CategoryProgress is per-category completion within the activity section.
type CategoryProgress struct {
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// Summary is the derived award progress for one completion snapshot.
type Summary struct {
	TotalPrerequisites     int                  `json:"total_prerequisites"`
	CompletedPrerequisites int                  `json:"completed_prerequisites"`
	CompletedActivities    int                  `json:"completed_activities"`
	TotalActivities        int                  `json:"total_activities"`
	CategoryProgress       []CategoryProgress   `json:"category_progress"`
	CurrentLevel           *catalog.AwardLevel  `json:"current_level,omitempty"`
}

// PrerequisitesMet reports whether every prerequisite requirement is
// complete. An empty prerequisite set counts as met (0 of 0).
func (s Summary) PrerequisitesMet() bool {
	return s.CompletedPrerequisites == s.TotalPrerequisites
}

// Compute derives award progress from the catalog and a completion snapshot.
// It is total over any well-formed catalog: completion keys that do not
// appear in the catalog are ignored, and missing keys count as incomplete.
func Compute(cat *catalog.Catalog, completion map[string]bool) Summary {
	summary := Summary{}

	for _, sec := range cat.Sections {
		if !sec.IsPrerequisite {
			continue
		}
		for _, category := range sec.Categories {
			for _, req := range category.Requirements {
				summary.TotalPrerequisites++
				if completion[req.ID] {
					summary.CompletedPrerequisites++
				}
			}
		}
	}

	if activity := cat.ActivitySection(); activity != nil {
		for _, category := range activity.Categories {
			cp := CategoryProgress{
				Name:  category.DisplayName(),
				Total: len(category.Requirements),
			}
			for _, req := range category.Requirements {
				if completion[req.ID] {
					cp.Completed++
				}
			}
			summary.TotalActivities += cp.Total
			summary.CompletedActivities += cp.Completed
			summary.CategoryProgress = append(summary.CategoryProgress, cp)
		}
	}

	if summary.PrerequisitesMet() {
		summary.CurrentLevel = levelFor(cat.Levels, summary.CompletedActivities)
	}
	return summary
}

// levelFor returns the highest pre-ordered level whose threshold is met, or
// nil when the count is below the lowest threshold.
func levelFor(levels []catalog.AwardLevel, completedActivities int) *catalog.AwardLevel {
	for i := len(levels) - 1; i >= 0; i-- {
		if completedActivities >= levels[i].MinActivities {
			lvl := levels[i]
			return &lvl
		}
	}
	return nil
}
