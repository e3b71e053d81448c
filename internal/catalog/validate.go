package catalog

import (
	"fmt"
	"strings"
)

// ValidationError captures a single field-specific validation issue.
type ValidationError struct {
	File    string
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.File, e.Field, e.Message)
}

// ValidationErrors aggregates multiple validation problems.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "\n")
}

// Validate checks catalog invariants: exactly one activity section, unique
// requirement ids, and award levels that ascend contiguously without
// overlapping ranges. The source name is used in error messages.
func Validate(c *Catalog, source string) error {
	var errs ValidationErrors

	activitySections := 0
	for _, sec := range c.Sections {
		if !sec.IsPrerequisite {
			activitySections++
		}
	}
	if activitySections != 1 {
		errs = append(errs, ValidationError{
			File:    source,
			Field:   "sections",
			Message: fmt.Sprintf("catalog must have exactly one activity section, found %d", activitySections),
		})
	}

	seen := make(map[string]string)
	for sIdx, sec := range c.Sections {
		if sec.Title == "" {
			errs = append(errs, ValidationError{
				File:    source,
				Field:   fmt.Sprintf("sections[%d].title", sIdx),
				Message: "title is required",
			})
		}
		for cIdx, cat := range sec.Categories {
			for rIdx, req := range cat.Requirements {
				path := fmt.Sprintf("sections[%d].categories[%d].requirements[%d]", sIdx, cIdx, rIdx)
				if req.ID == "" {
					errs = append(errs, ValidationError{
						File:    source,
						Field:   path + ".id",
						Message: "id is required",
					})
					continue
				}
				if prev, exists := seen[req.ID]; exists {
					errs = append(errs, ValidationError{
						File:    source,
						Field:   path + ".id",
						Message: fmt.Sprintf("requirement id %q already defined at %s", req.ID, prev),
					})
					continue
				}
				seen[req.ID] = path
			}
		}
	}

	errs = append(errs, validateLevels(c.Levels, source)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateLevels(levels []AwardLevel, source string) ValidationErrors {
	var errs ValidationErrors

	if len(levels) == 0 {
		return ValidationErrors{{
			File:    source,
			Field:   "levels",
			Message: "at least one award level is required",
		}}
	}

	for idx, lvl := range levels {
		path := fmt.Sprintf("levels[%d]", idx)
		if lvl.Name == "" {
			errs = append(errs, ValidationError{
				File:    source,
				Field:   path + ".name",
				Message: "name is required",
			})
		}
		if lvl.MinActivities < 0 {
			errs = append(errs, ValidationError{
				File:    source,
				Field:   path + ".min_activities",
				Message: "must be non-negative",
			})
		}
		if lvl.MaxActivities != nil && *lvl.MaxActivities < lvl.MinActivities {
			errs = append(errs, ValidationError{
				File:    source,
				Field:   path + ".max_activities",
				Message: fmt.Sprintf("upper bound %d is below min_activities %d", *lvl.MaxActivities, lvl.MinActivities),
			})
		}
		if lvl.MaxActivities == nil && idx != len(levels)-1 {
			errs = append(errs, ValidationError{
				File:    source,
				Field:   path + ".max_activities",
				Message: "only the highest level may be open-ended",
			})
		}
		if idx == 0 {
			continue
		}
		prev := levels[idx-1]
		if lvl.MinActivities <= prev.MinActivities {
			errs = append(errs, ValidationError{
				File:    source,
				Field:   path + ".min_activities",
				Message: fmt.Sprintf("levels must ascend: %d does not exceed %d", lvl.MinActivities, prev.MinActivities),
			})
		}
		if prev.MaxActivities != nil && lvl.MinActivities != *prev.MaxActivities+1 {
			errs = append(errs, ValidationError{
				File:    source,
				Field:   path + ".min_activities",
				Message: fmt.Sprintf("range is not contiguous: expected %d, got %d", *prev.MaxActivities+1, lvl.MinActivities),
			})
		}
	}

	return errs
}
