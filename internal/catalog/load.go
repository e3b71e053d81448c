package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CatalogFileName is the override file looked up inside the workspace
// catalog directory.
const CatalogFileName = "catalog.yml"

type rawCatalog struct {
	Levels   []rawLevel   `yaml:"levels"`
	Sections []rawSection `yaml:"sections"`
}

type rawLevel struct {
	Name          string `yaml:"name"`
	MinActivities *int   `yaml:"min_activities"`
	MaxActivities *int   `yaml:"max_activities"`
	ClassName     string `yaml:"class_name"`
}

type rawSection struct {
	Title          string        `yaml:"title"`
	Description    string        `yaml:"description"`
	IsPrerequisite bool          `yaml:"prerequisite"`
	Categories     []rawCategory `yaml:"categories"`
}

type rawCategory struct {
	Title        string           `yaml:"title"`
	ShortTitle   string           `yaml:"short_title"`
	Requirements []rawRequirement `yaml:"requirements"`
}

type rawRequirement struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Load returns the catalog for a workspace. A catalog.yml inside catalogDir
// overrides the built-in SHRM catalog; a missing directory or file falls back
// to the built-in one.
func Load(catalogDir string) (*Catalog, error) {
	if catalogDir == "" {
		return Builtin(), nil
	}
	path := filepath.Join(catalogDir, CatalogFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Builtin(), nil
	}
	return LoadFile(path)
}

// LoadFile loads and validates a catalog from a single YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseAndValidate(data, path)
}

// ParseAndValidate unmarshals and validates a YAML catalog document.
func ParseAndValidate(data []byte, source string) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, ValidationErrors{{
			File:    source,
			Field:   "yaml",
			Message: err.Error(),
		}}
	}

	var errs ValidationErrors
	cat := &Catalog{}

	for idx, rl := range raw.Levels {
		lvl := AwardLevel{
			Name:          rl.Name,
			MaxActivities: rl.MaxActivities,
			ClassName:     rl.ClassName,
		}
		if rl.MinActivities == nil {
			errs = append(errs, ValidationError{
				File:    source,
				Field:   fmt.Sprintf("levels[%d].min_activities", idx),
				Message: "min_activities is required",
			})
		} else {
			lvl.MinActivities = *rl.MinActivities
		}
		cat.Levels = append(cat.Levels, lvl)
	}

	for _, rs := range raw.Sections {
		sec := AwardSection{
			Title:          rs.Title,
			Description:    rs.Description,
			IsPrerequisite: rs.IsPrerequisite,
		}
		for _, rc := range rs.Categories {
			catg := RequirementCategory{
				Title:      rc.Title,
				ShortTitle: rc.ShortTitle,
			}
			for _, rr := range rc.Requirements {
				catg.Requirements = append(catg.Requirements, Requirement{
					ID:          rr.ID,
					Title:       rr.Title,
					Description: rr.Description,
				})
			}
			sec.Categories = append(sec.Categories, catg)
		}
		cat.Sections = append(cat.Sections, sec)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	if err := Validate(cat, source); err != nil {
		return nil, err
	}
	return cat, nil
}
