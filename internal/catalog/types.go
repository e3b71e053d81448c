package catalog

// Requirement is a single checklist item. The ID is the stable key used in
// the persisted completion map.
type Requirement struct {
	ID          string
	Title       string
	Description string
}

// RequirementCategory groups requirements for display and per-category
// progress. ShortTitle, when set, is the compact name used in charts and
// progress output; it falls back to Title.
type RequirementCategory struct {
	Title        string
	ShortTitle   string
	Requirements []Requirement
}

// DisplayName returns the compact category name for derived output.
func (c RequirementCategory) DisplayName() string {
	if c.ShortTitle != "" {
		return c.ShortTitle
	}
	return c.Title
}

// AwardSection is a top-level section of the catalog. Exactly one section in
// a valid catalog has IsPrerequisite=false: its requirements are the scored
// activities. All requirements in prerequisite sections must be complete
// before any award level is granted.
type AwardSection struct {
	Title          string
	Description    string
	Categories     []RequirementCategory
	IsPrerequisite bool
}

// AwardLevel is one tier of the award. Levels are ordered ascending by
// MinActivities; MaxActivities is nil only for an open-ended top tier.
type AwardLevel struct {
	Name          string
	MinActivities int
	MaxActivities *int
	ClassName     string
}

// Catalog is the immutable requirement tree plus the ordered award levels.
type Catalog struct {
	Sections []AwardSection
	Levels   []AwardLevel
}

// ActivitySection returns the single non-prerequisite section, or nil if the
// catalog has none.
func (c *Catalog) ActivitySection() *AwardSection {
	for i := range c.Sections {
		if !c.Sections[i].IsPrerequisite {
			return &c.Sections[i]
		}
	}
	return nil
}

// RequirementLookup returns the requirement for the given id, if present.
func (c *Catalog) RequirementLookup(id string) (Requirement, bool) {
	for _, sec := range c.Sections {
		for _, cat := range sec.Categories {
			for _, req := range cat.Requirements {
				if req.ID == id {
					return req, true
				}
			}
		}
	}
	return Requirement{}, false
}
