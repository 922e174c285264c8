package skills

import "sort"

// Catalog is the ordered set of loaded skills with the lookups derived from
// it. It is built once per run and never mutated.
type Catalog struct {
	skills      []Skill
	categories  []string
	categoryIDs map[string]int
}

// NewCatalog builds a Catalog over skills, which must already be in input
// order. Category ids are assigned 1..N over the alphabetically sorted
// distinct categories.
func NewCatalog(skills []Skill) *Catalog {
	seen := make(map[string]bool)
	var categories []string
	for _, s := range skills {
		if !seen[s.Category] {
			seen[s.Category] = true
			categories = append(categories, s.Category)
		}
	}
	sort.Strings(categories)

	ids := make(map[string]int, len(categories))
	for i, c := range categories {
		ids[c] = i + 1
	}

	return &Catalog{
		skills:      skills,
		categories:  categories,
		categoryIDs: ids,
	}
}

// Skills returns the skills in input order.
func (c *Catalog) Skills() []Skill {
	return c.skills
}

// Len returns the number of skills.
func (c *Catalog) Len() int {
	return len(c.skills)
}

// Categories returns the distinct categories, sorted.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// CategoryID returns the id assigned to a category.
func (c *Catalog) CategoryID(category string) (int, bool) {
	id, ok := c.categoryIDs[category]
	return id, ok
}

// TotalExamples returns the number of examples across all skills.
func (c *Catalog) TotalExamples() int {
	n := 0
	for _, s := range c.skills {
		n += len(s.Examples)
	}
	return n
}

// TotalDependencies returns the number of declared dependency entries across
// all skills, including entries that name no known skill.
func (c *Catalog) TotalDependencies() int {
	n := 0
	for _, s := range c.skills {
		n += len(s.Dependencies)
	}
	return n
}

// DuplicateCodes returns codes declared by more than one skill, in order of
// their second occurrence.
func (c *Catalog) DuplicateCodes() []string {
	seen := make(map[string]int)
	var dups []string
	for _, s := range c.skills {
		seen[s.Code]++
		if seen[s.Code] == 2 {
			dups = append(dups, s.Code)
		}
	}
	return dups
}
