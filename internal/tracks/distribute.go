package tracks

import "github.com/andywolf/skillseed/internal/skills"

// Distribution groups skills by track, keeping input order within each track.
type Distribution struct {
	members map[Code][]*skills.Skill
}

// Distribute classifies every skill and appends it to each of its tracks.
// The slice must stay alive and unmodified while the Distribution is used.
func Distribute(all []skills.Skill) *Distribution {
	d := &Distribution{members: make(map[Code][]*skills.Skill, len(Codes()))}
	for _, code := range Codes() {
		d.members[code] = []*skills.Skill{}
	}

	for i := range all {
		skill := &all[i]
		for _, code := range Classify(skill) {
			d.members[code] = append(d.members[code], skill)
		}
	}

	return d
}

// Skills returns the skills of a track in membership order.
func (d *Distribution) Skills(code Code) []*skills.Skill {
	return d.members[code]
}

// Count returns the number of skills in a track.
func (d *Distribution) Count(code Code) int {
	return len(d.members[code])
}

// Memberships returns the membership rows of a track: 1-based sort order,
// required flag and weight.
func (d *Distribution) Memberships(def Definition) []Membership {
	members := d.members[def.Code]
	out := make([]Membership, 0, len(members))
	for i, skill := range members {
		importance := skill.Importance()
		out = append(out, Membership{
			Skill:     skill,
			SortOrder: i + 1,
			Required:  def.AllRequired || importance >= RequiredImportance,
			Weight:    importance / WeightScale,
		})
	}
	return out
}
