package tracks

import "github.com/andywolf/skillseed/internal/skills"

// Code identifies a learning track.
type Code string

const (
	FullJourney Code = "a1_to_c1_365_days"
	Interview   Code = "interview_90_days"
	DevDaily    Code = "dev_daily_90_days"
)

// Codes returns the track codes in canonical order.
func Codes() []Code {
	return []Code{FullJourney, Interview, DevDaily}
}

// RequiredImportance is the importance weight at or above which a skill is
// required in a track that does not require all of its skills.
const RequiredImportance = 4

// WeightScale divides importance weights into track weights.
const WeightScale = 5.0

// Definition is one learning track from the manifest.
type Definition struct {
	Code           Code         `yaml:"code"`
	Name           string       `yaml:"name"`
	Description    string       `yaml:"description"`
	Heading        string       `yaml:"heading"`
	Label          string       `yaml:"label"`
	TargetMinLevel skills.Level `yaml:"target_min_level"`
	TargetMaxLevel skills.Level `yaml:"target_max_level"`
	AllRequired    bool         `yaml:"all_required"`
}

// Manifest represents the complete track manifest.
type Manifest struct {
	Tracks []Definition `yaml:"tracks"`
}

// Membership is a skill's place in one track.
type Membership struct {
	Skill     *skills.Skill
	SortOrder int
	Required  bool
	Weight    float64
}
