package skills

import "encoding/json"

// DefaultTrack is the track value assigned when a record has none.
const DefaultTrack = "general"

// Skill is one skill-definition record from a level file.
type Skill struct {
	Code        string  `json:"code"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    string  `json:"category"`
	LevelMin    Level   `json:"level_min"`
	LevelMax    Level   `json:"level_max"`

	// Weights are kept as the literal from the input so they can be
	// emitted verbatim.
	ImportanceWeight json.Number `json:"importance_weight"`
	DifficultyWeight json.Number `json:"difficulty_weight"`

	Track        string    `json:"track,omitempty"`
	Examples     []*string `json:"examples"`
	Dependencies []string  `json:"dependencies"`

	// Source is the file the record was read from.
	Source string `json:"-"`
}

// Importance returns the importance weight as a float.
// Values are validated as numbers at load time.
func (s *Skill) Importance() float64 {
	f, _ := s.ImportanceWeight.Float64()
	return f
}

// Text returns the value of an optional text field, or "" for null.
func Text(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
