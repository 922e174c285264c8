package skills

import "fmt"

// Level is a CEFR proficiency level.
type Level string

const (
	A1 Level = "a1"
	A2 Level = "a2"
	B1 Level = "b1"
	B2 Level = "b2"
	C1 Level = "c1"
)

// levelIDs is the level to id contract with the consuming schema.
var levelIDs = map[Level]int{
	A1: 1,
	A2: 2,
	B1: 3,
	B2: 4,
	C1: 5,
}

// Levels returns all levels in ascending order.
func Levels() []Level {
	return []Level{A1, A2, B1, B2, C1}
}

// ParseLevel validates a level string.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if _, ok := levelIDs[l]; !ok {
		return "", fmt.Errorf("unknown level %q (must be one of a1, a2, b1, b2, c1)", s)
	}
	return l, nil
}

// ID returns the schema id of the level, or 0 for an unknown level.
func (l Level) ID() int {
	return levelIDs[l]
}

// Foundational reports whether the level is a1, a2 or b1.
func (l Level) Foundational() bool {
	return l == A1 || l == A2 || l == B1
}

func (l Level) String() string {
	return string(l)
}
