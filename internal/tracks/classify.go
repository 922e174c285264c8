package tracks

import (
	"strings"

	"github.com/andywolf/skillseed/internal/skills"
)

// BusinessTrack is the record track value that always qualifies a skill for
// the interview track.
const BusinessTrack = "business"

var interviewKeywords = []string{"job", "work", "career", "interview", "employment", "professional", "business", "cv", "resume"}

var devKeywords = []string{"tech", "computer", "software", "code", "programming", "debug", "developer", "engineer"}

// essentialCategories are foundational for every secondary track.
var essentialCategories = map[string]bool{
	"grammar":    true,
	"vocabulary": true,
	"speaking":   true,
	"writing":    true,
}

var interviewEssentialTerms = []string{"question", "talk", "express"}

var devEssentialTerms = []string{"read", "email", "document"}

// searchText is the lowercase text matched against keywords: name,
// description and code joined by spaces.
func searchText(s *skills.Skill) string {
	return strings.ToLower(skills.Text(s.Name) + " " + skills.Text(s.Description) + " " + s.Code)
}

// containsAny reports whether text contains any of the terms as a substring.
// Matches inside longer words count ("network" matches "work").
func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// IsInterview returns true if the skill is interview-related by keyword or
// by its business track.
func IsInterview(s *skills.Skill) bool {
	return containsAny(searchText(s), interviewKeywords) || s.Track == BusinessTrack
}

// IsDev returns true if the skill is developer-related by keyword.
func IsDev(s *skills.Skill) bool {
	return containsAny(searchText(s), devKeywords)
}

// IsEssentialForInterview returns true if the skill is foundational for
// interview preparation.
func IsEssentialForInterview(s *skills.Skill) bool {
	return essentialCategories[s.Category] || containsAny(searchText(s), interviewEssentialTerms)
}

// IsEssentialForDev returns true if the skill is foundational for daily
// developer communication.
func IsEssentialForDev(s *skills.Skill) bool {
	return essentialCategories[s.Category] || containsAny(searchText(s), devEssentialTerms)
}

// Classify returns every track the skill belongs to, in canonical order.
// The full journey track is always first; a skill can belong to all three.
func Classify(s *skills.Skill) []Code {
	codes := []Code{FullJourney}

	foundational := s.LevelMin.Foundational()

	if IsInterview(s) || (IsEssentialForInterview(s) && foundational) {
		codes = append(codes, Interview)
	}

	if IsDev(s) || (IsEssentialForDev(s) && foundational) {
		codes = append(codes, DevDaily)
	}

	return codes
}
