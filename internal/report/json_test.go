package report

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/andywolf/skillseed/internal/tracks"
)

func TestJSON(t *testing.T) {
	doc, err := JSON(Summary{
		Output:       "seed.sql",
		Skills:       3,
		Categories:   2,
		Examples:     5,
		Dependencies: 4,
		Tracks: []TrackCount{
			{Code: tracks.FullJourney, Label: "A1 to C1 (365 days)", Skills: 3},
			{Code: tracks.Interview, Label: "Interview (90 days)", Skills: 1},
		},
	})
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	if !gjson.Valid(doc) {
		t.Fatalf("JSON() produced invalid JSON: %s", doc)
	}

	checks := map[string]string{
		"output":          "seed.sql",
		"skills":          "3",
		"dependencies":    "4",
		"tracks.#":        "2",
		"tracks.0.code":   "a1_to_c1_365_days",
		"tracks.1.skills": "1",
	}
	for path, want := range checks {
		if got := gjson.Get(doc, path).String(); got != want {
			t.Errorf("%s = %q, want %q", path, got, want)
		}
	}
}

func TestJSON_NoTracks(t *testing.T) {
	doc, err := JSON(Summary{Output: "-"})
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	if n := gjson.Get(doc, "tracks.#").Int(); n != 0 {
		t.Errorf("tracks.# = %d, want 0", n)
	}
}
