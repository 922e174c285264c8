package report

import (
	"fmt"

	"github.com/tidwall/sjson"
)

// JSON renders the summary as a JSON object for scripts.
func JSON(s Summary) (string, error) {
	doc := "{}"
	var err error

	set := func(path string, value interface{}) {
		if err != nil {
			return
		}
		doc, err = sjson.Set(doc, path, value)
	}

	set("output", s.Output)
	set("skills", s.Skills)
	set("categories", s.Categories)
	set("examples", s.Examples)
	set("dependencies", s.Dependencies)
	set("tracks", []interface{}{})
	for i, t := range s.Tracks {
		set(fmt.Sprintf("tracks.%d.code", i), string(t.Code))
		set(fmt.Sprintf("tracks.%d.label", i), t.Label)
		set(fmt.Sprintf("tracks.%d.skills", i), t.Skills)
	}

	if err != nil {
		return "", fmt.Errorf("failed to encode summary: %w", err)
	}
	return doc, nil
}
