package tracks

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/andywolf/skillseed/internal/skills"
)

//go:embed manifest.yaml
var embeddedManifest string

// LoadManifest parses the embedded track manifest and validates it.
func LoadManifest() (*Manifest, error) {
	return ParseManifest([]byte(embeddedManifest))
}

// ParseManifest parses and validates a track manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse track manifest: %w", err)
	}
	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("invalid track manifest: %w", err)
	}
	return &manifest, nil
}

// Validate checks that the manifest defines exactly the known tracks, in
// canonical order, with valid target levels.
func (m *Manifest) Validate() error {
	codes := Codes()
	if len(m.Tracks) != len(codes) {
		return fmt.Errorf("expected %d tracks, got %d", len(codes), len(m.Tracks))
	}

	for i, def := range m.Tracks {
		if def.Code != codes[i] {
			return fmt.Errorf("track %d: expected code %s, got %q", i+1, codes[i], def.Code)
		}
		if def.Name == "" {
			return fmt.Errorf("track %s: name is required", def.Code)
		}
		if _, err := skills.ParseLevel(string(def.TargetMinLevel)); err != nil {
			return fmt.Errorf("track %s: target_min_level: %w", def.Code, err)
		}
		if _, err := skills.ParseLevel(string(def.TargetMaxLevel)); err != nil {
			return fmt.Errorf("track %s: target_max_level: %w", def.Code, err)
		}
		if def.TargetMinLevel.ID() > def.TargetMaxLevel.ID() {
			return fmt.Errorf("track %s: target_min_level above target_max_level", def.Code)
		}
	}

	return nil
}

// Get returns the definition for a track code.
func (m *Manifest) Get(code Code) (Definition, bool) {
	for _, def := range m.Tracks {
		if def.Code == code {
			return def, true
		}
	}
	return Definition{}, false
}
