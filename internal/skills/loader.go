package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	seederr "github.com/andywolf/skillseed/internal/errors"
	"github.com/andywolf/skillseed/internal/logging"
)

// FileExtension is the extension of level files.
const FileExtension = ".json"

// requiredFields lists the record fields that must be present, with the JSON
// types each accepts. Keys match exactly; differently cased keys are ignored.
var requiredFields = []struct {
	name  string
	types []gjson.Type
}{
	{"code", []gjson.Type{gjson.String}},
	{"name", []gjson.Type{gjson.String, gjson.Null}},
	{"description", []gjson.Type{gjson.String, gjson.Null}},
	{"category", []gjson.Type{gjson.String}},
	{"level_min", []gjson.Type{gjson.String}},
	{"level_max", []gjson.Type{gjson.String}},
	{"importance_weight", []gjson.Type{gjson.Number}},
	{"difficulty_weight", []gjson.Type{gjson.Number}},
	{"examples", []gjson.Type{gjson.JSON}},
	{"dependencies", []gjson.Type{gjson.JSON}},
}

// Loader reads the per-level skill files from a directory.
type Loader struct {
	Dir    string
	Levels []Level
}

// NewLoader creates a Loader for the given directory and level order.
// A nil levels slice means all levels from a1 to c1.
func NewLoader(dir string, levels []Level) *Loader {
	if levels == nil {
		levels = Levels()
	}
	return &Loader{Dir: dir, Levels: levels}
}

// Path returns the file path for a level.
func (l *Loader) Path(level Level) string {
	return filepath.Join(l.Dir, string(level)+FileExtension)
}

// Paths returns the file paths for all configured levels, in order.
func (l *Loader) Paths() []string {
	paths := make([]string, 0, len(l.Levels))
	for _, level := range l.Levels {
		paths = append(paths, l.Path(level))
	}
	return paths
}

// Load reads every level file and concatenates the records in level order,
// keeping each file's own ordering. The first failing file aborts the load.
func (l *Loader) Load() ([]Skill, error) {
	var all []Skill
	for _, path := range l.Paths() {
		skills, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		logging.With("file", filepath.Base(path)).Info("loaded skills", "count", len(skills))
		all = append(all, skills...)
	}
	return all, nil
}

// LoadFile reads and parses one level file.
func LoadFile(path string) ([]Skill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, seederr.InputUnreadable(path, err)
	}
	return ParseSkills(data, path)
}

// ParseSkills parses the contents of a level file. The document is either an
// array of skill objects or an object whose "skills" member is that array.
func ParseSkills(data []byte, source string) ([]Skill, error) {
	if !gjson.ValidBytes(data) {
		var v interface{}
		err := json.Unmarshal(data, &v)
		if err == nil {
			err = fmt.Errorf("invalid JSON document")
		}
		return nil, seederr.MalformedJSON(source, err)
	}

	root := gjson.ParseBytes(data)
	if root.IsObject() {
		wrapped := root.Get("skills")
		if !wrapped.Exists() {
			logging.Warn("no skills array in file", "file", source)
			return []Skill{}, nil
		}
		root = wrapped
	}
	if !root.IsArray() {
		return nil, seederr.MalformedJSON(source, fmt.Errorf("expected an array of skill objects"))
	}

	records := root.Array()
	skills := make([]Skill, 0, len(records))
	for i, rec := range records {
		skill, err := parseRecord(rec, source, i)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

func parseRecord(rec gjson.Result, source string, index int) (Skill, error) {
	if !rec.IsObject() {
		return Skill{}, seederr.InvalidField(source, index, "", "record is not an object")
	}
	if err := validateRecord(rec, source, index); err != nil {
		return Skill{}, err
	}

	skill := Skill{
		Code:             rec.Get("code").String(),
		Name:             nullableString(rec.Get("name")),
		Description:      nullableString(rec.Get("description")),
		Category:         rec.Get("category").String(),
		LevelMin:         Level(rec.Get("level_min").String()),
		LevelMax:         Level(rec.Get("level_max").String()),
		ImportanceWeight: json.Number(rec.Get("importance_weight").Raw),
		DifficultyWeight: json.Number(rec.Get("difficulty_weight").Raw),
		Track:            rec.Get("track").String(),
	}

	examples := rec.Get("examples").Array()
	skill.Examples = make([]*string, 0, len(examples))
	for _, ex := range examples {
		skill.Examples = append(skill.Examples, nullableString(ex))
	}

	deps := rec.Get("dependencies").Array()
	skill.Dependencies = make([]string, 0, len(deps))
	for _, dep := range deps {
		skill.Dependencies = append(skill.Dependencies, dep.String())
	}

	if _, err := ParseLevel(string(skill.LevelMin)); err != nil {
		return Skill{}, seederr.InvalidField(source, index, "level_min", err.Error())
	}
	if _, err := ParseLevel(string(skill.LevelMax)); err != nil {
		return Skill{}, seederr.InvalidField(source, index, "level_max", err.Error())
	}
	if skill.Track == "" {
		skill.Track = DefaultTrack
	}
	skill.Source = source

	return skill, nil
}

// validateRecord checks presence and JSON type of every required field, and
// the element types of the two array fields.
func validateRecord(rec gjson.Result, source string, index int) error {
	for _, field := range requiredFields {
		value := rec.Get(field.name)
		if !value.Exists() {
			return seederr.MissingField(source, index, field.name)
		}
		if !hasType(value, field.types) {
			return seederr.InvalidField(source, index, field.name, fmt.Sprintf("unexpected JSON type %s", value.Type))
		}
	}

	examples := rec.Get("examples")
	if !examples.IsArray() {
		return seederr.InvalidField(source, index, "examples", "expected an array")
	}
	for _, ex := range examples.Array() {
		if ex.Type != gjson.String && ex.Type != gjson.Null {
			return seederr.InvalidField(source, index, "examples", "entries must be strings")
		}
	}

	deps := rec.Get("dependencies")
	if !deps.IsArray() {
		return seederr.InvalidField(source, index, "dependencies", "expected an array")
	}
	for _, dep := range deps.Array() {
		if dep.Type != gjson.String {
			return seederr.InvalidField(source, index, "dependencies", "entries must be skill codes")
		}
	}

	if track := rec.Get("track"); track.Exists() && track.Type != gjson.String && track.Type != gjson.Null {
		return seederr.InvalidField(source, index, "track", "expected a string")
	}

	return nil
}

// nullableString returns nil for a JSON null and the string value otherwise.
func nullableString(value gjson.Result) *string {
	if value.Type == gjson.Null {
		return nil
	}
	return StringPtr(value.String())
}

func hasType(value gjson.Result, types []gjson.Type) bool {
	for _, t := range types {
		if value.Type == t {
			return true
		}
	}
	return false
}
