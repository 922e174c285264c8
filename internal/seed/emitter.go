package seed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andywolf/skillseed/internal/skills"
	"github.com/andywolf/skillseed/internal/tracks"
)

const (
	rule = "-- ========================================================="
	now  = "NOW()"
)

// Table names of the consuming schema.
const (
	TableSkills            = "tb_skills"
	TableSkillExamples     = "tb_skill_examples"
	TableSkillDependencies = "tb_skill_dependencies"
	TableLearningTracks    = "tb_learning_tracks"
	TableTrackSkills       = "tb_learning_track_skills"
)

var (
	skillColumns      = []string{"id", "code", "name", "description", "category_id", "level_min_id", "level_max_id", "importance_weight", "difficulty_weight", "created_at", "updated_at"}
	exampleColumns    = []string{"skill_id", "example", "sort_order", "created_at", "updated_at"}
	dependencyColumns = []string{"skill_id", "dependency_skill_id", "created_at", "updated_at"}
	trackColumns      = []string{"id", "code", "name", "description", "target_min_level_id", "target_max_level_id", "created_at", "updated_at"}
	membershipColumns = []string{"learning_track_id", "skill_id", "sort_order", "is_required", "track_weight", "created_at", "updated_at"}
)

// Stats counts the rows of one render.
type Stats struct {
	Skills              int
	Examples            int
	Dependencies        int
	DroppedDependencies int
	Tracks              int
	Memberships         int
}

// Result is a rendered seed.
type Result struct {
	SQL   string
	Stats Stats

	// SkillIDs maps each skill code to its generated id. When codes repeat,
	// the last skill with the code wins.
	SkillIDs map[string]string

	// TrackIDs maps each track code to its generated id.
	TrackIDs map[tracks.Code]string
}

// Emitter renders seeds.
type Emitter struct {
	manifest *tracks.Manifest
	ids      IDSource
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithIDSource sets the identifier source.
func WithIDSource(ids IDSource) Option {
	return func(e *Emitter) {
		e.ids = ids
	}
}

// NewEmitter creates an Emitter for the given track manifest. Identifiers are
// random UUIDs unless WithIDSource is given.
func NewEmitter(manifest *tracks.Manifest, opts ...Option) *Emitter {
	e := &Emitter{
		manifest: manifest,
		ids:      UUIDSource{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render builds the complete seed for a catalog and its track distribution.
// The distribution must have been built from the catalog's skills.
func (e *Emitter) Render(catalog *skills.Catalog, dist *tracks.Distribution) (*Result, error) {
	r := &renderer{
		emitter: e,
		catalog: catalog,
		result: &Result{
			SkillIDs: make(map[string]string, catalog.Len()),
			TrackIDs: make(map[tracks.Code]string, len(e.manifest.Tracks)),
		},
	}

	r.header()
	if err := r.skillRows(); err != nil {
		return nil, err
	}
	r.exampleRows()
	r.dependencyRows()
	r.trackRows()
	r.membershipRows(dist)

	r.result.SQL = strings.Join(r.lines, "\n") + "\n"
	return r.result, nil
}

// renderer holds the state of one Render call.
type renderer struct {
	emitter *Emitter
	catalog *skills.Catalog
	result  *Result
	lines   []string
}

func (r *renderer) add(lines ...string) {
	r.lines = append(r.lines, lines...)
}

// banner adds a ruled section title. A leading blank line separates it from
// the previous section unless it opens the file.
func (r *renderer) banner(title string) {
	if len(r.lines) > 0 {
		r.add("")
	}
	r.add(rule, "-- "+title, rule, "")
}

// section adds a blank line and a comment line.
func (r *renderer) section(comment string) {
	r.add("", comment)
}

func (r *renderer) header() {
	r.banner("Seed Data: Skills System")

	r.add("-- 1) CEFR Levels (using schema IDs 1-5)")
	for _, level := range skills.Levels() {
		r.add(fmt.Sprintf("--   %d = %s", level.ID(), level))
	}

	r.section("-- 2) Skill Categories (using schema IDs)")
	for _, category := range r.catalog.Categories() {
		id, _ := r.catalog.CategoryID(category)
		r.add(fmt.Sprintf("--   %d = %s", id, category))
	}
}

func (r *renderer) skillRows() error {
	r.section("-- 3) Skills")

	for i := range r.catalog.Skills() {
		skill := &r.catalog.Skills()[i]

		categoryID, ok := r.catalog.CategoryID(skill.Category)
		if !ok {
			return fmt.Errorf("skill %s: category %q has no id", skill.Code, skill.Category)
		}
		minID, maxID := skill.LevelMin.ID(), skill.LevelMax.ID()
		if minID == 0 || maxID == 0 {
			return fmt.Errorf("skill %s: unknown level range %s..%s", skill.Code, skill.LevelMin, skill.LevelMax)
		}

		id := r.emitter.ids.NewID()
		r.result.SkillIDs[skill.Code] = id

		r.add(Insert(TableSkills, skillColumns,
			Quote(id),
			Quote(skill.Code),
			QuoteNullable(skill.Name),
			QuoteNullable(skill.Description),
			strconv.Itoa(categoryID),
			strconv.Itoa(minID),
			strconv.Itoa(maxID),
			skill.ImportanceWeight.String(),
			skill.DifficultyWeight.String(),
			now, now,
		))
		r.result.Stats.Skills++
	}

	return nil
}

func (r *renderer) exampleRows() {
	r.section("-- 4) Skill Examples")

	for _, skill := range r.catalog.Skills() {
		skillID := r.result.SkillIDs[skill.Code]
		for i, example := range skill.Examples {
			r.add(Insert(TableSkillExamples, exampleColumns,
				Quote(skillID),
				QuoteNullable(example),
				strconv.Itoa(i+1),
				now, now,
			))
			r.result.Stats.Examples++
		}
	}
}

// dependencyRows emits one row per dependency naming a known skill code.
// Unknown codes are dropped without error.
func (r *renderer) dependencyRows() {
	r.section("-- 5) Skill Dependencies")

	for _, skill := range r.catalog.Skills() {
		skillID := r.result.SkillIDs[skill.Code]
		for _, dep := range skill.Dependencies {
			depID, ok := r.result.SkillIDs[dep]
			if !ok {
				r.result.Stats.DroppedDependencies++
				continue
			}
			r.add(Insert(TableSkillDependencies, dependencyColumns,
				Quote(skillID),
				Quote(depID),
				now, now,
			))
			r.result.Stats.Dependencies++
		}
	}
}

func (r *renderer) trackRows() {
	r.banner("Learning Tracks")

	defs := r.emitter.manifest.Tracks
	for _, def := range defs {
		r.result.TrackIDs[def.Code] = r.emitter.ids.NewID()
	}

	for i, def := range defs {
		if i > 0 {
			r.add("")
		}
		r.add(fmt.Sprintf("-- Track %d: %s", i+1, def.Heading))
		r.add(Insert(TableLearningTracks, trackColumns,
			Quote(r.result.TrackIDs[def.Code]),
			Quote(string(def.Code)),
			Quote(def.Name),
			Quote(def.Description),
			strconv.Itoa(def.TargetMinLevel.ID()),
			strconv.Itoa(def.TargetMaxLevel.ID()),
			now, now,
		))
		r.result.Stats.Tracks++
	}
}

func (r *renderer) membershipRows(dist *tracks.Distribution) {
	r.banner("Learning Track Skills Distribution")

	for i, def := range r.emitter.manifest.Tracks {
		if i > 0 {
			r.add("")
		}
		r.add(fmt.Sprintf("-- Track %d: %s - %d skills", i+1, def.Label, dist.Count(def.Code)))

		trackID := r.result.TrackIDs[def.Code]
		for _, m := range dist.Memberships(def) {
			r.add(Insert(TableTrackSkills, membershipColumns,
				Quote(trackID),
				Quote(r.result.SkillIDs[m.Skill.Code]),
				strconv.Itoa(m.SortOrder),
				FormatBool(m.Required),
				FormatWeight(m.Weight),
				now, now,
			))
			r.result.Stats.Memberships++
		}
	}
}
