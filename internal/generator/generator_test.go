package generator

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andywolf/skillseed/internal/config"
	seederr "github.com/andywolf/skillseed/internal/errors"
	"github.com/andywolf/skillseed/internal/seed"
	"github.com/andywolf/skillseed/internal/tracks"
)

func record(code, category, level, deps string) string {
	return `{"code":"` + code + `","name":"Skill ` + code + `","description":"d","category":"` + category +
		`","level_min":"` + level + `","level_max":"` + level +
		`","importance_weight":4,"difficulty_weight":2,"examples":["e"],"dependencies":[` + deps + `]}`
}

// writeInputs writes one file per level. Levels without content get an empty
// array.
func writeInputs(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for _, level := range []string{"a1", "a2", "b1", "b2", "c1"} {
		content, ok := files[level]
		if !ok {
			content = "[]"
		}
		if err := os.WriteFile(filepath.Join(dir, level+".json"), []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", level, err)
		}
	}
}

func newGenerator(t *testing.T, cfg *config.Config, opts ...Option) *Generator {
	t.Helper()
	g, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g
}

func testConfig(dir string) *config.Config {
	cfg := config.Default()
	cfg.InputDir = dir
	cfg.Output = filepath.Join(dir, "out", "seed.sql")
	return cfg
}

func TestRun_EndToEndDependency(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir, map[string]string{
		"a1": "[" + record("x", "grammar", "a1", "") + "]",
		"a2": "[" + record("y", "listening", "a2", `"x"`) + "]",
	})
	cfg := testConfig(dir)

	outcome, err := newGenerator(t, cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	data, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	sql := string(data)
	if sql != outcome.Result.SQL {
		t.Error("written file differs from rendered SQL")
	}

	want := "(" + seed.Quote(outcome.Result.SkillIDs["y"]) + ", " + seed.Quote(outcome.Result.SkillIDs["x"]) + ", NOW(), NOW());"
	if !strings.Contains(sql, want) {
		t.Errorf("output missing dependency row y -> x %q", want)
	}
	if n := strings.Count(sql, "INSERT INTO tb_skill_dependencies"); n != 1 {
		t.Errorf("dependency inserts = %d, want 1", n)
	}

	if outcome.Summary.Skills != 2 || outcome.Summary.Dependencies != 1 {
		t.Errorf("Summary = %+v", outcome.Summary)
	}
	if outcome.Summary.Output != cfg.Output {
		t.Errorf("Summary.Output = %q, want %q", outcome.Summary.Output, cfg.Output)
	}
}

func TestRun_EndToEndUnresolvedDependency(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir, map[string]string{
		"a1": "[" + record("x", "grammar", "a1", "") + "]",
		"a2": "[" + record("y", "listening", "a2", `"nope"`) + "]",
	})
	cfg := testConfig(dir)

	outcome, err := newGenerator(t, cfg).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if n := strings.Count(outcome.Result.SQL, "INSERT INTO tb_skill_dependencies"); n != 0 {
		t.Errorf("dependency inserts = %d, want 0", n)
	}
	if outcome.Summary.Dependencies != 1 {
		t.Errorf("Summary.Dependencies = %d, want 1 (declared entries)", outcome.Summary.Dependencies)
	}
}

func TestRun_LevelOrder(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir, map[string]string{
		"a1": "[" + record("first", "grammar", "a1", "") + "]",
		"c1": "[" + record("last", "grammar", "c1", "") + "]",
		"b1": "[" + record("middle", "grammar", "b1", "") + "]",
	})
	cfg := testConfig(dir)

	outcome, err := newGenerator(t, cfg, WithIDSource(&seed.SequentialSource{})).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	sql := outcome.Result.SQL
	first := strings.Index(sql, "'first'")
	middle := strings.Index(sql, "'middle'")
	last := strings.Index(sql, "'last'")
	if !(first < middle && middle < last) {
		t.Errorf("skills not in level order: first=%d middle=%d last=%d", first, middle, last)
	}
}

func TestRun_MissingFileWritesNothing(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir, nil)
	if err := os.Remove(filepath.Join(dir, "b2.json")); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig(dir)

	_, err := newGenerator(t, cfg).Run(context.Background())
	if err == nil {
		t.Fatal("Run() should fail when a level file is missing")
	}
	if code := seederr.GetExitCode(err); code != seederr.ExitInputError {
		t.Errorf("exit code = %d, want %d", code, seederr.ExitInputError)
	}
	if !strings.Contains(err.Error(), "b2.json") {
		t.Errorf("error should name the missing file, got %q", err.Error())
	}
	if _, statErr := os.Stat(cfg.Output); !os.IsNotExist(statErr) {
		t.Error("no output file should be written on failure")
	}
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name     string
		a1       string
		wantCode int
		errMsg   string
	}{
		{
			name:     "malformed json",
			a1:       `[{"code": "x",`,
			wantCode: seederr.ExitParseError,
			errMsg:   "a1.json",
		},
		{
			name:     "missing field",
			a1:       `[{"code":"x"}]`,
			wantCode: seederr.ExitInvalidRecord,
			errMsg:   "missing required field",
		},
		{
			name:     "unknown level",
			a1:       "[" + record("x", "grammar", "z9", "") + "]",
			wantCode: seederr.ExitInvalidRecord,
			errMsg:   "level_min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeInputs(t, dir, map[string]string{"a1": tt.a1})
			cfg := testConfig(dir)

			_, err := newGenerator(t, cfg).Run(context.Background())
			if err == nil {
				t.Fatal("Run() should fail")
			}
			if code := seederr.GetExitCode(err); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (%v)", code, tt.wantCode, err)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.errMsg)
			}
			if _, statErr := os.Stat(cfg.Output); !os.IsNotExist(statErr) {
				t.Error("no output file should be written on failure")
			}
		})
	}
}

func TestRun_Stdout(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir, map[string]string{"a1": "[" + record("x", "grammar", "a1", "") + "]"})
	cfg := testConfig(dir)
	cfg.Output = config.Stdout

	var buf bytes.Buffer
	outcome, err := newGenerator(t, cfg, WithStdout(&buf)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if buf.String() != outcome.Result.SQL {
		t.Error("stdout should receive the rendered SQL")
	}
}

func TestRun_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir, nil)
	cfg := testConfig(dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newGenerator(t, cfg).Run(ctx); err == nil {
		t.Fatal("Run() should fail with a cancelled context")
	}
	if _, statErr := os.Stat(cfg.Output); !os.IsNotExist(statErr) {
		t.Error("no output file should be written when cancelled")
	}
}

func TestRun_RepeatedRunsDifferOnlyInIDs(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir, map[string]string{
		"a1": "[" + record("x", "grammar", "a1", "") + "]",
		"b1": "[" + record("y", "vocabulary", "b1", `"x"`) + "]",
	})
	cfg := testConfig(dir)
	g := newGenerator(t, cfg)

	first, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("first Run() error: %v", err)
	}
	second, err := g.Run(context.Background())
	if err != nil {
		t.Fatalf("second Run() error: %v", err)
	}

	if seed.Normalize(first.Result.SQL) != seed.Normalize(second.Result.SQL) {
		t.Error("runs over the same input should match modulo identifiers")
	}
}

func TestRun_TrackCounts(t *testing.T) {
	dir := t.TempDir()
	writeInputs(t, dir, map[string]string{
		"a1": "[" + record("x", "grammar", "a1", "") + "]",
		"c1": "[" + record("y", "listening", "c1", "") + "]",
	})

	outcome, err := newGenerator(t, testConfig(dir)).Build(context.Background())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	got := map[tracks.Code]int{}
	for _, tc := range outcome.Summary.Tracks {
		got[tc.Code] = tc.Skills
	}
	if got[tracks.FullJourney] != 2 || got[tracks.Interview] != 1 || got[tracks.DevDaily] != 1 {
		t.Errorf("track counts = %v", got)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Levels = []string{"a1", "a1"}

	_, err := New(cfg)
	if err == nil {
		t.Fatal("New() should reject an invalid configuration")
	}
	if code := seederr.GetExitCode(err); code != seederr.ExitConfigError {
		t.Errorf("exit code = %d, want %d", code, seederr.ExitConfigError)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "seed.sql")

	if err := WriteFile(path, []byte("one")); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	if err := WriteFile(path, []byte("two")); err != nil {
		t.Fatalf("second WriteFile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "two" {
		t.Errorf("contents = %q, want %q", data, "two")
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the output file", len(entries))
	}
}

func TestWriteFile_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err := WriteFile(filepath.Join(blocker, "seed.sql"), []byte("data"))
	if err == nil {
		t.Fatal("WriteFile() should fail when the parent is a file")
	}
	if code := seederr.GetExitCode(err); code != seederr.ExitOutputError {
		t.Errorf("exit code = %d, want %d", code, seederr.ExitOutputError)
	}
}
