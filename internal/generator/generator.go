// Package generator runs the seed pipeline: load the level files, classify
// the skills into tracks, render the SQL and write it out.
package generator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/andywolf/skillseed/internal/config"
	seederr "github.com/andywolf/skillseed/internal/errors"
	"github.com/andywolf/skillseed/internal/logging"
	"github.com/andywolf/skillseed/internal/report"
	"github.com/andywolf/skillseed/internal/seed"
	"github.com/andywolf/skillseed/internal/skills"
	"github.com/andywolf/skillseed/internal/tracks"
)

// Generator produces seed files from a configuration.
type Generator struct {
	cfg      *config.Config
	manifest *tracks.Manifest
	ids      seed.IDSource
	stdout   io.Writer
}

// Option configures a Generator.
type Option func(*Generator)

// WithIDSource sets the identifier source used for rendering.
func WithIDSource(ids seed.IDSource) Option {
	return func(g *Generator) {
		g.ids = ids
	}
}

// WithStdout sets the writer used when the output path is "-".
func WithStdout(w io.Writer) Option {
	return func(g *Generator) {
		g.stdout = w
	}
}

// Outcome describes a completed run.
type Outcome struct {
	Result  *seed.Result
	Summary report.Summary
}

// New creates a Generator. The configuration is validated here.
func New(cfg *config.Config, opts ...Option) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, seederr.ConfigError("invalid configuration", err)
	}

	manifest, err := tracks.LoadManifest()
	if err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:      cfg,
		manifest: manifest,
		ids:      seed.UUIDSource{},
		stdout:   os.Stdout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Load reads all configured level files.
func (g *Generator) Load() ([]skills.Skill, error) {
	return skills.NewLoader(g.cfg.InputDir, g.cfg.SkillLevels()).Load()
}

// Build renders the seed in memory without writing it.
func (g *Generator) Build(ctx context.Context) (*Outcome, error) {
	all, err := g.Load()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	catalog := skills.NewCatalog(all)
	for _, code := range catalog.DuplicateCodes() {
		logging.Warn("duplicate skill code, dependencies resolve to the last one", "code", code)
	}

	dist := tracks.Distribute(catalog.Skills())
	for _, def := range g.manifest.Tracks {
		logging.Debug("track distribution", "track", def.Code, "skills", dist.Count(def.Code))
	}

	result, err := seed.NewEmitter(g.manifest, seed.WithIDSource(g.ids)).Render(catalog, dist)
	if err != nil {
		return nil, seederr.Wrap(seederr.ExitInvalidRecord, "failed to render seed", err)
	}
	if result.Stats.DroppedDependencies > 0 {
		logging.Debug("dropped unresolved dependencies", "count", result.Stats.DroppedDependencies)
	}

	return &Outcome{
		Result:  result,
		Summary: report.NewSummary(g.cfg.Output, catalog, dist, g.manifest),
	}, nil
}

// Run renders the seed and writes it to the configured output. Nothing is
// written when any step fails.
func (g *Generator) Run(ctx context.Context) (*Outcome, error) {
	outcome, err := g.Build(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if g.cfg.WriteToStdout() {
		if _, err := io.WriteString(g.stdout, outcome.Result.SQL); err != nil {
			return nil, seederr.OutputFailed("stdout", err)
		}
		return outcome, nil
	}

	if err := WriteFile(g.cfg.Output, []byte(outcome.Result.SQL)); err != nil {
		return nil, err
	}
	logging.Info("wrote seed", "path", g.cfg.Output, "skills", outcome.Result.Stats.Skills)

	return outcome, nil
}

// WriteFile writes data to path through a temporary file in the same
// directory, so the destination is either fully written or left untouched.
// Missing parent directories are created.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return seederr.OutputFailed(path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return seederr.OutputFailed(path, err)
	}
	tmpName := tmp.Name()

	cleanup := func(cause error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return seederr.OutputFailed(path, cause)
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Chmod(0644); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return seederr.OutputFailed(path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return seederr.OutputFailed(path, fmt.Errorf("rename: %w", err))
	}
	return nil
}
