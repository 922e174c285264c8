// Package report prints the summary of a seed run.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/andywolf/skillseed/internal/skills"
	"github.com/andywolf/skillseed/internal/tracks"
)

// Summary holds the figures shown after a run.
type Summary struct {
	Output       string
	Skills       int
	Categories   int
	Examples     int
	Dependencies int
	Tracks       []TrackCount
}

// TrackCount is the number of skills placed in one track.
type TrackCount struct {
	Code   tracks.Code
	Label  string
	Skills int
}

// NewSummary collects the report figures. Dependencies is the number of
// declared dependency entries, including ones that did not resolve.
func NewSummary(output string, catalog *skills.Catalog, dist *tracks.Distribution, manifest *tracks.Manifest) Summary {
	s := Summary{
		Output:       output,
		Skills:       catalog.Len(),
		Categories:   len(catalog.Categories()),
		Examples:     catalog.TotalExamples(),
		Dependencies: catalog.TotalDependencies(),
	}
	for _, def := range manifest.Tracks {
		s.Tracks = append(s.Tracks, TrackCount{
			Code:   def.Code,
			Label:  def.Label,
			Skills: dist.Count(def.Code),
		})
	}
	return s
}

// Printer writes summaries.
type Printer struct {
	w      io.Writer
	styles styles
}

// NewPrinter returns a Printer for w. Output is styled only when w is a
// terminal.
func NewPrinter(w io.Writer) *Printer {
	st := plainStyles()
	if isTerminal(w) {
		st = colorStyles()
	}
	return &Printer{w: w, styles: st}
}

// Print writes the summary.
func (p *Printer) Print(s Summary) {
	st := p.styles

	fmt.Fprintf(p.w, "%s %s\n", st.ok.Render("SQL file generated:"), s.Output)
	fmt.Fprintln(p.w)
	p.total("Total skills", s.Skills)
	p.total("Total categories", s.Categories)
	p.total("Total examples", s.Examples)
	p.total("Total dependencies", s.Dependencies)

	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, st.title.Render("Learning Tracks Distribution:"))
	for _, t := range s.Tracks {
		fmt.Fprintf(p.w, "  - %s: %s skills\n", st.label.Render(t.Label), st.value.Render(fmt.Sprint(t.Skills)))
	}
}

func (p *Printer) total(label string, n int) {
	fmt.Fprintf(p.w, "%s: %s\n", p.styles.label.Render(label), p.styles.value.Render(fmt.Sprint(n)))
}

// Print writes the summary to w.
func Print(w io.Writer, s Summary) {
	NewPrinter(w).Print(s)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
