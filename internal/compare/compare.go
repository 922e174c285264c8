// Package compare checks whether two seed files describe the same data once
// their generated identifiers are set aside.
package compare

import (
	"fmt"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	seederr "github.com/andywolf/skillseed/internal/errors"
	"github.com/andywolf/skillseed/internal/seed"
)

// Result is the outcome of a comparison.
type Result struct {
	Equal bool

	// Changes holds the differing lines, prefixed with "-" for the first input
	// and "+" for the second.
	Changes []string
}

// Files compares two seed files on disk.
func Files(pathA, pathB string) (*Result, error) {
	a, err := os.ReadFile(pathA)
	if err != nil {
		return nil, seederr.InputUnreadable(pathA, err)
	}
	b, err := os.ReadFile(pathB)
	if err != nil {
		return nil, seederr.InputUnreadable(pathB, err)
	}
	return Text(string(a), string(b)), nil
}

// Text compares two rendered seeds after normalizing their identifiers.
func Text(a, b string) *Result {
	na, nb := seed.Normalize(a), seed.Normalize(b)
	if na == nb {
		return &Result{Equal: true}
	}

	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(na, nb)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	res := &Result{}
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			res.Changes = append(res.Changes, prefix+line)
		}
	}
	return res
}

// String renders the changes one per line.
func (r *Result) String() string {
	if r.Equal {
		return "seeds are identical apart from generated identifiers"
	}
	return fmt.Sprintf("%d differing lines\n%s", len(r.Changes), strings.Join(r.Changes, "\n"))
}
