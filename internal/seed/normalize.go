package seed

import (
	"fmt"
	"regexp"
)

var uuidPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

// Normalize replaces every identifier in a rendered seed with a positional
// placeholder (id-1, id-2, ...) numbered by first appearance. Two renders of
// the same input normalize to the same text.
func Normalize(sql string) string {
	seen := make(map[string]string)
	return uuidPattern.ReplaceAllStringFunc(sql, func(id string) string {
		if p, ok := seen[id]; ok {
			return p
		}
		p := fmt.Sprintf("id-%d", len(seen)+1)
		seen[id] = p
		return p
	})
}

