package seed

import (
	"fmt"
	"strings"
)

// Null is the SQL null literal.
const Null = "NULL"

// Quote renders s as a SQL string literal, doubling single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// QuoteNullable renders optional text as a SQL string literal, or NULL when
// absent. An empty string stays an empty literal.
func QuoteNullable(p *string) string {
	if p == nil {
		return Null
	}
	return Quote(*p)
}

// FormatWeight renders a track weight with exactly two decimals.
func FormatWeight(w float64) string {
	return fmt.Sprintf("%.2f", w)
}

// FormatBool renders a SQL boolean literal.
func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// Insert renders one two-line insert statement.
func Insert(table string, columns []string, values ...string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES\n  (%s);",
		table, strings.Join(columns, ", "), strings.Join(values, ", "))
}
