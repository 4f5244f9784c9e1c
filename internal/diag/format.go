package diag

import (
	"fmt"
	"strings"
)

// FormatShort renders one line per diagnostic:
//
//	ERROR GEN2001 door.toml#1(main) entity "y" starts while "x" is still open
//
// Diagnostics not tied to a function omit the position.
func FormatShort(items []Diagnostic) string {
	var b strings.Builder
	for i, d := range items {
		fmt.Fprintf(&b, "%s %s %s", d.Severity, d.Code.ID(), Location(d))
		if d.Message != "" {
			b.WriteByte(' ')
			b.WriteString(d.Message)
		}
		if i < len(items)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Location renders "path#index(function)", or just the path for
// diagnostics not tied to a function.
func Location(d Diagnostic) string {
	loc := d.Path
	if loc == "" {
		loc = "<input>"
	}
	if d.Index >= 0 {
		loc += fmt.Sprintf("#%d", d.Index)
		if d.Function != "" {
			loc += "(" + d.Function + ")"
		}
	}
	return loc
}
