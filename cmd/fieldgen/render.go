package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"fieldgen/internal/diag"
)

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
	infoLabel    = color.New(color.FgCyan)
	codeStyle    = color.New(color.Faint)
	pathStyle    = color.New(color.Bold)
)

// printDiagnostics writes one line per diagnostic. With color disabled the
// output matches diag.FormatShort.
func printDiagnostics(out io.Writer, bag *diag.Bag) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	if color.NoColor {
		fmt.Fprintln(out, diag.FormatShort(bag.Items()))
		return
	}
	for _, d := range bag.Items() {
		fmt.Fprintf(out, "%s %s %s", severityLabel(d.Severity), codeStyle.Sprint(d.Code.ID()), pathStyle.Sprint(diag.Location(d)))
		if d.Message != "" {
			fmt.Fprintf(out, " %s", d.Message)
		}
		fmt.Fprintln(out)
	}
}

func severityLabel(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return errorLabel.Sprint(s.String())
	case diag.SevWarning:
		return warningLabel.Sprint(s.String())
	default:
		return infoLabel.Sprint(s.String())
	}
}
