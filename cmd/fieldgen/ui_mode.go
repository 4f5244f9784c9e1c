package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// progressMode is the --ui setting of gen.
type progressMode uint8

const (
	progressAuto progressMode = iota
	progressOn
	progressOff
)

func parseProgressMode(value string) (progressMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return progressAuto, nil
	case "on":
		return progressOn, nil
	case "off":
		return progressOff, nil
	}
	return progressAuto, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// useProgressView decides whether gen renders the Bubble Tea view. Scripts
// printed to stdout and --quiet always disable it; in auto mode it also
// needs an interactive stdout with color left on.
func useProgressView(mode progressMode, toStdout, quiet bool) bool {
	if toStdout || quiet {
		return false
	}
	switch mode {
	case progressOn:
		return true
	case progressOff:
		return false
	}
	return !color.NoColor && isTerminal(os.Stdout)
}
