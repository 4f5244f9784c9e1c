package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"fieldgen/internal/diag"
)

func TestParseProgressMode(t *testing.T) {
	tests := []struct {
		in      string
		want    progressMode
		wantErr bool
	}{
		{"", progressAuto, false},
		{"AUTO", progressAuto, false},
		{" on ", progressOn, false},
		{"off", progressOff, false},
		{"sometimes", progressAuto, true},
	}
	for _, tt := range tests {
		got, err := parseProgressMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("parseProgressMode(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("parseProgressMode(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestUseProgressView(t *testing.T) {
	tests := []struct {
		name            string
		mode            progressMode
		toStdout, quiet bool
		want            bool
	}{
		{"forced on", progressOn, false, false, true},
		{"forced off", progressOff, false, false, false},
		{"stdout output wins over on", progressOn, true, false, false},
		{"quiet wins over on", progressOn, false, true, false},
	}
	for _, tt := range tests {
		if got := useProgressView(tt.mode, tt.toStdout, tt.quiet); got != tt.want {
			t.Errorf("%s: useProgressView = %v, want %v", tt.name, got, tt.want)
		}
	}

	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()
	if useProgressView(progressAuto, false, false) {
		t.Error("auto mode must stay off with color disabled")
	}
}

func TestBuildInfoOnly(t *testing.T) {
	full := buildInfo{Tool: "fieldgen", Version: "1.2.3", Commit: "abc123", Modified: true, Date: "2026-10-16", Go: "go1.25.1"}

	if got := full.only(false, false); got != (buildInfo{Tool: "fieldgen", Version: "1.2.3"}) {
		t.Errorf("only(false, false) = %+v", got)
	}
	if got := full.only(true, false); got.Commit != "abc123" || !got.Modified || got.Date != "" || got.Go != "" {
		t.Errorf("only(true, false) = %+v", got)
	}
	if got := full.only(true, true); got != full {
		t.Errorf("only(true, true) = %+v", got)
	}
}

func TestVersionCommandJSON(t *testing.T) {
	cmd := newVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--format", "json"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	var got buildInfo
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("%v\n%s", err, buf.String())
	}
	if got.Tool != "fieldgen" || got.Version == "" || got.Commit != "" || got.Date != "" {
		t.Fatalf("payload = %+v", got)
	}
}

func TestVersionCommandRejectsFormat(t *testing.T) {
	cmd := newVersionCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "yaml"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for an unknown format")
	}
}

func TestPrintDiagnosticsPlain(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.GenEntityMismatch,
		Message:  `function of "y" while "x" is open`,
		Path:     "door.toml",
		Index:    2,
		Function: "talk",
	})
	var buf bytes.Buffer
	printDiagnostics(&buf, bag)
	want := diag.FormatShort(bag.Items()) + "\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
	if !strings.Contains(buf.String(), "door.toml#2(talk)") {
		t.Fatalf("missing location in %q", buf.String())
	}
}
