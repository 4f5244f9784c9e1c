package ui

import (
	"math"
	"strings"
	"testing"

	"fieldgen/internal/driver"
)

func TestApplyEventTracksFiles(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("generating", []string{"a.toml", "b.toml"}, events).(*progressModel)

	m.applyEvent(driver.Event{File: "a.toml", Stage: driver.StageGenerate, Status: driver.StatusWorking})
	m.applyEvent(driver.Event{File: "b.toml", Stage: driver.StageWrite, Status: driver.StatusDone})
	m.applyEvent(driver.Event{File: "unknown.toml", Stage: driver.StageLoad, Status: driver.StatusError})

	if m.items[0].status != "generating" || m.items[1].status != "done" {
		t.Fatalf("statuses = %q, %q", m.items[0].status, m.items[1].status)
	}
	if got := m.fraction(); math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("fraction = %v, want 0.8", got)
	}

	view := m.View()
	if !strings.Contains(view, "a.toml") || !strings.Contains(view, "generating") {
		t.Fatalf("view missing file rows:\n%s", view)
	}
}

func TestDoneMessageQuits(t *testing.T) {
	m := NewProgressModel("x", []string{"a.toml"}, nil).(*progressModel)
	_, cmd := m.Update(doneMsg{})
	if !m.done || cmd == nil {
		t.Fatal("doneMsg should mark the model done and return tea.Quit")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.toml", 20, "short.toml"},
		{"fields/md1stin.toml", 10, "fields/..."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
