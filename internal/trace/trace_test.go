package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"off", LevelOff, false},
		{"", LevelOff, false},
		{"PHASE", LevelPhase, false},
		{"detail", LevelDetail, false},
		{"debug", LevelDebug, false},
		{"verbose", LevelOff, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestStreamTracerFiltersByScope(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDetail, Format: FormatText, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}

	span := Begin(tr, ScopeFile, "file:door.toml", 0)
	Point(tr, ScopeEntity, "entity:door_01", span.ID(), "open")
	Point(tr, ScopeFunction, "fn:init", span.ID(), "")
	span.WithExtra("functions", "2").End("ok")

	out := buf.String()
	for _, want := range []string{"→ file:door.toml", "• entity:door_01 (open)", "← file:door.toml (ok) {functions=2}"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "fn:init") {
		t.Errorf("function scope should be filtered at detail level:\n%s", out)
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeFunction, "fn:main", 0, "index 1")

	var ev map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &ev); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if ev["name"] != "fn:main" || ev["scope"] != "function" || ev["kind"] != "point" {
		t.Fatalf("unexpected event: %v", ev)
	}
}

func TestDisabledTracing(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Enabled() {
		t.Fatal("LevelOff tracer must be disabled")
	}
	span := Begin(tr, ScopeDriver, "gen", 0)
	if span.ID() != 0 || span.End("") != 0 {
		t.Fatal("disabled span should be inert")
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("empty context should yield Nop")
	}
	tr := NewStreamTracer(&bytes.Buffer{}, LevelPhase, FormatText)
	ctx := WithSpanContext(WithTracer(context.Background(), tr), SpanContext{SpanID: 7})
	if FromContext(ctx) != Tracer(tr) {
		t.Fatal("tracer lost in context")
	}
	if CurrentSpan(ctx).SpanID != 7 {
		t.Fatalf("span id = %d", CurrentSpan(ctx).SpanID)
	}
}
