package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerAggregatesByName(t *testing.T) {
	tm := NewTimer()
	tm.Add("load", 2*time.Millisecond, "")
	tm.Add("generate", 3*time.Millisecond, "")
	tm.Add("load", 4*time.Millisecond, "2 files")

	r := tm.Report()
	if len(r.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(r.Phases))
	}
	load := r.Phases[0]
	if load.Name != "load" || load.Count != 2 || load.DurationMS != 6 || load.Note != "2 files" {
		t.Fatalf("load phase = %+v", load)
	}
	if r.TotalMS != 9 {
		t.Fatalf("TotalMS = %v, want 9", r.TotalMS)
	}
	if !strings.Contains(tm.Summary(), "load") || !strings.Contains(tm.Summary(), "total") {
		t.Fatalf("summary:\n%s", tm.Summary())
	}
}

func TestTimerConcurrentBegin(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Begin("generate")("")
		}()
	}
	wg.Wait()
	if got := tm.Report().Phases[0].Count; got != 8 {
		t.Fatalf("Count = %d, want 8", got)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Begin("x")("")
	if len(tm.Report().Phases) != 0 {
		t.Fatal("nil timer should report nothing")
	}
}
