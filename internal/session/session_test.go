package session

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func finished(won bool) *Record {
	r := NewRecord(ModeAuto)
	r.Finish("A", 'A', won)
	return r
}

func TestNewRecord(t *testing.T) {
	a := NewRecord(ModeManual)
	b := NewRecord(ModeManual)

	if a.ID == "" || b.ID == "" {
		t.Fatal("records must get IDs")
	}
	if a.ID == b.ID {
		t.Error("records share an ID")
	}
	if a.Mode != ModeManual {
		t.Errorf("mode = %s, want %s", a.Mode, ModeManual)
	}
	if a.StartedAt.IsZero() {
		t.Error("StartedAt not stamped")
	}
}

func TestRecord_Finish(t *testing.T) {
	r := NewRecord(ModeDeduce)
	r.Finish("K", 'K', true)

	if r.Guess != "K" || r.Answer != 'K' || !r.Won {
		t.Errorf("Finish did not stamp verdict: %+v", r)
	}
	if r.Duration < 0 {
		t.Errorf("negative duration: %v", r.Duration)
	}
}

func TestSummarize(t *testing.T) {
	records := []*Record{finished(true), finished(false), finished(true), finished(true)}

	got := Summarize(records)
	want := Summary{Attempts: 4, Wins: 3, Losses: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil)
	want := Summary{}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Summarize mismatch (-want +got):\n%s", diff)
	}
}

func TestTrace(t *testing.T) {
	records := []*Record{finished(true), finished(true), finished(false), finished(true)}
	if got := Trace(records); got != "WWLW" {
		t.Errorf("Trace = %q, want WWLW", got)
	}
	if got := Trace(nil); got != "" {
		t.Errorf("Trace(nil) = %q, want empty", got)
	}
}
