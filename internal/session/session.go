// Package session records solve sessions: which weighings ran, what was
// guessed, and how it ended. Records exist for display and batch
// tallying only; nothing is persisted.
package session

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"oddmass/internal/mass"
	"oddmass/internal/solve"
)

// Mode names the solve procedure that produced a record.
type Mode string

const (
	ModeManual Mode = "manual"
	ModeAuto   Mode = "auto"
	ModeDeduce Mode = "deduce"
)

// Record is the log of one solve session.
type Record struct {
	ID        string
	Mode      Mode
	Steps     []solve.Step
	Guess     string
	Answer    mass.Label
	Won       bool
	StartedAt time.Time
	Duration  time.Duration
}

// NewRecord starts a record for a session in the given mode.
func NewRecord(mode Mode) *Record {
	return &Record{
		ID:        uuid.NewString(),
		Mode:      mode,
		StartedAt: time.Now(),
	}
}

// Finish stamps the verdict and duration onto the record.
func (r *Record) Finish(guess string, answer mass.Label, won bool) {
	r.Guess = guess
	r.Answer = answer
	r.Won = won
	r.Duration = time.Since(r.StartedAt)
}

// Summary tallies a batch of records.
type Summary struct {
	Attempts int
	Wins     int
	Losses   int
}

// Summarize tallies verdicts across records.
func Summarize(records []*Record) Summary {
	s := Summary{Attempts: len(records)}
	for _, r := range records {
		if r.Won {
			s.Wins++
		} else {
			s.Losses++
		}
	}
	return s
}

// Trace renders the batch as a compact win/loss string like "WWLW".
func Trace(records []*Record) string {
	var b strings.Builder
	b.Grow(len(records))
	for _, r := range records {
		if r.Won {
			b.WriteByte('W')
		} else {
			b.WriteByte('L')
		}
	}
	return b.String()
}
