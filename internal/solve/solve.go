// Package solve contains the three decision procedures that narrow down
// the odd mass: the manual interactive loop, the fixed three-step auto
// decision tree, and the iterative partition-and-confirm loop. All three
// drive the same mass registry and balance evaluator; the interactive
// variants are line-oriented over an io.Reader/io.Writer pair so they can
// be scripted in tests and fronted by any terminal surface.
package solve

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"oddmass/internal/mass"
	"oddmass/internal/scale"
)

// MaxWeighings is the number of balance uses a solve session gets.
const MaxWeighings = 3

// Step records a single weighing: the two label groups and the outcome.
type Step struct {
	Left    []mass.Label
	Right   []mass.Label
	Outcome scale.Outcome
}

// Verdict is the result of a solve session.
type Verdict int

const (
	Lose Verdict = iota
	Win
)

// String returns a human-readable verdict name.
func (v Verdict) String() string {
	if v == Win {
		return "Win"
	}
	return "Lose"
}

// lineReader reads line-oriented user input. A closed input stream reads
// as empty lines so sessions fall through to their verdict instead of
// blocking.
type lineReader struct {
	sc *bufio.Scanner
}

func newLineReader(in io.Reader) *lineReader {
	return &lineReader{sc: bufio.NewScanner(in)}
}

func (r *lineReader) line() string {
	if !r.sc.Scan() {
		return ""
	}
	return r.sc.Text()
}

// intLine parses the next line as an integer. Malformed input is fatal to
// the run: the error propagates out of the session with no retry.
func (r *lineReader) intLine() (int, error) {
	raw := strings.TrimSpace(r.line())
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("solve: expected a number, got %q: %w", raw, err)
	}
	return n, nil
}
