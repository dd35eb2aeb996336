package solve

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader_Line(t *testing.T) {
	r := newLineReader(strings.NewReader("first\nsecond\n"))

	assert.Equal(t, "first", r.line())
	assert.Equal(t, "second", r.line())
	// Exhausted input reads as empty lines, never blocks.
	assert.Equal(t, "", r.line())
	assert.Equal(t, "", r.line())
}

func TestLineReader_IntLine(t *testing.T) {
	r := newLineReader(strings.NewReader("  7 \n-3\nabc\n"))

	n, err := r.intLine()
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = r.intLine()
	require.NoError(t, err)
	assert.Equal(t, -3, n)

	_, err = r.intLine()
	require.Error(t, err, "non-numeric input is fatal, not re-prompted")
}

func TestPromptRange(t *testing.T) {
	var out strings.Builder
	r := newLineReader(strings.NewReader("0\n20\n6\n"))

	n, err := promptRange(r, &out, "pick a size", 1, 12, evenOnly)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Contains(t, out.String(), "Out of range")
}

func TestPromptRange_OddRejected(t *testing.T) {
	var out strings.Builder
	r := newLineReader(strings.NewReader("3\n4\n"))

	n, err := promptRange(r, &out, "pick a size", 1, 12, evenOnly)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "Win", Win.String())
	assert.Equal(t, "Lose", Lose.String())
}
