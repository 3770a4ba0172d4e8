package bpe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitPreTokensR50K(t *testing.T) {
	re, err := compilePattern(PatternR50K)
	require.NoError(t, err)

	pieces, err := splitPreTokens("Hello, world!", re)
	require.NoError(t, err)

	var got []string
	for _, p := range pieces {
		got = append(got, string(p))
	}
	require.Equal(t, []string{"Hello", ",", " world", "!"}, got)
}

func TestSplitPreTokensCL100KTrailingWhitespaceLookahead(t *testing.T) {
	re, err := compilePattern(PatternCL100K)
	require.NoError(t, err)

	// Only the last space of a run before a non-space character attaches to
	// the following word (" bar"); the rest of the run is its own piece
	// (" ") — this is exactly the behavior that requires (?!\S) lookahead.
	pieces, err := splitPreTokens("foo  bar", re)
	require.NoError(t, err)

	var got []string
	for _, p := range pieces {
		got = append(got, string(p))
	}
	require.Equal(t, []string{"foo", " ", " bar"}, got)
}

func TestSplitPreTokensEmptyInput(t *testing.T) {
	re, err := compilePattern(PatternR50K)
	require.NoError(t, err)

	pieces, err := splitPreTokens("", re)
	require.NoError(t, err)
	require.Nil(t, pieces)
}

// Edge-case inputs grounded on the teacher's test-vector generator
// (agentstation-tokenizer llama3/internal/testing/vectors.go), which
// enumerates exactly this kind of whitespace-run and punctuation-only
// input to shake out state-machine boundary bugs; same idea applied to
// this package's regex-driven pre-tokenizer instead of a hand-rolled
// state machine.
func TestSplitPreTokensEdgeCases(t *testing.T) {
	re, err := compilePattern(PatternR50K)
	require.NoError(t, err)

	for _, input := range []string{
		" ",
		"\t",
		"\n",
		"\r\n",
		"'",
		"''",
		"123456",
		"     word",
		"word     ",
	} {
		pieces, err := splitPreTokens(input, re)
		require.NoError(t, err, input)

		var rejoined []byte
		for _, p := range pieces {
			rejoined = append(rejoined, p...)
		}
		require.Equal(t, input, string(rejoined), "pieces must cover the whole input for %q", input)
	}
}
