package bpe

import "github.com/dlclark/regexp2"

// Pre-tokenizer regex patterns, verbatim per spec. The cl100k and o200k
// patterns require a negative lookahead (`(?!\S)`), which Go's standard
// regexp package (RE2) cannot express; all three are compiled with
// dlclark/regexp2 instead, matching the approach taken across the pack's
// own tiktoken-style implementations (lancekrogers-go-token-counter's
// tokenizer/bpe/core.go, soundprediction-go-light-rag's
// llm/bpetokenizer.go).
const (
	// PatternR50K is used by r50k_base, p50k_base, p50k_edit, and gpt2.
	PatternR50K = `'(?:[sdmt]|ll|ve|re)| ?\p{L}+| ?\p{N}+| ?[^\s\p{L}\p{N}]+|\s+`

	// PatternCL100K is the canonical cl100k_base pattern. This is the
	// reference form, not the simplified `\p{L}+|\p{N}+|[^\s\p{L}\p{N}]+|\s+`
	// pattern that ships in the original Rust source's encodings.rs — that
	// simplified form does not produce bit-identical tokens to the real
	// cl100k_base encoding (see spec §9 / DESIGN.md).
	PatternCL100K = `(?i:'s|'t|'re|'ve|'m|'ll|'d)|[^\r\n\p{L}\p{N}]?\p{L}+|\p{N}{1,3}| ?[^\s\p{L}\p{N}]+[\r\n]*|\s*[\r\n]+|\s+(?!\S)|\s+`

	// PatternO200K is used by o200k_base.
	PatternO200K = `[^\r\n\p{L}\p{N}]?[\p{Lu}\p{Lt}\p{Lm}\p{Lo}\p{M}]*[\p{Ll}\p{Lm}\p{Lo}\p{M}]+(?i:'s|'t|'re|'ve|'m|'ll|'d)?|[^\r\n\p{L}\p{N}]?[\p{Lu}\p{Lt}\p{Lm}\p{Lo}\p{M}]+[\p{Ll}\p{Lm}\p{Lo}\p{M}]*(?i:'s|'t|'re|'ve|'m|'ll|'d)?|\p{N}{1,3}| ?[^\s\p{L}\p{N}]+[\r\n/]*|\s*[\r\n]+|\s+`
)

func compilePattern(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, newRegexError("compile pre-tokenizer pattern", err)
	}
	return re, nil
}

// splitPreTokens applies re to text and returns the non-overlapping byte
// slices covered by its matches, in left-to-right order. Regions of text
// that do not match are dropped; this matches the reference behavior,
// since the canonical patterns are covering for all realistic inputs
// (see spec §4.2, §9).
func splitPreTokens(text string, re *regexp2.Regexp) ([][]byte, error) {
	if text == "" {
		return nil, nil
	}

	var pieces [][]byte
	m, err := re.FindStringMatch(text)
	for m != nil {
		if err != nil {
			return nil, newRegexError("match pre-tokenizer pattern", err)
		}
		pieces = append(pieces, []byte(m.String()))
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return nil, newRegexError("match pre-tokenizer pattern", err)
	}
	return pieces, nil
}
