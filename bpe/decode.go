package bpe

import (
	"fmt"
	"unicode/utf8"
)

// DecodeBytes decodes tokens back into raw bytes. It never fails on
// malformed UTF-8 — callers that need valid text should use Decode, which
// validates and substitutes the Unicode replacement character for
// sequences that don't round-trip to valid UTF-8.
func (e *Encoding) DecodeBytes(tokens []Token) ([]byte, error) {
	var out []byte
	for _, tok := range tokens {
		b, err := e.DecodeSingleTokenBytes(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// DecodeSingleTokenBytes returns the raw bytes a single token decodes to.
func (e *Encoding) DecodeSingleTokenBytes(tok Token) ([]byte, error) {
	if b, ok := e.ranksReverse[tok]; ok {
		return b, nil
	}
	if name, ok := e.specialReverse[tok]; ok {
		return []byte(name), nil
	}
	return nil, newInvalidTokenError(tok)
}

// Decode decodes tokens into a string. If the decoded bytes are not valid
// UTF-8 — which can legitimately happen when tokens is a slice the caller
// built by hand rather than one this package produced — the offending
// bytes are replaced rather than returned as an error, matching the
// reference implementation's decode() behavior (original_source/src/core.rs
// uses String::from_utf8_lossy).
func (e *Encoding) Decode(tokens []Token) (string, error) {
	b, err := e.DecodeBytes(tokens)
	if err != nil {
		return "", err
	}
	return decodeLossyUTF8(b), nil
}

func decodeLossyUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return string([]rune(string(b)))
}

// DecodeBytesBatch decodes each token slice independently, preserving
// order.
func (e *Encoding) DecodeBytesBatch(batches [][]Token) ([][]byte, error) {
	out := make([][]byte, len(batches))
	for i, tokens := range batches {
		b, err := e.DecodeBytes(tokens)
		if err != nil {
			return nil, fmt.Errorf("decode batch item %d: %w", i, err)
		}
		out[i] = b
	}
	return out, nil
}

// DecodeBatch decodes each token slice independently, preserving order.
func (e *Encoding) DecodeBatch(batches [][]Token) ([]string, error) {
	out := make([]string, len(batches))
	for i, tokens := range batches {
		s, err := e.Decode(tokens)
		if err != nil {
			return nil, fmt.Errorf("decode batch item %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}
