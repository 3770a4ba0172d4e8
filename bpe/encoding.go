package bpe

import "github.com/dlclark/regexp2"

// Encoding is an immutable byte pair encoding scheme: a merge table, an
// optional set of special tokens, and the pre-tokenizer pattern that
// segments input text before merging. Once constructed, an *Encoding never
// mutates, so it may be shared across goroutines without coordination (see
// spec §5); the only mutable state is the internal result cache, which
// guards itself.
type Encoding struct {
	name string

	ranks        MergeTable
	ranksReverse map[Token][]byte

	special        SpecialMap
	specialReverse map[Token]string
	specialNames   []string
	specialRegex   *regexp2.Regexp

	pattern    string
	preRegex   *regexp2.Regexp

	maxTokenValue Token
	maxRank       Token

	cache resultCache
}

// NewEncoding constructs an Encoding from a merge table, a special-token
// map, and a pre-tokenizer regex pattern. ranks must give each byte
// sequence a distinct rank (ranks need not be contiguous); special token
// IDs must not collide with any rank. This mirrors the reference CoreBPE::new constructor
// (original_source/src/core.rs), generalized from the teacher's per-vendor
// NewTokenizer constructors (agentstation-tokenizer llama3/tokenizer.go).
func NewEncoding(name string, ranks MergeTable, special SpecialMap, pattern string, opts ...Option) (*Encoding, error) {
	cfg := defaultEncodingConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	preRegex, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}

	specialNames := make([]string, 0, len(special))
	specialReverse := make(map[Token]string, len(special))
	for tok, id := range special {
		specialNames = append(specialNames, tok)
		specialReverse[id] = tok
	}
	specialRegex, err := compileSpecialRegex(specialNames)
	if err != nil {
		return nil, err
	}

	ranksReverse := make(map[Token][]byte, len(ranks))
	var maxOrdinaryRank Token
	for piece, rank := range ranks {
		ranksReverse[rank] = []byte(piece)
		if rank > maxOrdinaryRank {
			maxOrdinaryRank = rank
		}
	}
	maxToken := maxOrdinaryRank
	for _, id := range special {
		if id > maxToken {
			maxToken = id
		}
	}

	var cache resultCache
	if cfg.cacheSize > 0 {
		cache = newLRUCache(cfg.cacheSize)
	}

	return &Encoding{
		name:           name,
		ranks:          ranks,
		ranksReverse:   ranksReverse,
		special:        special,
		specialReverse: specialReverse,
		specialNames:   specialNames,
		specialRegex:   specialRegex,
		pattern:        pattern,
		preRegex:       preRegex,
		maxTokenValue:  maxToken,
		maxRank:        maxOrdinaryRank,
		cache:          cache,
	}, nil
}

// Name returns the encoding's registered name, e.g. "cl100k_base".
func (e *Encoding) Name() string { return e.name }

// VocabSize returns the number of ordinary (non-special) tokens.
func (e *Encoding) VocabSize() int { return len(e.ranks) }

// MaxTokenValue returns the largest token ID this encoding can produce,
// across both ordinary and special tokens.
func (e *Encoding) MaxTokenValue() Token { return e.maxTokenValue }

// SpecialTokens returns the names of every special token this encoding
// defines, in no particular order.
func (e *Encoding) SpecialTokens() []string {
	out := make([]string, len(e.specialNames))
	copy(out, e.specialNames)
	return out
}

// IsSpecialToken reports whether token is one of this encoding's special
// tokens, as opposed to an ordinary merge-table token.
func (e *Encoding) IsSpecialToken(token Token) bool {
	_, ok := e.specialReverse[token]
	return ok
}

// EOTToken returns the "<|endoftext|>" token ID and true, or (0, false) if
// this encoding has no such special token.
func (e *Encoding) EOTToken() (Token, bool) {
	tok, ok := e.special["<|endoftext|>"]
	return tok, ok
}

// TokenByteValues returns, for every ordinary token in rank order, the raw
// bytes it decodes to. Index i of the result is the byte value of token i.
// Ranks need not be contiguous (spec §4.1), so the result is sized by the
// largest ordinary rank rather than the vocabulary's cardinality; indices
// with no assigned rank are left nil.
func (e *Encoding) TokenByteValues() [][]byte {
	out := make([][]byte, e.maxRank+1)
	for piece, rank := range e.ranks {
		out[rank] = []byte(piece)
	}
	return out
}
