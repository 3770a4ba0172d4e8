package bpe

import "math"

// Rank is the merge priority of a byte sequence. Lower ranks merge first;
// the rank of a fully merged sequence doubles as its Token ID.
type Rank = uint32

// Token is a token ID. Ordinary token IDs come from the merge table;
// special token IDs are assigned explicitly and never overlap with them.
type Token = uint32

// RankMax is the sentinel meaning "no merge available at this position".
const RankMax Rank = math.MaxUint32

// MergeTable maps a byte sequence to its Rank. Keys are stored as Go
// strings: a Go string is an immutable byte sequence, so this is the
// zero-copy equivalent of the reference implementation's
// map[[]byte]Rank keyed representation.
type MergeTable map[string]Rank

// SpecialMap maps a special token's literal text to its Token ID.
type SpecialMap map[string]Token
