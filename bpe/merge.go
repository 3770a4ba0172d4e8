package bpe

// part records, for the byte position `start` in a pre-token, the rank of
// the pair that would result from merging the slice currently beginning at
// this position with the slice beginning at the next position.
type part struct {
	start int
	rank  Rank
}

// mergeBytePairs reduces piece to the minimal sequence of (start, start')
// boundary pairs under ranks, using the reference tiktoken algorithm: scan
// for the minimum-rank adjacent pair, merge it, recompute the ranks on
// either side of the merge point, and repeat until no merge is available.
//
// Ties are broken by lowest index (leftmost wins) — this is observable in
// the output token stream and must be preserved exactly; see spec §4.3 and
// §8 "tie-break locality".
//
// This is grounded directly on the reference core.rs byte_pair_merge /
// get_pair_rank pair: the teacher's own merge engine (agentstation-tokenizer
// llama3/bpe.go) uses a heap-of-linked-list shaped around *vocabulary
// strings*, which does not carry a rank table at all, so the algorithm
// here is rebuilt from the reference Rust source rather than adapted from
// the teacher; the teacher's merge-and-relink *shape* (mutate in place,
// recompute two neighboring ranks after every merge) is what's kept.
func mergeBytePairs(piece []byte, ranks MergeTable) []part {
	parts := make([]part, 0, len(piece)+1)

	minRank := RankMax
	minIndex := -1
	for i := 0; i < len(piece)-1; i++ {
		rank := rankOf(piece, ranks, i, i+2)
		if rank < minRank {
			minRank = rank
			minIndex = i
		}
		parts = append(parts, part{start: i, rank: rank})
	}
	parts = append(parts, part{start: len(piece) - 1, rank: RankMax})
	parts = append(parts, part{start: len(piece), rank: RankMax})

	pairRank := func(i int) Rank {
		if i+3 < len(parts) {
			return rankOf(piece, ranks, parts[i].start, parts[i+3].start)
		}
		return RankMax
	}

	for minRank != RankMax {
		i := minIndex

		if i > 0 {
			parts[i-1].rank = pairRank(i - 1)
		}
		parts[i].rank = pairRank(i)

		parts = append(parts[:i+1], parts[i+2:]...)

		minRank = RankMax
		minIndex = -1
		for idx := 0; idx < len(parts)-1; idx++ {
			if parts[idx].rank < minRank {
				minRank = parts[idx].rank
				minIndex = idx
			}
		}
	}

	return parts
}

func rankOf(piece []byte, ranks MergeTable, start, end int) Rank {
	if end > len(piece) {
		return RankMax
	}
	if r, ok := ranks[string(piece[start:end])]; ok {
		return r
	}
	return RankMax
}

// bytePairEncode reduces a single pre-token to its token sequence.
func bytePairEncode(piece []byte, ranks MergeTable) []Token {
	if len(piece) == 1 {
		return []Token{ranks[string(piece)]}
	}

	parts := mergeBytePairs(piece, ranks)
	tokens := make([]Token, 0, len(parts)-1)
	for i := 0; i < len(parts)-1; i++ {
		tokens = append(tokens, ranks[string(piece[parts[i].start:parts[i+1].start])])
	}
	return tokens
}
