// Package bpe implements a byte pair encoding tokenizer compatible with the
// token tables used by tiktoken-family encodings (r50k_base, p50k_base,
// p50k_edit, cl100k_base, o200k_base, gpt2).
//
// # Overview
//
// Encoding a string is a three-stage process:
//
//  1. Special-token scan: the input is split into alternating ordinary and
//     special-token segments using a regex alternation over the encoding's
//     named special tokens.
//  2. Pre-tokenization: each ordinary segment is split into non-overlapping
//     byte slices ("pre-tokens") by a Unicode-aware regular expression.
//  3. Byte pair merging: each pre-token is reduced to a minimal sequence of
//     token IDs by iteratively merging the lowest-rank adjacent byte pair.
//
// Decoding reverses the process: each token ID is looked up in the reverse
// map (falling through to the special-token reverse map), and the resulting
// byte sequences are concatenated.
//
// An *Encoding is built once via NewEncoding and is safe for concurrent use
// by any number of goroutines without further coordination; every method on
// it is a pure function of its receiver and arguments.
package bpe
