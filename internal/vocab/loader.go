// Package vocab loads tiktoken-format BPE vocabulary files into merge
// tables. The file format is line-oriented UTF-8 text: each non-blank line
// is a base64-encoded byte sequence, whitespace, and its decimal rank.
//
// Grounded on ha1tch-unz/pkg/bpe/vocab.go's LoadTiktoken (same
// bufio.Scanner + encoding/base64 + strconv shape), generalized to
// reject duplicate ranks and malformed lines outright rather than
// silently skipping them, per the stricter parsing rules this format
// requires when used for real published vocabularies rather than a
// training demo.
package vocab

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gotiktoken/tiktoken/bpe"
)

// Loader produces a merge table from some source.
type Loader interface {
	Load() (bpe.MergeTable, error)
}

// Parse reads tiktoken-format vocabulary data from r and returns the
// resulting merge table. Blank lines are skipped. Any other malformed
// line, or a rank used by more than one byte sequence, is an error.
func Parse(r io.Reader) (bpe.MergeTable, error) {
	ranks := make(bpe.MergeTable)
	seenRank := make(map[bpe.Rank]string)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, bpe.NewDataError("parse", fmt.Sprintf("line %d: expected \"<base64> <rank>\"", lineNo))
		}

		tokenBytes, err := base64.StdEncoding.DecodeString(parts[0])
		if err != nil {
			return nil, bpe.NewDataError("parse", fmt.Sprintf("line %d: invalid base64: %v", lineNo, err))
		}

		rank, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return nil, bpe.NewDataError("parse", fmt.Sprintf("line %d: invalid rank: %v", lineNo, err))
		}

		r := bpe.Rank(rank)
		if _, ok := seenRank[r]; ok {
			return nil, bpe.NewDataError("parse", fmt.Sprintf("line %d: rank %d already assigned to a different token", lineNo, r))
		}
		seenRank[r] = parts[0]

		ranks[string(tokenBytes)] = r
	}
	if err := scanner.Err(); err != nil {
		return nil, bpe.NewDataError("parse", err.Error())
	}

	return ranks, nil
}

// FileLoader loads a merge table from a path on disk, the typical way a
// caller supplies a real .tiktoken vocabulary file without embedding it in
// the binary.
type FileLoader struct {
	Path string
}

func (l FileLoader) Load() (bpe.MergeTable, error) {
	f, err := openFile(l.Path)
	if err != nil {
		return nil, bpe.NewDataError("load", fmt.Sprintf("open %s: %v", l.Path, err))
	}
	defer f.Close()
	return Parse(f)
}

// ReaderLoader loads a merge table from an already-open reader, useful
// when the vocabulary data comes from somewhere other than the
// filesystem (an embedded asset, a network response the caller already
// fetched, a test fixture).
type ReaderLoader struct {
	Reader io.Reader
}

func (l ReaderLoader) Load() (bpe.MergeTable, error) {
	return Parse(l.Reader)
}
