// Package registry holds the named, process-wide encoding and model
// tables: the fixed set of OpenAI-published encodings
// (r50k_base, p50k_base, p50k_edit, cl100k_base, o200k_base, gpt2), the
// model-name-to-encoding-name mapping, and the vendor extension point.
//
// Encodings are constructed at most once per process and cached forever,
// mirroring the reference registry's OnceLock<HashMap<...>>
// (original_source/src/encodings.rs) translated to Go's sync.Once/sync.Map
// idiom rather than a global mutex, the way the rest of this pack favors
// fine-grained sync primitives over a single coarse lock.
package registry

import (
	"fmt"
	"sync"

	"github.com/gotiktoken/tiktoken/bpe"
	"github.com/gotiktoken/tiktoken/internal/vocab"
)

const (
	tokenEndOfText   = "<|endoftext|>"
	tokenFIMPrefix   = "<|fim_prefix|>"
	tokenFIMMiddle   = "<|fim_middle|>"
	tokenFIMSuffix   = "<|fim_suffix|>"
	tokenEndOfPrompt = "<|endofprompt|>"
)

// descriptor is everything needed to build an Encoding once its merge
// table has been loaded.
type descriptor struct {
	special bpe.SpecialMap
	pattern string
}

var descriptors = map[string]descriptor{
	"r50k_base": {
		special: bpe.SpecialMap{tokenEndOfText: 50256},
		pattern: bpe.PatternR50K,
	},
	"p50k_base": {
		special: bpe.SpecialMap{tokenEndOfText: 50256},
		pattern: bpe.PatternR50K,
	},
	"p50k_edit": {
		special: bpe.SpecialMap{
			tokenEndOfText: 50256,
			tokenFIMPrefix: 50281,
			tokenFIMMiddle: 50282,
			tokenFIMSuffix: 50283,
		},
		pattern: bpe.PatternR50K,
	},
	"cl100k_base": {
		special: bpe.SpecialMap{
			tokenEndOfText:   100257,
			tokenFIMPrefix:   100258,
			tokenFIMMiddle:   100259,
			tokenFIMSuffix:   100260,
			tokenEndOfPrompt: 100276,
		},
		pattern: bpe.PatternCL100K,
	},
	"o200k_base": {
		special: bpe.SpecialMap{
			tokenEndOfText:   199999,
			tokenEndOfPrompt: 200018,
		},
		pattern: bpe.PatternO200K,
	},
	// gpt2 shares r50k_base's vocabulary and special tokens; OpenAI ships
	// it as a distinct name for compatibility with tooling that still
	// asks for "gpt2" by name.
	"gpt2": {
		special: bpe.SpecialMap{tokenEndOfText: 50256},
		pattern: bpe.PatternR50K,
	},
}

// vocabInfo names the published source and pinned SHA-256 digest for each
// encoding's .tiktoken file, for callers that fetch the file themselves
// and want to verify it with vocab.VerifyHash before loading. This
// package never performs the download (see SPEC_FULL.md's non-goals).
type vocabInfo struct {
	url  string
	hash string
}

var vocabInfos = map[string]vocabInfo{
	"r50k_base": {
		url:  "https://openaipublic.blob.core.windows.net/encodings/r50k_base.tiktoken",
		hash: "306cd27f03c1a714eca7108e03d66b7dc042abe8c258b44c199a7ed9838dd930",
	},
	"p50k_base": {
		url:  "https://openaipublic.blob.core.windows.net/encodings/p50k_base.tiktoken",
		hash: "94b5ca7dff4d00767bc256fdd1b27e5b17361d7b8a5f968547f9f23eb70d2069",
	},
	"p50k_edit": {
		url:  "https://openaipublic.blob.core.windows.net/encodings/p50k_base.tiktoken",
		hash: "94b5ca7dff4d00767bc256fdd1b27e5b17361d7b8a5f968547f9f23eb70d2069",
	},
	"cl100k_base": {
		url:  "https://openaipublic.blob.core.windows.net/encodings/cl100k_base.tiktoken",
		hash: "223921b76ee99bde995b7ff738513eef100fb51d18c93597a113bcffe865b2a7",
	},
	"o200k_base": {
		url:  "https://openaipublic.blob.core.windows.net/encodings/o200k_base.tiktoken",
		hash: "446a9538cb6c348e3516120d7c08b09f57c36495e2acfffe59a5bf8b0cfb1a2d",
	},
	"gpt2": {
		url:  "https://openaipublic.blob.core.windows.net/encodings/r50k_base.tiktoken",
		hash: "306cd27f03c1a714eca7108e03d66b7dc042abe8c258b44c199a7ed9838dd930",
	},
}

// VocabInfo returns the published source URL and expected SHA-256 digest
// for name's vocabulary file, and true if name is a known encoding.
func VocabInfo(name string) (url, sha256Hex string, ok bool) {
	info, ok := vocabInfos[name]
	return info.url, info.hash, ok
}

type cacheEntry struct {
	once sync.Once
	enc  *bpe.Encoding
	err  error
}

var cache sync.Map // string -> *cacheEntry

// Get returns the named encoding, constructing it on first use with the
// merge table loader produces and caching the result for the lifetime of
// the process. Subsequent calls for the same name return the cached
// Encoding (or the cached construction error) without invoking loader
// again, even if a different loader is passed — exactly one construction
// attempt per name ever happens, matching the reference registry's
// OnceLock semantics.
func Get(name string, loader vocab.Loader) (*bpe.Encoding, error) {
	desc, ok := descriptors[name]
	if !ok {
		return nil, bpe.NewUnknownEncodingError(name)
	}

	v, _ := cache.LoadOrStore(name, &cacheEntry{})
	entry := v.(*cacheEntry)

	entry.once.Do(func() {
		ranks, err := loader.Load()
		if err != nil {
			entry.err = err
			return
		}
		entry.enc, entry.err = bpe.NewEncoding(name, ranks, desc.special, desc.pattern)
	})

	return entry.enc, entry.err
}

// GetFile is a convenience wrapper around Get that loads the merge table
// from a .tiktoken file on disk.
func GetFile(name, path string) (*bpe.Encoding, error) {
	return Get(name, vocab.FileLoader{Path: path})
}

// ListEncodings returns the names of every encoding this registry knows
// how to construct, in no particular order.
func ListEncodings() []string {
	names := make([]string, 0, len(descriptors))
	for name := range descriptors {
		names = append(names, name)
	}
	return names
}

// Reset clears every cached encoding. Exposed for tests: production code
// has no reason to call this, since re-constructing an encoding after
// it has already been cached would contradict the construct-once
// contract Get documents.
func Reset() {
	cache.Range(func(key, _ any) bool {
		cache.Delete(key)
		return true
	})
}

func init() {
	// Fail fast, at import time, if descriptors and vocabInfos ever drift
	// apart — both maps must name exactly the same six encodings.
	for name := range descriptors {
		if _, ok := vocabInfos[name]; !ok {
			panic(fmt.Sprintf("registry: %q has no vocabInfo entry", name))
		}
	}
	for name := range vocabInfos {
		if _, ok := descriptors[name]; !ok {
			panic(fmt.Sprintf("registry: %q has no descriptor entry", name))
		}
	}
}
