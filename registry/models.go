package registry

import (
	"strings"

	"github.com/gotiktoken/tiktoken/bpe"
)

// exactModels maps a full model name to its encoding name, including every
// deprecated OpenAI model still worth recognizing.
var exactModels = map[string]string{
	// Reasoning models
	"o1":      "o200k_base",
	"o3":      "o200k_base",
	"o4-mini": "o200k_base",

	// Chat models
	"gpt-5":         "o200k_base",
	"gpt-4.1":       "o200k_base",
	"gpt-4o":        "o200k_base",
	"gpt-4":         "cl100k_base",
	"gpt-3.5-turbo": "cl100k_base",
	"gpt-3.5":       "cl100k_base",
	"gpt-35-turbo":  "cl100k_base", // Azure deployment name

	// Base models
	"davinci-002": "cl100k_base",
	"babbage-002": "cl100k_base",

	// Embedding models
	"text-embedding-ada-002": "cl100k_base",
	"text-embedding-3-small": "cl100k_base",
	"text-embedding-3-large": "cl100k_base",

	// Deprecated text models
	"text-davinci-003": "p50k_base",
	"text-davinci-002": "p50k_base",
	"text-davinci-001": "r50k_base",
	"text-curie-001":   "r50k_base",
	"text-babbage-001": "r50k_base",
	"text-ada-001":     "r50k_base",
	"davinci":          "r50k_base",
	"curie":            "r50k_base",
	"babbage":          "r50k_base",
	"ada":              "r50k_base",

	// Deprecated code models
	"code-davinci-002": "p50k_base",
	"code-davinci-001": "p50k_base",
	"code-cushman-002": "p50k_base",
	"code-cushman-001": "p50k_base",
	"davinci-codex":    "p50k_base",
	"cushman-codex":    "p50k_base",

	// Deprecated edit models
	"text-davinci-edit-001": "p50k_edit",
	"code-davinci-edit-001": "p50k_edit",

	// Deprecated embedding/search models
	"text-similarity-davinci-001": "r50k_base",
	"text-similarity-curie-001":   "r50k_base",
	"text-similarity-babbage-001": "r50k_base",
	"text-similarity-ada-001":     "r50k_base",
	"text-search-davinci-doc-001": "r50k_base",
	"text-search-curie-doc-001":   "r50k_base",
	"text-search-babbage-doc-001": "r50k_base",
	"text-search-ada-doc-001":     "r50k_base",
	"code-search-babbage-code-001": "r50k_base",
	"code-search-ada-code-001":     "r50k_base",

	// Open source models
	"gpt2":  "gpt2",
	"gpt-2": "gpt2",
}

// prefixModels maps a model name prefix to its encoding name, checked when
// no exact match is found. o200k_harmony is intentionally absent: this
// registry only builds the six encodings descriptors lists, and
// "gpt-oss-" is the only model family that maps to it upstream.
var prefixModels = map[string]string{
	"o1-":      "o200k_base",
	"o3-":      "o200k_base",
	"o4-mini-": "o200k_base",

	"gpt-5-":           "o200k_base",
	"gpt-4.5-":         "o200k_base",
	"gpt-4.1-":         "o200k_base",
	"chatgpt-4o-":      "o200k_base",
	"gpt-4o-":          "o200k_base",
	"gpt-4-":           "cl100k_base",
	"gpt-3.5-turbo-":   "cl100k_base",
	"gpt-35-turbo-":    "cl100k_base", // Azure deployment name

	"ft:gpt-4o":         "o200k_base",
	"ft:gpt-4":          "cl100k_base",
	"ft:gpt-3.5-turbo":  "cl100k_base",
	"ft:davinci-002":    "cl100k_base",
	"ft:babbage-002":    "cl100k_base",
}

// EncodingNameForModel resolves a model name to its encoding name: exact
// matches are checked first, then prefix matches, matching the reference
// two-layer lookup (original_source/src/models.rs).
func EncodingNameForModel(model string) (string, error) {
	if name, ok := exactModels[model]; ok {
		return name, nil
	}
	for prefix, name := range prefixModels {
		if strings.HasPrefix(model, prefix) {
			return name, nil
		}
	}
	return "", bpe.NewUnknownModelError(model)
}

// ForModel returns the Encoding appropriate for model, loading its merge
// table with loader on first use.
func ForModel(model string, loader func(encodingName string) (*bpe.Encoding, error)) (*bpe.Encoding, error) {
	name, err := EncodingNameForModel(model)
	if err != nil {
		return nil, err
	}
	return loader(name)
}

// IsModelSupported reports whether model resolves to a known encoding.
func IsModelSupported(model string) bool {
	_, err := EncodingNameForModel(model)
	return err == nil
}

// ListSupportedModels returns every model name with an exact mapping, in
// no particular order. Prefix-only families (e.g. "gpt-4-*") are not
// enumerable and so are not included.
func ListSupportedModels() []string {
	names := make([]string, 0, len(exactModels))
	for name := range exactModels {
		names = append(names, name)
	}
	return names
}
