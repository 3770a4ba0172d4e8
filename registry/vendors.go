package registry

import (
	"github.com/gotiktoken/tiktoken/bpe"
	"github.com/gotiktoken/tiktoken/internal/vocab"
)

// VendorProvider describes an AI provider's encodings and models. The
// reference source (original_source/src/vendors.rs) also ships
// AnthropicProvider and XAIProvider stubs that hard-code a single encoding
// name with no vocabulary behind it; those aren't reproduced here since
// they don't correspond to anything a caller could actually construct —
// see DESIGN.md.
type VendorProvider interface {
	// Name returns the vendor's identifier, e.g. "openai".
	Name() string

	// AvailableEncodings lists the encoding names this vendor publishes.
	AvailableEncodings() []string

	// AvailableModels lists the model names this vendor publishes.
	AvailableModels() []string

	// EncodingForModel resolves a model name to an encoding name.
	EncodingForModel(model string) (string, error)

	// Encoding constructs the named encoding, loading its vocabulary with
	// loader.
	Encoding(name string, loader vocab.Loader) (*bpe.Encoding, error)

	// SupportsModel reports whether model is one this vendor publishes.
	SupportsModel(model string) bool

	// SupportsEncoding reports whether name is one this vendor publishes.
	SupportsEncoding(name string) bool
}

// OpenAIProvider is the only VendorProvider this registry ships, since
// OpenAI is the only vendor whose tiktoken-compatible vocabularies and
// model mappings are actually known here.
type OpenAIProvider struct{}

func (OpenAIProvider) Name() string { return "openai" }

func (OpenAIProvider) AvailableEncodings() []string {
	return []string{"r50k_base", "p50k_base", "p50k_edit", "cl100k_base", "o200k_base", "gpt2"}
}

func (OpenAIProvider) AvailableModels() []string {
	return ListSupportedModels()
}

func (OpenAIProvider) EncodingForModel(model string) (string, error) {
	return EncodingNameForModel(model)
}

func (OpenAIProvider) Encoding(name string, loader vocab.Loader) (*bpe.Encoding, error) {
	return Get(name, loader)
}

func (p OpenAIProvider) SupportsModel(model string) bool {
	for _, m := range p.AvailableModels() {
		if m == model {
			return true
		}
	}
	return false
}

func (p OpenAIProvider) SupportsEncoding(name string) bool {
	for _, e := range p.AvailableEncodings() {
		if e == name {
			return true
		}
	}
	return false
}

// VendorRegistry holds the set of known VendorProviders, keyed by name.
// Only "openai" is registered by default.
type VendorRegistry struct {
	vendors map[string]VendorProvider
}

// NewVendorRegistry returns a VendorRegistry pre-populated with
// OpenAIProvider.
func NewVendorRegistry() *VendorRegistry {
	return &VendorRegistry{
		vendors: map[string]VendorProvider{
			"openai": OpenAIProvider{},
		},
	}
}

// Register adds or replaces a vendor by name.
func (r *VendorRegistry) Register(v VendorProvider) {
	r.vendors[v.Name()] = v
}

// Vendor returns the named vendor, or (nil, false) if it isn't registered.
func (r *VendorRegistry) Vendor(name string) (VendorProvider, bool) {
	v, ok := r.vendors[name]
	return v, ok
}

// Vendors returns every registered vendor name, in no particular order.
func (r *VendorRegistry) Vendors() []string {
	names := make([]string, 0, len(r.vendors))
	for name := range r.vendors {
		names = append(names, name)
	}
	return names
}
