package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenAIProviderSupportsEncodingsAndModels(t *testing.T) {
	p := OpenAIProvider{}
	require.Equal(t, "openai", p.Name())
	require.True(t, p.SupportsEncoding("cl100k_base"))
	require.False(t, p.SupportsEncoding("not_a_real_encoding"))
	require.True(t, p.SupportsModel("gpt-4"))
	require.False(t, p.SupportsModel("not-a-real-model"))
}

func TestVendorRegistryDefaultsToOpenAI(t *testing.T) {
	reg := NewVendorRegistry()
	require.Equal(t, []string{"openai"}, reg.Vendors())

	v, ok := reg.Vendor("openai")
	require.True(t, ok)
	require.Equal(t, "openai", v.Name())

	_, ok = reg.Vendor("anthropic")
	require.False(t, ok)
}

func TestVendorRegistryRegister(t *testing.T) {
	reg := NewVendorRegistry()

	reg.Register(OpenAIProvider{})
	require.Len(t, reg.Vendors(), 1)
}
