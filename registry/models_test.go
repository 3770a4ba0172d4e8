package registry

import (
	"testing"

	"github.com/gotiktoken/tiktoken/bpe"
	"github.com/stretchr/testify/require"
)

func TestEncodingNameForModelExactMatch(t *testing.T) {
	name, err := EncodingNameForModel("gpt-4")
	require.NoError(t, err)
	require.Equal(t, "cl100k_base", name)

	name, err = EncodingNameForModel("gpt-3.5-turbo")
	require.NoError(t, err)
	require.Equal(t, "cl100k_base", name)

	name, err = EncodingNameForModel("gpt-4o")
	require.NoError(t, err)
	require.Equal(t, "o200k_base", name)

	name, err = EncodingNameForModel("text-davinci-003")
	require.NoError(t, err)
	require.Equal(t, "p50k_base", name)
}

func TestEncodingNameForModelPrefixMatch(t *testing.T) {
	name, err := EncodingNameForModel("gpt-4-0314")
	require.NoError(t, err)
	require.Equal(t, "cl100k_base", name)

	name, err = EncodingNameForModel("gpt-4o-2024-05-13")
	require.NoError(t, err)
	require.Equal(t, "o200k_base", name)

	name, err = EncodingNameForModel("gpt-3.5-turbo-0301")
	require.NoError(t, err)
	require.Equal(t, "cl100k_base", name)
}

func TestEncodingNameForModelUnknown(t *testing.T) {
	_, err := EncodingNameForModel("unknown-model")
	require.Error(t, err)
	require.ErrorIs(t, err, bpe.ErrUnknownModel)
}

func TestIsModelSupported(t *testing.T) {
	require.True(t, IsModelSupported("gpt-4"))
	require.False(t, IsModelSupported("unknown-model"))
}

func TestDeprecatedModelsStillResolve(t *testing.T) {
	for model, want := range map[string]string{
		"ada":                     "r50k_base",
		"code-cushman-001":        "p50k_base",
		"text-davinci-edit-001":   "p50k_edit",
		"text-similarity-ada-001": "r50k_base",
		"gpt2":                    "gpt2",
		"gpt-2":                   "gpt2",
	} {
		got, err := EncodingNameForModel(model)
		require.NoError(t, err)
		require.Equal(t, want, got, model)
	}
}
