package registry

import (
	"strings"
	"testing"

	"github.com/gotiktoken/tiktoken/bpe"
	"github.com/gotiktoken/tiktoken/internal/vocab"
	"github.com/stretchr/testify/require"
)

// toyLoader returns a minimal, valid merge table: every byte 0-255 as its
// own rank. Good enough to exercise the registry's caching behavior
// without any real vocabulary data.
type toyLoader struct{ calls *int }

func (l toyLoader) Load() (bpe.MergeTable, error) {
	if l.calls != nil {
		*l.calls++
	}
	ranks := make(bpe.MergeTable, 256)
	for i := 0; i < 256; i++ {
		ranks[string([]byte{byte(i)})] = bpe.Rank(i)
	}
	return ranks, nil
}

func TestGetUnknownEncoding(t *testing.T) {
	_, err := Get("not_a_real_encoding", toyLoader{})
	require.Error(t, err)
	require.ErrorIs(t, err, bpe.ErrUnknownEncoding)
}

func TestGetConstructsOnceAndCaches(t *testing.T) {
	Reset()
	defer Reset()

	calls := 0
	loader := toyLoader{calls: &calls}

	enc1, err := Get("r50k_base", loader)
	require.NoError(t, err)
	require.Equal(t, "r50k_base", enc1.Name())

	enc2, err := Get("r50k_base", toyLoader{calls: &calls})
	require.NoError(t, err)
	require.Same(t, enc1, enc2)
	require.Equal(t, 1, calls)
}

func TestListEncodingsHasAllSix(t *testing.T) {
	names := ListEncodings()
	require.Len(t, names, 6)
	require.ElementsMatch(t, names,
		[]string{"r50k_base", "p50k_base", "p50k_edit", "cl100k_base", "o200k_base", "gpt2"})
}

func TestVocabInfoKnownEncoding(t *testing.T) {
	url, hash, ok := VocabInfo("cl100k_base")
	require.True(t, ok)
	require.True(t, strings.HasPrefix(url, "https://"))
	require.NotEmpty(t, hash)
}

func TestVocabInfoUnknownEncoding(t *testing.T) {
	_, _, ok := VocabInfo("not_a_real_encoding")
	require.False(t, ok)
}

func TestGetFileUsesFileLoader(t *testing.T) {
	Reset()
	defer Reset()

	_, err := GetFile("cl100k_base", "/nonexistent/path.tiktoken")
	require.Error(t, err)

	var bpeErr *bpe.Error
	require.ErrorAs(t, err, &bpeErr)
	require.Equal(t, bpe.KindData, bpeErr.Kind)
}

var _ vocab.Loader = toyLoader{}
