package vocab

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func b64(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

func TestParseValidFile(t *testing.T) {
	data := strings.Join([]string{
		b64("a") + " 0",
		b64("b") + " 1",
		"",
		b64("ab") + " 2",
	}, "\n")

	ranks, err := Parse(strings.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, uint32(0), ranks["a"])
	require.Equal(t, uint32(1), ranks["b"])
	require.Equal(t, uint32(2), ranks["ab"])
}

func TestParseSkipsBlankLines(t *testing.T) {
	data := "\n\n" + b64("x") + " 0\n\n"
	ranks, err := Parse(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, ranks, 1)
}

func TestParseRejectsDuplicateRank(t *testing.T) {
	data := b64("a") + " 0\n" + b64("b") + " 0\n"
	_, err := Parse(strings.NewReader(data))
	require.Error(t, err)
	require.Contains(t, err.Error(), "already assigned")
}

func TestParseRejectsMalformedLine(t *testing.T) {
	_, err := Parse(strings.NewReader("not-a-valid-line"))
	require.Error(t, err)
}

func TestParseRejectsBadBase64(t *testing.T) {
	_, err := Parse(strings.NewReader("not-base64!! 0"))
	require.Error(t, err)
}

func TestParseRejectsBadRank(t *testing.T) {
	_, err := Parse(strings.NewReader(b64("a") + " not-a-number"))
	require.Error(t, err)
}

func TestReaderLoader(t *testing.T) {
	loader := ReaderLoader{Reader: strings.NewReader(b64("a") + " 0")}
	ranks, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, uint32(0), ranks["a"])
}
