package bpe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorIsMatchesSentinels(t *testing.T) {
	err := NewUnknownEncodingError("not_a_real_encoding")
	require.True(t, errors.Is(err, ErrUnknownEncoding))
	require.False(t, errors.Is(err, ErrUnknownModel))

	var bpeErr *Error
	require.True(t, errors.As(err, &bpeErr))
	require.Equal(t, "not_a_real_encoding", bpeErr.Name)
}

func TestErrorMessages(t *testing.T) {
	require.Contains(t, NewUnknownModelError("gpt-9000").Error(), "gpt-9000")
	require.Contains(t, newInvalidTokenError(42).Error(), "42")
	require.Contains(t, NewDataError("load", "bad shape").Error(), "bad shape")
}
