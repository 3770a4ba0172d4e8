package bpe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimpleCacheGetPut(t *testing.T) {
	c := newSimpleCache()

	_, ok := c.get("x")
	require.False(t, ok)

	c.put("x", []Token{1, 2, 3})
	v, ok := c.get("x")
	require.True(t, ok)
	require.Equal(t, []Token{1, 2, 3}, v)
}

func TestLRUCacheEvictsOldest(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", []Token{1})
	c.put("b", []Token{2})
	c.put("c", []Token{3}) // evicts "a"

	_, ok := c.get("a")
	require.False(t, ok)

	v, ok := c.get("b")
	require.True(t, ok)
	require.Equal(t, []Token{2}, v)

	v, ok = c.get("c")
	require.True(t, ok)
	require.Equal(t, []Token{3}, v)
}

func TestLRUCacheTouchOnGetProtectsFromEviction(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", []Token{1})
	c.put("b", []Token{2})
	c.get("a") // "a" is now most recently used
	c.put("c", []Token{3}) // should evict "b", not "a"

	_, ok := c.get("b")
	require.False(t, ok)

	_, ok = c.get("a")
	require.True(t, ok)
}

func TestEncodingWithCacheSizeZeroDisablesCache(t *testing.T) {
	ranks := make(MergeTable)
	for i := 0; i < 256; i++ {
		ranks[string([]byte{byte(i)})] = Rank(i)
	}
	enc, err := NewEncoding("no_cache", ranks, nil, PatternR50K, WithCacheSize(0))
	require.NoError(t, err)
	require.Nil(t, enc.cache)

	tokens, err := enc.EncodeOrdinary("abc")
	require.NoError(t, err)
	require.Equal(t, []Token{'a', 'b', 'c'}, tokens)
}
