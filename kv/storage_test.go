package kv

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	getHeaders := func() *Storage {
		return New().
			Add("Foo", "bar").
			Add("Hello", "World").
			Add("Lorem", "ipsum").
			Add("Hello", "Pavlo")
	}

	t.Run("case-sensitive lookup", func(t *testing.T) {
		kv := getHeaders()
		require.Equal(t, "World", kv.Value("Hello"))
		require.False(t, kv.Has("hello"))
		require.Equal(t, "fallback", kv.ValueOr("hello", "fallback"))
	})

	t.Run("fold lookup", func(t *testing.T) {
		value, found := getHeaders().GetFold("LOREM")
		require.True(t, found)
		require.Equal(t, "ipsum", value)
	})

	t.Run("delete", func(t *testing.T) {
		kv := getHeaders().Delete("Hello")

		require.Equal(t, 2, kv.Len())
		require.False(t, kv.Has("Hello"))
		require.Equal(t, "bar", kv.Value("Foo"))
		require.Equal(t, "ipsum", kv.Value("Lorem"))
	})

	t.Run("set overrides every duplicate", func(t *testing.T) {
		kv := getHeaders().Set("Hello", "no more Pavlo")

		want := []Pair{
			{"Foo", "bar"},
			{"Hello", "no more Pavlo"},
			{"Lorem", "ipsum"},
		}

		require.Equal(t, want, kv.Expose())
	})

	t.Run("set new key", func(t *testing.T) {
		kv := New().
			Add("Pavlo", "the best").
			Set("Glory to", "Ukraine")

		want := []Pair{
			{"Pavlo", "the best"},
			{"Glory to", "Ukraine"},
		}

		require.Equal(t, want, kv.Expose())
	})

	t.Run("last write wins", func(t *testing.T) {
		kv := New().
			Set("User-Agent", "curl/7.1").
			Set("User-Agent", "curl/8.0")

		require.Equal(t, 1, kv.Len())
		require.Equal(t, "curl/8.0", kv.Value("User-Agent"))
	})

	t.Run("values", func(t *testing.T) {
		require.Equal(t, []string{"World", "Pavlo"}, slices.Collect(getHeaders().Values("Hello")))
		require.Empty(t, slices.Collect(getHeaders().Values("nothing")))
	})

	t.Run("keys", func(t *testing.T) {
		require.Equal(t, []string{"Foo", "Hello", "Lorem"}, slices.Collect(getHeaders().Keys()))
	})

	t.Run("pairs", func(t *testing.T) {
		var keys []string
		for key := range getHeaders().Pairs() {
			keys = append(keys, key)
		}

		require.Equal(t, []string{"Foo", "Hello", "Lorem", "Hello"}, keys)
	})

	t.Run("clone is independent", func(t *testing.T) {
		original := getHeaders()
		clone := original.Clone()
		clone.Set("Foo", "baz")

		require.Equal(t, "bar", original.Value("Foo"))
		require.Equal(t, "baz", clone.Value("Foo"))
	})

	t.Run("empty", func(t *testing.T) {
		kv := getHeaders()
		for _, key := range slices.Collect(kv.Keys()) {
			kv.Delete(key)
		}

		require.True(t, kv.Empty())
	})

	t.Run("from map", func(t *testing.T) {
		kv := NewFromMap(map[string]string{"dir": "./pages"})
		require.Equal(t, "./pages", kv.Value("dir"))
	})
}
