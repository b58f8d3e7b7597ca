package dummy

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockClient(t *testing.T) {
	t.Run("no looping", func(t *testing.T) {
		slices := [][]byte{
			[]byte("Hello"), []byte("world!"),
		}
		client := NewMockClient(slices...)

		for _, slice := range slices {
			got, err := client.Read()
			require.NoError(t, err)
			require.Equal(t, string(slice), string(got))
		}

		_, err := client.Read()
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("looped slices", func(t *testing.T) {
		slices := [][]byte{
			[]byte("Hello"), []byte("world"), []byte("!"),
		}
		client := NewMockClient(slices...).LoopReads()
		for i := 0; i < len(slices)*2; i++ {
			data, err := client.Read()
			require.NoError(t, err)
			require.Equal(t, string(slices[i%len(slices)]), string(data))
		}
	})

	t.Run("unread", func(t *testing.T) {
		client := NewMockClient([]byte("Hello, world"))
		data, err := client.Read()
		require.NoError(t, err)
		client.Unread(data[5:])

		data, err = client.Read()
		require.NoError(t, err)
		require.Equal(t, ", world", string(data))
	})

	t.Run("journaling", func(t *testing.T) {
		client := NewMockClient()
		require.NoError(t, client.Write([]byte("HTTP/1.1 ")))
		require.NoError(t, client.Write([]byte("200 OK\r\n\r\n")))
		require.Equal(t, "HTTP/1.1 200 OK\r\n\r\n", client.Written())

		require.NoError(t, client.Close())
		require.True(t, client.Closed())
		require.Error(t, client.Write([]byte("late")))
	})
}
