package http1

import (
	"testing"

	"github.com/indigo-web/pathway/http"
	"github.com/indigo-web/pathway/http/mime"
	"github.com/indigo-web/pathway/http/status"
	"github.com/indigo-web/pathway/transport/dummy"
	"github.com/stretchr/testify/require"
)

func render(response *http.Response) string {
	return string(Render(nil, response))
}

func BenchmarkRender(b *testing.B) {
	response := http.NewResponse().
		Header("Server", "pathway").
		String("Hello, world!")
	buff := make([]byte, 0, 1024)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		buff = Render(buff[:0], response)
	}
}

func TestRender(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		response := http.NewResponse().Code(status.NotFound)
		require.Equal(t, "HTTP/1.1 404 Not Found\r\n\r\n", render(response))
	})

	t.Run("ok without body", func(t *testing.T) {
		require.Equal(t, "HTTP/1.1 200 OK\r\n\r\n", render(http.NewResponse()))
	})

	t.Run("plain body", func(t *testing.T) {
		response := http.NewResponse().String("hello")
		want := "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 5\r\n\r\nhello"
		require.Equal(t, want, render(response))
	})

	t.Run("content type is omitted with empty body", func(t *testing.T) {
		response := http.NewResponse().ContentType(mime.JSON)
		require.Equal(t, "HTTP/1.1 200 OK\r\n\r\n", render(response))
	})

	t.Run("custom content type", func(t *testing.T) {
		response := http.NewResponse().ContentType(mime.JSON).String(`{"a":1}`)
		want := "HTTP/1.1 200 OK\r\nContent-Type: application/json\r\nContent-Length: 7\r\n\r\n{\"a\":1}"
		require.Equal(t, want, render(response))
	})

	t.Run("custom status", func(t *testing.T) {
		response := http.NewResponse().Code(status.Teapot).Status("Short And Stout")
		require.Equal(t, "HTTP/1.1 418 Short And Stout\r\n\r\n", render(response))
	})

	t.Run("unknown code", func(t *testing.T) {
		response := http.NewResponse().Code(299)
		require.Equal(t, "HTTP/1.1 299 Unknown Status Code\r\n\r\n", render(response))
	})

	t.Run("custom headers keep their order", func(t *testing.T) {
		response := http.NewResponse().
			Header("X-First", "1").
			Header("X-Second", "2", "3").
			Header("Content-Length", "100").
			String("hi")
		want := "HTTP/1.1 200 OK\r\n" +
			"Content-Type: text/plain\r\n" +
			"Content-Length: 2\r\n" +
			"X-First: 1\r\n" +
			"X-Second: 2\r\n" +
			"X-Second: 3\r\n" +
			"\r\nhi"
		require.Equal(t, want, render(response))
	})

	t.Run("appends to the buffer", func(t *testing.T) {
		buff := Render([]byte("prefix"), http.NewResponse())
		require.Equal(t, "prefixHTTP/1.1 200 OK\r\n\r\n", string(buff))
	})
}

func TestSerializer(t *testing.T) {
	client := dummy.NewMockClient()
	serializer := NewSerializer(client, make([]byte, 0, 16))

	require.NoError(t, serializer.Write(http.NewResponse().String("first")))
	require.NoError(t, serializer.Write(http.NewResponse().Code(status.NotFound)))

	want := "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 5\r\n\r\nfirst" +
		"HTTP/1.1 404 Not Found\r\n\r\n"
	require.Equal(t, want, client.Written())

	require.NoError(t, client.Close())
	require.Error(t, serializer.Write(http.NewResponse()))
}
