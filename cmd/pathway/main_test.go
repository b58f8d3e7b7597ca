package main

import (
	"bytes"
	"testing"

	"github.com/indigo-web/pathway/http"
	"github.com/indigo-web/pathway/http/method"
	"github.com/indigo-web/pathway/http/mime"
	"github.com/indigo-web/pathway/http/status"
	"github.com/indigo-web/pathway/kv"
	"github.com/stretchr/testify/require"
)

func request(m method.Method, path string) *http.Request {
	req := http.NewRequest(kv.New())
	req.Method = m
	req.Path = path

	return req
}

func TestDemoRouter(t *testing.T) {
	r := demoRouter()
	require.NoError(t, r.OnStart())

	t.Run("allen", func(t *testing.T) {
		response := r.OnRequest(request(method.GET, "/allen/42")).Reveal()
		require.Equal(t, "Hello, 42!", string(response.Body))

		response = r.OnRequest(request(method.GET, "/allen/42/extra")).Reveal()
		require.Equal(t, status.NotFound, response.Code)
	})

	t.Run("echo", func(t *testing.T) {
		response := r.OnRequest(request(method.GET, "/echo/a/b")).Reveal()
		require.Equal(t, "a/b", string(response.Body))
	})

	t.Run("json", func(t *testing.T) {
		response := r.OnRequest(request(method.GET, "/json")).Reveal()
		require.Equal(t, mime.JSON, response.ContentType)
		require.JSONEq(t, `{"message":"Hello from pathway","routes":6}`, string(response.Body))
	})

	t.Run("user agent", func(t *testing.T) {
		req := request(method.GET, "/user-agent")
		req.Headers.Set("User-Agent", "curl/7.1")
		response := r.OnRequest(req).Reveal()
		require.Equal(t, "curl/7.1", string(response.Body))
	})
}

func TestVersionCmd(t *testing.T) {
	cmd := versionCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--short"})
	require.NoError(t, cmd.Execute())
	require.Equal(t, version+"\n", out.String())
}
