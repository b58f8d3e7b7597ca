package http

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/indigo-web/pathway/http/mime"
	"github.com/indigo-web/pathway/http/status"
	"github.com/indigo-web/pathway/kv"
	"github.com/stretchr/testify/require"
)

func TestResponse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		fields := NewResponse().Reveal()
		require.Equal(t, status.OK, fields.Code)
		require.Empty(t, fields.Body)
		require.Empty(t, fields.ContentType)
	})

	t.Run("string", func(t *testing.T) {
		fields := NewResponse().String("hello").Reveal()
		require.Equal(t, "hello", string(fields.Body))
	})

	t.Run("headers", func(t *testing.T) {
		fields := NewResponse().
			Header("Content-Type", mime.HTML).
			Header("Content-Length", "100500").
			Header("X-Multi", "a", "b").
			Reveal()

		require.Equal(t, mime.HTML, fields.ContentType)
		require.Equal(t, []Header{{"X-Multi", "a"}, {"X-Multi", "b"}}, fields.Headers)
	})

	t.Run("content type without values", func(t *testing.T) {
		fields := NewResponse().
			ContentType(mime.HTML).
			Header("Content-Type").
			Reveal()

		require.Equal(t, mime.HTML, fields.ContentType)
		require.Empty(t, fields.Headers)
	})

	t.Run("JSON", func(t *testing.T) {
		fields := NewResponse().JSON([]int{1, 2, 3}).Reveal()
		require.Equal(t, "[1,2,3]", string(fields.Body))
		require.Equal(t, mime.JSON, fields.ContentType)
	})

	t.Run("JSON struct", func(t *testing.T) {
		model := struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}{"42", "allen"}

		fields := NewResponse().JSON(&model).Reveal()
		require.JSONEq(t, `{"id":"42","name":"allen"}`, string(fields.Body))
	})

	t.Run("JSON over a string body", func(t *testing.T) {
		const literal = "a string literal long enough to hold the model"
		fields := NewResponse().String(literal).JSON([]int{1, 2}).Reveal()
		require.Equal(t, "[1,2]", string(fields.Body))
		require.Equal(t, "a string literal long enough to hold the model", literal)
	})

	t.Run("HTTP error", func(t *testing.T) {
		fields := NewResponse().
			String("to be discarded").
			Error(fmt.Errorf("lookup: %w", status.ErrNotFound)).
			Reveal()

		require.Equal(t, status.NotFound, fields.Code)
		require.Empty(t, fields.Body)
	})

	t.Run("plain error", func(t *testing.T) {
		fields := NewResponse().Error(errors.New("disk is on fire")).Reveal()
		require.Equal(t, status.InternalServerError, fields.Code)
		require.Equal(t, "disk is on fire", string(fields.Body))

		fields = NewResponse().Error(errors.New("nope"), status.Teapot).Reveal()
		require.Equal(t, status.Teapot, fields.Code)
	})

	t.Run("nil error", func(t *testing.T) {
		fields := NewResponse().Error(nil).Reveal()
		require.Equal(t, status.OK, fields.Code)
	})
}

func TestResponse_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(path, []byte("<h1>hi</h1>"), 0o644))

	t.Run("existing", func(t *testing.T) {
		resp, err := NewResponse().TryFile(path)
		require.NoError(t, err)
		require.Equal(t, "<h1>hi</h1>", string(resp.Reveal().Body))
		require.Equal(t, mime.HTML, resp.Reveal().ContentType)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := NewResponse().TryFile(filepath.Join(dir, "nope.html"))
		require.ErrorIs(t, err, status.ErrNotFound)

		fields := NewResponse().File(filepath.Join(dir, "nope.html")).Reveal()
		require.Equal(t, status.NotFound, fields.Code)
	})

	t.Run("directory", func(t *testing.T) {
		_, err := NewResponse().TryFile(dir)
		require.ErrorIs(t, err, status.ErrNotFound)
	})
}

func TestRequest(t *testing.T) {
	request := NewRequest(kv.New())
	request.Body = []byte("payload")

	require.Equal(t, "payload", request.BodyString())
	require.Equal(t, status.OK, request.Respond().Reveal().Code)
	require.NotNil(t, request.Ctx)
}
