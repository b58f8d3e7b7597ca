package inbuilt

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/indigo-web/pathway/http"
	"github.com/indigo-web/pathway/http/method"
	"github.com/indigo-web/pathway/http/status"
	"github.com/indigo-web/pathway/router/inbuilt/pattern"
)

// Files registers every regular file under the root directory as a GET route. The route path
// is the slash-separated path of the file relative to root, e.g. root/css/main.css is served
// at /css/main.css. Files are read on every request, so their content may change, but new
// files aren't picked up.
func (r *Router) Files(root string) error {
	if r.frozen {
		return ErrFrozen
	}

	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		r.add(
			method.GET,
			pattern.Literally("/"+filepath.ToSlash(rel)),
			HandlerFunc(serveFile),
			NewState("file", path),
		)

		return nil
	})
}

func serveFile(request *http.Request, state State, _ http.Params) *http.Response {
	return http.File(request, state.Value("file"))
}

// Static serves files under the root directory at the prefix. Unlike Files, the directory
// is looked up on every request. Paths escaping the root result in 404 Not Found.
func (r *Router) Static(prefix, root string) *Router {
	return r.Route(
		method.GET,
		strings.TrimRight(prefix, "/")+"/*path",
		HandlerFunc(serveStatic),
		NewState("root", root),
	)
}

func serveStatic(request *http.Request, state State, params http.Params) *http.Response {
	path := params.Value("path")
	if !isSafe(path) {
		return http.Error(request, status.ErrNotFound)
	}

	return http.File(request, filepath.Join(state.Value("root"), filepath.FromSlash(path)))
}

// isSafe checks for path traversal: no segment may be a double dot. Backslashes are
// treated as separators as well.
func isSafe(path string) bool {
	segments := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})

	for _, segment := range segments {
		if segment == ".." {
			return false
		}
	}

	return true
}
