// Package icons serves the images drawn inside slider dots.
//
// A Store opens an icon by name. DirStore reads from a local directory and
// S3Store reads from a bucket; Handler exposes either over HTTP.
package icons

import (
	"context"
	stderrors "errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/multislider/internal/errors"
)

// ErrNotFound is returned (wrapped in an E301 error) when an icon does
// not exist or its name is not acceptable.
var ErrNotFound = stderrors.New("icon not found")

// Store opens icons by name.
type Store interface {
	// Open returns the icon body and its content type. The caller closes
	// the body.
	Open(ctx context.Context, name string) (io.ReadCloser, string, error)
}

// CleanName validates an icon name. Names are a single path element
// without a leading dot.
func CleanName(name string) (string, bool) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", false
	}
	if path.Clean(name) != name {
		return "", false
	}
	return name, true
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func notFound(name string) *errors.SliderError {
	return errors.New("E301").WithDetail(name).Wrap(ErrNotFound)
}

// Handler serves icons from store under a chi route with a {name}
// parameter. Missing icons are 404s, store failures 502s.
func Handler(store Store, maxAge time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		body, ct, err := store.Open(r.Context(), name)
		if err != nil {
			if stderrors.Is(err, ErrNotFound) {
				http.Error(w, "icon not found", http.StatusNotFound)
				return
			}
			http.Error(w, "icon unavailable", http.StatusBadGateway)
			return
		}
		defer body.Close()

		w.Header().Set("Content-Type", ct)
		w.Header().Set("X-Content-Type-Options", "nosniff")
		if maxAge > 0 {
			w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(maxAge.Seconds())))
		}
		_, _ = io.Copy(w, body)
	})
}
