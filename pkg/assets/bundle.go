// Package assets serves in-memory static files under fingerprinted names.
//
// Files are added once at startup; each is published as
// name.<hash>.ext so responses can be cached forever:
//
//	bundle := assets.NewBundle("/assets/")
//	bundle.AddFS(staticFS, "client.js", "demo.css")
//	bundle.Asset("client.js") // "/assets/client.1a2b3c4d.js"
//
//	r.Handle("/assets/*", bundle)
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
	"sync"
)

// Resolver maps a source asset name to its public URL path.
type Resolver interface {
	Asset(source string) string
}

type file struct {
	data        []byte
	contentType string
	etag        string
}

// Bundle holds fingerprinted files. It is safe for concurrent use.
type Bundle struct {
	prefix string

	mu       sync.RWMutex
	manifest map[string]string // source name -> fingerprinted name
	files    map[string]file   // fingerprinted name -> contents
}

// NewBundle creates an empty bundle whose URLs start with prefix.
func NewBundle(prefix string) *Bundle {
	return &Bundle{
		prefix:   prefix,
		manifest: make(map[string]string),
		files:    make(map[string]file),
	}
}

// Add publishes data under a fingerprint of name and returns the
// fingerprinted name. Adding a name again replaces the previous file.
func (b *Bundle) Add(name string, data []byte) string {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:4])

	ext := path.Ext(name)
	hashed := strings.TrimSuffix(name, ext) + "." + hash + ext

	ct := mime.TypeByExtension(ext)
	if ct == "" {
		ct = "application/octet-stream"
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if old, ok := b.manifest[name]; ok {
		delete(b.files, old)
	}
	b.manifest[name] = hashed
	b.files[hashed] = file{data: data, contentType: ct, etag: `"` + hex.EncodeToString(sum[:8]) + `"`}
	return hashed
}

// AddFS reads the named files from fsys and adds them.
func (b *Bundle) AddFS(fsys fs.FS, names ...string) error {
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		b.Add(path.Base(name), data)
	}
	return nil
}

// Asset returns the URL path of source. Unknown names resolve to the
// prefix plus the name unchanged.
func (b *Bundle) Asset(source string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if hashed, ok := b.manifest[source]; ok {
		return b.prefix + hashed
	}
	return b.prefix + source
}

// Has reports whether source was added.
func (b *Bundle) Has(source string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.manifest[source]
	return ok
}

// Manifest returns a copy of the source to fingerprinted name mapping.
func (b *Bundle) Manifest() map[string]string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[string]string, len(b.manifest))
	for k, v := range b.manifest {
		out[k] = v
	}
	return out
}

// ServeHTTP serves a fingerprinted file named by the last path segment.
func (b *Bundle) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Base(r.URL.Path)

	b.mu.RLock()
	f, ok := b.files[name]
	b.mu.RUnlock()
	if !ok {
		http.NotFound(w, r)
		return
	}

	h := w.Header()
	h.Set("ETag", f.etag)
	if r.Header.Get("If-None-Match") == f.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	h.Set("Content-Type", f.contentType)
	h.Set("Cache-Control", "public, max-age=31536000, immutable")
	h.Set("X-Content-Type-Options", "nosniff")
	w.Write(f.data)
}
