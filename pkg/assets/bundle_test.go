package assets

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundle_AddAndResolve(t *testing.T) {
	b := NewBundle("/assets/")
	hashed := b.Add("client.js", []byte("console.log(1)"))

	assert.Regexp(t, regexp.MustCompile(`^client\.[0-9a-f]{8}\.js$`), hashed)
	assert.Equal(t, "/assets/"+hashed, b.Asset("client.js"))
	assert.Equal(t, "/assets/unknown.css", b.Asset("unknown.css"))
	assert.True(t, b.Has("client.js"))
	assert.False(t, b.Has("unknown.css"))

	again := b.Add("client.js", []byte("console.log(2)"))
	assert.NotEqual(t, hashed, again, "content changes the fingerprint")
	assert.Equal(t, map[string]string{"client.js": again}, b.Manifest())
}

func TestBundle_SameContentSameName(t *testing.T) {
	a := NewBundle("")
	b := NewBundle("")
	assert.Equal(t, a.Add("x.css", []byte("body{}")), b.Add("x.css", []byte("body{}")))
}

func TestBundle_AddFS(t *testing.T) {
	fsys := fstest.MapFS{
		"static/demo.css":  {Data: []byte("body{}")},
		"static/client.js": {Data: []byte("1")},
	}
	b := NewBundle("/a/")
	require.NoError(t, b.AddFS(fsys, "static/demo.css", "static/client.js"))
	assert.True(t, b.Has("demo.css"))
	assert.True(t, b.Has("client.js"))

	assert.Error(t, b.AddFS(fsys, "static/missing.js"))
}

func TestBundle_ServeHTTP(t *testing.T) {
	b := NewBundle("/assets/")
	b.Add("demo.css", []byte("body{}"))
	url := b.Asset("demo.css")

	rec := httptest.NewRecorder()
	b.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, rec.Header().Get("Cache-Control"), "immutable")

	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	b.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)

	rec = httptest.NewRecorder()
	b.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/demo.css", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code, "only fingerprinted names are served")
}
