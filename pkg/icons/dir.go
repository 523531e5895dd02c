package icons

import (
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vango-dev/multislider/internal/errors"
)

// DirStore serves icons from a local directory.
type DirStore struct {
	dir string
}

// NewDirStore creates a DirStore rooted at dir. The directory must exist.
func NewDirStore(dir string) (*DirStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.New("E302").WithDetail(dir).Wrap(err)
	}
	if !info.IsDir() {
		return nil, errors.New("E302").WithDetail(dir + " is not a directory")
	}
	return &DirStore{dir: dir}, nil
}

// Open opens the named icon. Names that would escape the directory are
// reported as not found.
func (s *DirStore) Open(_ context.Context, name string) (io.ReadCloser, string, error) {
	clean, ok := CleanName(name)
	if !ok {
		return nil, "", notFound(name)
	}

	f, err := os.Open(filepath.Join(s.dir, clean))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, "", notFound(name)
		}
		return nil, "", errors.New("E302").WithDetail(name).Wrap(err)
	}

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		f.Close()
		return nil, "", notFound(name)
	}
	return f, contentType(clean), nil
}
