package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// Local stores uploads in a directory on disk
type Local struct {
	dir string
}

var _ interfaces.BlobStorage = &Local{}

// NewLocal creates the directory if needed
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create upload directory", goerr.V("dir", dir))
	}
	return &Local{dir: dir}, nil
}

func (l *Local) Put(ctx context.Context, name, contentType string, r io.Reader) error {
	if err := validateName(name); err != nil {
		return err
	}

	p := filepath.Join(l.dir, name)
	f, err := os.Create(p)
	if err != nil {
		return goerr.Wrap(err, "failed to create file", goerr.V("path", p))
	}
	defer safe.Close(ctx, f)

	if _, err := io.Copy(f, r); err != nil {
		return goerr.Wrap(err, "failed to write file", goerr.V("path", p))
	}
	return nil
}

func (l *Local) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	if err := validateName(name); err != nil {
		return nil, "", err
	}

	p := filepath.Join(l.dir, name)
	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", goerr.Wrap(interfaces.ErrNotFound, "file not found", goerr.V("name", name))
	}
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to open file", goerr.V("path", p))
	}
	return f, contentTypeOf(name), nil
}
