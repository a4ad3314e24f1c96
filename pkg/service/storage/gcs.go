package storage

import (
	"context"
	"errors"
	"io"

	"cloud.google.com/go/storage"
	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

// GCS stores uploads in a Cloud Storage bucket under an optional prefix
type GCS struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ interfaces.BlobStorage = &GCS{}

// NewGCS creates a client using application default credentials
func NewGCS(ctx context.Context, bucket, prefix string) (*GCS, error) {
	if bucket == "" {
		return nil, goerr.New("GCS bucket is required")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", bucket))
	}
	return &GCS{client: client, bucket: bucket, prefix: prefix}, nil
}

func (g *GCS) object(name string) *storage.ObjectHandle {
	return g.client.Bucket(g.bucket).Object(g.prefix + name)
}

func (g *GCS) Put(ctx context.Context, name, contentType string, r io.Reader) error {
	if err := validateName(name); err != nil {
		return err
	}

	w := g.object(name).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to upload object", goerr.V("bucket", g.bucket), goerr.V("name", name))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize object", goerr.V("bucket", g.bucket), goerr.V("name", name))
	}
	return nil
}

func (g *GCS) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	if err := validateName(name); err != nil {
		return nil, "", err
	}

	rd, err := g.object(name).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, "", goerr.Wrap(interfaces.ErrNotFound, "object not found", goerr.V("name", name))
	}
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to open object", goerr.V("bucket", g.bucket), goerr.V("name", name))
	}

	ct := rd.Attrs.ContentType
	if ct == "" {
		ct = contentTypeOf(name)
	}
	return rd, ct, nil
}

// Close releases the storage client
func (g *GCS) Close() error {
	return g.client.Close()
}
