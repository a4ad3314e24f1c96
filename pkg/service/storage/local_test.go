package storage_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/service/storage"
	"github.com/m-mizutani/gt"
)

func TestLocal(t *testing.T) {
	ctx := context.Background()
	store, err := storage.NewLocal(t.TempDir())
	gt.NoError(t, err).Required()

	t.Run("put and open", func(t *testing.T) {
		gt.NoError(t, store.Put(ctx, "a1.png", "image/png", strings.NewReader("PNGDATA"))).Required()

		rc, ct, err := store.Open(ctx, "a1.png")
		gt.NoError(t, err).Required()
		defer rc.Close()

		body, err := io.ReadAll(rc)
		gt.NoError(t, err).Required()
		gt.Value(t, string(body)).Equal("PNGDATA")
		gt.Value(t, ct).Equal("image/png")
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := store.Open(ctx, "missing.txt")
		gt.Error(t, err).Is(interfaces.ErrNotFound)
	})

	t.Run("traversal is rejected", func(t *testing.T) {
		for _, name := range []string{"../etc/passwd", "a/b", "..", ".hidden", ""} {
			gt.Error(t, store.Put(ctx, name, "", strings.NewReader("x"))).Is(storage.ErrInvalidName)
			_, _, err := store.Open(ctx, name)
			gt.Error(t, err).Is(storage.ErrInvalidName)
		}
	})
}
