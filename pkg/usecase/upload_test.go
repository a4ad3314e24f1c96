package usecase_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/geunaseh/jeumala/pkg/service/storage"
	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestUploadUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("not configured", func(t *testing.T) {
		uc := usecase.NewUploadUseCase(nil)
		_, err := uc.Upload(ctx, "a.png", "image/png", strings.NewReader("x"))
		gt.Error(t, err).Is(usecase.ErrStorageNotConfigured)
	})

	local, err := storage.NewLocal(t.TempDir())
	gt.NoError(t, err).Required()
	uc := usecase.NewUploadUseCase(local)

	t.Run("stores under a generated name keeping the extension", func(t *testing.T) {
		res, err := uc.Upload(ctx, "../../etc/banner.PNG", "image/png", strings.NewReader("pixels"))
		gt.NoError(t, err).Required()
		gt.Bool(t, strings.HasSuffix(res.Filename, ".PNG")).True()
		gt.Value(t, res.URL).Equal(usecase.UploadPathPrefix + res.Filename)

		rc, _, err := uc.Open(ctx, res.Filename)
		gt.NoError(t, err).Required()
		defer rc.Close()
		data, err := io.ReadAll(rc)
		gt.NoError(t, err).Required()
		gt.Value(t, string(data)).Equal("pixels")
	})

	t.Run("no extension", func(t *testing.T) {
		res, err := uc.Upload(ctx, "README", "", strings.NewReader("x"))
		gt.NoError(t, err).Required()
		gt.Bool(t, strings.Contains(res.Filename, ".")).False()
	})

	t.Run("missing and traversal names", func(t *testing.T) {
		_, _, err := uc.Open(ctx, "nope.png")
		gt.Error(t, err).Is(usecase.ErrUploadNotFound)
		_, _, err = uc.Open(ctx, "../secret")
		gt.Error(t, err).Is(usecase.ErrUploadNotFound)
	})
}
