package usecase

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// UploadPathPrefix is the URL prefix uploaded files are served under
const UploadPathPrefix = "/api/uploads/"

// UploadResult tells the client where an uploaded file is served
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// UploadUseCase stores files under generated names
type UploadUseCase struct {
	storage interfaces.BlobStorage
}

func NewUploadUseCase(storage interfaces.BlobStorage) *UploadUseCase {
	return &UploadUseCase{storage: storage}
}

// Upload stores r as {uuid}.{ext}, keeping the extension of original
func (uc *UploadUseCase) Upload(ctx context.Context, original, contentType string, r io.Reader) (*UploadResult, error) {
	if uc.storage == nil {
		return nil, goerr.Wrap(ErrStorageNotConfigured, "cannot upload")
	}

	name := uuid.NewString()
	if ext := strings.TrimPrefix(path.Ext(path.Base(original)), "."); ext != "" {
		name += "." + ext
	}

	if err := uc.storage.Put(ctx, name, contentType, r); err != nil {
		return nil, goerr.Wrap(err, "failed to store upload", goerr.V(FilenameKey, name))
	}

	return &UploadResult{URL: UploadPathPrefix + name, Filename: name}, nil
}

// Open returns the stored file and its content type
func (uc *UploadUseCase) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	if uc.storage == nil {
		return nil, "", goerr.Wrap(ErrStorageNotConfigured, "cannot open upload")
	}
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return nil, "", goerr.Wrap(ErrUploadNotFound, "invalid upload name", goerr.V(FilenameKey, name))
	}

	rc, contentType, err := uc.storage.Open(ctx, name)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, "", goerr.Wrap(ErrUploadNotFound, "upload not found", goerr.V(FilenameKey, name))
		}
		return nil, "", goerr.Wrap(err, "failed to open upload", goerr.V(FilenameKey, name))
	}
	return rc, contentType, nil
}
