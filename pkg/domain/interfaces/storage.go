package interfaces

import (
	"context"
	"io"
)

// BlobStorage keeps uploaded files
type BlobStorage interface {
	Put(ctx context.Context, name, contentType string, r io.Reader) error
	Open(ctx context.Context, name string) (io.ReadCloser, string, error)
}

// RegistrationNotifier is told about new event registrations
type RegistrationNotifier interface {
	NotifyRegistration(ctx context.Context, event, registration map[string]any) error
}
