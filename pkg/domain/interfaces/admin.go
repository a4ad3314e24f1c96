package interfaces

import (
	"context"

	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/types"
)

// ResourceAPI is the REST transport used by the admin controller. Non-2xx
// responses are returned as errors.
type ResourceAPI interface {
	List(ctx context.Context, endpoint types.ResourceName, token string) ([]model.Record, error)
	Create(ctx context.Context, endpoint types.ResourceName, token string, payload model.Record) error
	Update(ctx context.Context, endpoint types.ResourceName, token, id string, payload model.Record) error
	Delete(ctx context.Context, endpoint types.ResourceName, token, id string) error
}

// TokenSource supplies the current bearer token. An empty string means no
// token is available.
type TokenSource interface {
	Token() string
}

// Notifier shows a transient message to the user
type Notifier interface {
	Notify(message string, kind types.NoticeKind)
}

// Confirmer asks the user to confirm a destructive action
type Confirmer interface {
	Confirm(ctx context.Context, message string) bool
}

// TaskParser turns free text into a task draft
type TaskParser interface {
	ParseTask(ctx context.Context, text string) (model.Record, error)
}
