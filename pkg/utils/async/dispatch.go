package async

import (
	"context"
	"time"

	"github.com/geunaseh/jeumala/pkg/utils/errutil"
	"github.com/geunaseh/jeumala/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Timeout bounds every dispatched task
const Timeout = 30 * time.Second

// Dispatch runs task in its own goroutine. The task gets a fresh context that
// keeps the caller's logger but not its cancellation, so it survives the end
// of the HTTP request that started it. Failures and panics go to
// errutil.Handle.
func Dispatch(ctx context.Context, name string, task func(ctx context.Context) error) {
	logger := logging.From(ctx).With("task", name)

	go func() {
		bgCtx, cancel := context.WithTimeout(logging.With(context.Background(), logger), Timeout)
		defer cancel()

		defer func() {
			if r := recover(); r != nil {
				_ = errutil.Handle(bgCtx, goerr.New("background task panicked", goerr.V("panic", r)), "panic in background task")
			}
		}()

		if err := task(bgCtx); err != nil {
			_ = errutil.Handle(bgCtx, err, "background task failed")
		}
	}()
}
