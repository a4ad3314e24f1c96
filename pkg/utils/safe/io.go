package safe

import (
	"context"
	"io"
	"log/slog"

	"github.com/geunaseh/jeumala/pkg/utils/logging"
)

// Close closes c and logs a failure together with attrs, e.g. the name of
// the backend being released. A nil closer is ignored.
func Close(ctx context.Context, c io.Closer, attrs ...any) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logging.From(ctx).Error("failed to close", append(attrs, slog.Any("error", err))...)
	}
}

// Write sends a fully buffered response body. Headers are already committed
// at this point, so a failure can only be logged.
func Write(ctx context.Context, w io.Writer, data []byte) {
	if w == nil {
		return
	}
	if n, err := w.Write(data); err != nil {
		logging.From(ctx).Error("failed to write response",
			slog.Int("written", n),
			slog.Int("size", len(data)),
			slog.Any("error", err),
		)
	}
}

// Copy streams src into dst and returns the number of bytes copied
func Copy(ctx context.Context, dst io.Writer, src io.Reader) int64 {
	n, err := io.Copy(dst, src)
	if err != nil {
		logging.From(ctx).Error("failed to stream content",
			slog.Int64("copied", n),
			slog.Any("error", err),
		)
	}
	return n
}
