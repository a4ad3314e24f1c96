package admin

import (
	"context"
	"log/slog"
	"strings"

	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/model/config"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/geunaseh/jeumala/pkg/utils/logging"
)

// logNotifier writes notifications to the default logger
type logNotifier struct{}

func (logNotifier) Notify(message string, kind types.NoticeKind) {
	level := slog.LevelInfo
	if kind == types.NoticeError {
		level = slog.LevelError
	}
	logging.Default().Log(context.Background(), level, message, "kind", kind)
}

// denyConfirmer declines every request so nothing is deleted without an
// explicit confirmer
type denyConfirmer struct{}

func (denyConfirmer) Confirm(context.Context, string) bool { return false }

// defaultRender shows the first non-empty required field, falling back to the id
func defaultRender(schema *config.ResourceSchema) func(model.Record) string {
	var keys []string
	for _, f := range schema.Fields {
		if f.Required {
			keys = append(keys, f.Name)
		}
	}
	return func(r model.Record) string {
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			if v := r.String(k); v != "" {
				parts = append(parts, v)
			}
		}
		if len(parts) == 0 {
			return r.ID()
		}
		return strings.Join(parts, " | ")
	}
}
