package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestAgentUseCase_ParseTask(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewAgentUseCase()

	t.Run("short text becomes the title", func(t *testing.T) {
		task, err := uc.ParseTask(ctx, "Siapkan konsumsi kajian")
		gt.NoError(t, err).Required()
		gt.Value(t, task.String("title")).Equal("Siapkan konsumsi kajian")
		gt.Value(t, task.String("description")).Equal("Siapkan konsumsi kajian")
		gt.Value(t, task.String("priority")).Equal("medium")
		gt.Value(t, task.String("status")).Equal("pending")
		gt.Value(t, task.String("dueDate")).Equal("")
	})

	t.Run("long text is cut to fifty characters", func(t *testing.T) {
		text := strings.Repeat("é", 60)
		task, err := uc.ParseTask(ctx, text)
		gt.NoError(t, err).Required()
		gt.Value(t, task.String("title")).Equal(strings.Repeat("é", 50))
		gt.Value(t, task.String("description")).Equal(text)
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := uc.ParseTask(ctx, "   ")
		gt.Error(t, err).Is(usecase.ErrInvalidInput)
	})
}
