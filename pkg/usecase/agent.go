package usecase

import (
	"context"
	"strings"

	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// AgentReply is the message returned along with a parsed task
const AgentReply = "Task berhasil dibuat dari input natural language (mock)"

const agentTitleLength = 50

// AgentUseCase derives a task draft from free text. No language model is
// involved: the text becomes the description and its head becomes the title.
type AgentUseCase struct{}

func NewAgentUseCase() *AgentUseCase {
	return &AgentUseCase{}
}

// ParseTask returns a pending, medium-priority task draft
func (uc *AgentUseCase) ParseTask(ctx context.Context, text string) (model.Record, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "text is required")
	}

	title := text
	if runes := []rune(text); len(runes) > agentTitleLength {
		title = string(runes[:agentTitleLength])
	}

	return model.Record{
		"title":       title,
		"description": text,
		"priority":    types.TaskPriorityMedium.String(),
		"status":      types.TaskStatusPending.String(),
		"dueDate":     "",
		"assignee":    "",
		"remindAt":    "",
	}, nil
}
