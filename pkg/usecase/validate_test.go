package usecase_test

import (
	"context"
	"testing"

	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/geunaseh/jeumala/pkg/repository/memory"
	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestValidateDB(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)

	// written directly, bypassing schema checks
	gt.NoError(t, repo.Record().PutMany(ctx, types.ResourceTasks, []model.Record{
		{"id": "ok", "title": "Fine", "status": "done", "priority": "low"},
		{"id": "bad-status", "title": "Odd", "status": "archived", "priority": "high"},
		{"id": "no-title", "title": "", "status": "pending"},
	})).Required()

	result, err := uc.ValidateDB(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, result.Checked).Equal(3)
	gt.Bool(t, result.HasIssues()).True()
	gt.Array(t, result.Issues).Length(2)

	byRecord := map[string]usecase.ValidationIssue{}
	for _, issue := range result.Issues {
		byRecord[issue.RecordID] = issue
	}
	gt.Value(t, byRecord["bad-status"].Field).Equal("status")
	gt.Value(t, byRecord["bad-status"].Actual).Equal("archived")
	gt.Value(t, byRecord["no-title"].Field).Equal("title")
	gt.Value(t, byRecord["no-title"].Resource).Equal(types.ResourceTasks)
}
