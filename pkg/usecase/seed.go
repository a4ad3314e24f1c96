package usecase

import (
	"context"
	_ "embed"
	"time"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/geunaseh/jeumala/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedData struct {
	Members   []model.Record `yaml:"members"`
	Pages     []*model.Page  `yaml:"pages"`
	Articles  []model.Record `yaml:"articles"`
	Events    []model.Record `yaml:"events"`
	Documents []model.Record `yaml:"documents"`
	Media     []model.Record `yaml:"media"`
}

// SeedResult reports how many items were written per collection
type SeedResult struct {
	Counts map[string]int `json:"counts"`
}

// SeedUseCase replaces sample content with the bundled data set
type SeedUseCase struct {
	repo interfaces.Repository
	now  func() time.Time
}

func NewSeedUseCase(repo interfaces.Repository, now func() time.Time) *SeedUseCase {
	return &SeedUseCase{repo: repo, now: now}
}

func loadSeedData() (*seedData, error) {
	var data seedData
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return nil, goerr.Wrap(err, "failed to decode seed data")
	}
	return &data, nil
}

// Seed clears members, pages, articles, events, documents and media and
// writes the sample set. Tasks, registrations and users are left untouched.
func (uc *SeedUseCase) Seed(ctx context.Context) (*SeedResult, error) {
	data, err := loadSeedData()
	if err != nil {
		return nil, err
	}

	result := &SeedResult{Counts: make(map[string]int)}
	base := uc.now()

	collections := []struct {
		name    types.ResourceName
		records []model.Record
	}{
		{types.ResourceMembers, data.Members},
		{types.ResourceArticles, data.Articles},
		{types.ResourceEvents, data.Events},
		{types.ResourceDocuments, data.Documents},
		{types.ResourceMedia, data.Media},
	}

	for _, c := range collections {
		records := make([]model.Record, 0, len(c.records))
		for i, src := range c.records {
			rec := make(model.Record, len(src)+3)
			for k, v := range src {
				if seq, ok := v.([]any); ok {
					v = model.StringSlice(seq)
				}
				rec[k] = v
			}
			// Offset timestamps so list order follows the seed file
			ts := model.FormatTime(base.Add(time.Duration(i) * time.Millisecond))
			rec[model.KeyID] = model.NewRecordID()
			rec[model.KeyCreatedAt] = ts
			rec[model.KeyUpdatedAt] = ts
			records = append(records, rec)
		}

		if err := uc.repo.Record().DeleteAll(ctx, c.name); err != nil {
			return nil, goerr.Wrap(err, "failed to clear collection", goerr.V(ResourceKey, c.name))
		}
		if err := uc.repo.Record().PutMany(ctx, c.name, records); err != nil {
			return nil, goerr.Wrap(err, "failed to seed collection", goerr.V(ResourceKey, c.name))
		}
		result.Counts[c.name.String()] = len(records)
	}

	if err := uc.repo.Page().DeleteAll(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to clear pages")
	}
	for _, page := range data.Pages {
		page.ID = model.NewRecordID()
		page.UpdatedAt = base.UTC()
		if page.Sections == nil {
			page.Sections = []map[string]any{}
		}
		if err := uc.repo.Page().Put(ctx, page); err != nil {
			return nil, goerr.Wrap(err, "failed to seed page", goerr.V(PageIDKey, page.PageID))
		}
	}
	result.Counts["pages"] = len(data.Pages)

	logging.From(ctx).Info("sample data seeded", "counts", result.Counts)
	return result, nil
}
