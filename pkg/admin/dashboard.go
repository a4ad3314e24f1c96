package admin

import (
	"context"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/geunaseh/jeumala/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// DashboardResources are counted on the dashboard, in display order
var DashboardResources = []types.ResourceName{
	types.ResourceArticles,
	types.ResourceEvents,
	types.ResourceMedia,
	types.ResourceTasks,
}

// DashboardCount is the number of items in one collection
type DashboardCount struct {
	Resource types.ResourceName
	Count    int
}

// LoadDashboard lists each resource concurrently and returns the counts in
// the given order. A failed list counts as zero.
func LoadDashboard(ctx context.Context, api interfaces.ResourceAPI, tokens interfaces.TokenSource, resources []types.ResourceName) []DashboardCount {
	counts := make([]DashboardCount, len(resources))
	token := tokens.Token()

	var eg errgroup.Group
	for i, res := range resources {
		eg.Go(func() error {
			n := 0
			records, err := api.List(ctx, res, token)
			if err != nil {
				logging.From(ctx).Warn("failed to count items", "resource", res, "error", err.Error())
			} else {
				n = len(records)
			}

			counts[i] = DashboardCount{Resource: res, Count: n}
			return nil
		})
	}
	_ = eg.Wait()

	return counts
}
