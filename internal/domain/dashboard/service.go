package dashboard

import "context"

type DashboardService interface {
	// Overview summarises today's attendance and the last week's trend
	Overview(ctx context.Context) (OverviewResponse, error)
}
