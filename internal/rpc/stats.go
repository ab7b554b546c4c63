package rpc

import (
	"context"

	"github.com/daniilsolovey/clinic-cms/internal/cms"
	"github.com/vmkteam/zenrpc/v2"
)

// StatsService reports content counters for the dashboard.
type StatsService struct {
	zenrpc.Service
	cms *cms.Manager
}

func NewStatsService(manager *cms.Manager) *StatsService {
	return &StatsService{cms: manager}
}

// Get returns content counts by status along with media and user totals.
func (s *StatsService) Get(ctx context.Context) (*Stats, error) {
	stats, err := s.cms.Stats(ctx)
	if err != nil {
		return nil, newError(err)
	}

	return ptr(stats, NewStats), nil
}
