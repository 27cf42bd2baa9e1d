package service

import (
	"context"
	"time"

	"github.com/siddhivinayaka18/afh-crm/internal/domain"
	"github.com/siddhivinayaka18/afh-crm/internal/scope"
)

type StatsStore interface {
	CountLeads(ctx context.Context, ident scope.Identity) (int, error)
	CountCustomers(ctx context.Context, ident scope.Identity) (int, error)
	CountConvertedLeads(ctx context.Context, ident scope.Identity) (int, error)
	LeadsByStatus(ctx context.Context, ident scope.Identity) (map[string]int, error)
	CountLeadsCreatedBetween(ctx context.Context, ident scope.Identity, from, to time.Time) (int, error)
	CountCustomersCreatedBetween(ctx context.Context, ident scope.Identity, from, to time.Time) (int, error)
	UserLeadStats(ctx context.Context) ([]domain.UserLeadStats, error)
}

type DashboardService struct {
	repo StatsStore
	now  func() time.Time
}

func NewDashboardService(repo StatsStore) *DashboardService {
	return &DashboardService{
		repo: repo,
		now:  time.Now,
	}
}

// ComputeStats assembles the snapshot from independent queries; any single
// failure aborts the whole response. The per-user breakdown is admin-only
// and intentionally unscoped: its purpose is cross-agent comparison.
func (s *DashboardService) ComputeStats(ctx context.Context, ident scope.Identity) (*domain.StatsSnapshot, error) {
	snapshot := &domain.StatsSnapshot{}

	var err error
	if snapshot.TotalLeads, err = s.repo.CountLeads(ctx, ident); err != nil {
		return nil, err
	}
	if snapshot.TotalCustomers, err = s.repo.CountCustomers(ctx, ident); err != nil {
		return nil, err
	}
	if snapshot.ConvertedLeads, err = s.repo.CountConvertedLeads(ctx, ident); err != nil {
		return nil, err
	}
	if snapshot.LeadsByStatus, err = s.repo.LeadsByStatus(ctx, ident); err != nil {
		return nil, err
	}

	startOfDay, endOfDay := s.todayRange()
	if snapshot.TodayLeads, err = s.repo.CountLeadsCreatedBetween(ctx, ident, startOfDay, endOfDay); err != nil {
		return nil, err
	}
	if snapshot.TodayCustomers, err = s.repo.CountCustomersCreatedBetween(ctx, ident, startOfDay, endOfDay); err != nil {
		return nil, err
	}

	if ident.IsAdmin() {
		stats, err := s.repo.UserLeadStats(ctx)
		if err != nil {
			return nil, err
		}
		for i := range stats {
			if stats[i].TotalLeads > 0 {
				stats[i].ConversionRate = float64(stats[i].ConvertedLeads) / float64(stats[i].TotalLeads) * 100
			}
		}
		snapshot.UserStats = stats
	}

	return snapshot, nil
}

// todayRange is the current local day as a half-open interval.
func (s *DashboardService) todayRange() (time.Time, time.Time) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.Add(24 * time.Hour)
}
