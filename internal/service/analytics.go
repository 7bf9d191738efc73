package service

import (
	"context"

	"github.com/umalmyha/salescrm/internal/model"
	"github.com/umalmyha/salescrm/internal/repository"
)

// AnalyticsService computes aggregate pipeline figures. Stats are always
// recalculated from the current store state per request, nothing is cached
// or incrementally maintained.
type AnalyticsService interface {
	DashboardStats(ctx context.Context, ownerID string) (*model.DashboardStats, error)
}

type analyticsService struct {
	customerRepo repository.CustomerRepository
	leadRepo     repository.LeadRepository
}

// NewAnalyticsService builds new AnalyticsService
func NewAnalyticsService(customerRepo repository.CustomerRepository, leadRepo repository.LeadRepository) AnalyticsService {
	return &analyticsService{customerRepo: customerRepo, leadRepo: leadRepo}
}

// DashboardStats folds every figure out of a single owner-scoped lead set,
// so counts and revenue can never disagree about which leads they cover
func (s *analyticsService) DashboardStats(ctx context.Context, ownerID string) (*model.DashboardStats, error) {
	totalCustomers, err := s.customerRepo.CountByOwner(ctx, ownerID, "")
	if err != nil {
		return nil, storeErr(err)
	}

	leads, err := s.leadRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, storeErr(err)
	}

	stats := &model.DashboardStats{TotalCustomers: totalCustomers}
	for _, l := range leads {
		stats.TotalLeads++

		switch l.Status {
		case model.LeadStatusConverted:
			stats.Opportunities++
			stats.Revenue += l.Amount()
		case model.LeadStatusLost:
			stats.Lost++
		}
	}
	return stats, nil
}
