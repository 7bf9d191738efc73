package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	errs "github.com/umalmyha/salescrm/internal/errors"
	"github.com/umalmyha/salescrm/internal/model"
	"github.com/umalmyha/salescrm/internal/repository"
	"github.com/umalmyha/salescrm/pkg/db/transactor"
)

// LeadService provides lead-related business logic. A lead has no owner
// field of its own, so every check walks the lead -> customer -> user chain.
// Unlike customer-level checks, a lead which exists under somebody else's
// customer is reported as unauthorized rather than not found.
type LeadService interface {
	Create(ctx context.Context, ownerID, customerID string, l *model.Lead) (*model.Lead, error)
	FindByCustomerID(ctx context.Context, ownerID, customerID string) ([]*model.Lead, error)
	Merge(ctx context.Context, ownerID string, patch *model.PatchLead) (*model.Lead, error)
	DeleteByID(ctx context.Context, ownerID, id string) error
}

type leadService struct {
	trx          transactor.Transactor
	customerRepo repository.CustomerRepository
	leadRepo     repository.LeadRepository
}

// NewLeadService builds new LeadService
func NewLeadService(trx transactor.Transactor, customerRepo repository.CustomerRepository, leadRepo repository.LeadRepository) LeadService {
	return &leadService{trx: trx, customerRepo: customerRepo, leadRepo: leadRepo}
}

// Create persists new lead under the customer from the request path. The
// parent must belong to the caller, otherwise nothing is created and the
// customer is reported as not found.
func (s *leadService) Create(ctx context.Context, ownerID, customerID string, l *model.Lead) (*model.Lead, error) {
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.resolveCustomerOwnership(ctx, customerID, ownerID); err != nil {
			return err
		}

		l.ID = uuid.NewString()
		l.CustomerID = customerID
		if l.Status == "" {
			l.Status = model.LeadStatusNew
		}
		l.CreatedAt = time.Now().UTC()

		if err := s.leadRepo.Create(ctx, l); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (s *leadService) FindByCustomerID(ctx context.Context, ownerID, customerID string) ([]*model.Lead, error) {
	if err := s.resolveCustomerOwnership(ctx, customerID, ownerID); err != nil {
		return nil, err
	}

	leads, err := s.leadRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, storeErr(err)
	}
	return leads, nil
}

func (s *leadService) Merge(ctx context.Context, ownerID string, patch *model.PatchLead) (*model.Lead, error) {
	var merged *model.Lead

	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		l, err := s.resolveLeadOwnership(ctx, patch.ID, ownerID)
		if err != nil {
			return err
		}

		merged = l.MergePatch(patch)
		if err := s.leadRepo.Update(ctx, merged); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *leadService) DeleteByID(ctx context.Context, ownerID, id string) error {
	return s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.resolveLeadOwnership(ctx, id, ownerID); err != nil {
			return err
		}

		if err := s.leadRepo.DeleteByID(ctx, id); err != nil {
			return storeErr(err)
		}
		return nil
	})
}

func (s *leadService) resolveCustomerOwnership(ctx context.Context, customerID, ownerID string) error {
	c, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return storeErr(err)
	}

	if c == nil || c.OwnerID != ownerID {
		return errs.NewEntryNotFoundErr(fmt.Sprintf("customer with id %s not found", customerID))
	}
	return nil
}

func (s *leadService) resolveLeadOwnership(ctx context.Context, id, ownerID string) (*model.Lead, error) {
	l, err := s.leadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}

	if l == nil {
		return nil, errs.NewEntryNotFoundErr(fmt.Sprintf("lead with id %s not found", id))
	}

	c, err := s.customerRepo.FindByID(ctx, l.CustomerID)
	if err != nil {
		return nil, storeErr(err)
	}

	if c == nil || c.OwnerID != ownerID {
		return nil, errs.NewUnauthorizedErr("user is not authorized to manage this lead")
	}
	return l, nil
}
