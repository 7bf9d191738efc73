package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/umalmyha/salescrm/internal/cache"
	errs "github.com/umalmyha/salescrm/internal/errors"
	"github.com/umalmyha/salescrm/internal/model"
	"github.com/umalmyha/salescrm/internal/repository"
	"github.com/umalmyha/salescrm/pkg/db/transactor"
)

const defaultPageLimit = 10

// CustomerService provides customer-related business logic. Every operation
// is scoped to the provided owner - a customer which exists but belongs to
// another user is reported as not found.
type CustomerService interface {
	Create(ctx context.Context, ownerID string, c *model.Customer) (*model.Customer, error)
	FindAll(ctx context.Context, ownerID, search string, page, limit int) ([]*model.Customer, int, error)
	FindByID(ctx context.Context, ownerID, id string) (*model.Customer, []*model.Lead, error)
	Merge(ctx context.Context, ownerID string, patch *model.PatchCustomer) (*model.Customer, error)
	DeleteByID(ctx context.Context, ownerID, id string) error
}

type customerService struct {
	trx           transactor.Transactor
	customerRepo  repository.CustomerRepository
	leadRepo      repository.LeadRepository
	customerCache cache.CustomerCacheRepository
}

// NewCustomerService builds new CustomerService
func NewCustomerService(
	trx transactor.Transactor,
	customerRepo repository.CustomerRepository,
	leadRepo repository.LeadRepository,
	customerCache cache.CustomerCacheRepository,
) CustomerService {
	return &customerService{
		trx:           trx,
		customerRepo:  customerRepo,
		leadRepo:      leadRepo,
		customerCache: customerCache,
	}
}

// Create persists new customer, owner is always the caller regardless of
// anything supplied in the payload
func (s *customerService) Create(ctx context.Context, ownerID string, c *model.Customer) (*model.Customer, error) {
	c.ID = uuid.NewString()
	c.OwnerID = ownerID

	if err := s.customerRepo.Create(ctx, c); err != nil {
		return nil, storeErr(err)
	}
	return c, nil
}

func (s *customerService) FindAll(ctx context.Context, ownerID, search string, page, limit int) ([]*model.Customer, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}

	count, err := s.customerRepo.CountByOwner(ctx, ownerID, search)
	if err != nil {
		return nil, 0, storeErr(err)
	}

	customers, err := s.customerRepo.FindByOwner(ctx, ownerID, search, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, storeErr(err)
	}

	totalPages := (count + limit - 1) / limit
	return customers, totalPages, nil
}

func (s *customerService) FindByID(ctx context.Context, ownerID, id string) (*model.Customer, []*model.Lead, error) {
	c, err := s.customerOwnedBy(ctx, id, ownerID)
	if err != nil {
		return nil, nil, err
	}

	leads, err := s.leadRepo.FindByCustomerID(ctx, id)
	if err != nil {
		return nil, nil, storeErr(err)
	}
	return c, leads, nil
}

func (s *customerService) Merge(ctx context.Context, ownerID string, patch *model.PatchCustomer) (*model.Customer, error) {
	var merged *model.Customer

	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		c, err := s.resolveOwned(ctx, patch.ID, ownerID)
		if err != nil {
			return err
		}

		merged = c.MergePatch(patch)
		if err := s.customerRepo.Update(ctx, merged); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.customerCache.DeleteByID(ctx, patch.ID); err != nil {
		return nil, err
	}
	return merged, nil
}

// DeleteByID removes customer together with all its leads. Lead removal and
// customer removal run in one transaction, so a failing cascade leaves the
// customer in place instead of orphaning its leads.
func (s *customerService) DeleteByID(ctx context.Context, ownerID, id string) error {
	err := s.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.resolveOwned(ctx, id, ownerID); err != nil {
			return err
		}

		if err := s.leadRepo.DeleteByCustomerID(ctx, id); err != nil {
			return storeErr(err)
		}

		if err := s.customerRepo.DeleteByID(ctx, id); err != nil {
			return storeErr(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return s.customerCache.DeleteByID(ctx, id)
}

// customerOwnedBy is read path of ownership resolution going through cache first
func (s *customerService) customerOwnedBy(ctx context.Context, id, ownerID string) (*model.Customer, error) {
	cached, err := s.customerCache.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cached != nil {
		if cached.OwnerID != ownerID {
			return nil, notFoundCustomerErr(id)
		}
		return cached, nil
	}

	c, err := s.resolveOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.customerCache.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// resolveOwned loads customer from the primary store and verifies ownership.
// Foreign ownership is indistinguishable from absence on purpose.
func (s *customerService) resolveOwned(ctx context.Context, id, ownerID string) (*model.Customer, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}

	if c == nil || c.OwnerID != ownerID {
		return nil, notFoundCustomerErr(id)
	}
	return c, nil
}

func notFoundCustomerErr(id string) error {
	return errs.NewEntryNotFoundErr(fmt.Sprintf("customer with id %s not found", id))
}
