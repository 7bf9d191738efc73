package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	cacheMocks "github.com/umalmyha/salescrm/internal/cache/mocks"
	errs "github.com/umalmyha/salescrm/internal/errors"
	"github.com/umalmyha/salescrm/internal/model"
	rpsMocks "github.com/umalmyha/salescrm/internal/repository/mocks"
	trxMocks "github.com/umalmyha/salescrm/pkg/db/transactor/mocks"
)

const (
	testOwnerID      = "0dd1a0c4-7b29-4f51-a469-cfaa54809c04"
	testStrangerID   = "37d0b24a-1ff3-4f91-9b64-a8e2e0936b49"
	testCustomerID   = "ecc770d9-4576-4f72-affa-8b1454246692"
	testCustomerName = "Stark Industries"
)

type customerServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	customer        *model.Customer
	customerSvc     CustomerService
	trxMock         *trxMocks.Transactor
	customerRpsMock *rpsMocks.CustomerRepository
	leadRpsMock     *rpsMocks.LeadRepository
	cacheMock       *cacheMocks.CustomerCacheRepository
}

func (s *customerServiceTestSuite) SetupTest() {
	t := s.T()
	s.ctx = context.Background()

	phone := "+12025550133"
	s.customer = &model.Customer{
		ID:      testCustomerID,
		Name:    testCustomerName,
		Email:   "contact@stark.com",
		Phone:   &phone,
		OwnerID: testOwnerID,
	}

	s.trxMock = trxMocks.NewTransactor(t)
	s.customerRpsMock = rpsMocks.NewCustomerRepository(t)
	s.leadRpsMock = rpsMocks.NewLeadRepository(t)
	s.cacheMock = cacheMocks.NewCustomerCacheRepository(t)
	s.customerSvc = NewCustomerService(s.trxMock, s.customerRpsMock, s.leadRpsMock, s.cacheMock)
}

func (s *customerServiceTestSuite) passThroughTransaction() {
	s.trxMock.On("WithinTransaction", mock.Anything, mock.AnythingOfType("func(context.Context) error")).Return(
		func(ctx context.Context, txFunc func(context.Context) error) error {
			return txFunc(ctx)
		},
	)
}

func (s *customerServiceTestSuite) TestCreateForcesCallerOwnership() {
	ctx := s.ctx

	s.customerRpsMock.On("Create", ctx, mock.AnythingOfType("*model.Customer")).Return(nil).Once()

	s.T().Log("created customer must belong to the caller regardless of payload")
	{
		c, err := s.customerSvc.Create(ctx, testOwnerID, &model.Customer{
			Name:    testCustomerName,
			Email:   "contact@stark.com",
			OwnerID: testStrangerID,
		})
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(testOwnerID, c.OwnerID, "owner must be the caller")
		s.Assert().NotEmpty(c.ID, "id must be generated")
	}
}

func (s *customerServiceTestSuite) TestFindByIDFromCache() {
	ctx := s.ctx

	s.cacheMock.On("FindByID", ctx, testCustomerID).Return(s.customer, nil).Once()
	s.leadRpsMock.On("FindByCustomerID", ctx, testCustomerID).Return([]*model.Lead{}, nil).Once()

	s.T().Log("customer must be found in cache")
	{
		c, _, err := s.customerSvc.FindByID(ctx, testOwnerID, testCustomerID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(testCustomerID, c.ID)
		s.customerRpsMock.AssertNotCalled(s.T(), "FindByID", ctx, testCustomerID)
	}
}

func (s *customerServiceTestSuite) TestFindByIDCachedForeignOwner() {
	ctx := s.ctx

	s.cacheMock.On("FindByID", ctx, testCustomerID).Return(s.customer, nil).Once()

	s.T().Log("cached customer of another owner must be reported as not found")
	{
		_, _, err := s.customerSvc.FindByID(ctx, testStrangerID, testCustomerID)
		s.Assert().ErrorAs(err, new(*errs.EntryNotFoundErr), "entry not found error must be raised")
		s.leadRpsMock.AssertNotCalled(s.T(), "FindByCustomerID", ctx, testCustomerID)
	}
}

func (s *customerServiceTestSuite) TestFindByIDCachesOnMiss() {
	ctx := s.ctx

	s.cacheMock.On("FindByID", ctx, testCustomerID).Return(nil, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, testCustomerID).Return(s.customer, nil).Once()
	s.cacheMock.On("Create", ctx, s.customer).Return(nil).Once()
	s.leadRpsMock.On("FindByCustomerID", ctx, testCustomerID).Return([]*model.Lead{}, nil).Once()

	s.T().Log("customer must be cached after read from primary datasource")
	{
		c, _, err := s.customerSvc.FindByID(ctx, testOwnerID, testCustomerID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(testCustomerID, c.ID)
		s.cacheMock.AssertCalled(s.T(), "Create", ctx, s.customer)
	}
}

func (s *customerServiceTestSuite) TestFindByIDNotFound() {
	ctx := s.ctx

	s.cacheMock.On("FindByID", ctx, testCustomerID).Return(nil, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, testCustomerID).Return(nil, nil).Once()

	s.T().Log("customer is missing in cache and in primary datasource")
	{
		_, _, err := s.customerSvc.FindByID(ctx, testOwnerID, testCustomerID)
		s.Assert().ErrorAs(err, new(*errs.EntryNotFoundErr), "entry not found error must be raised")
		s.cacheMock.AssertNotCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.Customer"))
	}
}

func (s *customerServiceTestSuite) TestFindAllPagination() {
	ctx := s.ctx

	s.customerRpsMock.On("CountByOwner", ctx, testOwnerID, "stark").Return(25, nil).Once()
	s.customerRpsMock.On("FindByOwner", ctx, testOwnerID, "stark", 10, 10).Return([]*model.Customer{s.customer}, nil).Once()

	s.T().Log("second page must be requested with correct offset")
	{
		customers, totalPages, err := s.customerSvc.FindAll(ctx, testOwnerID, "stark", 2, 10)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Len(customers, 1)
		s.Assert().Equal(3, totalPages, "total pages must round up")
	}
}

func (s *customerServiceTestSuite) TestMergeKeepsOwner() {
	ctx := s.ctx
	newName := "Wayne Enterprises"

	s.passThroughTransaction()
	s.customerRpsMock.On("FindByID", ctx, testCustomerID).Return(s.customer, nil).Once()
	s.customerRpsMock.On("Update", ctx, mock.AnythingOfType("*model.Customer")).Return(nil).Once()
	s.cacheMock.On("DeleteByID", ctx, testCustomerID).Return(nil).Once()

	s.T().Log("merge must change supplied fields only and never the owner")
	{
		c, err := s.customerSvc.Merge(ctx, testOwnerID, &model.PatchCustomer{ID: testCustomerID, Name: &newName})
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(newName, c.Name, "name must be updated")
		s.Assert().Equal("contact@stark.com", c.Email, "email must stay intact")
		s.Assert().Equal(testOwnerID, c.OwnerID, "owner must stay intact")
	}
}

func (s *customerServiceTestSuite) TestMergeForeignOwnerNotFound() {
	ctx := s.ctx
	newName := "Wayne Enterprises"

	s.passThroughTransaction()
	s.customerRpsMock.On("FindByID", ctx, testCustomerID).Return(s.customer, nil).Once()

	s.T().Log("merge of foreign customer must be reported as not found")
	{
		_, err := s.customerSvc.Merge(ctx, testStrangerID, &model.PatchCustomer{ID: testCustomerID, Name: &newName})
		s.Assert().ErrorAs(err, new(*errs.EntryNotFoundErr), "entry not found error must be raised")
		s.customerRpsMock.AssertNotCalled(s.T(), "Update", ctx, mock.AnythingOfType("*model.Customer"))
		s.cacheMock.AssertNotCalled(s.T(), "DeleteByID", ctx, testCustomerID)
	}
}

func (s *customerServiceTestSuite) TestDeleteCascadesToLeads() {
	ctx := s.ctx

	s.passThroughTransaction()
	s.customerRpsMock.On("FindByID", ctx, testCustomerID).Return(s.customer, nil).Once()
	s.leadRpsMock.On("DeleteByCustomerID", ctx, testCustomerID).Return(nil).Once()
	s.customerRpsMock.On("DeleteByID", ctx, testCustomerID).Return(nil).Once()
	s.cacheMock.On("DeleteByID", ctx, testCustomerID).Return(nil).Once()

	s.T().Log("leads must be removed before the customer itself")
	{
		err := s.customerSvc.DeleteByID(ctx, testOwnerID, testCustomerID)
		s.Assert().NoError(err, "no error must be raised")
	}
}

func (s *customerServiceTestSuite) TestDeleteAbortsOnCascadeFailure() {
	ctx := s.ctx

	s.passThroughTransaction()
	s.customerRpsMock.On("FindByID", ctx, testCustomerID).Return(s.customer, nil).Once()
	s.leadRpsMock.On("DeleteByCustomerID", ctx, testCustomerID).Return(errors.New("connection reset")).Once()

	s.T().Log("customer must stay in place when lead cascade fails")
	{
		err := s.customerSvc.DeleteByID(ctx, testOwnerID, testCustomerID)
		s.Assert().Error(err, "error must be raised")
		s.customerRpsMock.AssertNotCalled(s.T(), "DeleteByID", ctx, testCustomerID)
		s.cacheMock.AssertNotCalled(s.T(), "DeleteByID", ctx, testCustomerID)
	}
}

// start customer service test suite
func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(customerServiceTestSuite))
}
