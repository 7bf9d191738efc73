package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	errs "github.com/umalmyha/salescrm/internal/errors"
	"github.com/umalmyha/salescrm/internal/model"
	rpsMocks "github.com/umalmyha/salescrm/internal/repository/mocks"
	trxMocks "github.com/umalmyha/salescrm/pkg/db/transactor/mocks"
)

const testLeadID = "7a3cbea1-9f26-4e55-8b0f-507cd0a2d230"

type leadServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	customer        *model.Customer
	lead            *model.Lead
	leadSvc         LeadService
	trxMock         *trxMocks.Transactor
	customerRpsMock *rpsMocks.CustomerRepository
	leadRpsMock     *rpsMocks.LeadRepository
}

func (s *leadServiceTestSuite) SetupTest() {
	t := s.T()
	s.ctx = context.Background()

	s.customer = &model.Customer{
		ID:      testCustomerID,
		Name:    testCustomerName,
		Email:   "contact@stark.com",
		OwnerID: testOwnerID,
	}

	value := float64(1200)
	s.lead = &model.Lead{
		ID:         testLeadID,
		CustomerID: testCustomerID,
		Title:      "Arc reactor supply",
		Status:     model.LeadStatusContacted,
		Value:      &value,
		CreatedAt:  time.Date(2022, time.October, 14, 10, 0, 0, 0, time.UTC),
	}

	s.trxMock = trxMocks.NewTransactor(t)
	s.customerRpsMock = rpsMocks.NewCustomerRepository(t)
	s.leadRpsMock = rpsMocks.NewLeadRepository(t)
	s.leadSvc = NewLeadService(s.trxMock, s.customerRpsMock, s.leadRpsMock)
}

func (s *leadServiceTestSuite) passThroughTransaction() {
	s.trxMock.On("WithinTransaction", mock.Anything, mock.AnythingOfType("func(context.Context) error")).Return(
		func(ctx context.Context, txFunc func(context.Context) error) error {
			return txFunc(ctx)
		},
	)
}

func (s *leadServiceTestSuite) TestCreateUnderOwnedCustomer() {
	ctx := s.ctx

	s.passThroughTransaction()
	s.customerRpsMock.On("FindByID", ctx, testCustomerID).Return(s.customer, nil).Once()
	s.leadRpsMock.On("Create", ctx, mock.AnythingOfType("*model.Lead")).Return(nil).Once()

	s.T().Log("lead must be bound to the customer from the path and default to status New")
	{
		l, err := s.leadSvc.Create(ctx, testOwnerID, testCustomerID, &model.Lead{Title: "Suit upgrade"})
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().NotEmpty(l.ID, "id must be generated")
		s.Assert().Equal(testCustomerID, l.CustomerID, "lead must reference parent customer")
		s.Assert().Equal(model.LeadStatusNew, l.Status, "status must default to New")
		s.Assert().False(l.CreatedAt.IsZero(), "creation timestamp must be set")
	}
}

func (s *leadServiceTestSuite) TestCreateUnderForeignCustomer() {
	ctx := s.ctx

	s.passThroughTransaction()
	s.customerRpsMock.On("FindByID", ctx, testCustomerID).Return(s.customer, nil).Once()

	s.T().Log("foreign parent customer must look like a missing one and nothing is written")
	{
		_, err := s.leadSvc.Create(ctx, testStrangerID, testCustomerID, &model.Lead{Title: "Suit upgrade"})
		s.Assert().ErrorAs(err, new(*errs.EntryNotFoundErr), "entry not found error must be raised")
		s.leadRpsMock.AssertNotCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.Lead"))
	}
}

func (s *leadServiceTestSuite) TestCreateUnderMissingCustomer() {
	ctx := s.ctx

	s.passThroughTransaction()
	s.customerRpsMock.On("FindByID", ctx, testCustomerID).Return(nil, nil).Once()

	s.T().Log("missing parent customer must be reported as not found")
	{
		_, err := s.leadSvc.Create(ctx, testOwnerID, testCustomerID, &model.Lead{Title: "Suit upgrade"})
		s.Assert().ErrorAs(err, new(*errs.EntryNotFoundErr), "entry not found error must be raised")
	}
}

func (s *leadServiceTestSuite) TestFindByCustomerID() {
	ctx := s.ctx

	s.customerRpsMock.On("FindByID", ctx, testCustomerID).Return(s.customer, nil).Once()
	s.leadRpsMock.On("FindByCustomerID", ctx, testCustomerID).Return([]*model.Lead{s.lead}, nil).Once()

	s.T().Log("leads of owned customer must be listed")
	{
		leads, err := s.leadSvc.FindByCustomerID(ctx, testOwnerID, testCustomerID)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Len(leads, 1)
	}
}

func (s *leadServiceTestSuite) TestMergeMissingLead() {
	ctx := s.ctx
	newTitle := "Suit upgrade"

	s.passThroughTransaction()
	s.leadRpsMock.On("FindByID", ctx, testLeadID).Return(nil, nil).Once()

	s.T().Log("missing lead must be reported as not found")
	{
		_, err := s.leadSvc.Merge(ctx, testOwnerID, &model.PatchLead{ID: testLeadID, Title: &newTitle})
		s.Assert().ErrorAs(err, new(*errs.EntryNotFoundErr), "entry not found error must be raised")
		s.customerRpsMock.AssertNotCalled(s.T(), "FindByID", ctx, testCustomerID)
	}
}

func (s *leadServiceTestSuite) TestMergeLeadOfForeignCustomer() {
	ctx := s.ctx
	newTitle := "Suit upgrade"

	s.passThroughTransaction()
	s.leadRpsMock.On("FindByID", ctx, testLeadID).Return(s.lead, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, testCustomerID).Return(s.customer, nil).Once()

	s.T().Log("existing lead under foreign customer must be reported as unauthorized")
	{
		_, err := s.leadSvc.Merge(ctx, testStrangerID, &model.PatchLead{ID: testLeadID, Title: &newTitle})
		s.Assert().ErrorAs(err, new(*errs.UnauthorizedErr), "unauthorized error must be raised")
		s.leadRpsMock.AssertNotCalled(s.T(), "Update", ctx, mock.AnythingOfType("*model.Lead"))
	}
}

func (s *leadServiceTestSuite) TestMergeKeepsCustomerLink() {
	ctx := s.ctx
	newStatus := model.LeadStatusConverted

	s.passThroughTransaction()
	s.leadRpsMock.On("FindByID", ctx, testLeadID).Return(s.lead, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, testCustomerID).Return(s.customer, nil).Once()
	s.leadRpsMock.On("Update", ctx, mock.AnythingOfType("*model.Lead")).Return(nil).Once()

	s.T().Log("merge must change supplied fields only and never the parent customer")
	{
		l, err := s.leadSvc.Merge(ctx, testOwnerID, &model.PatchLead{ID: testLeadID, Status: &newStatus})
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Equal(model.LeadStatusConverted, l.Status, "status must be updated")
		s.Assert().Equal("Arc reactor supply", l.Title, "title must stay intact")
		s.Assert().Equal(testCustomerID, l.CustomerID, "parent customer must stay intact")
	}
}

func (s *leadServiceTestSuite) TestDeleteByID() {
	ctx := s.ctx

	s.passThroughTransaction()
	s.leadRpsMock.On("FindByID", ctx, testLeadID).Return(s.lead, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, testCustomerID).Return(s.customer, nil).Once()
	s.leadRpsMock.On("DeleteByID", ctx, testLeadID).Return(nil).Once()

	s.T().Log("lead of owned customer must be removed")
	{
		err := s.leadSvc.DeleteByID(ctx, testOwnerID, testLeadID)
		s.Assert().NoError(err, "no error must be raised")
	}
}

func (s *leadServiceTestSuite) TestDeleteByIDUnauthorized() {
	ctx := s.ctx

	s.passThroughTransaction()
	s.leadRpsMock.On("FindByID", ctx, testLeadID).Return(s.lead, nil).Once()
	s.customerRpsMock.On("FindByID", ctx, testCustomerID).Return(s.customer, nil).Once()

	s.T().Log("lead under foreign customer must not be removed")
	{
		err := s.leadSvc.DeleteByID(ctx, testStrangerID, testLeadID)
		s.Assert().ErrorAs(err, new(*errs.UnauthorizedErr), "unauthorized error must be raised")
		s.leadRpsMock.AssertNotCalled(s.T(), "DeleteByID", ctx, testLeadID)
	}
}

// start lead service test suite
func TestLeadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(leadServiceTestSuite))
}
