package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lumasoft/lending-ledger/internal/apperrors"
	"github.com/lumasoft/lending-ledger/internal/core/domain"
	portssvc "github.com/lumasoft/lending-ledger/internal/core/ports/services"
	"github.com/lumasoft/lending-ledger/internal/core/services"
)

type SubscriptionServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockFeeRepo     *MockSubscriptionFeeRepository
	service         portssvc.SubscriptionSvcFacade

	feeAmount decimal.Decimal
	account   domain.Account
}

func (s *SubscriptionServiceTestSuite) SetupTest() {
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockFeeRepo = new(MockSubscriptionFeeRepository)
	s.feeAmount = decimal.RequireFromString("10.0000")
	s.service = services.NewSubscriptionService(s.mockAccountRepo, s.mockFeeRepo, s.feeAmount)

	s.account = domain.Account{
		AccountID: uuid.NewString(),
		Number:    "ACC-007",
		OwnerName: "Sam Smith",
		Status:    domain.AccountActive,
	}
}

func (s *SubscriptionServiceTestSuite) TestChargeSubscriptionFee() {
	ctx := context.Background()

	var saved domain.SubscriptionFee
	s.mockAccountRepo.On("FindAccountByID", ctx, s.account.AccountID).Return(&s.account, nil).Once()
	s.mockFeeRepo.On("SaveSubscriptionFee", ctx, mock.AnythingOfType("domain.SubscriptionFee")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.SubscriptionFee)
		}).
		Return(nil).Once()

	fee, err := s.service.ChargeSubscriptionFee(ctx, s.account.AccountID, "2026-09")

	s.Require().NoError(err)
	s.Require().NotNil(fee)
	s.Equal(domain.SubscriptionFeePending, fee.Status)
	s.Equal("2026-09", fee.Period)
	s.True(fee.Amount.Equal(s.feeAmount))
	s.Equal(fee.SubscriptionFeeID, saved.SubscriptionFeeID)
	s.Nil(fee.JournalEntryID)
}

func (s *SubscriptionServiceTestSuite) TestChargeSubscriptionFee_InactiveAccount() {
	ctx := context.Background()
	closed := s.account
	closed.Status = domain.AccountClosed

	s.mockAccountRepo.On("FindAccountByID", ctx, closed.AccountID).Return(&closed, nil).Once()

	_, err := s.service.ChargeSubscriptionFee(ctx, closed.AccountID, "2026-09")

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrAccountNotActive))
	s.mockFeeRepo.AssertNotCalled(s.T(), "SaveSubscriptionFee", mock.Anything, mock.Anything)
}

func (s *SubscriptionServiceTestSuite) TestChargeSubscriptionFee_AccountNotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	s.mockAccountRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.ChargeSubscriptionFee(ctx, accountID, "2026-09")

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func TestSubscriptionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}
