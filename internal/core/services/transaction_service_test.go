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
	"github.com/lumasoft/lending-ledger/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxManager       *MockTxManager
	mockAccountRepo     *MockAccountRepository
	mockTransactionRepo *MockTransactionRepository
	mockPosting         *MockPostingService
	service             portssvc.TransactionSvcFacade

	chart        domain.ChartOfAccounts
	activeAccount domain.Account
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockTxManager = new(MockTxManager)
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockTransactionRepo = new(MockTransactionRepository)
	s.mockPosting = new(MockPostingService)
	s.chart = domain.ChartOfAccounts{
		Cash:                   "1000",
		UnappliedReceipts:      "2100",
		UnappliedDisbursements: "2200",
	}
	s.service = services.NewTransactionService(s.mockTxManager, s.mockAccountRepo, s.mockTransactionRepo, s.mockPosting, s.chart)

	s.activeAccount = domain.Account{
		AccountID: uuid.NewString(),
		Number:    "ACC-001",
		OwnerName: "Jane Doe",
		Status:    domain.AccountActive,
	}
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_CashInLegs() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: s.activeAccount.AccountID,
		Kind:      domain.CashIn,
		Amount:    decimal.NewFromInt(500),
		Note:      "counter deposit",
	}

	var capturedSpecs []dto.EntrySpec
	s.mockAccountRepo.On("FindAccountByID", ctx, req.AccountID).Return(&s.activeAccount, nil).Once()
	s.mockTxManager.expectTx()
	s.mockTransactionRepo.On("SaveTransactionInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	s.mockPosting.On("PostJournalInTx", ctx, mock.Anything, mock.AnythingOfType("string"), req.Note, mock.AnythingOfType("[]dto.EntrySpec"), false).
		Run(func(args mock.Arguments) {
			capturedSpecs = args.Get(4).([]dto.EntrySpec)
		}).
		Return(&domain.Journal{JournalID: uuid.NewString()}, nil).Once()

	txn, err := s.service.CreateTransaction(ctx, req)

	s.Require().NoError(err)
	s.Require().NotNil(txn)
	s.Equal(domain.TransactionPending, txn.Status)
	s.Require().Len(capturedSpecs, 2)
	s.Equal("1000", capturedSpecs[0].LedgerAccountCode)
	s.Equal(domain.Debit, capturedSpecs[0].Direction)
	s.Equal("2100", capturedSpecs[1].LedgerAccountCode)
	s.Equal(domain.Credit, capturedSpecs[1].Direction)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_CashOutLegs() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: s.activeAccount.AccountID,
		Kind:      domain.CashOut,
		Amount:    decimal.NewFromInt(200),
	}

	var capturedSpecs []dto.EntrySpec
	s.mockAccountRepo.On("FindAccountByID", ctx, req.AccountID).Return(&s.activeAccount, nil).Once()
	s.mockTxManager.expectTx()
	s.mockTransactionRepo.On("SaveTransactionInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()
	s.mockPosting.On("PostJournalInTx", ctx, mock.Anything, mock.AnythingOfType("string"), "", mock.AnythingOfType("[]dto.EntrySpec"), false).
		Run(func(args mock.Arguments) {
			capturedSpecs = args.Get(4).([]dto.EntrySpec)
		}).
		Return(&domain.Journal{JournalID: uuid.NewString()}, nil).Once()

	_, err := s.service.CreateTransaction(ctx, req)

	s.Require().NoError(err)
	s.Require().Len(capturedSpecs, 2)
	s.Equal("2200", capturedSpecs[0].LedgerAccountCode)
	s.Equal(domain.Debit, capturedSpecs[0].Direction)
	s.Equal("1000", capturedSpecs[1].LedgerAccountCode)
	s.Equal(domain.Credit, capturedSpecs[1].Direction)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_InactiveAccount() {
	ctx := context.Background()
	suspended := s.activeAccount
	suspended.Status = domain.AccountSuspended
	req := dto.CreateTransactionRequest{
		AccountID: suspended.AccountID,
		Kind:      domain.CashIn,
		Amount:    decimal.NewFromInt(100),
	}

	s.mockAccountRepo.On("FindAccountByID", ctx, suspended.AccountID).Return(&suspended, nil).Once()

	_, err := s.service.CreateTransaction(ctx, req)

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrAccountNotActive))
	s.mockTransactionRepo.AssertNotCalled(s.T(), "SaveTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_DuplicateExternalRef() {
	ctx := context.Background()
	ref := "bank-stmt-42"
	req := dto.CreateTransactionRequest{
		AccountID:   s.activeAccount.AccountID,
		Kind:        domain.CashIn,
		Amount:      decimal.NewFromInt(100),
		ExternalRef: &ref,
	}

	s.mockAccountRepo.On("FindAccountByID", ctx, req.AccountID).Return(&s.activeAccount, nil).Once()
	s.mockTransactionRepo.On("FindTransactionByExternalRef", ctx, ref).
		Return(&domain.Transaction{TransactionID: uuid.NewString()}, nil).Once()

	_, err := s.service.CreateTransaction(ctx, req)

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrDuplicate))
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		AccountID: s.activeAccount.AccountID,
		Kind:      domain.CashIn,
		Amount:    decimal.Zero,
	}

	_, err := s.service.CreateTransaction(ctx, req)

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *TransactionServiceTestSuite) TestGetTransactionByID() {
	ctx := context.Background()
	txn := &domain.Transaction{TransactionID: uuid.NewString(), Status: domain.TransactionPending}

	s.mockTransactionRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil).Once()

	got, err := s.service.GetTransactionByID(ctx, txn.TransactionID)

	s.Require().NoError(err)
	s.Equal(txn, got)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
