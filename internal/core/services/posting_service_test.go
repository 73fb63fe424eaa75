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

type PostingServiceTestSuite struct {
	suite.Suite
	mockTxManager  *MockTxManager
	mockLedgerRepo *MockLedgerAccountRepository
	mockJournal    *MockJournalRepository
	service        portssvc.PostingSvcFacade

	cashAccount     domain.LedgerAccount
	depositsAccount domain.LedgerAccount
}

func (s *PostingServiceTestSuite) SetupTest() {
	s.mockTxManager = new(MockTxManager)
	s.mockLedgerRepo = new(MockLedgerAccountRepository)
	s.mockJournal = new(MockJournalRepository)
	s.service = services.NewPostingService(s.mockTxManager, s.mockLedgerRepo, s.mockJournal)

	s.cashAccount = domain.LedgerAccount{
		LedgerAccountID: uuid.NewString(),
		Code:            "1000",
		Name:            "Cash",
		AccountType:     domain.Asset,
		Status:          domain.LedgerAccountActive,
	}
	s.depositsAccount = domain.LedgerAccount{
		LedgerAccountID: uuid.NewString(),
		Code:            "2000",
		Name:            "Customer Deposits",
		AccountType:     domain.Liability,
		Status:          domain.LedgerAccountActive,
	}
}

func (s *PostingServiceTestSuite) accountsByCode(accounts ...domain.LedgerAccount) map[string]domain.LedgerAccount {
	out := make(map[string]domain.LedgerAccount, len(accounts))
	for _, a := range accounts {
		out[a.Code] = a
	}
	return out
}

func (s *PostingServiceTestSuite) TestCreateJournal_Success() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		TransactionID: uuid.NewString(),
		Note:          "cash deposit",
		Entries: []dto.EntrySpec{
			{LedgerAccountCode: "1000", Amount: decimal.NewFromInt(100), Direction: domain.Debit},
			{LedgerAccountCode: "2000", Amount: decimal.NewFromInt(100), Direction: domain.Credit},
		},
	}

	s.mockLedgerRepo.On("FindLedgerAccountsByCodes", ctx, []string{"1000", "2000"}).
		Return(s.accountsByCode(s.cashAccount, s.depositsAccount), nil).Once()
	s.mockTxManager.expectTx()
	s.mockJournal.On("SaveJournalInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Journal"), mock.AnythingOfType("[]domain.JournalEntry")).
		Return(nil).Once()

	journal, err := s.service.CreateJournal(ctx, req)

	s.Require().NoError(err)
	s.Require().NotNil(journal)
	s.NotEmpty(journal.JournalID)
	s.Equal(domain.JournalPending, journal.Status)
	s.Require().Len(journal.Entries, 2)
	s.Equal(s.cashAccount.LedgerAccountID, journal.Entries[0].LedgerAccountID)
	s.Equal(s.depositsAccount.LedgerAccountID, journal.Entries[1].LedgerAccountID)
	s.Equal(1, journal.Entries[0].LineNo)
	s.Equal(2, journal.Entries[1].LineNo)
	s.False(journal.Entries[0].Removable)
	s.mockJournal.AssertExpectations(s.T())
	s.mockTxManager.AssertExpectations(s.T())
}

func (s *PostingServiceTestSuite) TestCreateJournal_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		TransactionID: uuid.NewString(),
		Entries: []dto.EntrySpec{
			{LedgerAccountCode: "1000", Amount: decimal.NewFromInt(100), Direction: domain.Debit},
			{LedgerAccountCode: "2000", Amount: decimal.RequireFromString("99.9999"), Direction: domain.Credit},
		},
	}

	s.mockTxManager.expectTxRollback()

	journal, err := s.service.CreateJournal(ctx, req)

	s.Require().Error(err)
	s.Nil(journal)
	var unbalanced *apperrors.UnbalancedJournalError
	s.Require().True(errors.As(err, &unbalanced))
	s.Equal("100.0000", unbalanced.DebitTotal)
	s.Equal("99.9999", unbalanced.CreditTotal)
	s.True(errors.Is(err, apperrors.ErrValidation))
	s.mockJournal.AssertNotCalled(s.T(), "SaveJournalInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PostingServiceTestSuite) TestCreateJournal_UnknownAccount() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		TransactionID: uuid.NewString(),
		Entries: []dto.EntrySpec{
			{LedgerAccountCode: "1000", Amount: decimal.NewFromInt(50), Direction: domain.Debit},
			{LedgerAccountCode: "9999", Amount: decimal.NewFromInt(50), Direction: domain.Credit},
		},
	}

	s.mockTxManager.expectTxRollback()
	s.mockLedgerRepo.On("FindLedgerAccountsByCodes", ctx, []string{"1000", "9999"}).
		Return(s.accountsByCode(s.cashAccount), nil).Once()

	journal, err := s.service.CreateJournal(ctx, req)

	s.Require().Error(err)
	s.Nil(journal)
	s.True(errors.Is(err, apperrors.ErrUnknownLedgerAccount))
	s.mockJournal.AssertNotCalled(s.T(), "SaveJournalInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PostingServiceTestSuite) TestCreateJournal_InactiveAccount() {
	ctx := context.Background()
	closed := s.depositsAccount
	closed.Status = domain.LedgerAccountInactive
	req := dto.CreateJournalRequest{
		TransactionID: uuid.NewString(),
		Entries: []dto.EntrySpec{
			{LedgerAccountCode: "1000", Amount: decimal.NewFromInt(50), Direction: domain.Debit},
			{LedgerAccountCode: "2000", Amount: decimal.NewFromInt(50), Direction: domain.Credit},
		},
	}

	s.mockTxManager.expectTxRollback()
	s.mockLedgerRepo.On("FindLedgerAccountsByCodes", ctx, []string{"1000", "2000"}).
		Return(s.accountsByCode(s.cashAccount, closed), nil).Once()

	_, err := s.service.CreateJournal(ctx, req)

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *PostingServiceTestSuite) TestCreateJournal_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		TransactionID: uuid.NewString(),
		Entries: []dto.EntrySpec{
			{LedgerAccountCode: "1000", Amount: decimal.NewFromInt(-10), Direction: domain.Debit},
			{LedgerAccountCode: "2000", Amount: decimal.NewFromInt(-10), Direction: domain.Credit},
		},
	}

	s.mockTxManager.expectTxRollback()

	_, err := s.service.CreateJournal(ctx, req)

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *PostingServiceTestSuite) TestGetJournalByID() {
	ctx := context.Background()
	journalID := uuid.NewString()
	journal := &domain.Journal{JournalID: journalID, Status: domain.JournalPending}
	entries := []domain.JournalEntry{
		{EntryID: uuid.NewString(), JournalID: journalID, LineNo: 1},
		{EntryID: uuid.NewString(), JournalID: journalID, LineNo: 2},
	}

	s.mockJournal.On("FindJournalByID", ctx, journalID).Return(journal, nil).Once()
	s.mockJournal.On("FindEntriesByJournalID", ctx, journalID).Return(entries, nil).Once()

	got, err := s.service.GetJournalByID(ctx, journalID)

	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Len(got.Entries, 2)
}

func (s *PostingServiceTestSuite) TestGetJournalByID_NotFound() {
	ctx := context.Background()
	journalID := uuid.NewString()

	s.mockJournal.On("FindJournalByID", ctx, journalID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.GetJournalByID(ctx, journalID)

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrJournalNotFound))
}

func (s *PostingServiceTestSuite) TestCreateJournal_ZeroAmountEntry() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		TransactionID: uuid.NewString(),
		Entries: []dto.EntrySpec{
			{LedgerAccountCode: "1000", Amount: decimal.NewFromInt(100), Direction: domain.Debit},
			{LedgerAccountCode: "2000", Amount: decimal.NewFromInt(100), Direction: domain.Credit},
			{LedgerAccountCode: "2000", Amount: decimal.Zero, Direction: domain.Credit},
		},
	}

	s.mockTxManager.expectTxRollback()

	_, err := s.service.CreateJournal(ctx, req)

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidation))
	s.mockJournal.AssertNotCalled(s.T(), "SaveJournalInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PostingServiceTestSuite) TestCreateJournal_EmptyEntries() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{TransactionID: uuid.NewString()}

	s.mockTxManager.expectTxRollback()

	_, err := s.service.CreateJournal(ctx, req)

	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *PostingServiceTestSuite) TestCreateJournal_SaveFailureRollsBack() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		TransactionID: uuid.NewString(),
		Entries: []dto.EntrySpec{
			{LedgerAccountCode: "1000", Amount: decimal.NewFromInt(100), Direction: domain.Debit},
			{LedgerAccountCode: "2000", Amount: decimal.NewFromInt(100), Direction: domain.Credit},
		},
	}

	s.mockTxManager.expectTxRollback()
	s.mockLedgerRepo.On("FindLedgerAccountsByCodes", ctx, []string{"1000", "2000"}).
		Return(s.accountsByCode(s.cashAccount, s.depositsAccount), nil).Once()
	s.mockJournal.On("SaveJournalInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Journal"), mock.AnythingOfType("[]domain.JournalEntry")).
		Return(errors.New("db down")).Once()

	journal, err := s.service.CreateJournal(ctx, req)

	s.Require().Error(err)
	s.Nil(journal)
	s.mockTxManager.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
	s.mockTxManager.AssertExpectations(s.T())
}

func (s *PostingServiceTestSuite) TestCreateJournal_MultiLegBalanced() {
	ctx := context.Background()
	feeIncome := domain.LedgerAccount{
		LedgerAccountID: uuid.NewString(),
		Code:            "4000",
		Name:            "Fee Income",
		AccountType:     domain.Income,
		Status:          domain.LedgerAccountActive,
	}
	req := dto.CreateJournalRequest{
		TransactionID: uuid.NewString(),
		Entries: []dto.EntrySpec{
			{LedgerAccountCode: "1000", Amount: decimal.NewFromInt(1000), Direction: domain.Debit},
			{LedgerAccountCode: "2000", Amount: decimal.NewFromInt(980), Direction: domain.Credit},
			{LedgerAccountCode: "4000", Amount: decimal.NewFromInt(20), Direction: domain.Credit},
		},
	}

	s.mockLedgerRepo.On("FindLedgerAccountsByCodes", ctx, []string{"1000", "2000", "4000"}).
		Return(s.accountsByCode(s.cashAccount, s.depositsAccount, feeIncome), nil).Once()
	s.mockTxManager.expectTx()
	s.mockJournal.On("SaveJournalInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Journal"), mock.AnythingOfType("[]domain.JournalEntry")).
		Return(nil).Once()

	journal, err := s.service.CreateJournal(ctx, req)

	s.Require().NoError(err)
	s.Require().Len(journal.Entries, 3)
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
