package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/lumasoft/lending-ledger/internal/core/domain"
	portsrepo "github.com/lumasoft/lending-ledger/internal/core/ports/repositories"
	portssvc "github.com/lumasoft/lending-ledger/internal/core/ports/services"
	"github.com/lumasoft/lending-ledger/internal/dto"
)

// --- Mock TransactionManager ---

type MockTxManager struct {
	mock.Mock
}

var _ portsrepo.TransactionManager = (*MockTxManager)(nil)

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// expectTx primes the manager for one successful Begin/Commit cycle with the
// rollback that the deferred cleanup always issues.
func (m *MockTxManager) expectTx() {
	m.On("Begin", mock.Anything).Return(nil, nil).Once()
	m.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()
	m.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

// expectTxRollback primes the manager for a Begin that never commits.
func (m *MockTxManager) expectTxRollback() {
	m.On("Begin", mock.Anything).Return(nil, nil).Once()
	m.On("Rollback", mock.Anything, mock.Anything).Return(nil).Once()
}

// --- Mock LedgerAccountRepository ---

type MockLedgerAccountRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerAccountRepositoryFacade = (*MockLedgerAccountRepository)(nil)

func (m *MockLedgerAccountRepository) FindLedgerAccountByCode(ctx context.Context, code string) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountRepository) FindLedgerAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.LedgerAccount, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountRepository) ListLedgerAccounts(ctx context.Context) ([]domain.LedgerAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountRepository) LockLedgerAccountsInTx(ctx context.Context, tx pgx.Tx, ledgerAccountIDs []string) error {
	args := m.Called(ctx, tx, ledgerAccountIDs)
	return args.Error(0)
}

func (m *MockLedgerAccountRepository) SumEntriesByAccount(ctx context.Context, ledgerAccountID string, window portsrepo.BalanceWindow) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, ledgerAccountID, window)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockLedgerAccountRepository) SumEntriesByAccountInTx(ctx context.Context, tx pgx.Tx, ledgerAccountID string) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, tx, ledgerAccountID)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindJournalForUpdateInTx(ctx context.Context, tx pgx.Tx, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, tx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindEntriesByJournalIDInTx(ctx context.Context, tx pgx.Tx, journalID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, tx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindEntryByIDInTx(ctx context.Context, tx pgx.Tx, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, tx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindEntriesByJournalID(ctx context.Context, journalID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindJournalByEntryTarget(ctx context.Context, kind domain.TargetKind, targetID string) (*domain.Journal, error) {
	args := m.Called(ctx, kind, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) SaveJournalInTx(ctx context.Context, tx pgx.Tx, journal domain.Journal, entries []domain.JournalEntry) error {
	args := m.Called(ctx, tx, journal, entries)
	return args.Error(0)
}

func (m *MockJournalRepository) AddEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.JournalEntry) error {
	args := m.Called(ctx, tx, entries)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteEntryInTx(ctx context.Context, tx pgx.Tx, entryID string) error {
	args := m.Called(ctx, tx, entryID)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateJournalStatusInTx(ctx context.Context, tx pgx.Tx, journalID string, status domain.JournalStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, journalID, status, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Mock LoanRepository ---

type MockLoanRepository struct {
	mock.Mock
}

var _ portsrepo.LoanRepositoryFacade = (*MockLoanRepository)(nil)

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) FindOpenLoanByAccount(ctx context.Context, accountID string) (*domain.Loan, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) FindLoanTypeByID(ctx context.Context, loanTypeID string) (*domain.LoanType, error) {
	args := m.Called(ctx, loanTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanType), args.Error(1)
}

func (m *MockLoanRepository) SaveLoanInTx(ctx context.Context, tx pgx.Tx, loan domain.Loan) error {
	args := m.Called(ctx, tx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) UpdateLoanStatusInTx(ctx context.Context, tx pgx.Tx, loanID string, status domain.LoanStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, loanID, status, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock InstallmentRepository ---

type MockInstallmentRepository struct {
	mock.Mock
}

var _ portsrepo.InstallmentRepositoryFacade = (*MockInstallmentRepository)(nil)

func (m *MockInstallmentRepository) FindInstallmentByID(ctx context.Context, installmentID string) (*domain.Installment, error) {
	args := m.Called(ctx, installmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) FindInstallmentsByLoanID(ctx context.Context, loanID string) ([]domain.Installment, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Installment), args.Error(1)
}

func (m *MockInstallmentRepository) SaveInstallmentsInTx(ctx context.Context, tx pgx.Tx, installments []domain.Installment) error {
	args := m.Called(ctx, tx, installments)
	return args.Error(0)
}

func (m *MockInstallmentRepository) UpdateInstallmentAllocationInTx(ctx context.Context, tx pgx.Tx, installmentID string, status domain.InstallmentStatus, journalEntryID *string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, installmentID, status, journalEntryID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockInstallmentRepository) ActivateInstallmentsByLoanInTx(ctx context.Context, tx pgx.Tx, loanID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, loanID, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock SubscriptionFeeRepository ---

type MockSubscriptionFeeRepository struct {
	mock.Mock
}

var _ portsrepo.SubscriptionFeeRepositoryFacade = (*MockSubscriptionFeeRepository)(nil)

func (m *MockSubscriptionFeeRepository) FindSubscriptionFeeByID(ctx context.Context, feeID string) (*domain.SubscriptionFee, error) {
	args := m.Called(ctx, feeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubscriptionFee), args.Error(1)
}

func (m *MockSubscriptionFeeRepository) SaveSubscriptionFee(ctx context.Context, fee domain.SubscriptionFee) error {
	args := m.Called(ctx, fee)
	return args.Error(0)
}

func (m *MockSubscriptionFeeRepository) UpdateSubscriptionFeeAllocationInTx(ctx context.Context, tx pgx.Tx, feeID string, status domain.SubscriptionFeeStatus, journalEntryID *string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, feeID, status, journalEntryID, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByExternalRef(ctx context.Context, externalRef string) (*domain.Transaction, error) {
	args := m.Called(ctx, externalRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransactionStatusInTx(ctx context.Context, tx pgx.Tx, transactionID string, status domain.TransactionStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, transactionID, status, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock PostingService ---

type MockPostingService struct {
	mock.Mock
}

var _ portssvc.PostingSvcFacade = (*MockPostingService)(nil)

func (m *MockPostingService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest) (*domain.Journal, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockPostingService) PostJournalInTx(ctx context.Context, tx pgx.Tx, transactionID, note string, specs []dto.EntrySpec, removable bool) (*domain.Journal, error) {
	args := m.Called(ctx, tx, transactionID, note, specs, removable)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockPostingService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

// --- Mock ApprovalNotifier ---

type MockApprovalNotifier struct {
	mock.Mock
}

var _ portssvc.ApprovalNotifier = (*MockApprovalNotifier)(nil)

func (m *MockApprovalNotifier) LoanApproved(ctx context.Context, loan domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
