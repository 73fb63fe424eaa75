package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumasoft/lending-ledger/internal/apperrors"
	"github.com/lumasoft/lending-ledger/internal/core/domain"
	portsrepo "github.com/lumasoft/lending-ledger/internal/core/ports/repositories"
	portssvc "github.com/lumasoft/lending-ledger/internal/core/ports/services"
	"github.com/lumasoft/lending-ledger/internal/dto"
	"github.com/lumasoft/lending-ledger/internal/utils/accounting"
	"github.com/lumasoft/lending-ledger/internal/utils/money"
)

// balanceService answers read-side balance and projection queries.
type balanceService struct {
	ledgerAccountRepo portsrepo.LedgerAccountRepositoryFacade
	loanRepo          portsrepo.LoanRepositoryFacade
	installmentRepo   portsrepo.InstallmentRepositoryFacade
	chart             domain.ChartOfAccounts
}

// NewBalanceService creates the balance query service.
func NewBalanceService(ledgerAccountRepo portsrepo.LedgerAccountRepositoryFacade, loanRepo portsrepo.LoanRepositoryFacade, installmentRepo portsrepo.InstallmentRepositoryFacade, chart domain.ChartOfAccounts) portssvc.BalanceSvcFacade {
	return &balanceService{
		ledgerAccountRepo: ledgerAccountRepo,
		loanRepo:          loanRepo,
		installmentRepo:   installmentRepo,
		chart:             chart,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// balanceMinor computes an account's signed balance in minor units.
func (s *balanceService) balanceMinor(ctx context.Context, code string, window portsrepo.BalanceWindow) (int64, error) {
	account, err := s.ledgerAccountRepo.FindLedgerAccountByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, fmt.Errorf("%w: %s", apperrors.ErrLedgerAccountNotFound, code)
		}
		return 0, fmt.Errorf("failed to find ledger account %s: %w", code, err)
	}

	debits, credits, err := s.ledgerAccountRepo.SumEntriesByAccount(ctx, account.LedgerAccountID, window)
	if err != nil {
		return 0, fmt.Errorf("failed to sum entries for account %s: %w", code, err)
	}

	return accounting.SignedBalance(account.AccountType, money.ToMinorUnits(debits), money.ToMinorUnits(credits)), nil
}

// GetAccountBalance computes a point-in-time balance under standard sign
// conventions and renders it with exactly four fractional digits.
func (s *balanceService) GetAccountBalance(ctx context.Context, code string, window dto.BalanceWindow) (string, error) {
	minor, err := s.balanceMinor(ctx, code, portsrepo.BalanceWindow{StartDate: window.StartDate, EndDate: window.EndDate})
	if err != nil {
		return "", err
	}
	return money.FormatMinor(minor), nil
}

// GetLendingCapacity returns Cash minus Customer Deposits, the amount the
// bank can still lend out.
func (s *balanceService) GetLendingCapacity(ctx context.Context) (string, error) {
	cash, err := s.balanceMinor(ctx, s.chart.Cash, portsrepo.BalanceWindow{})
	if err != nil {
		return "", err
	}
	deposits, err := s.balanceMinor(ctx, s.chart.CustomerDeposits, portsrepo.BalanceWindow{})
	if err != nil {
		return "", err
	}
	return money.FormatMinor(cash - deposits), nil
}

// GetLoanOutstanding returns the disbursed principal minus repayments that
// have been allocated against the loan's installments.
func (s *balanceService) GetLoanOutstanding(ctx context.Context, loanID string) (string, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return "", fmt.Errorf("failed to find loan %s: %w", loanID, err)
	}

	installments, err := s.installmentRepo.FindInstallmentsByLoanID(ctx, loanID)
	if err != nil {
		return "", fmt.Errorf("failed to load installments for loan %s: %w", loanID, err)
	}

	outstanding := money.ToMinorUnits(loan.Amount)
	for _, inst := range installments {
		if inst.Status == domain.InstallmentAllocated {
			outstanding -= money.ToMinorUnits(inst.Amount)
		}
	}
	return money.FormatMinor(outstanding), nil
}

// ListLedgerAccounts returns the full chart of accounts.
func (s *balanceService) ListLedgerAccounts(ctx context.Context) ([]domain.LedgerAccount, error) {
	return s.ledgerAccountRepo.ListLedgerAccounts(ctx)
}
