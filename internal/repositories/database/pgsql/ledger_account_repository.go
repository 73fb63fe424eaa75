package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lumasoft/lending-ledger/internal/apperrors"
	"github.com/lumasoft/lending-ledger/internal/core/domain"
	portsrepo "github.com/lumasoft/lending-ledger/internal/core/ports/repositories"
	"github.com/lumasoft/lending-ledger/internal/models"
	"github.com/lumasoft/lending-ledger/internal/utils/mapping"
)

type PgxLedgerAccountRepository struct {
	BaseRepository
}

// newPgxLedgerAccountRepository creates the registry/balance repository.
func newPgxLedgerAccountRepository(pool *pgxpool.Pool) portsrepo.LedgerAccountRepositoryFacade {
	return &PgxLedgerAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerAccountRepositoryFacade = (*PgxLedgerAccountRepository)(nil)

const ledgerAccountColumns = `
	ledger_account_id, code, name, account_type, status,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanLedgerAccount(row pgx.Row) (*models.LedgerAccount, error) {
	var m models.LedgerAccount
	err := row.Scan(
		&m.LedgerAccountID,
		&m.Code,
		&m.Name,
		&m.AccountType,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindLedgerAccountByCode resolves a single account by its unique code.
func (r *PgxLedgerAccountRepository) FindLedgerAccountByCode(ctx context.Context, code string) (*domain.LedgerAccount, error) {
	query := `SELECT ` + ledgerAccountColumns + ` FROM ledger_accounts WHERE code = $1;`

	m, err := scanLedgerAccount(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger account by code %s: %w", code, err)
	}

	account := mapping.ToDomainLedgerAccount(*m)
	return &account, nil
}

// FindLedgerAccountsByCodes resolves several codes at once, keyed by code.
func (r *PgxLedgerAccountRepository) FindLedgerAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.LedgerAccount, error) {
	if len(codes) == 0 {
		return map[string]domain.LedgerAccount{}, nil
	}

	query := `SELECT ` + ledgerAccountColumns + ` FROM ledger_accounts WHERE code = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger accounts by codes: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.LedgerAccount, len(codes))
	for rows.Next() {
		m, err := scanLedgerAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger account row: %w", err)
		}
		accounts[m.Code] = mapping.ToDomainLedgerAccount(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger account rows: %w", err)
	}
	return accounts, nil
}

// ListLedgerAccounts returns the full chart of accounts ordered by code.
func (r *PgxLedgerAccountRepository) ListLedgerAccounts(ctx context.Context) ([]domain.LedgerAccount, error) {
	query := `SELECT ` + ledgerAccountColumns + ` FROM ledger_accounts ORDER BY code;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.LedgerAccount{}
	for rows.Next() {
		m, err := scanLedgerAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainLedgerAccount(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger account rows: %w", err)
	}
	return accounts, nil
}

// LockLedgerAccountsInTx takes row locks on the given accounts so a
// check-then-post sequence cannot interleave with a concurrent one.
func (r *PgxLedgerAccountRepository) LockLedgerAccountsInTx(ctx context.Context, tx pgx.Tx, ledgerAccountIDs []string) error {
	query := `SELECT ledger_account_id FROM ledger_accounts WHERE ledger_account_id = ANY($1) ORDER BY ledger_account_id FOR UPDATE;`

	rows, err := tx.Query(ctx, query, ledgerAccountIDs)
	if err != nil {
		return fmt.Errorf("failed to lock ledger accounts: %w", err)
	}
	defer rows.Close()

	locked := 0
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan locked account row: %w", err)
		}
		locked++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating locked account rows: %w", err)
	}
	if locked != len(ledgerAccountIDs) {
		return apperrors.ErrNotFound
	}
	return nil
}

const sumEntriesQuery = `
	SELECT
		COALESCE(SUM(e.amount) FILTER (WHERE e.direction = 'DEBIT'), 0),
		COALESCE(SUM(e.amount) FILTER (WHERE e.direction = 'CREDIT'), 0)
	FROM journal_entries e
	JOIN journals j ON e.journal_id = j.journal_id
	WHERE e.ledger_account_id = $1 AND j.status = 'POSTED'
`

// SumEntriesByAccount totals debits and credits of POSTED journals against
// one ledger account, optionally bounded by posting date.
func (r *PgxLedgerAccountRepository) SumEntriesByAccount(ctx context.Context, ledgerAccountID string, window portsrepo.BalanceWindow) (decimal.Decimal, decimal.Decimal, error) {
	query := sumEntriesQuery
	args := []interface{}{ledgerAccountID}

	if window.StartDate != nil {
		args = append(args, *window.StartDate)
		query += fmt.Sprintf(" AND j.posted_at >= $%d", len(args))
	}
	if window.EndDate != nil {
		args = append(args, *window.EndDate)
		query += fmt.Sprintf(" AND j.posted_at <= $%d", len(args))
	}
	query += ";"

	var debits, credits decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&debits, &credits); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum entries for ledger account %s: %w", ledgerAccountID, err)
	}
	return debits, credits, nil
}

// SumEntriesByAccountInTx is the same aggregation inside a transaction that
// already holds the relevant account locks.
func (r *PgxLedgerAccountRepository) SumEntriesByAccountInTx(ctx context.Context, tx pgx.Tx, ledgerAccountID string) (decimal.Decimal, decimal.Decimal, error) {
	var debits, credits decimal.Decimal
	if err := tx.QueryRow(ctx, sumEntriesQuery+";", ledgerAccountID).Scan(&debits, &credits); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to sum entries for ledger account %s: %w", ledgerAccountID, err)
	}
	return debits, credits, nil
}
