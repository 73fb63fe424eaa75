package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumasoft/lending-ledger/internal/apperrors"
	"github.com/lumasoft/lending-ledger/internal/core/domain"
	portsrepo "github.com/lumasoft/lending-ledger/internal/core/ports/repositories"
	"github.com/lumasoft/lending-ledger/internal/models"
	"github.com/lumasoft/lending-ledger/internal/utils/mapping"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates the repository for journals and entries.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

const journalColumns = `
	journal_id, transaction_id, posted_at, status, note,
	created_at, created_by, last_updated_at, last_updated_by
`

const entryColumns = `
	entry_id, journal_id, line_no, ledger_account_id, direction, amount,
	target_kind, target_id, removable,
	created_at, created_by, last_updated_at, last_updated_by
`

const insertEntryQuery = `
	INSERT INTO journal_entries (` + entryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

// rowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx, letting the
// shared read helpers serve pool and in-transaction callers alike.
type rowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func scanEntry(row pgx.Row) (*models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.EntryID,
		&m.JournalID,
		&m.LineNo,
		&m.LedgerAccountID,
		&m.Direction,
		&m.Amount,
		&m.TargetKind,
		&m.TargetID,
		&m.Removable,
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

func queueEntryInsert(batch *pgx.Batch, e domain.JournalEntry) {
	m := mapping.ToModelJournalEntry(e)
	batch.Queue(insertEntryQuery,
		m.EntryID,
		m.JournalID,
		m.LineNo,
		m.LedgerAccountID,
		m.Direction,
		m.Amount,
		m.TargetKind,
		m.TargetID,
		m.Removable,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
}

// SaveJournalInTx inserts a journal header and its entries in caller order.
func (r *PgxJournalRepository) SaveJournalInTx(ctx context.Context, tx pgx.Tx, journal domain.Journal, entries []domain.JournalEntry) error {
	m := mapping.ToModelJournal(journal)
	journalQuery := `
		INSERT INTO journals (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := tx.Exec(ctx, journalQuery,
		m.JournalID,
		m.TransactionID,
		m.PostedAt,
		m.Status,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal %s: %w", m.JournalID, err)
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		queueEntryInsert(batch, e)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert entries for journal %s: %w", m.JournalID, err)
	}
	return nil
}

// AddEntriesInTx appends entries to an existing journal.
func (r *PgxJournalRepository) AddEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.JournalEntry) error {
	batch := &pgx.Batch{}
	for _, e := range entries {
		queueEntryInsert(batch, e)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to append journal entries: %w", err)
	}
	return nil
}

// DeleteEntryInTx removes a single entry.
func (r *PgxJournalRepository) DeleteEntryInTx(ctx context.Context, tx pgx.Tx, entryID string) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateJournalStatusInTx moves a journal through its lifecycle.
func (r *PgxJournalRepository) UpdateJournalStatusInTx(ctx context.Context, tx pgx.Tx, journalID string, status domain.JournalStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE journals
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE journal_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, journalID, status, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update journal status for %s: %w", journalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func findJournalByID(ctx context.Context, q rowQuerier, journalID string, forUpdate bool) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	query += `;`

	var m models.Journal
	err := q.QueryRow(ctx, query, journalID).Scan(
		&m.JournalID,
		&m.TransactionID,
		&m.PostedAt,
		&m.Status,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal by ID %s: %w", journalID, err)
	}

	journal := mapping.ToDomainJournal(m)
	return &journal, nil
}

// FindJournalByID retrieves a journal header.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	return findJournalByID(ctx, r.Pool, journalID, false)
}

// FindJournalForUpdateInTx retrieves a journal header inside tx and holds a
// row lock on it until the transaction completes, serializing concurrent
// allocation passes over the same journal.
func (r *PgxJournalRepository) FindJournalForUpdateInTx(ctx context.Context, tx pgx.Tx, journalID string) (*domain.Journal, error) {
	return findJournalByID(ctx, tx, journalID, true)
}

func findEntriesByJournalID(ctx context.Context, q rowQuerier, journalID string) ([]domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE journal_id = $1 ORDER BY line_no;`

	rows, err := q.Query(ctx, query, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for journal %s: %w", journalID, err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row for journal %s: %w", journalID, err)
		}
		entries = append(entries, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows for journal %s: %w", journalID, err)
	}
	return mapping.ToDomainJournalEntrySlice(entries), nil
}

// FindEntriesByJournalID retrieves all entries of a journal in line order.
func (r *PgxJournalRepository) FindEntriesByJournalID(ctx context.Context, journalID string) ([]domain.JournalEntry, error) {
	return findEntriesByJournalID(ctx, r.Pool, journalID)
}

// FindEntriesByJournalIDInTx is the same read within the caller's transaction.
func (r *PgxJournalRepository) FindEntriesByJournalIDInTx(ctx context.Context, tx pgx.Tx, journalID string) ([]domain.JournalEntry, error) {
	return findEntriesByJournalID(ctx, tx, journalID)
}

func findEntryByID(ctx context.Context, q rowQuerier, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	m, err := scanEntry(q.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}

	entry := mapping.ToDomainJournalEntry(*m)
	return &entry, nil
}

// FindEntryByIDInTx retrieves a single entry within the caller's transaction.
func (r *PgxJournalRepository) FindEntryByIDInTx(ctx context.Context, tx pgx.Tx, entryID string) (*domain.JournalEntry, error) {
	return findEntryByID(ctx, tx, entryID)
}

// FindJournalByEntryTarget locates the journal holding an entry that points
// at the given business object.
func (r *PgxJournalRepository) FindJournalByEntryTarget(ctx context.Context, kind domain.TargetKind, targetID string) (*domain.Journal, error) {
	query := `
		SELECT ` + journalColumns + `
		FROM journals
		WHERE journal_id = (
			SELECT journal_id FROM journal_entries
			WHERE target_kind = $1 AND target_id = $2
			ORDER BY created_at
			LIMIT 1
		);
	`

	var m models.Journal
	err := r.Pool.QueryRow(ctx, query, string(kind), targetID).Scan(
		&m.JournalID,
		&m.TransactionID,
		&m.PostedAt,
		&m.Status,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal by entry target %s/%s: %w", kind, targetID, err)
	}

	journal := mapping.ToDomainJournal(m)
	return &journal, nil
}
