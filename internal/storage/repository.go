package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"fintrack/internal/core"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Repository is the SQLite-backed transaction store. One instance is
// created at startup and injected into every consumer; there is no
// per-request connection handling.
type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping reports whether the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Insert persists a new transaction, assigning its ID and insertion
// sequence number. Required-field validation has already happened in
// core; only the category default is re-applied here as a backstop for
// callers that build records by hand.
func (r *Repository) Insert(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	t.ID = uuid.NewString()
	if t.Category == "" {
		t.Category = core.DefaultCategory
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO transactions (id, seq, amount, description, date, category)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM transactions), ?, ?, ?, ?)`,
		t.ID, t.Amount, t.Description, t.Date.String(), t.Category)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", t.ID,
		"description", t.Description,
		"amount", t.Amount,
		"date", t.Date.String(),
		"category", t.Category)

	return t, nil
}

// ListAll returns every transaction ordered by date descending. Equal
// dates keep insertion order via the seq column.
func (r *Repository) ListAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, amount, description, date, category
		FROM transactions
		ORDER BY date DESC, seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	txns := make([]core.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return txns, nil
}

// Get returns a single transaction or core.ErrNotFound.
func (r *Repository) Get(ctx context.Context, id string) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, amount, description, date, category
		FROM transactions WHERE id = ?`, id)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, core.ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, err
	}
	return t, nil
}

// Update merges the patch into the stored record and returns the
// result. Returns core.ErrNotFound when the id does not exist.
func (r *Repository) Update(ctx context.Context, id string, patch core.TransactionPatch) (core.Transaction, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, `
		SELECT id, amount, description, date, category
		FROM transactions WHERE id = ?`, id)
	current, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, core.ErrNotFound
	}
	if err != nil {
		return core.Transaction{}, err
	}

	updated := patch.Apply(current)
	_, err = tx.ExecContext(ctx, `
		UPDATE transactions
		SET amount = ?, description = ?, date = ?, category = ?
		WHERE id = ?`,
		updated.Amount, updated.Description, updated.Date.String(), updated.Category, id)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("update transaction: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return core.Transaction{}, fmt.Errorf("commit update: %w", err)
	}

	slog.InfoContext(ctx, "Transaction updated", "id", id)
	return updated, nil
}

// Delete removes a transaction. Deleting an unknown id is not an
// error; the operation is idempotent.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		slog.InfoContext(ctx, "Transaction deleted", "id", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (core.Transaction, error) {
	var (
		t       core.Transaction
		dateStr string
	)
	if err := row.Scan(&t.ID, &t.Amount, &t.Description, &dateStr, &t.Category); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Transaction{}, err
		}
		return core.Transaction{}, fmt.Errorf("scan transaction: %w", err)
	}
	date, err := core.ParseDate(dateStr)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("stored date for %s: %w", t.ID, err)
	}
	t.Date = date
	return t, nil
}
