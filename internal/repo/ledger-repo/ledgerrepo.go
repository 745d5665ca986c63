package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/quizcash/quizcash/internal/domain"
	"github.com/quizcash/quizcash/internal/pg"
)

var (
	ErrInvalidAmount        = errors.New("invalid transaction amount")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrConflictingCommit    = errors.New("conflicting commit")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrDuplicateExternalRef = errors.New("duplicate external reference")
)

const uniqueViolationCode = "23505"

// balanceQuery derives the balance from completed rows only. Pending and
// failed rows never count.
const balanceQuery = `
        SELECT COALESCE(SUM(CASE WHEN kind IN ('deposit', 'game_credit') THEN amount ELSE -amount END), 0)
        FROM wallet_transactions
        WHERE user_id = $1 AND status = 'completed'
    `

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Append inserts a pending transaction and returns its id. The row becomes
// visible to balance computation only after Commit with a completed outcome.
func (r *Repository) Append(ctx context.Context, tx *domain.Transaction) (int64, error) {
	if tx.Amount <= 0 || tx.Kind.Sign() == 0 {
		return 0, ErrInvalidAmount
	}
	query := `
        INSERT INTO wallet_transactions (user_id, amount, kind, status, external_ref)
        VALUES ($1, $2, $3, 'pending', NULLIF($4, ''))
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, tx.UserID, tx.Amount, tx.Kind, tx.ExternalRef).
		Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, ErrDuplicateExternalRef
		}
		zap.L().Error("can't append transaction", zap.Error(err))
		return 0, err
	}
	tx.Status = domain.StatusPending
	return tx.ID, nil
}

// Commit is the single mutation path for a transaction: pending -> completed
// or pending -> failed, exactly once. Recommitting an already-terminal row
// with the same outcome is a no-op; with a different outcome it fails with
// ErrConflictingCommit.
func (r *Repository) Commit(ctx context.Context, id int64, outcome domain.TransactionStatus) error {
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		var current domain.TransactionStatus
		row := r.db.QueryRow(ctx, `
        SELECT status
        FROM wallet_transactions
        WHERE id = $1
        FOR UPDATE
    `, id)
		if err := row.Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrTransactionNotFound
			}
			zap.L().Error("can't lock transaction for commit", zap.Error(err))
			return err
		}

		if current == outcome {
			return nil
		}
		if current != domain.StatusPending {
			zap.L().Error("conflicting commit",
				zap.Int64("txID", id),
				zap.String("current", string(current)),
				zap.String("requested", string(outcome)))
			return ErrConflictingCommit
		}

		_, err := r.db.Exec(ctx, `
        UPDATE wallet_transactions
        SET status = $1
        WHERE id = $2
    `, outcome, id)
		if err != nil {
			zap.L().Error("can't commit transaction", zap.Error(err))
			return err
		}
		return nil
	})
}

// BalanceOf derives the user's current balance from the completed ledger
// rows. There is no stored balance anywhere to drift out of sync.
func (r *Repository) BalanceOf(ctx context.Context, userID int) (int64, error) {
	var balance int64
	err := r.db.QueryRow(ctx, balanceQuery, userID).Scan(&balance)
	if err != nil {
		zap.L().Error("can't compute balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// DebitCompleted performs the check-then-debit as one atomic unit: the user
// row is locked, the balance is computed under that lock, and the completed
// debit row is inserted before the lock is released. Two concurrent debits
// can never both pass the check against the same stale balance.
func (r *Repository) DebitCompleted(ctx context.Context, userID int, amount int64, kind domain.TransactionKind) (int64, error) {
	if amount <= 0 || kind.Sign() != -1 {
		return 0, ErrInvalidAmount
	}

	var txID int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var lockedID int
		row := r.db.QueryRow(ctx, `
        SELECT id
        FROM users
        WHERE id = $1
        FOR UPDATE
    `, userID)
		if err := row.Scan(&lockedID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrUserNotFound
			}
			zap.L().Error("can't lock user row", zap.Error(err))
			return err
		}

		var balance int64
		if err := r.db.QueryRow(ctx, balanceQuery, userID).Scan(&balance); err != nil {
			zap.L().Error("can't compute balance under lock", zap.Error(err))
			return err
		}
		if balance < amount {
			return ErrInsufficientBalance
		}

		err := r.db.QueryRow(ctx, `
        INSERT INTO wallet_transactions (user_id, amount, kind, status)
        VALUES ($1, $2, $3, 'completed')
        RETURNING id
    `, userID, amount, kind).Scan(&txID)
		if err != nil {
			zap.L().Error("can't insert debit", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return txID, nil
}

// ListCompleted returns the user's completed transactions, most recent first.
func (r *Repository) ListCompleted(ctx context.Context, userID int, limit int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, amount, kind, status, COALESCE(external_ref, ''), created_at
        FROM wallet_transactions
        WHERE user_id = $1 AND status = 'completed'
        ORDER BY created_at DESC, id DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("can't list transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Kind, &t.Status, &t.ExternalRef, &t.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, nil
}

// FindByExternalRef looks up a transaction by its idempotency reference: the
// payment gateway reference for deposits, the round reference for payout
// credits. Returns nil when no such transaction exists.
func (r *Repository) FindByExternalRef(ctx context.Context, userID int, externalRef string, kind domain.TransactionKind) (*domain.Transaction, error) {
	query := `
        SELECT id, user_id, amount, kind, status, COALESCE(external_ref, ''), created_at
        FROM wallet_transactions
        WHERE user_id = $1 AND external_ref = $2 AND kind = $3
    `
	row := r.db.QueryRow(ctx, query, userID, externalRef, kind)

	var t domain.Transaction
	err := row.Scan(&t.ID, &t.UserID, &t.Amount, &t.Kind, &t.Status, &t.ExternalRef, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction by external ref", zap.Error(err))
		return nil, err
	}
	return &t, nil
}
