package attemptrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/quizcash/quizcash/internal/domain"
	"github.com/quizcash/quizcash/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, attempt *domain.GameAttempt) error {
	query := `
        INSERT INTO game_attempts (user_id, question_id, state, wager_amount, debit_tx_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		attempt.UserID, attempt.QuestionID, attempt.State, attempt.WagerAmount, attempt.DebitTxID).
		Scan(&attempt.ID, &attempt.CreatedAt)
	if err != nil {
		zap.L().Error("can't save game attempt", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.GameAttempt, error) {
	query := `
        SELECT id, user_id, question_id, state, COALESCE(selected_answer, ''), COALESCE(is_correct, FALSE),
               wager_amount, payout_amount, debit_tx_id, COALESCE(credit_tx_id, 0), created_at
        FROM game_attempts
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var a domain.GameAttempt
	err := row.Scan(&a.ID, &a.UserID, &a.QuestionID, &a.State, &a.SelectedAnswer, &a.IsCorrect,
		&a.WagerAmount, &a.PayoutAmount, &a.DebitTxID, &a.CreditTxID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find game attempt", zap.Error(err))
		return nil, err
	}
	return &a, nil
}

// MarkAnswered records the answer on a staked round. The state guard in the
// WHERE clause makes a concurrent double submit lose: only one caller sees
// a row transition out of 'staked'.
func (r *Repository) MarkAnswered(ctx context.Context, id int64, answer string, isCorrect bool) (bool, error) {
	query := `
        UPDATE game_attempts
        SET state = 'answered', selected_answer = $1, is_correct = $2
        WHERE id = $3 AND state = 'staked'
    `
	tag, err := r.db.Exec(ctx, query, answer, isCorrect, id)
	if err != nil {
		zap.L().Error("can't mark attempt answered", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// SetCreditTx links the payout credit transaction to a winning round before
// the credit commit, so a crash mid-settlement leaves the round resumable.
func (r *Repository) SetCreditTx(ctx context.Context, id, creditTxID int64) error {
	query := `
        UPDATE game_attempts
        SET credit_tx_id = $1
        WHERE id = $2 AND credit_tx_id IS NULL
    `
	_, err := r.db.Exec(ctx, query, creditTxID, id)
	if err != nil {
		zap.L().Error("can't set credit tx on attempt", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Settle(ctx context.Context, id int64, payout int64) error {
	query := `
        UPDATE game_attempts
        SET state = 'settled', payout_amount = $1
        WHERE id = $2 AND state = 'answered'
    `
	_, err := r.db.Exec(ctx, query, payout, id)
	if err != nil {
		zap.L().Error("can't settle attempt", zap.Error(err))
		return err
	}
	return nil
}

// Expire closes a round that was staked but never answered: no credit, the
// stake stays debited.
func (r *Repository) Expire(ctx context.Context, id int64) error {
	query := `
        UPDATE game_attempts
        SET state = 'settled', is_correct = FALSE, payout_amount = 0
        WHERE id = $1 AND state = 'staked'
    `
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't expire attempt", zap.Error(err))
		return err
	}
	return nil
}

// FindUnsettled returns answered rounds whose settlement has not reached the
// terminal state yet.
func (r *Repository) FindUnsettled(ctx context.Context, limit uint32) ([]domain.GameAttempt, error) {
	query := `
        SELECT id, user_id, question_id, state, COALESCE(selected_answer, ''), COALESCE(is_correct, FALSE),
               wager_amount, payout_amount, debit_tx_id, COALESCE(credit_tx_id, 0), created_at
        FROM game_attempts
        WHERE state = 'answered'
        ORDER BY created_at ASC
        LIMIT $1
    `
	return r.findMany(ctx, query, int(limit))
}

// FindStaleStaked returns staked rounds older than the cutoff, for the
// housekeeping sweep.
func (r *Repository) FindStaleStaked(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.GameAttempt, error) {
	query := `
        SELECT id, user_id, question_id, state, COALESCE(selected_answer, ''), COALESCE(is_correct, FALSE),
               wager_amount, payout_amount, debit_tx_id, COALESCE(credit_tx_id, 0), created_at
        FROM game_attempts
        WHERE state = 'staked' AND created_at < $1
        ORDER BY created_at ASC
        LIMIT $2
    `
	return r.findMany(ctx, query, cutoff, int(limit))
}

func (r *Repository) findMany(ctx context.Context, query string, args ...any) ([]domain.GameAttempt, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get game attempts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var attempts []domain.GameAttempt
	for rows.Next() {
		var a domain.GameAttempt
		err := rows.Scan(&a.ID, &a.UserID, &a.QuestionID, &a.State, &a.SelectedAnswer, &a.IsCorrect,
			&a.WagerAmount, &a.PayoutAmount, &a.DebitTxID, &a.CreditTxID, &a.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan game attempt row", zap.Error(err))
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}
