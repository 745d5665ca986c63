package referralrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/quizcash/quizcash/internal/domain"
	"github.com/quizcash/quizcash/internal/pg"
)

var ErrAlreadyReferred = errors.New("user already referred")

const uniqueViolationCode = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create records one confirmed referral. A user can be referred at most
// once; the unique constraint on referred_id enforces it.
func (r *Repository) Create(ctx context.Context, referral *domain.Referral) error {
	query := `
        INSERT INTO referrals (referrer_id, referred_id)
        VALUES ($1, $2)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, referral.ReferrerID, referral.ReferredID).
		Scan(&referral.ID, &referral.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrAlreadyReferred
		}
		zap.L().Error("can't save referral", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CountByReferrer(ctx context.Context, userID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
        SELECT COUNT(*)
        FROM referrals
        WHERE referrer_id = $1
    `, userID).Scan(&count)
	if err != nil {
		zap.L().Error("can't count referrals", zap.Error(err))
		return 0, err
	}
	return count, nil
}
