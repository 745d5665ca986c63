package questionrepo

import (
	"context"
	"errors"

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

const questionColumns = `id, content, option_a, option_b, option_c, option_d, correct_answer, is_active, created_at`

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Question, error) {
	query := `
        SELECT ` + questionColumns + `
        FROM quiz_questions
        WHERE id = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// PickForUser selects a random active question the user has not played yet.
// Returns nil when the user has exhausted the question bank.
func (r *Repository) PickForUser(ctx context.Context, userID int) (*domain.Question, error) {
	query := `
        SELECT ` + questionColumns + `
        FROM quiz_questions q
        WHERE q.is_active
          AND NOT EXISTS (
            SELECT 1 FROM game_attempts a
            WHERE a.question_id = q.id AND a.user_id = $1
          )
        ORDER BY random()
        LIMIT 1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Question, error) {
	var q domain.Question
	err := row.Scan(&q.ID, &q.Content, &q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD,
		&q.CorrectAnswer, &q.IsActive, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find question", zap.Error(err))
		return nil, err
	}
	return &q, nil
}
