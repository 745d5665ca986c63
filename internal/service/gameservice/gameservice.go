package gameservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/quizcash/quizcash/internal/domain"
	ledgerrepo "github.com/quizcash/quizcash/internal/repo/ledger-repo"
)

// WagerAmount and PayoutAmount are fixed protocol constants in minor
// currency units. They are never caller-supplied: a client cannot request
// an arbitrary stake.
const (
	WagerAmount  int64 = 50
	PayoutAmount int64 = 100
)

const (
	settleMaxRetries    = 3
	settleRetryInterval = time.Second * 1
)

type LedgerRepo interface {
	Append(ctx context.Context, tx *domain.Transaction) (int64, error)
	Commit(ctx context.Context, id int64, outcome domain.TransactionStatus) error
	DebitCompleted(ctx context.Context, userID int, amount int64, kind domain.TransactionKind) (int64, error)
	FindByExternalRef(ctx context.Context, userID int, externalRef string, kind domain.TransactionKind) (*domain.Transaction, error)
}

type AttemptRepo interface {
	Create(ctx context.Context, attempt *domain.GameAttempt) error
	FindByID(ctx context.Context, id int64) (*domain.GameAttempt, error)
	MarkAnswered(ctx context.Context, id int64, answer string, isCorrect bool) (bool, error)
	SetCreditTx(ctx context.Context, id, creditTxID int64) error
	Settle(ctx context.Context, id int64, payout int64) error
	Expire(ctx context.Context, id int64) error
	FindUnsettled(ctx context.Context, limit uint32) ([]domain.GameAttempt, error)
	FindStaleStaked(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.GameAttempt, error)
}

type QuestionRepo interface {
	FindByID(ctx context.Context, id int64) (*domain.Question, error)
	PickForUser(ctx context.Context, userID int) (*domain.Question, error)
}

type Alerter interface {
	Alert(event string, fields map[string]any)
}

var (
	ErrInsufficientBalance = ledgerrepo.ErrInsufficientBalance
	ErrRoundNotFound       = errors.New("round not found")
	ErrAlreadyAnswered     = errors.New("round already answered")
	ErrNoQuestions         = errors.New("no questions available")
	ErrQuestionNotFound    = errors.New("question not found")
)

type Service struct {
	ledgerRepo   LedgerRepo
	attemptRepo  AttemptRepo
	questionRepo QuestionRepo
	alerter      Alerter
}

func New(ledgerRepo LedgerRepo, attemptRepo AttemptRepo, questionRepo QuestionRepo, alerter Alerter) *Service {
	return &Service{
		ledgerRepo:   ledgerRepo,
		attemptRepo:  attemptRepo,
		questionRepo: questionRepo,
		alerter:      alerter,
	}
}

type AnswerResult struct {
	IsCorrect    bool
	PayoutAmount int64
}

// StartRound opens a round: pick a question, debit the stake, record the
// attempt. The balance check and the stake debit are one atomic unit inside
// the ledger, so two concurrent rounds can never both pass the check
// against the same funds. A failed debit leaves no rows behind.
func (s *Service) StartRound(ctx context.Context, userID int) (*domain.GameAttempt, *domain.Question, error) {
	question, err := s.questionRepo.PickForUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to pick question", zap.Error(err))
		return nil, nil, err
	}
	if question == nil {
		return nil, nil, ErrNoQuestions
	}

	debitTxID, err := s.ledgerRepo.DebitCompleted(ctx, userID, WagerAmount, domain.KindGameDebit)
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to debit stake", zap.Error(err))
		}
		return nil, nil, err
	}

	attempt := &domain.GameAttempt{
		UserID:      userID,
		QuestionID:  question.ID,
		State:       domain.RoundStaked,
		WagerAmount: WagerAmount,
		DebitTxID:   debitTxID,
	}
	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		// The stake is already committed; there is no rollback path. The
		// attempt row is the only thing missing, so escalate instead of
		// pretending the round never happened.
		zap.L().Error("stake debited but attempt not recorded",
			zap.Int("userID", userID), zap.Int64("debitTxID", debitTxID), zap.Error(err))
		s.alerter.Alert("orphaned_stake_debit", map[string]any{
			"user_id":     userID,
			"debit_tx_id": debitTxID,
		})
		return nil, nil, err
	}

	return attempt, question, nil
}

// SubmitAnswer evaluates the answer exactly once and settles the round.
// A second submit, concurrent or late, gets ErrAlreadyAnswered.
func (s *Service) SubmitAnswer(ctx context.Context, roundID int64, answer string) (*AnswerResult, error) {
	attempt, err := s.attemptRepo.FindByID(ctx, roundID)
	if err != nil {
		zap.L().Error("failed to load round", zap.Error(err))
		return nil, err
	}
	if attempt == nil {
		return nil, ErrRoundNotFound
	}
	if attempt.State != domain.RoundStaked {
		return nil, ErrAlreadyAnswered
	}

	question, err := s.questionRepo.FindByID(ctx, attempt.QuestionID)
	if err != nil {
		zap.L().Error("failed to load question", zap.Error(err))
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	isCorrect := answer == question.CorrectAnswer
	ok, err := s.attemptRepo.MarkAnswered(ctx, roundID, answer, isCorrect)
	if err != nil {
		zap.L().Error("failed to record answer", zap.Error(err))
		return nil, err
	}
	if !ok {
		// lost the race against a concurrent submit
		return nil, ErrAlreadyAnswered
	}

	attempt.State = domain.RoundAnswered
	attempt.IsCorrect = isCorrect
	s.Settle(ctx, attempt)

	payout := int64(0)
	if isCorrect {
		payout = PayoutAmount
	}
	return &AnswerResult{IsCorrect: isCorrect, PayoutAmount: payout}, nil
}

// Settle drives an answered round to the terminal state. Losing rounds
// settle with no credit. Winning rounds get exactly one completed
// game_credit; a transient commit failure is retried under a bounded
// policy, and on exhaustion the round is left answered for the sweeper and
// the unresolved credit is escalated. The user-visible result is not an
// error either way: an unpaid win is an integrity defect, not a lost win.
func (s *Service) Settle(ctx context.Context, attempt *domain.GameAttempt) {
	if attempt.State != domain.RoundAnswered {
		return
	}

	if !attempt.IsCorrect {
		if err := s.attemptRepo.Settle(ctx, attempt.ID, 0); err != nil {
			zap.L().Error("failed to settle losing round", zap.Int64("roundID", attempt.ID), zap.Error(err))
		}
		return
	}

	creditTxID := attempt.CreditTxID
	if creditTxID == 0 {
		// the round reference makes the append idempotent: if an earlier
		// settle appended the credit but crashed before linking it, the
		// duplicate is recovered instead of a second credit being created
		creditRef := fmt.Sprintf("round-%d", attempt.ID)
		id, err := s.ledgerRepo.Append(ctx, &domain.Transaction{
			UserID:      attempt.UserID,
			Amount:      PayoutAmount,
			Kind:        domain.KindGameCredit,
			ExternalRef: creditRef,
		})
		if errors.Is(err, ledgerrepo.ErrDuplicateExternalRef) {
			existing, ferr := s.ledgerRepo.FindByExternalRef(ctx, attempt.UserID, creditRef, domain.KindGameCredit)
			if ferr != nil || existing == nil {
				zap.L().Error("failed to recover unlinked payout credit",
					zap.Int64("roundID", attempt.ID), zap.Error(ferr))
				return
			}
			id = existing.ID
		} else if err != nil {
			zap.L().Error("failed to append payout credit", zap.Int64("roundID", attempt.ID), zap.Error(err))
			return
		}
		creditTxID = id
		if err := s.attemptRepo.SetCreditTx(ctx, attempt.ID, creditTxID); err != nil {
			zap.L().Error("failed to link payout credit", zap.Int64("roundID", attempt.ID), zap.Error(err))
			return
		}
	}

	var commitErr error
	for attemptNo := 1; attemptNo <= settleMaxRetries; attemptNo++ {
		commitErr = s.ledgerRepo.Commit(ctx, creditTxID, domain.StatusCompleted)
		if commitErr == nil {
			break
		}
		zap.L().Warn("payout commit failed, retrying",
			zap.Int64("roundID", attempt.ID),
			zap.Int64("creditTxID", creditTxID),
			zap.Int("attempt", attemptNo),
			zap.Error(commitErr))
		if attemptNo < settleMaxRetries {
			time.Sleep(settleRetryInterval * time.Duration(attemptNo))
		}
	}
	if commitErr != nil {
		zap.L().Error("payout credit unresolved after retries",
			zap.Int64("roundID", attempt.ID), zap.Int64("creditTxID", creditTxID), zap.Error(commitErr))
		s.alerter.Alert("unresolved_payout_credit", map[string]any{
			"round_id":     attempt.ID,
			"credit_tx_id": creditTxID,
			"user_id":      attempt.UserID,
		})
		return
	}

	if err := s.attemptRepo.Settle(ctx, attempt.ID, PayoutAmount); err != nil {
		zap.L().Error("failed to settle winning round", zap.Int64("roundID", attempt.ID), zap.Error(err))
	}
}
