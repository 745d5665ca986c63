package walletservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/quizcash/quizcash/internal/domain"
	ledgerrepo "github.com/quizcash/quizcash/internal/repo/ledger-repo"
	referralrepo "github.com/quizcash/quizcash/internal/repo/referral-repo"
	"github.com/quizcash/quizcash/pkg/validate"
)

// ReferralThreshold is the number of confirmed referrals that unlocks
// withdrawals.
const ReferralThreshold = 3

const defaultHistoryLimit = 50

type LedgerRepo interface {
	Append(ctx context.Context, tx *domain.Transaction) (int64, error)
	Commit(ctx context.Context, id int64, outcome domain.TransactionStatus) error
	BalanceOf(ctx context.Context, userID int) (int64, error)
	DebitCompleted(ctx context.Context, userID int, amount int64, kind domain.TransactionKind) (int64, error)
	ListCompleted(ctx context.Context, userID int, limit int) ([]domain.Transaction, error)
	FindByExternalRef(ctx context.Context, userID int, externalRef string, kind domain.TransactionKind) (*domain.Transaction, error)
}

type ReferralRepo interface {
	Create(ctx context.Context, referral *domain.Referral) error
	CountByReferrer(ctx context.Context, userID int) (int, error)
}

var (
	ErrInvalidAmount         = ledgerrepo.ErrInvalidAmount
	ErrInsufficientBalance   = ledgerrepo.ErrInsufficientBalance
	ErrAlreadyReferred       = referralrepo.ErrAlreadyReferred
	ErrWithdrawalNotEligible = errors.New("withdrawal not eligible")
	ErrMissingExternalRef    = errors.New("missing external reference")
	ErrDepositFailed         = errors.New("deposit reference already failed")
)

type Service struct {
	ledgerRepo   LedgerRepo
	referralRepo ReferralRepo
}

func New(ledgerRepo LedgerRepo, referralRepo ReferralRepo) *Service {
	return &Service{
		ledgerRepo:   ledgerRepo,
		referralRepo: referralRepo,
	}
}

func (s *Service) GetBalance(ctx context.Context, userID int) (int64, error) {
	balance, err := s.ledgerRepo.BalanceOf(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// Deposit credits the wallet with funds confirmed by the payment gateway.
// The gateway reference makes retried callbacks idempotent: a deposit that
// already exists for (user, externalRef) is returned as-is, no second row.
func (s *Service) Deposit(ctx context.Context, userID int, amount int64, externalRef string) (*domain.Transaction, error) {
	if !validate.IsAmount(amount) {
		return nil, ErrInvalidAmount
	}
	if externalRef == "" {
		return nil, ErrMissingExternalRef
	}

	existing, err := s.ledgerRepo.FindByExternalRef(ctx, userID, externalRef, domain.KindDeposit)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.resumeDeposit(ctx, existing)
	}

	tx := &domain.Transaction{
		UserID:      userID,
		Amount:      amount,
		Kind:        domain.KindDeposit,
		ExternalRef: externalRef,
	}
	id, err := s.ledgerRepo.Append(ctx, tx)
	if err != nil {
		if errors.Is(err, ledgerrepo.ErrDuplicateExternalRef) {
			// lost an append race against a concurrent retry of the same callback
			existing, ferr := s.ledgerRepo.FindByExternalRef(ctx, userID, externalRef, domain.KindDeposit)
			if ferr != nil {
				return nil, ferr
			}
			if existing == nil {
				return nil, err
			}
			return s.resumeDeposit(ctx, existing)
		}
		zap.L().Error("failed to append deposit", zap.Error(err))
		return nil, err
	}

	if err := s.ledgerRepo.Commit(ctx, id, domain.StatusCompleted); err != nil {
		zap.L().Error("failed to commit deposit", zap.Int64("txID", id), zap.Error(err))
		return nil, err
	}
	tx.Status = domain.StatusCompleted
	return tx, nil
}

// resumeDeposit finishes a replayed deposit from whatever state the previous
// attempt left behind. A pending row means the append was durable but the
// commit never happened, so it is committed here; without this the gateway
// retry would be answered with a transaction that never reaches the balance.
func (s *Service) resumeDeposit(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	switch tx.Status {
	case domain.StatusCompleted:
		zap.L().Info("deposit replay, returning existing transaction",
			zap.Int("userID", tx.UserID), zap.String("externalRef", tx.ExternalRef))
		return tx, nil
	case domain.StatusPending:
		zap.L().Info("deposit replay finishing interrupted commit",
			zap.Int("userID", tx.UserID), zap.Int64("txID", tx.ID))
		if err := s.ledgerRepo.Commit(ctx, tx.ID, domain.StatusCompleted); err != nil {
			zap.L().Error("failed to commit resumed deposit", zap.Int64("txID", tx.ID), zap.Error(err))
			return nil, err
		}
		tx.Status = domain.StatusCompleted
		return tx, nil
	default:
		// the reference was terminally voided; the gateway must issue a new one
		return nil, ErrDepositFailed
	}
}

// Withdraw debits the wallet after the referral gate and the balance check.
// The gate comes first: an ineligible user is told so regardless of balance.
func (s *Service) Withdraw(ctx context.Context, userID int, amount int64) (int64, error) {
	if !validate.IsAmount(amount) {
		return 0, ErrInvalidAmount
	}

	count, err := s.referralRepo.CountByReferrer(ctx, userID)
	if err != nil {
		zap.L().Error("failed to count referrals", zap.Error(err))
		return 0, err
	}
	if count < ReferralThreshold {
		return 0, ErrWithdrawalNotEligible
	}

	txID, err := s.ledgerRepo.DebitCompleted(ctx, userID, amount, domain.KindWithdrawal)
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to debit withdrawal", zap.Error(err))
		}
		return 0, err
	}
	return txID, nil
}

func (s *Service) GetHistory(ctx context.Context, userID int, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	transactions, err := s.ledgerRepo.ListCompleted(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}

// ReferralStatus reports the confirmed referral count and whether the
// withdrawal gate is open.
func (s *Service) ReferralStatus(ctx context.Context, userID int) (int, bool, error) {
	count, err := s.referralRepo.CountByReferrer(ctx, userID)
	if err != nil {
		zap.L().Error("failed to count referrals", zap.Error(err))
		return 0, false, err
	}
	return count, count >= ReferralThreshold, nil
}

func (s *Service) AddReferral(ctx context.Context, referrerID, referredID int) error {
	err := s.referralRepo.Create(ctx, &domain.Referral{
		ReferrerID: referrerID,
		ReferredID: referredID,
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyReferred) {
			zap.L().Error("failed to create referral", zap.Error(err))
		}
		return err
	}
	return nil
}
