package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// TransactionKind is the closed set of ledger entry kinds. Balance
// arithmetic switches over it exhaustively; an unknown kind contributes
// nothing instead of corrupting the sum.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
	KindGameDebit  TransactionKind = "game_debit"
	KindGameCredit TransactionKind = "game_credit"
)

// Sign returns +1 for kinds that increase the balance and -1 for kinds
// that decrease it.
func (k TransactionKind) Sign() int64 {
	switch k {
	case KindDeposit, KindGameCredit:
		return 1
	case KindWithdrawal, KindGameDebit:
		return -1
	}
	return 0
}

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is an append-only ledger entry. Amount is in minor currency
// units and always positive; the kind decides the sign in balance math.
// After the single pending->terminal status transition the row is frozen.
type Transaction struct {
	ID          int64             `db:"id"`
	UserID      int               `db:"user_id"`
	Amount      int64             `db:"amount"`
	Kind        TransactionKind   `db:"kind"`
	Status      TransactionStatus `db:"status"`
	ExternalRef string            `db:"external_ref"`
	CreatedAt   time.Time         `db:"created_at"`
}

type RoundState string

const (
	RoundStaked   RoundState = "staked"
	RoundAnswered RoundState = "answered"
	RoundSettled  RoundState = "settled"
)

// GameAttempt is one played round: stake -> answer -> settle.
// SelectedAnswer stays empty until the round is answered. DebitTxID always
// references the stake; CreditTxID is set iff the round was won and the
// payout credit committed.
type GameAttempt struct {
	ID             int64      `db:"id"`
	UserID         int        `db:"user_id"`
	QuestionID     int64      `db:"question_id"`
	State          RoundState `db:"state"`
	SelectedAnswer string     `db:"selected_answer"`
	IsCorrect      bool       `db:"is_correct"`
	WagerAmount    int64      `db:"wager_amount"`
	PayoutAmount   int64      `db:"payout_amount"`
	DebitTxID      int64      `db:"debit_tx_id"`
	CreditTxID     int64      `db:"credit_tx_id"`
	CreatedAt      time.Time  `db:"created_at"`
}

type Referral struct {
	ID         int64     `db:"id"`
	ReferrerID int       `db:"referrer_id"`
	ReferredID int       `db:"referred_id"`
	CreatedAt  time.Time `db:"created_at"`
}

// Question is read-only collaborator data; the wager engine looks it up by
// id and never mutates it.
type Question struct {
	ID            int64     `db:"id"`
	Content       string    `db:"content"`
	OptionA       string    `db:"option_a"`
	OptionB       string    `db:"option_b"`
	OptionC       string    `db:"option_c"`
	OptionD       string    `db:"option_d"`
	CorrectAnswer string    `db:"correct_answer"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
}
