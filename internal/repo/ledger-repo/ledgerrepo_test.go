package ledgerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/quizcash/quizcash/internal/domain"
	"github.com/quizcash/quizcash/internal/pg"
)

var testTime = time.Date(2024, 12, 9, 16, 9, 57, 0, time.UTC)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_Append(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		tx        *domain.Transaction
		mockSetup func()
		expectErr error
		expectID  int64
	}{
		{
			name: "Appends pending deposit",
			tx: &domain.Transaction{
				UserID:      1,
				Amount:      100,
				Kind:        domain.KindDeposit,
				ExternalRef: "pg_cb_1",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO wallet_transactions (user_id, amount, kind, status, external_ref)
        VALUES ($1, $2, $3, 'pending', NULLIF($4, ''))
        RETURNING id, created_at`)).
					WithArgs(1, int64(100), domain.KindDeposit, "pg_cb_1").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), testTime))
			},
			expectErr: nil,
			expectID:  7,
		},
		{
			name: "Rejects non-positive amount",
			tx: &domain.Transaction{
				UserID: 1,
				Amount: 0,
				Kind:   domain.KindDeposit,
			},
			mockSetup: func() {},
			expectErr: ErrInvalidAmount,
		},
		{
			name: "Rejects unknown kind",
			tx: &domain.Transaction{
				UserID: 1,
				Amount: 100,
				Kind:   domain.TransactionKind("bonus"),
			},
			mockSetup: func() {},
			expectErr: ErrInvalidAmount,
		},
		{
			name: "Duplicate external reference",
			tx: &domain.Transaction{
				UserID:      1,
				Amount:      100,
				Kind:        domain.KindDeposit,
				ExternalRef: "pg_cb_1",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO wallet_transactions (user_id, amount, kind, status, external_ref)
        VALUES ($1, $2, $3, 'pending', NULLIF($4, ''))
        RETURNING id, created_at`)).
					WithArgs(1, int64(100), domain.KindDeposit, "pg_cb_1").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: ErrDuplicateExternalRef,
		},
		{
			name: "Database error",
			tx: &domain.Transaction{
				UserID: 1,
				Amount: 100,
				Kind:   domain.KindGameCredit,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        INSERT INTO wallet_transactions (user_id, amount, kind, status, external_ref)
        VALUES ($1, $2, $3, 'pending', NULLIF($4, ''))
        RETURNING id, created_at`)).
					WithArgs(1, int64(100), domain.KindGameCredit, "").
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			id, err := repo.Append(context.Background(), tt.tx)

			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectID, id)
				assert.Equal(t, domain.StatusPending, tt.tx.Status)
			}
		})
	}
}

func TestRepository_Commit(t *testing.T) {
	repo, mock, txm := NewMock(t)

	lockQuery := regexp.QuoteMeta(`
        SELECT status
        FROM wallet_transactions
        WHERE id = $1
        FOR UPDATE`)
	updateQuery := regexp.QuoteMeta(`
        UPDATE wallet_transactions
        SET status = $1
        WHERE id = $2`)

	inTx := func(setup func()) {
		txm.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(ctx context.Context) error) error {
				setup()
				return fn(ctx)
			})
	}

	tests := []struct {
		name      string
		id        int64
		outcome   domain.TransactionStatus
		mockSetup func()
		expectErr error
	}{
		{
			name:    "Completes pending transaction",
			id:      7,
			outcome: domain.StatusCompleted,
			mockSetup: func() {
				inTx(func() {
					mock.ExpectQuery(lockQuery).WithArgs(int64(7)).
						WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(domain.StatusPending))
					mock.ExpectExec(updateQuery).WithArgs(domain.StatusCompleted, int64(7)).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				})
			},
			expectErr: nil,
		},
		{
			name:    "Fails pending transaction",
			id:      7,
			outcome: domain.StatusFailed,
			mockSetup: func() {
				inTx(func() {
					mock.ExpectQuery(lockQuery).WithArgs(int64(7)).
						WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(domain.StatusPending))
					mock.ExpectExec(updateQuery).WithArgs(domain.StatusFailed, int64(7)).
						WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				})
			},
			expectErr: nil,
		},
		{
			name:    "Recommit with same outcome is a no-op",
			id:      7,
			outcome: domain.StatusCompleted,
			mockSetup: func() {
				inTx(func() {
					mock.ExpectQuery(lockQuery).WithArgs(int64(7)).
						WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(domain.StatusCompleted))
				})
			},
			expectErr: nil,
		},
		{
			name:    "Recommit with different outcome conflicts",
			id:      7,
			outcome: domain.StatusFailed,
			mockSetup: func() {
				inTx(func() {
					mock.ExpectQuery(lockQuery).WithArgs(int64(7)).
						WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(domain.StatusCompleted))
				})
			},
			expectErr: ErrConflictingCommit,
		},
		{
			name:    "Unknown transaction",
			id:      99,
			outcome: domain.StatusCompleted,
			mockSetup: func() {
				inTx(func() {
					mock.ExpectQuery(lockQuery).WithArgs(int64(99)).
						WillReturnError(pgx.ErrNoRows)
				})
			},
			expectErr: ErrTransactionNotFound,
		},
		{
			name:    "Database error on update",
			id:      7,
			outcome: domain.StatusCompleted,
			mockSetup: func() {
				inTx(func() {
					mock.ExpectQuery(lockQuery).WithArgs(int64(7)).
						WillReturnRows(pgxmock.NewRows([]string{"status"}).AddRow(domain.StatusPending))
					mock.ExpectExec(updateQuery).WithArgs(domain.StatusCompleted, int64(7)).
						WillReturnError(errors.New("database error"))
				})
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Commit(context.Background(), tt.id, tt.outcome)

			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_BalanceOf(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		balance   int64
	}{
		{
			name:   "Balance from completed rows",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(balanceQuery)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(150)))
			},
			balance: 150,
		},
		{
			name:   "Empty ledger yields zero",
			userID: 2,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(balanceQuery)).
					WithArgs(2).
					WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(0)))
			},
			balance: 0,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(balanceQuery)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := repo.BalanceOf(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.balance, balance)
			}
		})
	}
}

func TestRepository_DebitCompleted(t *testing.T) {
	repo, mock, txm := NewMock(t)

	lockQuery := regexp.QuoteMeta(`
        SELECT id
        FROM users
        WHERE id = $1
        FOR UPDATE`)
	insertQuery := regexp.QuoteMeta(`
        INSERT INTO wallet_transactions (user_id, amount, kind, status)
        VALUES ($1, $2, $3, 'completed')
        RETURNING id`)

	inTx := func(setup func()) {
		txm.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(ctx context.Context) error) error {
				setup()
				return fn(ctx)
			})
	}

	tests := []struct {
		name      string
		userID    int
		amount    int64
		kind      domain.TransactionKind
		mockSetup func()
		expectErr error
		expectID  int64
	}{
		{
			name:   "Debits when balance is sufficient",
			userID: 1,
			amount: 50,
			kind:   domain.KindGameDebit,
			mockSetup: func() {
				inTx(func() {
					mock.ExpectQuery(lockQuery).WithArgs(1).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
					mock.ExpectQuery(regexp.QuoteMeta(balanceQuery)).WithArgs(1).
						WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(100)))
					mock.ExpectQuery(insertQuery).WithArgs(1, int64(50), domain.KindGameDebit).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
				})
			},
			expectID: 11,
		},
		{
			name:   "Exact balance passes",
			userID: 1,
			amount: 50,
			kind:   domain.KindWithdrawal,
			mockSetup: func() {
				inTx(func() {
					mock.ExpectQuery(lockQuery).WithArgs(1).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
					mock.ExpectQuery(regexp.QuoteMeta(balanceQuery)).WithArgs(1).
						WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(50)))
					mock.ExpectQuery(insertQuery).WithArgs(1, int64(50), domain.KindWithdrawal).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))
				})
			},
			expectID: 12,
		},
		{
			name:   "Insufficient balance",
			userID: 1,
			amount: 50,
			kind:   domain.KindGameDebit,
			mockSetup: func() {
				inTx(func() {
					mock.ExpectQuery(lockQuery).WithArgs(1).
						WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
					mock.ExpectQuery(regexp.QuoteMeta(balanceQuery)).WithArgs(1).
						WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(49)))
				})
			},
			expectErr: ErrInsufficientBalance,
		},
		{
			name:      "Rejects credit kind",
			userID:    1,
			amount:    50,
			kind:      domain.KindDeposit,
			mockSetup: func() {},
			expectErr: ErrInvalidAmount,
		},
		{
			name:      "Rejects non-positive amount",
			userID:    1,
			amount:    0,
			kind:      domain.KindWithdrawal,
			mockSetup: func() {},
			expectErr: ErrInvalidAmount,
		},
		{
			name:   "Unknown user",
			userID: 99,
			amount: 50,
			kind:   domain.KindGameDebit,
			mockSetup: func() {
				inTx(func() {
					mock.ExpectQuery(lockQuery).WithArgs(99).
						WillReturnError(pgx.ErrNoRows)
				})
			},
			expectErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			id, err := repo.DebitCompleted(context.Background(), tt.userID, tt.amount, tt.kind)

			if tt.expectErr != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectID, id)
			}
		})
	}
}

func TestRepository_ListCompleted(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, user_id, amount, kind, status, COALESCE(external_ref, ''), created_at
        FROM wallet_transactions
        WHERE user_id = $1 AND status = 'completed'
        ORDER BY created_at DESC, id DESC
        LIMIT $2`)

	tests := []struct {
		name      string
		userID    int
		limit     int
		mockSetup func()
		expectErr bool
		expected  []domain.Transaction
	}{
		{
			name:   "Returns transactions most recent first",
			userID: 1,
			limit:  10,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "amount", "kind", "status", "external_ref", "created_at"}).
					AddRow(int64(2), 1, int64(50), domain.TransactionKind("game_debit"), domain.TransactionStatus("completed"), "", testTime).
					AddRow(int64(1), 1, int64(100), domain.TransactionKind("deposit"), domain.TransactionStatus("completed"), "pg_cb_1", testTime)
				mock.ExpectQuery(query).WithArgs(1, 10).WillReturnRows(rows)
			},
			expected: []domain.Transaction{
				{ID: 2, UserID: 1, Amount: 50, Kind: domain.KindGameDebit, Status: domain.StatusCompleted, CreatedAt: testTime},
				{ID: 1, UserID: 1, Amount: 100, Kind: domain.KindDeposit, Status: domain.StatusCompleted, ExternalRef: "pg_cb_1", CreatedAt: testTime},
			},
		},
		{
			name:   "No transactions",
			userID: 2,
			limit:  10,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "amount", "kind", "status", "external_ref", "created_at"})
				mock.ExpectQuery(query).WithArgs(2, 10).WillReturnRows(rows)
			},
			expected: nil,
		},
		{
			name:   "Database error",
			userID: 1,
			limit:  10,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, 10).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			transactions, err := repo.ListCompleted(context.Background(), tt.userID, tt.limit)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, transactions)
			}
		})
	}
}

func TestRepository_FindByExternalRef(t *testing.T) {
	repo, mock, _ := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, user_id, amount, kind, status, COALESCE(external_ref, ''), created_at
        FROM wallet_transactions
        WHERE user_id = $1 AND external_ref = $2 AND kind = $3`)

	tests := []struct {
		name      string
		userID    int
		ref       string
		kind      domain.TransactionKind
		mockSetup func()
		expectErr bool
		expected  *domain.Transaction
	}{
		{
			name:   "Existing deposit",
			userID: 1,
			ref:    "pg_cb_1",
			kind:   domain.KindDeposit,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "amount", "kind", "status", "external_ref", "created_at"}).
					AddRow(int64(1), 1, int64(100), domain.TransactionKind("deposit"), domain.TransactionStatus("completed"), "pg_cb_1", testTime)
				mock.ExpectQuery(query).WithArgs(1, "pg_cb_1", domain.KindDeposit).WillReturnRows(rows)
			},
			expected: &domain.Transaction{
				ID: 1, UserID: 1, Amount: 100, Kind: domain.KindDeposit,
				Status: domain.StatusCompleted, ExternalRef: "pg_cb_1", CreatedAt: testTime,
			},
		},
		{
			name:   "Existing payout credit by round reference",
			userID: 1,
			ref:    "round-5",
			kind:   domain.KindGameCredit,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "amount", "kind", "status", "external_ref", "created_at"}).
					AddRow(int64(21), 1, int64(100), domain.TransactionKind("game_credit"), domain.TransactionStatus("pending"), "round-5", testTime)
				mock.ExpectQuery(query).WithArgs(1, "round-5", domain.KindGameCredit).WillReturnRows(rows)
			},
			expected: &domain.Transaction{
				ID: 21, UserID: 1, Amount: 100, Kind: domain.KindGameCredit,
				Status: domain.StatusPending, ExternalRef: "round-5", CreatedAt: testTime,
			},
		},
		{
			name:   "No such reference returns nil",
			userID: 1,
			ref:    "pg_cb_missing",
			kind:   domain.KindDeposit,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, "pg_cb_missing", domain.KindDeposit).WillReturnError(pgx.ErrNoRows)
			},
			expected: nil,
		},
		{
			name:   "Database error",
			userID: 1,
			ref:    "pg_cb_1",
			kind:   domain.KindDeposit,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, "pg_cb_1", domain.KindDeposit).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			tx, err := repo.FindByExternalRef(context.Background(), tt.userID, tt.ref, tt.kind)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, tx)
		})
	}
}
