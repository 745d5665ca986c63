package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/quizcash/quizcash/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`SELECT id, login, password_hash FROM users WHERE login = $1`)

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		expected  *domain.User
	}{
		{
			name:  "Existing user",
			login: "champion42",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "password_hash"}).
					AddRow(1, "champion42", "hashed")
				mock.ExpectQuery(query).WithArgs("champion42").WillReturnRows(rows)
			},
			expected: &domain.User{ID: 1, Login: "champion42", PasswordHash: "hashed"},
		},
		{
			name:  "Unknown login returns nil",
			login: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("nobody").WillReturnError(pgx.ErrNoRows)
			},
			expected: nil,
		},
		{
			name:  "Database error",
			login: "champion42",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("champion42").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.FindByLogin(context.Background(), tt.login)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, user)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
		INSERT INTO users (login, password_hash)
		VALUES ($1, $2)
		RETURNING id`)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Creates user",
			user: &domain.User{Login: "champion42", PasswordHash: "hashed"},
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("champion42", "hashed").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
		},
		{
			name: "Database error",
			user: &domain.User{Login: "champion42", PasswordHash: "hashed"},
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("champion42", "hashed").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.Create(context.Background(), tt.user)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, user.ID)
			}
		})
	}
}
