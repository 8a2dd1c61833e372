package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
)

var readCommitted = pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

func NewMock(t *testing.T, maxRetries uint64) (*TxManager, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return &TxManager{pool: mockDB, maxRetries: maxRetries}, mockDB
}

func TestTxManager_Begin(t *testing.T) {
	conflict := &pgconn.PgError{Code: serializationFailure}

	tests := []struct {
		name        string
		maxRetries  uint64
		prepareMock func(mock pgxmock.PgxPoolIface)
		fn          func(calls *int) TransactionalFn
		expectedErr error
		calls       int
	}{
		{
			name:       "Commits on success",
			maxRetries: 2,
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectCommit()
			},
			fn: func(calls *int) TransactionalFn {
				return func(ctx context.Context) error {
					*calls++
					if !hasTx(ctx) {
						return errors.New("no transaction in context")
					}
					return nil
				}
			},
			calls: 1,
		},
		{
			name:       "Rolls back when fn fails",
			maxRetries: 2,
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectRollback()
			},
			fn: func(calls *int) TransactionalFn {
				return func(ctx context.Context) error {
					*calls++
					return domain.ErrInsufficientBalance
				}
			},
			expectedErr: domain.ErrInsufficientBalance,
			calls:       1,
		},
		{
			name:       "Retries serialization failure",
			maxRetries: 2,
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectRollback()
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectCommit()
			},
			fn: func(calls *int) TransactionalFn {
				return func(ctx context.Context) error {
					*calls++
					if *calls == 1 {
						return conflict
					}
					return nil
				}
			},
			calls: 2,
		},
		{
			name:       "Gives up after max retries",
			maxRetries: 1,
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectRollback()
				mock.ExpectBeginTx(readCommitted)
				mock.ExpectRollback()
			},
			fn: func(calls *int) TransactionalFn {
				return func(ctx context.Context) error {
					*calls++
					return &pgconn.PgError{Code: deadlockDetected}
				}
			},
			expectedErr: domain.ErrTransientFailure,
			calls:       2,
		},
		{
			name:       "Begin error",
			maxRetries: 2,
			prepareMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBeginTx(readCommitted).WillReturnError(errors.New("connection refused"))
			},
			fn: func(calls *int) TransactionalFn {
				return func(ctx context.Context) error {
					*calls++
					return nil
				}
			},
			expectedErr: errors.New("begin tx: connection refused"),
			calls:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, mock := NewMock(t, tt.maxRetries)
			tt.prepareMock(mock)

			calls := 0
			err := m.Begin(context.Background(), tt.fn(&calls))

			var domainErr *domain.Error
			switch {
			case tt.expectedErr == nil:
				assert.NoError(t, err)
			case errors.As(tt.expectedErr, &domainErr):
				assert.ErrorIs(t, err, tt.expectedErr)
			default:
				assert.EqualError(t, err, tt.expectedErr.Error())
			}
			assert.Equal(t, tt.calls, calls)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxManager_NestedBeginJoinsOuterTransaction(t *testing.T) {
	m, mock := NewMock(t, 0)
	mock.ExpectBeginTx(readCommitted)
	mock.ExpectCommit()

	inner := false
	err := m.Begin(context.Background(), func(ctx context.Context) error {
		return m.Begin(ctx, func(ctx context.Context) error {
			inner = true
			return nil
		})
	})

	assert.NoError(t, err)
	assert.True(t, inner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_BeginReadOnly(t *testing.T) {
	m, mock := NewMock(t, 0)
	mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	mock.ExpectCommit()

	err := m.BeginReadOnly(context.Background(), func(ctx context.Context) error {
		return nil
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(&pgconn.PgError{Code: serializationFailure}))
	assert.True(t, IsRetryable(&pgconn.PgError{Code: deadlockDetected}))
	assert.False(t, IsRetryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsRetryable(errors.New("boom")))
	assert.False(t, IsRetryable(nil))
}
