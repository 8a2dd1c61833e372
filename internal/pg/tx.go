package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
)

//go:generate mockgen -source=tx.go -destination=mock_tx.go -package=pg

const (
	serializationFailure = "40001"
	deadlockDetected     = "40P01"

	retryBaseDelay = 20 * time.Millisecond
)

type TransactionalFn func(ctx context.Context) error

// TXManager runs fn as one unit of work. Begin retries the whole fn when the
// database reports a serialization failure or deadlock.
type TXManager interface {
	Begin(ctx context.Context, fn TransactionalFn) error
	BeginReadOnly(ctx context.Context, fn TransactionalFn) error
}

type txBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type TxManager struct {
	pool       txBeginner
	maxRetries uint64
}

func NewTXManager(pool *pgxpool.Pool, maxRetries uint64) *TxManager {
	return &TxManager{pool: pool, maxRetries: maxRetries}
}

func (m *TxManager) Begin(ctx context.Context, fn TransactionalFn) error {
	return m.run(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// BeginReadOnly gives fn a single repeatable-read snapshot.
func (m *TxManager) BeginReadOnly(ctx context.Context, fn TransactionalFn) error {
	return m.run(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (m *TxManager) run(ctx context.Context, opts pgx.TxOptions, fn TransactionalFn) error {
	// nested calls join the outer transaction
	if hasTx(ctx) {
		return fn(ctx)
	}

	backoff := retry.WithMaxRetries(m.maxRetries, retry.NewExponential(retryBaseDelay))
	attempt := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := m.once(ctx, opts, fn)
		if IsRetryable(err) {
			zap.L().Warn("transaction conflict, retrying", zap.Int("attempt", attempt), zap.Error(err))
			return retry.RetryableError(err)
		}
		return err
	})
	if IsRetryable(err) {
		zap.L().Error("transaction retries exhausted", zap.Int("attempts", attempt), zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrTransientFailure, err)
	}
	return err
}

func (m *TxManager) once(ctx context.Context, opts pgx.TxOptions, fn TransactionalFn) (err error) {
	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				zap.L().Error("rollback failed", zap.Error(rbErr))
			}
		}
	}()

	if err = fn(withTx(ctx, tx)); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// IsRetryable reports whether err is a conflict that a fresh attempt can resolve.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == serializationFailure || pgErr.Code == deadlockDetected
	}
	return false
}
