package ledgerrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
	"github.com/GlebRadaev/sellerpayout/internal/pg"
)

const orderSettlementColumns = `id, order_id, shop_id, seller_id, settlement_id, order_amount, commission_rate,
	commission, settlement_amount, order_delivered_at, eligible_at, matured, matured_at, created_at`

// Repository stores order settlements, the append-only ledger behind seller balances.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Insert records os unless the order already has a settlement row. It reports
// whether a row was written.
func (r *Repository) Insert(ctx context.Context, os *domain.OrderSettlement) (bool, error) {
	query := `
		INSERT INTO order_settlements (order_id, shop_id, seller_id, order_amount, commission_rate, commission,
			settlement_amount, order_delivered_at, eligible_at, matured, matured_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (order_id) DO NOTHING
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		os.OrderID, os.ShopID, os.SellerID, os.OrderAmount, os.CommissionRate, os.Commission,
		os.SettlementAmount, os.OrderDeliveredAt, os.EligibleAt, os.Matured, os.MaturedAt, os.CreatedAt,
	).Scan(&os.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		zap.L().Error("can't save order settlement", zap.Int64("order_id", os.OrderID), zap.Error(err))
		return false, err
	}
	return true, nil
}

// FindMaturable lists unmatured rows of the shop whose hold period has ended,
// oldest first.
func (r *Repository) FindMaturable(ctx context.Context, shopID int64, now time.Time, limit int) ([]domain.OrderSettlement, error) {
	query := `
		SELECT ` + orderSettlementColumns + `
		FROM order_settlements
		WHERE shop_id = $1 AND NOT matured AND eligible_at <= $2
		ORDER BY eligible_at ASC, id ASC
		LIMIT $3
	`
	return r.list(ctx, "can't get maturable order settlements", query, shopID, now, limit)
}

// FindShopsWithMaturable lists shops holding pending funds that are due.
func (r *Repository) FindShopsWithMaturable(ctx context.Context, now time.Time) ([]int64, error) {
	query := `
		SELECT DISTINCT shop_id
		FROM order_settlements
		WHERE NOT matured AND eligible_at <= $1
		ORDER BY shop_id
	`
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		zap.L().Error("can't get shops with maturable funds", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var shopIDs []int64
	for rows.Next() {
		var shopID int64
		if err := rows.Scan(&shopID); err != nil {
			zap.L().Error("can't scan shop id", zap.Error(err))
			return nil, err
		}
		shopIDs = append(shopIDs, shopID)
	}
	return shopIDs, rows.Err()
}

// MarkMatured flags one row as matured and returns its amount. ok is false when
// another worker got there first.
func (r *Repository) MarkMatured(ctx context.Context, id int64, at time.Time) (amount decimal.Decimal, ok bool, err error) {
	query := `
		UPDATE order_settlements
		SET matured = TRUE, matured_at = $2
		WHERE id = $1 AND NOT matured
		RETURNING settlement_amount
	`
	err = r.db.QueryRow(ctx, query, id, at).Scan(&amount)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		zap.L().Error("failed to mark order settlement matured", zap.Int64("order_settlement_id", id), zap.Error(err))
		return decimal.Zero, false, err
	}
	return amount, true, nil
}

// AttributeToSettlement links the oldest matured, unattributed rows the seller
// earned in the shop to a completed settlement while their running total fits
// in amount.
func (r *Repository) AttributeToSettlement(ctx context.Context, sellerID, shopID, settlementID int64, amount decimal.Decimal) (int, error) {
	query := `
		WITH candidates AS (
			SELECT id, SUM(settlement_amount) OVER (ORDER BY eligible_at, id) AS running_total
			FROM order_settlements
			WHERE seller_id = $1 AND shop_id = $2 AND matured AND settlement_id IS NULL
		)
		UPDATE order_settlements os
		SET settlement_id = $3
		FROM candidates c
		WHERE os.id = c.id AND c.running_total <= $4
	`
	tag, err := r.db.Exec(ctx, query, sellerID, shopID, settlementID, amount)
	if err != nil {
		zap.L().Error("failed to attribute order settlements", zap.Int64("settlement_id", settlementID), zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repository) ListBySettlement(ctx context.Context, settlementID int64) ([]domain.OrderSettlement, error) {
	query := `
		SELECT ` + orderSettlementColumns + `
		FROM order_settlements
		WHERE settlement_id = $1
		ORDER BY eligible_at ASC, id ASC
	`
	return r.list(ctx, "can't get order settlements of settlement", query, settlementID)
}

// Totals recomputes the earning side of a balance from the ledger. A zero
// sellerID covers every seller that has owned the shop.
func (r *Repository) Totals(ctx context.Context, sellerID, shopID int64) (earned, pending decimal.Decimal, err error) {
	query := `
		SELECT
			COALESCE(SUM(settlement_amount), 0),
			COALESCE(SUM(settlement_amount) FILTER (WHERE NOT matured), 0)
		FROM order_settlements
		WHERE shop_id = $1 AND ($2::bigint = 0 OR seller_id = $2)
	`
	err = r.db.QueryRow(ctx, query, shopID, sellerID).Scan(&earned, &pending)
	if err != nil {
		zap.L().Error("failed to compute ledger totals", zap.Int64("shop_id", shopID), zap.Error(err))
	}
	return earned, pending, err
}

func (r *Repository) list(ctx context.Context, failMsg, query string, args ...any) ([]domain.OrderSettlement, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error(failMsg, zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.OrderSettlement
	for rows.Next() {
		var os domain.OrderSettlement
		err := rows.Scan(
			&os.ID,
			&os.OrderID,
			&os.ShopID,
			&os.SellerID,
			&os.SettlementID,
			&os.OrderAmount,
			&os.CommissionRate,
			&os.Commission,
			&os.SettlementAmount,
			&os.OrderDeliveredAt,
			&os.EligibleAt,
			&os.Matured,
			&os.MaturedAt,
			&os.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan order settlement row", zap.Error(err))
			return nil, err
		}
		result = append(result, os)
	}
	return result, rows.Err()
}
