package orderrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
	"github.com/GlebRadaev/sellerpayout/internal/pg"
)

// Repository reads the order subsystem's orders table. It never writes to it.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// FindEligible returns delivered orders of the shop delivered no later than
// cutoff that have no order settlement yet, oldest delivery first.
func (r *Repository) FindEligible(ctx context.Context, shopID int64, cutoff time.Time, limit int) ([]domain.Order, error) {
	query := `
		SELECT o.id, o.shop_id, o.total_amount, o.status, o.delivered_at
		FROM orders o
		WHERE o.shop_id = $1
			AND o.status = $2
			AND o.delivered_at IS NOT NULL
			AND o.delivered_at <= $3
			AND NOT EXISTS (SELECT 1 FROM order_settlements os WHERE os.order_id = o.id)
		ORDER BY o.delivered_at ASC, o.id ASC
		LIMIT $4
	`
	rows, err := r.db.Query(ctx, query, shopID, domain.OrderStatusDelivered, cutoff, limit)
	if err != nil {
		zap.L().Error("can't get eligible orders", zap.Int64("shop_id", shopID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(&order.ID, &order.ShopID, &order.TotalAmount, &order.Status, &order.DeliveredAt)
		if err != nil {
			zap.L().Error("can't scan eligible order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// FindShopsWithEligible lists shops that have at least one order FindEligible
// would return for the same cutoff.
func (r *Repository) FindShopsWithEligible(ctx context.Context, cutoff time.Time) ([]int64, error) {
	query := `
		SELECT DISTINCT o.shop_id
		FROM orders o
		WHERE o.status = $1
			AND o.delivered_at IS NOT NULL
			AND o.delivered_at <= $2
			AND NOT EXISTS (SELECT 1 FROM order_settlements os WHERE os.order_id = o.id)
		ORDER BY o.shop_id
	`
	rows, err := r.db.Query(ctx, query, domain.OrderStatusDelivered, cutoff)
	if err != nil {
		zap.L().Error("can't get shops with eligible orders", zap.Error(err))
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
