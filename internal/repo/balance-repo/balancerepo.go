package balancerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
	"github.com/GlebRadaev/sellerpayout/internal/pg"
)

const balanceColumns = `id, seller_id, shop_id, available_balance, pending_balance, total_earned,
	total_withdrawn, total_pending_withdrawal, total_fees, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// GetForUpdate returns the balance row of the shop locked until the end of the
// surrounding transaction, creating an empty row on first use.
func (r *Repository) GetForUpdate(ctx context.Context, sellerID, shopID int64) (*domain.SellerBalance, error) {
	insert := `
		INSERT INTO seller_balances (seller_id, shop_id)
		VALUES ($1, $2)
		ON CONFLICT (seller_id, shop_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, insert, sellerID, shopID); err != nil {
		zap.L().Error("failed to create seller balance", zap.Int64("shop_id", shopID), zap.Error(err))
		return nil, err
	}

	query := `
		SELECT ` + balanceColumns + `
		FROM seller_balances
		WHERE seller_id = $1 AND shop_id = $2
		FOR UPDATE
	`
	balance, err := scanBalance(r.db.QueryRow(ctx, query, sellerID, shopID))
	if err != nil {
		zap.L().Error("failed to lock seller balance", zap.Int64("shop_id", shopID), zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// Get returns nil when the seller has never earned anything in the shop.
func (r *Repository) Get(ctx context.Context, sellerID, shopID int64) (*domain.SellerBalance, error) {
	query := `
		SELECT ` + balanceColumns + `
		FROM seller_balances
		WHERE seller_id = $1 AND shop_id = $2
	`
	balance, err := scanBalance(r.db.QueryRow(ctx, query, sellerID, shopID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get seller balance", zap.Int64("seller_id", sellerID), zap.Int64("shop_id", shopID), zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// SumByShop adds up the balances of every seller that has owned the shop. It
// returns nil when the shop has never earned anything.
func (r *Repository) SumByShop(ctx context.Context, shopID int64) (*domain.SellerBalance, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(available_balance), 0),
			COALESCE(SUM(pending_balance), 0),
			COALESCE(SUM(total_earned), 0),
			COALESCE(SUM(total_withdrawn), 0),
			COALESCE(SUM(total_pending_withdrawal), 0),
			COALESCE(SUM(total_fees), 0),
			COALESCE(MAX(updated_at), 'epoch'::timestamptz)
		FROM seller_balances
		WHERE shop_id = $1
	`
	var rows int
	b := domain.SellerBalance{ShopID: shopID}
	err := r.db.QueryRow(ctx, query, shopID).Scan(
		&rows,
		&b.AvailableBalance,
		&b.PendingBalance,
		&b.TotalEarned,
		&b.TotalWithdrawn,
		&b.TotalPendingWithdrawal,
		&b.TotalFees,
		&b.UpdatedAt,
	)
	if err != nil {
		zap.L().Error("failed to sum shop balances", zap.Int64("shop_id", shopID), zap.Error(err))
		return nil, err
	}
	if rows == 0 {
		return nil, nil
	}
	return &b, nil
}

func (r *Repository) Update(ctx context.Context, balance *domain.SellerBalance) error {
	query := `
		UPDATE seller_balances
		SET available_balance = $1,
			pending_balance = $2,
			total_earned = $3,
			total_withdrawn = $4,
			total_pending_withdrawal = $5,
			total_fees = $6,
			updated_at = NOW()
		WHERE id = $7
	`
	tag, err := r.db.Exec(ctx, query,
		balance.AvailableBalance,
		balance.PendingBalance,
		balance.TotalEarned,
		balance.TotalWithdrawn,
		balance.TotalPendingWithdrawal,
		balance.TotalFees,
		balance.ID,
	)
	if err != nil {
		zap.L().Error("failed to update seller balance", zap.Int64("shop_id", balance.ShopID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanBalance(row pgx.Row) (*domain.SellerBalance, error) {
	var b domain.SellerBalance
	err := row.Scan(
		&b.ID,
		&b.SellerID,
		&b.ShopID,
		&b.AvailableBalance,
		&b.PendingBalance,
		&b.TotalEarned,
		&b.TotalWithdrawn,
		&b.TotalPendingWithdrawal,
		&b.TotalFees,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
