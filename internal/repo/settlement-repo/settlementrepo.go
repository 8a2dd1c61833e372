package settlementrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/sellerpayout/internal/domain"
	"github.com/GlebRadaev/sellerpayout/internal/pg"
)

const settlementColumns = `id, request_key, seller_id, shop_id, amount, platform_fee, net_amount, status, method,
	bank_name, bank_account_number, bank_account_holder, card_number, wallet_id,
	transaction_reference, notes, processed_by, requested_at, approved_at, processed_at,
	completed_at, failed_at, cancelled_at, failure_reason, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, s *domain.Settlement) (*domain.Settlement, error) {
	query := `
		INSERT INTO settlements (request_key, seller_id, shop_id, amount, platform_fee, net_amount, status, method,
			bank_name, bank_account_number, bank_account_holder, card_number, wallet_id, notes, requested_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
		RETURNING id
	`
	var bankName, accountNumber, accountHolder *string
	if s.Bank != nil {
		bankName, accountNumber, accountHolder = &s.Bank.BankName, &s.Bank.AccountNumber, &s.Bank.AccountHolderName
	}
	err := r.db.QueryRow(ctx, query,
		s.RequestKey, s.SellerID, s.ShopID, s.Amount, s.PlatformFee, s.NetAmount, string(s.Status), string(s.Method),
		bankName, accountNumber, accountHolder, s.CardNumber, s.WalletID, s.Notes, s.RequestedAt,
	).Scan(&s.ID)
	if err != nil {
		zap.L().Error("can't save settlement", zap.Int64("shop_id", s.ShopID), zap.Error(err))
		return nil, err
	}
	s.UpdatedAt = s.RequestedAt
	return s, nil
}

// GetByRequestKey returns nil when no settlement was created with the key.
func (r *Repository) GetByRequestKey(ctx context.Context, key uuid.UUID) (*domain.Settlement, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlements WHERE request_key = $1`
	s, err := scanSettlement(r.db.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find settlement by request key", zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Settlement, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlements WHERE id = $1`
	return r.get(ctx, query, id)
}

// GetByIDForUpdate locks the settlement row until the surrounding transaction ends.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Settlement, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlements WHERE id = $1 FOR UPDATE`
	return r.get(ctx, query, id)
}

func (r *Repository) get(ctx context.Context, query string, id int64) (*domain.Settlement, error) {
	s, err := scanSettlement(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("can't get settlement", zap.Int64("settlement_id", id), zap.Error(err))
		return nil, err
	}
	return s, nil
}

// UpdateStatus writes the lifecycle fields of s. Amounts and payout details are
// fixed at creation and never rewritten.
func (r *Repository) UpdateStatus(ctx context.Context, s *domain.Settlement) error {
	query := `
		UPDATE settlements
		SET status = $1,
			transaction_reference = $2,
			processed_by = $3,
			approved_at = $4,
			processed_at = $5,
			completed_at = $6,
			failed_at = $7,
			cancelled_at = $8,
			failure_reason = $9,
			updated_at = $10
		WHERE id = $11
	`
	tag, err := r.db.Exec(ctx, query,
		string(s.Status),
		s.TransactionReference,
		s.ProcessedBy,
		s.ApprovedAt,
		s.ProcessedAt,
		s.CompletedAt,
		s.FailedAt,
		s.CancelledAt,
		s.FailureReason,
		s.UpdatedAt,
		s.ID,
	)
	if err != nil {
		zap.L().Error("failed to update settlement", zap.Int64("settlement_id", s.ID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repository) List(ctx context.Context, f domain.SettlementFilter) ([]domain.Settlement, int, error) {
	where, args := buildSettlementWhere(f, "requested_at")

	var total int
	countSQL := "SELECT COUNT(*) FROM settlements" + where
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		zap.L().Error("failed to count settlements", zap.Error(err))
		return nil, 0, fmt.Errorf("count: %w", err)
	}

	offset := (f.Page - 1) * f.PageSize
	querySQL := fmt.Sprintf("SELECT %s FROM settlements%s ORDER BY requested_at DESC, id DESC LIMIT $%d OFFSET $%d",
		settlementColumns, where, len(args)+1, len(args)+2)
	args = append(args, f.PageSize, offset)

	rows, err := r.db.Query(ctx, querySQL, args...)
	if err != nil {
		zap.L().Error("failed to list settlements", zap.Error(err))
		return nil, 0, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	settlements := make([]domain.Settlement, 0)
	for rows.Next() {
		s, err := scanSettlement(rows)
		if err != nil {
			zap.L().Error("failed to scan settlement row", zap.Error(err))
			return nil, 0, fmt.Errorf("scan: %w", err)
		}
		settlements = append(settlements, *s)
	}
	return settlements, total, rows.Err()
}

// SumCompleted adds up the net amount of completed settlements, filtering the
// date range on completed_at.
func (r *Repository) SumCompleted(ctx context.Context, f domain.SettlementFilter) (decimal.Decimal, error) {
	f.Status = domain.StatusCompleted
	where, args := buildSettlementWhere(f, "completed_at")

	var total decimal.Decimal
	query := "SELECT COALESCE(SUM(net_amount), 0) FROM settlements" + where
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		zap.L().Error("failed to sum completed settlements", zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}

// Totals recomputes the withdrawal side of a balance. A zero sellerID covers
// every seller that has owned the shop.
func (r *Repository) Totals(ctx context.Context, sellerID, shopID int64) (withdrawn, fees, reserved decimal.Decimal, err error) {
	query := `
		SELECT
			COALESCE(SUM(net_amount) FILTER (WHERE status = 'COMPLETED'), 0),
			COALESCE(SUM(platform_fee) FILTER (WHERE status = 'COMPLETED'), 0),
			COALESCE(SUM(amount) FILTER (WHERE status IN ('PENDING', 'APPROVED', 'PROCESSING')), 0)
		FROM settlements
		WHERE shop_id = $1 AND ($2::bigint = 0 OR seller_id = $2)
	`
	err = r.db.QueryRow(ctx, query, shopID, sellerID).Scan(&withdrawn, &fees, &reserved)
	if err != nil {
		zap.L().Error("failed to compute settlement totals", zap.Int64("shop_id", shopID), zap.Error(err))
	}
	return withdrawn, fees, reserved, err
}

func buildSettlementWhere(f domain.SettlementFilter, dateColumn string) (string, []any) {
	var clauses []string
	var args []any

	add := func(clause string, arg any) {
		args = append(args, arg)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if f.Status != "" {
		add("status = $%d", string(f.Status))
	}
	if f.SellerID != 0 {
		add("seller_id = $%d", f.SellerID)
	}
	if f.ShopID != 0 {
		add("shop_id = $%d", f.ShopID)
	}
	if f.From != nil {
		add(dateColumn+" >= $%d", *f.From)
	}
	if f.To != nil {
		add(dateColumn+" < $%d", *f.To)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func scanSettlement(row pgx.Row) (*domain.Settlement, error) {
	var s domain.Settlement
	var status, method string
	var bankName, accountNumber, accountHolder *string
	err := row.Scan(
		&s.ID,
		&s.RequestKey,
		&s.SellerID,
		&s.ShopID,
		&s.Amount,
		&s.PlatformFee,
		&s.NetAmount,
		&status,
		&method,
		&bankName,
		&accountNumber,
		&accountHolder,
		&s.CardNumber,
		&s.WalletID,
		&s.TransactionReference,
		&s.Notes,
		&s.ProcessedBy,
		&s.RequestedAt,
		&s.ApprovedAt,
		&s.ProcessedAt,
		&s.CompletedAt,
		&s.FailedAt,
		&s.CancelledAt,
		&s.FailureReason,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Status = domain.SettlementStatus(status)
	s.Method = domain.PayoutMethod(method)
	if bankName != nil || accountNumber != nil || accountHolder != nil {
		s.Bank = &domain.BankDetails{
			BankName:          deref(bankName),
			AccountNumber:     deref(accountNumber),
			AccountHolderName: deref(accountHolder),
		}
	}
	return &s, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
