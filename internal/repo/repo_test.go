package repo

import (
	"testing"

	"github.com/GlebRadaev/sellerpayout/internal/pg"
	balancerepo "github.com/GlebRadaev/sellerpayout/internal/repo/balance-repo"
	ledgerrepo "github.com/GlebRadaev/sellerpayout/internal/repo/ledger-repo"
	orderrepo "github.com/GlebRadaev/sellerpayout/internal/repo/order-repo"
	settlementrepo "github.com/GlebRadaev/sellerpayout/internal/repo/settlement-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.OrderRepo)
	assert.NotNil(t, repo.LedgerRepo)
	assert.NotNil(t, repo.SettlementRepo)
	assert.NotNil(t, repo.BalanceRepo)
	assert.NotNil(t, repo.TxManager)

	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &settlementrepo.Repository{}, repo.SettlementRepo)
	assert.IsType(t, &balancerepo.Repository{}, repo.BalanceRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
