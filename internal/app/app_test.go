package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/sellerpayout/internal/config"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWait_CleanShutdown() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestSettlementConfig() {
	cfg := &config.Config{
		HoldPeriod:       72 * time.Hour,
		AccrualDelay:     time.Hour,
		AccrualBatchSize: 50,
		PayoutFeeRate:    decimal.RequireFromString("0.015"),
		PayoutFeeFixed:   decimal.RequireFromString("0.30"),
	}

	got := settlementConfig(cfg)

	s.Equal(72*time.Hour, got.HoldPeriod)
	s.Equal(time.Hour, got.AccrualDelay)
	s.Equal(50, got.BatchSize)
	s.True(cfg.PayoutFeeRate.Equal(got.FeeRate))
	s.True(cfg.PayoutFeeFixed.Equal(got.FeeFixed))
}
