package service

import (
	"context"
	"time"

	"supply_checker/internal/app/port"
	"supply_checker/internal/client"
	"supply_checker/internal/infrastructure/configloader"
	"supply_checker/internal/pkg/metrics"

	"github.com/shopspring/decimal"
)

// tokenPriceServiceImpl implements port.TokenPriceService.
type tokenPriceServiceImpl struct {
	marketClient client.MarketStatisticsClient
	symbol       string
	timeout      time.Duration
	logger       port.Logger
}

// NewTokenPriceService creates a new instance of tokenPriceServiceImpl.
func NewTokenPriceService(
	mc client.MarketStatisticsClient,
	l port.Logger,
	config *configloader.Config,
) port.TokenPriceService {
	s := &tokenPriceServiceImpl{
		marketClient: mc,
		symbol:       config.Price.Symbol,
		timeout:      time.Duration(config.Price.RequestTimeoutMillis) * time.Millisecond,
		logger:       l,
	}
	l.Info("TokenPriceService initialized", "symbol", s.symbol)
	return s
}

// LatestPrice implements port.TokenPriceService. Every failure is logged and reported as ok == false.
func (s *tokenPriceServiceImpl) LatestPrice(ctx context.Context) (string, bool) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	price, err := s.marketClient.GetLatestPrice(ctx, s.symbol)
	if err != nil {
		s.logger.Error("Error fetching latest price", "symbol", s.symbol, "error", err)
		metrics.ObservePriceFetch("unavailable")
		return "", false
	}

	// the price is passed through as received; parsing only checks it is numeric
	parsed, err := decimal.NewFromString(price)
	if err != nil {
		s.logger.Error("Latest price is not a number", "symbol", s.symbol, "price", price, "error", err)
		metrics.ObservePriceFetch("unavailable")
		return "", false
	}
	if parsed.IsZero() {
		s.logger.Warn("Latest price is zero, treating as unavailable", "symbol", s.symbol, "price", price)
		metrics.ObservePriceFetch("unavailable")
		return "", false
	}

	metrics.ObservePriceFetch("ok")
	return price, true
}
