package port

import "context"

// TokenPriceService returns the last traded price of the tracked pair.
type TokenPriceService interface {
	// LatestPrice returns the price exactly as the market source reported it.
	// ok is false when the price is unavailable; errors are logged, never returned.
	LatestPrice(ctx context.Context) (price string, ok bool)
}
