package port

import (
	"context"

	"supply_checker/internal/domain/entity"
)

// SupplyService aggregates the supply across all networks.
type SupplyService interface {
	// AggregateSupply reads every network concurrently and sums the scaled supplies.
	// It fails as a whole when any network fails.
	AggregateSupply(ctx context.Context) (entity.SupplyReport, error)
}

// SnapshotService builds the API payload.
type SnapshotService interface {
	// Snapshot runs the supply aggregation and the price lookup concurrently.
	// Only a supply failure is returned as an error.
	Snapshot(ctx context.Context) (entity.Snapshot, error)
}
