package service

import (
	"context"

	"supply_checker/internal/app/port"
	"supply_checker/internal/domain/entity"

	"golang.org/x/sync/errgroup"
)

// SnapshotServiceImpl implements port.SnapshotService.
type SnapshotServiceImpl struct {
	supplySvc port.SupplyService
	priceSvc  port.TokenPriceService
	logger    port.Logger
}

// NewSnapshotService creates a new instance of SnapshotServiceImpl.
func NewSnapshotService(ss port.SupplyService, ps port.TokenPriceService, l port.Logger) *SnapshotServiceImpl {
	return &SnapshotServiceImpl{
		supplySvc: ss,
		priceSvc:  ps,
		logger:    l,
	}
}

// Snapshot runs the supply aggregation and the price lookup concurrently and waits for both.
func (s *SnapshotServiceImpl) Snapshot(ctx context.Context) (entity.Snapshot, error) {
	var (
		report  entity.SupplyReport
		price   string
		priceOK bool
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		report, err = s.supplySvc.AggregateSupply(ctx)
		return err
	})
	g.Go(func() error {
		price, priceOK = s.priceSvc.LatestPrice(ctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return entity.Snapshot{}, err
	}

	if !priceOK {
		price = entity.PriceNotAvailable
	}

	s.logger.Debug("Snapshot assembled", "total", report.Formatted, "lastPrice", price)
	return entity.Snapshot{
		Total:     report.Formatted,
		LastPrice: price,
	}, nil
}

var _ port.SnapshotService = (*SnapshotServiceImpl)(nil)
