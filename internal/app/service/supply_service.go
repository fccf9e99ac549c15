package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"supply_checker/internal/app/port"
	"supply_checker/internal/domain/entity"
	"supply_checker/internal/pkg/metrics"
	"supply_checker/internal/pkg/utils"

	"golang.org/x/sync/errgroup"
)

// ErrNoNetworks is returned when there is nothing to aggregate.
var ErrNoNetworks = errors.New("no networks configured")

// SupplyServiceImpl implements port.SupplyService.
type SupplyServiceImpl struct {
	networkProvider port.NetworkDefinitionProvider
	readerProvider  port.SupplyReaderProvider
	logger          port.Logger
}

// NewSupplyService creates a new instance of SupplyServiceImpl.
func NewSupplyService(
	np port.NetworkDefinitionProvider,
	rp port.SupplyReaderProvider,
	l port.Logger,
) *SupplyServiceImpl {
	return &SupplyServiceImpl{
		networkProvider: np,
		readerProvider:  rp,
		logger:          l,
	}
}

// AggregateSupply reads totalSupply on every network concurrently and waits for all of them.
// If any read fails the aggregation fails; the error of the first failing network in
// configuration order is returned and every failure is logged.
func (s *SupplyServiceImpl) AggregateSupply(ctx context.Context) (entity.SupplyReport, error) {
	networks := s.networkProvider.GetAllNetworkDefinitions()
	if len(networks) == 0 {
		return entity.SupplyReport{}, ErrNoNetworks
	}

	supplies := make([]entity.NetworkSupply, len(networks))
	errs := make([]error, len(networks))

	var g errgroup.Group
	for i, nd := range networks {
		g.Go(func() error {
			supply, err := s.readNetwork(ctx, nd)
			if err != nil {
				errs[i] = err
				return err
			}
			supplies[i] = entity.NetworkSupply{
				Network:    nd,
				Raw:        supply,
				Multiplier: nd.SupplyMultiplier,
			}
			return nil
		})
	}
	// errgroup.Group without a context never cancels siblings, so Wait is a join-all.
	_ = g.Wait()

	var firstErr error
	for i, err := range errs {
		if err == nil {
			continue
		}
		s.logger.Error("Failed to read total supply", "network", networks[i].Identifier, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return entity.SupplyReport{}, firstErr
	}

	for _, sup := range supplies {
		s.logger.Debug("Network supply", "network", sup.Network.Identifier, "raw", sup.Raw.String(), "scaled", sup.Scaled().String())
	}

	total := entity.TotalScaled(supplies)
	formatted, err := utils.FormatBigInt(total, 0)
	if err != nil {
		return entity.SupplyReport{}, fmt.Errorf("failed to format total supply: %w", err)
	}

	return entity.SupplyReport{
		Total:     total,
		Formatted: formatted,
		Networks:  supplies,
	}, nil
}

func (s *SupplyServiceImpl) readNetwork(ctx context.Context, nd entity.NetworkDefinition) (*big.Int, error) {
	started := time.Now()

	reader, err := s.readerProvider.GetReader(nd)
	if err != nil {
		var chainErr *entity.ChainError
		if !errors.As(err, &chainErr) {
			err = &entity.ChainError{Network: nd.Identifier, Kind: entity.NetworkUnreachable, Err: err}
		}
		metrics.ObserveRPCCall(nd.Identifier, started, err)
		return nil, err
	}

	s.logger.Debug("Reading total supply", "network", reader.Definition().Name, "chainId", reader.Definition().ChainID)
	supply, err := reader.TotalSupply(ctx)
	metrics.ObserveRPCCall(nd.Identifier, started, err)
	if err != nil {
		return nil, err
	}
	if supply == nil {
		return nil, &entity.ChainError{Network: nd.Identifier, Kind: entity.MalformedResponse, Err: errors.New("reader returned nil supply")}
	}
	return supply, nil
}

var _ port.SupplyService = (*SupplyServiceImpl)(nil)
