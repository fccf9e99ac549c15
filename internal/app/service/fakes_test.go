package service

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"supply_checker/internal/app/port"
	"supply_checker/internal/domain/entity"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// recordingLogger keeps error messages so tests can assert every failure was logged.
type recordingLogger struct {
	nopLogger
	mu     sync.Mutex
	errors []string
}

func (l *recordingLogger) Error(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

func (l *recordingLogger) errorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errors)
}

type staticNetworks []entity.NetworkDefinition

func (s staticNetworks) GetAllNetworkDefinitions() []entity.NetworkDefinition {
	return append([]entity.NetworkDefinition(nil), s...)
}

type fakeReader struct {
	nd    entity.NetworkDefinition
	value *big.Int
	err   error
	delay time.Duration
	calls int32
	defs  int32
}

func (r *fakeReader) TotalSupply(ctx context.Context) (*big.Int, error) {
	atomic.AddInt32(&r.calls, 1)
	if r.delay > 0 {
		select {
		case <-time.After(r.delay):
		case <-ctx.Done():
			return nil, &entity.ChainError{Network: r.nd.Identifier, Kind: entity.NetworkUnreachable, Err: ctx.Err()}
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return r.value, nil
}

func (r *fakeReader) Definition() entity.NetworkDefinition {
	atomic.AddInt32(&r.defs, 1)
	return r.nd
}

type fakeReaderProvider struct {
	readers map[string]*fakeReader
	errs    map[string]error
}

func (p *fakeReaderProvider) GetReader(nd entity.NetworkDefinition) (port.SupplyReader, error) {
	if err, ok := p.errs[nd.Identifier]; ok {
		return nil, err
	}
	r, ok := p.readers[nd.Identifier]
	if !ok {
		return nil, errors.New("no reader for " + nd.Identifier)
	}
	return r, nil
}

type fakeMarketClient struct {
	price  string
	err    error
	delay  time.Duration
	symbol string
}

func (c *fakeMarketClient) GetLatestPrice(ctx context.Context, symbol string) (string, error) {
	c.symbol = symbol
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return c.price, c.err
}

type fakeSupplyService struct {
	report entity.SupplyReport
	err    error
	delay  time.Duration
}

func (s *fakeSupplyService) AggregateSupply(ctx context.Context) (entity.SupplyReport, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.report, s.err
}

type fakePriceService struct {
	price string
	ok    bool
	delay time.Duration
}

func (s *fakePriceService) LatestPrice(ctx context.Context) (string, bool) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.price, s.ok
}

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid big int " + s)
	}
	return v
}

func fourNetworks() staticNetworks {
	return staticNetworks{
		{ChainID: 2020, Name: "Ronin", Identifier: "ronin", SupplyMultiplier: 1},
		{ChainID: 204, Name: "opBNB", Identifier: "opbnb", SupplyMultiplier: 1},
		{ChainID: 324, Name: "zkSync", Identifier: "zksync", SupplyMultiplier: 10},
		{ChainID: 59144, Name: "Linea", Identifier: "linea", SupplyMultiplier: 1},
	}
}
