package client

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"supply_checker/internal/app/port"
	"supply_checker/internal/domain/entity"
	"supply_checker/internal/infrastructure/configloader"

	"github.com/patrickmn/go-cache"
)

// EVMClientProvider implements port.SupplyReaderProvider.
// Bindings are stateless, so one per network is kept for the process lifetime.
type EVMClientProvider struct {
	readers           *cache.Cache
	mu                sync.Mutex
	loggerInfo        func(msg string, args ...any)
	loggerError       func(msg string, args ...any)
	httpClient        *http.Client
	connectionTimeout time.Duration
	rpcCallTimeout    time.Duration
}

// NewEVMClientProvider creates a new EVMClientProvider.
func NewEVMClientProvider(
	cfg *configloader.Config,
	loggerInfo func(msg string, args ...any),
	loggerError func(msg string, args ...any),
) *EVMClientProvider {
	connectionTimeout := time.Duration(cfg.Performance.ConnectionTimeoutSeconds) * time.Second
	rpcCallTimeout := time.Duration(cfg.Performance.RPCCallTimeoutSeconds) * time.Second

	return &EVMClientProvider{
		readers:     cache.New(cache.NoExpiration, 0),
		loggerInfo:  loggerInfo,
		loggerError: loggerError,
		// backstop for callers that pass a context without deadline
		httpClient:        &http.Client{Timeout: connectionTimeout + rpcCallTimeout},
		connectionTimeout: connectionTimeout,
		rpcCallTimeout:    rpcCallTimeout,
	}
}

// GetReader returns the cached reader for the network or creates one.
func (p *EVMClientProvider) GetReader(netDef entity.NetworkDefinition) (port.SupplyReader, error) {
	if cached, found := p.readers.Get(netDef.Identifier); found {
		return cached.(port.SupplyReader), nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if cached, found := p.readers.Get(netDef.Identifier); found {
		return cached.(port.SupplyReader), nil
	}

	p.loggerInfo("Creating new EVM client", "network", netDef.Identifier, "rpc", netDef.RPCURL, "token", netDef.TokenAddress)
	newClient, err := NewEVMClient(netDef, p.httpClient, p.connectionTimeout, p.rpcCallTimeout)
	if err != nil {
		p.loggerError("Failed to create EVM client", "network", netDef.Identifier, "error", err)
		return nil, fmt.Errorf("failed to create EVM client for %s: %w", netDef.Identifier, err)
	}

	p.readers.Set(netDef.Identifier, newClient, cache.NoExpiration)
	p.loggerInfo("Successfully created and cached new EVM client", "network", netDef.Identifier)
	return newClient, nil
}

// CachedCount returns how many bindings are currently cached.
func (p *EVMClientProvider) CachedCount() int {
	return p.readers.ItemCount()
}

// Close closes every cached client and empties the cache.
func (p *EVMClientProvider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for key, item := range p.readers.Items() {
		if c, ok := item.Object.(*EVMClient); ok {
			c.Close()
		}
		p.readers.Delete(key)
	}
}
