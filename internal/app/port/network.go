package port

import (
	"context"
	"math/big"

	"supply_checker/internal/domain/entity"
)

// SupplyReader reads the token total supply on one network.
// Implementations perform exactly one remote call per invocation.
type SupplyReader interface {
	// TotalSupply returns the raw, unscaled totalSupply of the token.
	// Failures are reported as *entity.ChainError.
	TotalSupply(ctx context.Context) (*big.Int, error)

	// Definition returns the network definition associated with this reader.
	Definition() entity.NetworkDefinition
}

// NetworkDefinitionProvider defines the interface for providing network definitions.
type NetworkDefinitionProvider interface {
	// GetAllNetworkDefinitions returns all configured network definitions in configuration order.
	GetAllNetworkDefinitions() []entity.NetworkDefinition
}

// SupplyReaderProvider hands out readers, reusing bindings per network.
type SupplyReaderProvider interface {
	GetReader(networkDefinition entity.NetworkDefinition) (SupplyReader, error)
}
