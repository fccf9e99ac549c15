package networkdefinition

import (
	"errors"
	"fmt"
	"strings"

	"supply_checker/internal/app/port"
	"supply_checker/internal/domain/entity"
	"supply_checker/internal/infrastructure/configloader"
)

// ErrDuplicateNetwork is returned when two configured networks share an identifier.
var ErrDuplicateNetwork = errors.New("duplicate network identifier")

// NetworkDefinitionProvider provides the networks the token supply is read from.
type NetworkDefinitionProvider struct {
	logger      port.Logger
	networkDefs []entity.NetworkDefinition
	byID        map[string]struct{}
}

// NewNetworkDefinitionProvider builds definitions from the configured network nodes.
// Configuration order is preserved. Identifiers are compared case-insensitively and a repeat is an error.
func NewNetworkDefinitionProvider(log port.Logger, nodes []configloader.NetworkNodeConfig) (*NetworkDefinitionProvider, error) {
	p := &NetworkDefinitionProvider{
		logger:      log,
		networkDefs: make([]entity.NetworkDefinition, 0, len(nodes)),
		byID:        make(map[string]struct{}, len(nodes)),
	}

	for _, node := range nodes {
		identifier := strings.ToLower(strings.TrimSpace(node.Identifier))
		if identifier == "" {
			return nil, fmt.Errorf("network %q has no identifier", node.Name)
		}
		if _, dup := p.byID[identifier]; dup {
			p.logger.Error(fmt.Sprintf("Duplicate network identifier detected: %s", identifier))
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNetwork, identifier)
		}

		def := entity.NetworkDefinition{
			ChainID:          node.ChainID,
			Name:             node.Name,
			Identifier:       identifier,
			RPCURL:           node.RPCURL,
			TokenAddress:     node.TokenAddress,
			SupplyMultiplier: node.SupplyMultiplier,
			BlockExplorerURL: node.BlockExplorerURL,
		}
		p.networkDefs = append(p.networkDefs, def)
		p.byID[identifier] = struct{}{}
	}

	if len(p.networkDefs) == 0 {
		p.logger.Warn("No networks configured. Supply aggregation will fail.")
	} else {
		p.logger.Info(fmt.Sprintf("NetworkDefinitionProvider initialized. Networks: %d", len(p.networkDefs)))
		for _, netDef := range p.networkDefs {
			p.logger.Debug(fmt.Sprintf("  - Network: %s (ID: %s, ChainID: %d, multiplier: %d)", netDef.Name, netDef.Identifier, netDef.ChainID, netDef.SupplyMultiplier))
		}
	}

	return p, nil
}

// GetAllNetworkDefinitions returns a copy of the configured definitions.
func (p *NetworkDefinitionProvider) GetAllNetworkDefinitions() []entity.NetworkDefinition {
	if p == nil {
		return []entity.NetworkDefinition{}
	}
	defsCopy := make([]entity.NetworkDefinition, len(p.networkDefs))
	copy(defsCopy, p.networkDefs)
	return defsCopy
}
