package networkdefinition

import (
	"errors"
	"testing"

	"supply_checker/internal/infrastructure/configloader"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func TestNetworkDefinitionProvider_DefaultNetworks(t *testing.T) {
	p, err := NewNetworkDefinitionProvider(nopLogger{}, configloader.Default().Networks)
	require.NoError(t, err)

	defs := p.GetAllNetworkDefinitions()
	require.Len(t, defs, 4)
	assert.Equal(t, "ronin", defs[0].Identifier)
	assert.Equal(t, "opbnb", defs[1].Identifier)
	assert.Equal(t, "zksync", defs[2].Identifier)
	assert.Equal(t, "linea", defs[3].Identifier)

	assert.Equal(t, int64(10), defs[2].SupplyMultiplier)
	assert.Equal(t, uint64(324), defs[2].ChainID)
	assert.Equal(t, "https://mainnet.era.zksync.io", defs[2].RPCURL)
}

func TestNetworkDefinitionProvider_ReturnsCopy(t *testing.T) {
	p, err := NewNetworkDefinitionProvider(nopLogger{}, configloader.Default().Networks)
	require.NoError(t, err)

	defs := p.GetAllNetworkDefinitions()
	defs[0].SupplyMultiplier = 99

	again := p.GetAllNetworkDefinitions()
	assert.Equal(t, int64(1), again[0].SupplyMultiplier)
}

func TestNetworkDefinitionProvider_NormalizesIdentifiers(t *testing.T) {
	p, err := NewNetworkDefinitionProvider(nopLogger{}, []configloader.NetworkNodeConfig{
		{Name: "First", Identifier: " ZkSync ", ChainID: 324, SupplyMultiplier: 10},
		{Name: "Second", Identifier: "linea", ChainID: 59144, SupplyMultiplier: 1},
	})
	require.NoError(t, err)

	defs := p.GetAllNetworkDefinitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "zksync", defs[0].Identifier)
	assert.Equal(t, "linea", defs[1].Identifier)
}

func TestNetworkDefinitionProvider_RejectsDuplicates(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
	}{
		{"same case", []string{"a", "a"}},
		{"case only", []string{"a", "A"}},
		{"later duplicate", []string{"a", "b", "c", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := make([]configloader.NetworkNodeConfig, 0, len(tt.ids))
			for i, id := range tt.ids {
				nodes = append(nodes, configloader.NetworkNodeConfig{Name: id, Identifier: id, ChainID: uint64(i + 1), SupplyMultiplier: 1})
			}

			p, err := NewNetworkDefinitionProvider(nopLogger{}, nodes)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDuplicateNetwork))
			assert.Nil(t, p)
		})
	}
}

func TestNetworkDefinitionProvider_RejectsMissingIdentifier(t *testing.T) {
	_, err := NewNetworkDefinitionProvider(nopLogger{}, []configloader.NetworkNodeConfig{{Name: "Anonymous", Identifier: "  "}})
	require.Error(t, err)
}

func TestNetworkDefinitionProvider_Nil(t *testing.T) {
	var p *NetworkDefinitionProvider
	assert.Empty(t, p.GetAllNetworkDefinitions())
}
