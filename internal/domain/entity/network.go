package entity

// NetworkDefinition describes one network the token is deployed on.
// Definitions are compiled-in and treated as immutable values.
type NetworkDefinition struct {
	ChainID          uint64 `json:"chainId" yaml:"chainId"`
	Name             string `json:"name" yaml:"name"`
	Identifier       string `json:"identifier" yaml:"identifier"` // уникальный ключ сети, например "zksync"
	RPCURL           string `json:"rpcUrl" yaml:"rpcUrl"`
	TokenAddress     string `json:"tokenAddress" yaml:"tokenAddress"`
	SupplyMultiplier int64  `json:"supplyMultiplier" yaml:"supplyMultiplier"`
	BlockExplorerURL string `json:"blockExplorerUrl,omitempty" yaml:"blockExplorerUrl,omitempty"`
}
