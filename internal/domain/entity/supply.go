package entity

import "math/big"

// PriceNotAvailable is reported in place of a price that could not be fetched.
const PriceNotAvailable = "Price not available"

// NetworkSupply is the raw totalSupply read from a single network.
type NetworkSupply struct {
	Network    NetworkDefinition
	Raw        *big.Int
	Multiplier int64
}

// Scaled returns Raw multiplied by the network multiplier.
func (s NetworkSupply) Scaled() *big.Int {
	if s.Raw == nil {
		return big.NewInt(0)
	}
	m := s.Multiplier
	if m <= 0 {
		m = 1
	}
	return new(big.Int).Mul(s.Raw, big.NewInt(m))
}

// TotalScaled sums the scaled supplies exactly. Supplies without a value count as zero.
func TotalScaled(supplies []NetworkSupply) *big.Int {
	total := new(big.Int)
	for _, s := range supplies {
		total.Add(total, s.Scaled())
	}
	return total
}

// SupplyReport is the aggregated supply across all networks.
type SupplyReport struct {
	Total     *big.Int
	Formatted string
	Networks  []NetworkSupply
}

// Snapshot is the response payload served by the API.
type Snapshot struct {
	Total     string `json:"total"`
	LastPrice string `json:"lastPrice"`
}
