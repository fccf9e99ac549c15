package entity

import "fmt"

// ChainErrorKind classifies why a chain read failed.
type ChainErrorKind int

const (
	// NetworkUnreachable covers dial failures, transport errors and timeouts.
	NetworkUnreachable ChainErrorKind = iota + 1
	// RPCError is a JSON-RPC error object returned by the node.
	RPCError
	// MalformedResponse means the call output could not be decoded.
	MalformedResponse
	// ContractMismatch means the address has no code or returned no data.
	ContractMismatch
)

var chainErrorKindNames = map[ChainErrorKind]string{
	NetworkUnreachable: "network unreachable",
	RPCError:           "rpc error",
	MalformedResponse:  "malformed response",
	ContractMismatch:   "contract mismatch",
}

func (k ChainErrorKind) String() string {
	if name, ok := chainErrorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// ChainError is returned by chain readers and the supply aggregator.
type ChainError struct {
	Network string
	Kind    ChainErrorKind
	Err     error
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Network, e.Kind, e.Err)
}

func (e *ChainError) Unwrap() error {
	return e.Err
}
