package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("aggregate: %w", &ChainError{Network: "linea", Kind: NetworkUnreachable, Err: cause})

	var chainErr *ChainError
	require.True(t, errors.As(err, &chainErr))
	assert.Equal(t, NetworkUnreachable, chainErr.Kind)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "linea: network unreachable: connection refused", chainErr.Error())
}

func TestChainErrorKind_String(t *testing.T) {
	assert.Equal(t, "rpc error", RPCError.String())
	assert.Equal(t, "malformed response", MalformedResponse.String())
	assert.Equal(t, "contract mismatch", ContractMismatch.String())
	assert.Equal(t, "unknown(0)", ChainErrorKind(0).String())
}
