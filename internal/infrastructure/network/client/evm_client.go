package client

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"supply_checker/internal/app/port"
	"supply_checker/internal/domain/entity"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	pkgerrors "github.com/pkg/errors"
)

// EVMClient implements port.SupplyReader for an ERC-20 deployed on an EVM-compatible chain.
type EVMClient struct {
	ethClient      *ethclient.Client
	contract       *bind.BoundContract
	netDef         entity.NetworkDefinition
	rpcCallTimeout time.Duration
}

// ERC20 ABI minimal part for totalSupply
const erc20ABI = `[{"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"}]`

const totalSupplyMethod = "totalSupply"

var (
	parsedERC20ABI  abi.ABI
	parsedERC20Once sync.Once
)

func initParsedERC20ABI() {
	parsedERC20Once.Do(func() {
		var err error
		parsedERC20ABI, err = abi.JSON(strings.NewReader(erc20ABI))
		if err != nil {
			panic(fmt.Sprintf("failed to parse ERC20 ABI: %v", err))
		}
		if _, ok := parsedERC20ABI.Methods[totalSupplyMethod]; !ok {
			panic("totalSupply method not found in parsed ERC20 ABI")
		}
	})
}

// NewEVMClient dials the network RPC endpoint and binds the token contract read-only.
// httpClient may be nil, in which case the rpc package default is used.
func NewEVMClient(netDef entity.NetworkDefinition, httpClient *http.Client, connectionTimeout time.Duration, rpcCallTimeout time.Duration) (*EVMClient, error) {
	initParsedERC20ABI()

	if !common.IsHexAddress(netDef.TokenAddress) {
		return nil, &entity.ChainError{
			Network: netDef.Identifier,
			Kind:    entity.ContractMismatch,
			Err:     fmt.Errorf("invalid token address %q", netDef.TokenAddress),
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	var opts []rpc.ClientOption
	if httpClient != nil {
		opts = append(opts, rpc.WithHTTPClient(httpClient))
	}
	rpcClient, err := rpc.DialOptions(ctx, netDef.RPCURL, opts...)
	if err != nil {
		return nil, &entity.ChainError{
			Network: netDef.Identifier,
			Kind:    entity.NetworkUnreachable,
			Err:     pkgerrors.Wrapf(err, "unable to dial rpc %s", netDef.RPCURL),
		}
	}

	ethClient := ethclient.NewClient(rpcClient)
	contract := bind.NewBoundContract(common.HexToAddress(netDef.TokenAddress), parsedERC20ABI, ethClient, nil, nil)

	return &EVMClient{
		ethClient:      ethClient,
		contract:       contract,
		netDef:         netDef,
		rpcCallTimeout: rpcCallTimeout,
	}, nil
}

// TotalSupply performs a single eth_call of totalSupply() against the latest block.
func (c *EVMClient) TotalSupply(ctx context.Context) (*big.Int, error) {
	callCtx := ctx
	if c.rpcCallTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.rpcCallTimeout)
		defer cancel()
	}

	var out []interface{}
	if err := c.contract.Call(&bind.CallOpts{Context: callCtx}, &out, totalSupplyMethod); err != nil {
		return nil, c.classify(err)
	}

	if len(out) == 0 {
		return nil, &entity.ChainError{
			Network: c.netDef.Identifier,
			Kind:    entity.MalformedResponse,
			Err:     errors.New("totalSupply unpack returned no data"),
		}
	}
	supply, ok := out[0].(*big.Int)
	if !ok || supply == nil {
		return nil, &entity.ChainError{
			Network: c.netDef.Identifier,
			Kind:    entity.MalformedResponse,
			Err:     fmt.Errorf("failed to assert totalSupply result to *big.Int, got %T", out[0]),
		}
	}
	if supply.Sign() < 0 {
		return nil, &entity.ChainError{
			Network: c.netDef.Identifier,
			Kind:    entity.MalformedResponse,
			Err:     fmt.Errorf("negative totalSupply %s", supply.String()),
		}
	}
	return supply, nil
}

func (c *EVMClient) classify(err error) *entity.ChainError {
	kind := entity.NetworkUnreachable

	var rpcErr rpc.Error
	var httpErr rpc.HTTPError
	switch {
	case errors.Is(err, bind.ErrNoCode), strings.Contains(err.Error(), "no contract code"):
		kind = entity.ContractMismatch
	case errors.As(err, &httpErr):
		kind = entity.NetworkUnreachable
	case errors.As(err, &rpcErr):
		kind = entity.RPCError
	case strings.HasPrefix(err.Error(), "abi:"):
		kind = entity.MalformedResponse
	}

	return &entity.ChainError{
		Network: c.netDef.Identifier,
		Kind:    kind,
		Err:     fmt.Errorf("totalSupply call on %s failed: %w", c.netDef.TokenAddress, err),
	}
}

// Definition returns the network definition for this client.
func (c *EVMClient) Definition() entity.NetworkDefinition {
	return c.netDef
}

// Close releases the underlying RPC connection.
func (c *EVMClient) Close() {
	c.ethClient.Close()
}

var _ port.SupplyReader = (*EVMClient)(nil)
