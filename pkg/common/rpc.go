package common

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"
)

// NetworkStatus is what a reachable endpoint reports about itself
type NetworkStatus struct {
	URL         string
	ChainID     *big.Int
	BlockNumber uint64
}

// ProbeNetwork dials rawURL and asks for its chain id and head block. The
// caller bounds the call through ctx.
func ProbeNetwork(ctx context.Context, rawURL string) (*NetworkStatus, error) {
	client, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", rawURL, err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id from %s: %w", rawURL, err)
	}

	block, err := client.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("get block number from %s: %w", rawURL, err)
	}

	return &NetworkStatus{
		URL:         rawURL,
		ChainID:     chainID,
		BlockNumber: block,
	}, nil
}
