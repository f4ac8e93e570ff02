package common

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Account describes one signing key of a network without exposing it
type Account struct {
	Index   int
	Masked  string
	Address common.Address
	// Err is set when the key is not a usable secp256k1 private key
	Err error
}

// DeriveAddress returns the address controlled by a hex private key, with or without 0x
func DeriveAddress(privateKeyHex string) (common.Address, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// DeriveAccounts lists the accounts of network, or of the default network when
// network is empty. Bad keys are reported per account.
func DeriveAccounts(cfg *RootConfig, network string) ([]Account, error) {
	if network == "" {
		network = cfg.DefaultNetwork
	}
	n, ok := cfg.Networks[network]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNetwork, network)
	}

	accounts := make([]Account, 0, len(n.Accounts))
	for i, key := range n.Accounts {
		addr, err := DeriveAddress(key)
		accounts = append(accounts, Account{
			Index:   i,
			Masked:  MaskSecret(key),
			Address: addr,
			Err:     err,
		})
	}
	return accounts, nil
}
