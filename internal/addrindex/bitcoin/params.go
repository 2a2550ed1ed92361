// Package bitcoin adapts Mangacoin address formats and the node RPC to the address index.
package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/addrindex/model"
)

const messagePrefix = "\x19Mangacoin Signed Message:\n"

// NetworkParams couples chaincfg parameters with the values btcd has no field for.
type NetworkParams struct {
	*chaincfg.Params
	Network       model.Network
	MessagePrefix string
}

var mainNetParams = chaincfg.Params{
	Name:             "mangacoin-mainnet",
	PubKeyHashAddrID: 110,
	ScriptHashAddrID: 97,
	PrivateKeyID:     176,
	HDPublicKeyID:    [4]byte{0x04, 0x88, 0xb2, 0x1e},
	HDPrivateKeyID:   [4]byte{0x04, 0x88, 0xad, 0xe4},
	Bech32HRPSegwit:  "manga",
}

// testNetParams is shared by testnet and regtest.
var testNetParams = chaincfg.Params{
	Name:             "mangacoin-testnet",
	PubKeyHashAddrID: 127,
	ScriptHashAddrID: 132,
	PrivateKeyID:     239,
	HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xcf},
	HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94},
	Bech32HRPSegwit:  "tmanga",
}

// MainNetParams contains the Mangacoin mainnet profile.
var MainNetParams = NetworkParams{
	Params:        &mainNetParams,
	Network:       model.Mainnet,
	MessagePrefix: messagePrefix,
}

// TestNetParams contains the Mangacoin testnet profile.
var TestNetParams = NetworkParams{
	Params:        &testNetParams,
	Network:       model.Testnet,
	MessagePrefix: messagePrefix,
}

// RegTestParams reuses the testnet version bytes and bech32 prefix.
var RegTestParams = NetworkParams{
	Params:        &testNetParams,
	Network:       model.Regtest,
	MessagePrefix: messagePrefix,
}

// ParamsForNetwork selects the profile for a configured network name.
func ParamsForNetwork(network model.Network) (NetworkParams, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet":
		return MainNetParams, nil
	case "test", "testnet":
		return TestNetParams, nil
	case "regtest":
		return RegTestParams, nil
	default:
		return NetworkParams{}, fmt.Errorf("unsupported network %q", network)
	}
}
