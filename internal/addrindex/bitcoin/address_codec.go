package bitcoin

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/addrindex/model"
)

const witnessProgramSize = 20

type addressForm int

const (
	legacyAddress addressForm = iota
	witnessAddress
)

// AddressCodec turns addresses into the script identifiers the index is keyed by.
type AddressCodec struct {
	params NetworkParams
}

// NewAddressCodec builds a codec bound to one network profile.
func NewAddressCodec(params NetworkParams) *AddressCodec {
	return &AddressCodec{params: params}
}

// Resolve returns the script identifier of the output script paying to address.
// All failures wrap model.ErrInvalidAddress.
func (c *AddressCodec) Resolve(address string) (model.ScriptID, error) {
	script, err := c.OutputScript(address)
	if err != nil {
		return "", err
	}
	return ScriptIDFromScript(script), nil
}

// OutputScript rebuilds the output script for address.
func (c *AddressCodec) OutputScript(address string) ([]byte, error) {
	var (
		script []byte
		err    error
	)
	switch c.classify(address) {
	case witnessAddress:
		script, err = c.witnessScript(address)
	default:
		script, err = c.legacyScript(address)
	}
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", model.ErrInvalidAddress, address, err)
	}
	return script, nil
}

// classify matches the witness prefix literally. A match is final: a witness
// decode failure is never retried as base58.
func (c *AddressCodec) classify(address string) addressForm {
	if strings.HasPrefix(address, c.params.Bech32HRPSegwit) {
		return witnessAddress
	}
	return legacyAddress
}

func (c *AddressCodec) witnessScript(address string) ([]byte, error) {
	hrp, data, version, err := bech32.DecodeGeneric(address)
	if err != nil {
		return nil, fmt.Errorf("decode bech32: %w", err)
	}
	if version != bech32.Version0 {
		return nil, fmt.Errorf("unsupported bech32 checksum variant")
	}
	if hrp != c.params.Bech32HRPSegwit {
		return nil, fmt.Errorf("unexpected human-readable part %q", hrp)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("missing witness version")
	}
	if data[0] != 0 {
		return nil, fmt.Errorf("unsupported witness version %d", data[0])
	}

	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("regroup witness program: %w", err)
	}
	if len(program) != witnessProgramSize {
		return nil, fmt.Errorf("witness program is %d bytes, want %d", len(program), witnessProgramSize)
	}

	script := make([]byte, 0, 2+len(program))
	script = append(script, txscript.OP_0, txscript.OP_DATA_20)
	return append(script, program...), nil
}

// legacyScript must not go through btcutil.DecodeAddress: that routes tb1/bc1
// shaped strings to Bitcoin's bech32 decoder, and testnet P2PKH can start with tB1.
func (c *AddressCodec) legacyScript(address string) ([]byte, error) {
	payload, version, err := base58.CheckDecode(address)
	if err != nil {
		return nil, fmt.Errorf("decode base58: %w", err)
	}

	var decoded btcutil.Address
	switch version {
	case c.params.PubKeyHashAddrID:
		decoded, err = btcutil.NewAddressPubKeyHash(payload, c.params.Params)
	case c.params.ScriptHashAddrID:
		decoded, err = btcutil.NewAddressScriptHashFromHash(payload, c.params.Params)
	default:
		return nil, fmt.Errorf("version byte %d is not a %s address", version, c.params.Network)
	}
	if err != nil {
		return nil, err
	}
	return txscript.PayToAddrScript(decoded)
}

// ScriptIDFromScript hashes an output script with a single SHA-256 round.
func ScriptIDFromScript(script []byte) model.ScriptID {
	return model.ScriptID(hex.EncodeToString(chainhash.HashB(script)))
}
