package service

import (
	"context"
	"encoding/json"

	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/addrindex/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// IndexRepository reads the address index.
	IndexRepository interface {
		Tip(ctx context.Context, coin model.Coin, network model.Network) (model.Tip, error)
		UtxosByScriptID(ctx context.Context, coin model.Coin, network model.Network, scriptID model.ScriptID, minHeight uint64) ([]model.UtxoRecord, error)
		TransactionIDsByScriptID(ctx context.Context, coin model.Coin, network model.Network, scriptID model.ScriptID, minHeight uint64) (model.TransactionIDSet, error)
	}
	// NodeClient talks to the full node.
	NodeClient interface {
		BlockCount(ctx context.Context) (int64, error)
		RawTransaction(ctx context.Context, txid string, verbose bool) (json.RawMessage, error)
	}
)
