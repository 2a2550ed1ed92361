package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/addrindex/model"
	"github.com/goodnatureofminers/blockinsight7000-addrindex/pkg/workerpool"
)

// DefaultFetchWorkers bounds concurrent node calls per request.
const DefaultFetchWorkers = 16

// TransactionFanout fetches every transaction touching a script from the node.
type TransactionFanout struct {
	index   IndexRepository
	node    NodeClient
	coin    model.Coin
	network model.Network

	workerCount int
}

// NewTransactionFanout constructs a TransactionFanout issuing at most workerCount
// node calls at once per request.
func NewTransactionFanout(
	index IndexRepository,
	node NodeClient,
	coin model.Coin,
	network model.Network,
	workerCount int,
) *TransactionFanout {
	if workerCount <= 0 {
		workerCount = DefaultFetchWorkers
	}
	return &TransactionFanout{
		index:       index,
		node:        node,
		coin:        coin,
		network:     network,
		workerCount: workerCount,
	}
}

// Transactions maps txid to the node's answer, decoded when verbose is set.
// A single failed fetch fails the whole call and abandons the rest.
func (f *TransactionFanout) Transactions(
	ctx context.Context,
	scriptID model.ScriptID,
	minHeight uint64,
	verbose bool,
) (map[string]json.RawMessage, error) {
	if !scriptID.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidScriptID, scriptID)
	}

	ids, err := f.index.TransactionIDsByScriptID(ctx, f.coin, f.network, scriptID, minHeight)
	if err != nil {
		return nil, model.NewUpstreamError(model.SourceIndex, fmt.Errorf("fetch transaction ids: %w", err))
	}

	txids := make([]string, 0, len(ids))
	for txid := range ids {
		txids = append(txids, txid)
	}
	sort.Strings(txids)

	txs, err := workerpool.Collect(ctx, f.workerCount, txids, func(ctx context.Context, txid string) (json.RawMessage, error) {
		tx, err := f.node.RawTransaction(ctx, txid, verbose)
		if err != nil {
			return nil, model.NewUpstreamError(model.SourceNode, fmt.Errorf("fetch transaction %s: %w", txid, err))
		}
		return tx, nil
	})
	if err != nil {
		return nil, err
	}
	return txs, nil
}
