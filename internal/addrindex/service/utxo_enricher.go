package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/addrindex/model"
)

// UtxoEnricher lists unspent outputs of a script with confirmations attached.
type UtxoEnricher struct {
	index   IndexRepository
	coin    model.Coin
	network model.Network
}

// NewUtxoEnricher constructs a UtxoEnricher.
func NewUtxoEnricher(index IndexRepository, coin model.Coin, network model.Network) *UtxoEnricher {
	return &UtxoEnricher{
		index:   index,
		coin:    coin,
		network: network,
	}
}

// Utxos returns outputs at or above minHeight plus unconfirmed ones. Order is unspecified.
func (e *UtxoEnricher) Utxos(ctx context.Context, scriptID model.ScriptID, minHeight uint64) ([]model.Utxo, error) {
	if !scriptID.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidScriptID, scriptID)
	}

	var (
		tip     model.Tip
		records []model.UtxoRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tip, err = e.index.Tip(gctx, e.coin, e.network)
		if err != nil {
			return model.NewUpstreamError(model.SourceIndex, fmt.Errorf("fetch index tip: %w", err))
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = e.index.UtxosByScriptID(gctx, e.coin, e.network, scriptID, minHeight)
		if err != nil {
			return model.NewUpstreamError(model.SourceIndex, fmt.Errorf("fetch utxos: %w", err))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	utxos := make([]model.Utxo, 0, len(records))
	for _, record := range records {
		utxos = append(utxos, record.Public(tip.Height))
	}
	return utxos, nil
}
