package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/addrindex/model"
	"github.com/goodnatureofminers/blockinsight7000-addrindex/pkg/safe"
)

// StatusAggregator compares the index tip with the node's chain height.
type StatusAggregator struct {
	index   IndexRepository
	node    NodeClient
	coin    model.Coin
	network model.Network
}

// NewStatusAggregator constructs a StatusAggregator.
func NewStatusAggregator(index IndexRepository, node NodeClient, coin model.Coin, network model.Network) *StatusAggregator {
	return &StatusAggregator{
		index:   index,
		node:    node,
		coin:    coin,
		network: network,
	}
}

// Status queries both sources concurrently. Either failure fails the report.
func (s *StatusAggregator) Status(ctx context.Context) (*model.StatusReport, error) {
	var (
		tip        model.Tip
		chainBlock int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tip, err = s.index.Tip(gctx, s.coin, s.network)
		if err != nil {
			return model.NewUpstreamError(model.SourceIndex, fmt.Errorf("fetch index tip: %w", err))
		}
		return nil
	})
	g.Go(func() error {
		var err error
		chainBlock, err = s.node.BlockCount(gctx)
		if err != nil {
			return model.NewUpstreamError(model.SourceNode, fmt.Errorf("fetch block count: %w", err))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	indexBlock, err := safe.Int64(tip.Height)
	if err != nil {
		return nil, model.NewUpstreamError(model.SourceIndex, fmt.Errorf("index tip height: %w", err))
	}

	report := model.NewStatusReport(s.network, chainBlock, indexBlock)
	return &report, nil
}
