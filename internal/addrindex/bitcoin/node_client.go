package bitcoin

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/ratelimit"
)

const getRawTransactionMethod = "getrawtransaction"

// NodeClient wraps the node RPC with metrics, rate limiting and context abandonment.
// btcd calls cannot be interrupted, so a canceled caller returns at once and the
// call finishes in the background.
type NodeClient struct {
	client     RPCClient
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
}

// NewNodeClient constructs a node client issuing at most rps calls per second (0 = unlimited).
func NewNodeClient(client RPCClient, rpcMetrics RPCMetrics, rps int) *NodeClient {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &NodeClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
	}
}

// BlockCount returns the node's chain height.
func (c *NodeClient) BlockCount(ctx context.Context) (int64, error) {
	return observe(ctx, c, "get_block_count", c.client.GetBlockCount)
}

// RawTransaction fetches a transaction by id, decoded when verbose is set and
// as a hex string otherwise.
func (c *NodeClient) RawTransaction(ctx context.Context, txid string, verbose bool) (json.RawMessage, error) {
	params, err := marshalParams(txid, verbose)
	if err != nil {
		return nil, err
	}
	return observe(ctx, c, "get_raw_transaction", func() (json.RawMessage, error) {
		return c.client.RawRequest(getRawTransactionMethod, params)
	})
}

type callResult[T any] struct {
	value T
	err   error
}

func observe[T any](ctx context.Context, c *NodeClient, operation string, call func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	c.limiter.Take()
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	done := make(chan callResult[T], 1)
	go func() {
		started := time.Now()
		value, err := call()
		c.rpcMetrics.Observe(operation, err, started)
		done <- callResult[T]{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-done:
		return res.value, res.err
	}
}

func marshalParams(values ...any) ([]json.RawMessage, error) {
	params := make([]json.RawMessage, 0, len(values))
	for _, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshal rpc param: %w", err)
		}
		params = append(params, raw)
	}
	return params, nil
}
