package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/addrindex/model"
)

// Tip returns the latest height the ingester recorded, 0 when nothing was indexed yet.
func (r *Repository) Tip(ctx context.Context, coin model.Coin, network model.Network) (tip model.Tip, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("tip", coin, network, err, start)
	}()

	const query = `
SELECT argMax(height, updated_at) AS tip_height
FROM addrindex_tip
WHERE coin = ? AND network = ?`

	rows, err := r.conn.Query(ctx, query, string(coin), string(network))
	if err != nil {
		return model.Tip{}, fmt.Errorf("query tip: %w", err)
	}
	defer closeRows(rows, &err)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Tip{}, fmt.Errorf("iterate tip: %w", err)
		}
		return model.Tip{}, nil
	}

	if err = rows.Scan(&tip.Height); err != nil {
		return model.Tip{}, fmt.Errorf("scan tip: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.Tip{}, fmt.Errorf("iterate tip: %w", err)
	}

	return tip, nil
}
