package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/addrindex/model"
)

// TransactionIDsByScriptID returns the ids of transactions touching a script at or
// above minHeight, plus the ones still unconfirmed.
func (r *Repository) TransactionIDsByScriptID(
	ctx context.Context,
	coin model.Coin,
	network model.Network,
	scriptID model.ScriptID,
	minHeight uint64,
) (ids model.TransactionIDSet, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transaction_ids_by_script_id", coin, network, err, start)
	}()

	const query = `
SELECT txid
FROM addrindex_script_txs
WHERE coin = ? AND network = ? AND script_id = CAST(? AS FixedString(64))
GROUP BY txid
HAVING max(height) >= ? OR max(height) = 0`

	rows, err := r.conn.Query(ctx, query, string(coin), string(network), string(scriptID), minHeight)
	if err != nil {
		return nil, fmt.Errorf("query transaction ids by script id: %w", err)
	}
	defer closeRows(rows, &err)

	ids = make(model.TransactionIDSet)
	for rows.Next() {
		var txid string
		if err = rows.Scan(&txid); err != nil {
			return nil, fmt.Errorf("scan transaction id: %w", err)
		}
		ids[txid] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction ids: %w", err)
	}

	return ids, nil
}
