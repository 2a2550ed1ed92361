package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/addrindex/model"
)

// UtxosByScriptID returns unspent outputs of a script at or above minHeight.
// Unconfirmed outputs (height 0) are always included.
func (r *Repository) UtxosByScriptID(
	ctx context.Context,
	coin model.Coin,
	network model.Network,
	scriptID model.ScriptID,
	minHeight uint64,
) (utxos []model.UtxoRecord, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("utxos_by_script_id", coin, network, err, start)
	}()

	const query = `
SELECT
	txid,
	vout,
	argMax(value, version) AS utxo_value,
	argMax(height, version) AS utxo_height
FROM addrindex_utxos
WHERE coin = ? AND network = ? AND script_id = CAST(? AS FixedString(64))
GROUP BY txid, vout
HAVING argMax(spent, version) = 0 AND (utxo_height >= ? OR utxo_height = 0)`

	rows, err := r.conn.Query(ctx, query, string(coin), string(network), string(scriptID), minHeight)
	if err != nil {
		return nil, fmt.Errorf("query utxos by script id: %w", err)
	}
	defer closeRows(rows, &err)

	for rows.Next() {
		utxo := model.UtxoRecord{ScriptID: scriptID}
		if err = rows.Scan(
			&utxo.TxID,
			&utxo.Vout,
			&utxo.Value,
			&utxo.Height,
		); err != nil {
			return nil, fmt.Errorf("scan utxo: %w", err)
		}
		utxos = append(utxos, utxo)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate utxos: %w", err)
	}

	return utxos, nil
}
