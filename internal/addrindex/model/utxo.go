package model

// Tip is the highest block the index has fully processed.
type Tip struct {
	Height uint64
}

// UtxoRecord is an unspent output as stored in the index.
// Height is 0 for outputs that are not yet confirmed.
type UtxoRecord struct {
	ScriptID ScriptID
	TxID     string
	Vout     uint32
	Value    uint64
	Height   uint64
}

// Utxo is the public view of an unspent output.
type Utxo struct {
	TxID          string `json:"txid"`
	Vout          uint32 `json:"vout"`
	Value         uint64 `json:"value"`
	Height        uint64 `json:"height"`
	Confirmations uint64 `json:"confirmations"`
}

// TransactionIDSet holds the transaction ids touching a script.
type TransactionIDSet map[string]struct{}

// Confirmations returns how many blocks, inclusive, sit on top of height.
// Unconfirmed outputs and heights above the tip yield 0.
func Confirmations(height, tipHeight uint64) uint64 {
	if height == 0 || height > tipHeight {
		return 0
	}
	return tipHeight - height + 1
}

// Public drops the storage join key and attaches confirmations relative to tipHeight.
func (r UtxoRecord) Public(tipHeight uint64) Utxo {
	return Utxo{
		TxID:          r.TxID,
		Vout:          r.Vout,
		Value:         r.Value,
		Height:        r.Height,
		Confirmations: Confirmations(r.Height, tipHeight),
	}
}
