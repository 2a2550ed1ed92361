package transport

import (
	"context"
	"encoding/json"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-addrindex/internal/addrindex/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	StatusService interface {
		Status(ctx context.Context) (*model.StatusReport, error)
	}
	UtxoService interface {
		Utxos(ctx context.Context, scriptID model.ScriptID, minHeight uint64) ([]model.Utxo, error)
	}
	TransactionService interface {
		Transactions(ctx context.Context, scriptID model.ScriptID, minHeight uint64, verbose bool) (map[string]json.RawMessage, error)
	}
	AddressResolver interface {
		Resolve(address string) (model.ScriptID, error)
	}
	HTTPMetrics interface {
		Observe(route, method string, code int, started time.Time)
	}
)
