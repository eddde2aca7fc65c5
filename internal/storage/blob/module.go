package blob

import (
	"go.uber.org/fx"

	"github.com/SanTaClouse/verduleria-luna/internal/config"
)

// Module wires the blob store backing the demo data.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Config *config.Config
}

func newStore(p storeParams) (Store, error) {
	if p.Config.StorePath == "" {
		return NewMemStore(), nil
	}
	return OpenFileStore(p.Config.StorePath)
}
