package store

import (
	"fmt"

	"github.com/fruitstand/backend/config"
)

// Open selects the store backend named by the configuration, so every
// command resolves STORE_BACKEND the same way.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StoreBackend {
	case config.BackendBolt:
		return OpenBolt(cfg.BoltFilePath())
	case config.BackendMemory:
		return NewMemory(), nil
	case config.BackendFile, "":
		return OpenFile(cfg.RecipeFilePath())
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}
}
