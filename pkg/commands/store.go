package commands

import (
	"github.com/3mero/anilog/pkg/store"
)

// loadStore opens the configured profile store. CLI invocations are
// one-shot, so writes are synchronous; the error from persisting surfaces
// directly on the failing command.
func loadStore() (*store.Store, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	storage, err := store.LoadStorage(cfg)
	if err != nil {
		return nil, err
	}
	return store.New(storage, store.WithSyncWrites())
}
