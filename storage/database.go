package storage

import (
	"log"
	"os"
)

// Package-level stores, initialized once at startup. Handlers reach them the
// same way everything here has always been reached: through the storage
// package, never through a privately cached collection.
var (
	Chats      *ChatStore
	Users      *UserStore
	Portfolios *PortfolioStore
	Photos     *PhotoStore
	Wallpapers *WallpaperStore
)

// Initialize wires every store to the given collections backend.
func Initialize(col Collections) {
	Chats = NewChatStore(col)
	Users = NewUserStore(col)
	Portfolios = NewPortfolioStore(col)
	Photos = NewPhotoStore(col)
	Wallpapers = NewWallpaperStore(col)
}

// InitializeBackend picks the collections backend by name: "file" (default),
// "memory" for the ephemeral deployment variant, or "badger" for the
// embedded KV store.
func InitializeBackend(backend, dataDir string) Collections {
	switch backend {
	case "memory":
		return NewMemoryCollections()
	case "badger":
		db, err := OpenBadger(dataDir)
		if err != nil {
			log.Panic("error opening badger db: " + err.Error())
		}
		return NewBadgerCollections(db)
	default:
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			log.Println("warning: could not create data dir:", err)
		}
		return NewFileCollections(dataDir)
	}
}
