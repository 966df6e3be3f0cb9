package storage

import (
	"log"
	"sync"

	"github.com/EgyRem/advan/models"
)

const wallpaperCollection = "wallpaper"

// WallpaperStore owns the single current-wallpaper pointer.
type WallpaperStore struct {
	mu  sync.Mutex
	col Collections
}

func NewWallpaperStore(col Collections) *WallpaperStore {
	return &WallpaperStore{col: col}
}

// Current returns the pointer; both fields are nil until a wallpaper is set.
func (s *WallpaperStore) Current() models.Wallpaper {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := models.Wallpaper{}
	if err := s.col.Read(wallpaperCollection, &w); err != nil {
		log.Println("error reading wallpaper collection:", err)
		return models.Wallpaper{}
	}
	return w
}

// Set replaces the pointer. Pass nils to reset it.
func (s *WallpaperStore) Set(path, fileType *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.col.Write(wallpaperCollection, models.Wallpaper{Path: path, Type: fileType}); err != nil {
		log.Println("error writing wallpaper collection:", err)
	}
}
