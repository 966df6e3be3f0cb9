package storage

import (
	"log"
	"sync"

	"github.com/EgyRem/advan/models"
)

const photosCollection = "photos"

// PhotoStore owns the photo gallery collection.
type PhotoStore struct {
	mu  sync.Mutex
	col Collections
}

func NewPhotoStore(col Collections) *PhotoStore {
	return &PhotoStore{col: col}
}

func (s *PhotoStore) photos() []models.Photo {
	photos := []models.Photo{}
	if err := s.col.Read(photosCollection, &photos); err != nil {
		log.Println("error reading photos collection:", err)
		return []models.Photo{}
	}
	return photos
}

// List returns all gallery photos in upload order.
func (s *PhotoStore) List() []models.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.photos()
}

// Add assigns the next sequential id, stores the photo and returns it.
func (s *PhotoStore) Add(photo models.Photo) models.Photo {
	s.mu.Lock()
	defer s.mu.Unlock()

	photos := s.photos()
	photo.ID = len(photos) + 1
	photos = append(photos, photo)
	if err := s.col.Write(photosCollection, photos); err != nil {
		log.Println("error writing photos collection:", err)
	}
	return photo
}
