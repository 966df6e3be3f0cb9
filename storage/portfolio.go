package storage

import (
	"log"
	"sync"

	"github.com/EgyRem/advan/models"
)

const portfolioCollection = "portfolio"

// PortfolioStore owns the portfolio collection, a map keyed by username.
type PortfolioStore struct {
	mu  sync.Mutex
	col Collections
}

func NewPortfolioStore(col Collections) *PortfolioStore {
	return &PortfolioStore{col: col}
}

func (s *PortfolioStore) portfolios() map[string]models.Portfolio {
	portfolios := map[string]models.Portfolio{}
	if err := s.col.Read(portfolioCollection, &portfolios); err != nil {
		log.Println("error reading portfolio collection:", err)
		return map[string]models.Portfolio{}
	}
	return portfolios
}

// Get returns the user's portfolio and whether one was ever saved.
func (s *PortfolioStore) Get(username string) (models.Portfolio, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.portfolios()[username]
	return p, ok
}

// Upsert updates the description when one is provided and appends any new
// items, creating the portfolio on first use.
func (s *PortfolioStore) Upsert(username string, description *string, items []models.PortfolioItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	portfolios := s.portfolios()
	p, ok := portfolios[username]
	if !ok {
		p = models.Portfolio{Description: "", Items: []models.PortfolioItem{}}
	}
	if description != nil {
		p.Description = *description
	}
	p.Items = append(p.Items, items...)
	portfolios[username] = p

	if err := s.col.Write(portfolioCollection, portfolios); err != nil {
		log.Println("error writing portfolio collection:", err)
	}
}
