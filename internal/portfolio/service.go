package portfolio

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"niiting-backend/internal/store"
)

var (
	ErrNotFound = errors.New("portfolio item not found")
	ErrInvalid  = errors.New("title and at least one image are required")
)

// Persister is the slice of the persistence adapter this service needs. The
// returned bool reports whether the local snapshot was written.
type Persister interface {
	SavePortfolioItem(ctx context.Context, item store.PortfolioItem) bool
	RemovePortfolioItem(ctx context.Context, id string) bool
}

type Service struct {
	store     *store.Store
	persister Persister
}

func NewService(st *store.Store, persister Persister) *Service {
	return &Service{store: st, persister: persister}
}

func validate(req UpsertRequest) error {
	if strings.TrimSpace(req.Title) == "" || len(req.ImageURLs) == 0 {
		return ErrInvalid
	}
	return nil
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (store.PortfolioItem, bool, error) {
	if err := validate(req); err != nil {
		return store.PortfolioItem{}, false, err
	}

	item := store.PortfolioItem{
		ID:          uuid.NewString(),
		Category:    strings.TrimSpace(req.Category),
		Title:       strings.TrimSpace(req.Title),
		Subtitle:    strings.TrimSpace(req.Subtitle),
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
		CreatedAt:   time.Now().UnixMilli(),
	}

	s.store.AddPortfolioItem(item)
	cached := s.persister.SavePortfolioItem(ctx, item)
	return item, cached, nil
}

// Update replaces every editable field; id, creation time, and pin state
// survive the edit.
func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (store.PortfolioItem, bool, error) {
	if err := validate(req); err != nil {
		return store.PortfolioItem{}, false, err
	}

	existing, ok := s.store.PortfolioItem(id)
	if !ok {
		return store.PortfolioItem{}, false, ErrNotFound
	}

	item := store.PortfolioItem{
		ID:          id,
		Category:    strings.TrimSpace(req.Category),
		Title:       strings.TrimSpace(req.Title),
		Subtitle:    strings.TrimSpace(req.Subtitle),
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
		CreatedAt:   existing.CreatedAt,
		Pinned:      existing.Pinned,
	}

	s.store.UpdatePortfolioItem(id, item)
	cached := s.persister.SavePortfolioItem(ctx, item)
	return item, cached, nil
}

// Delete is idempotent: removing an unknown id succeeds without mutating
// anything.
func (s *Service) Delete(ctx context.Context, id string) bool {
	if !s.store.DeletePortfolioItem(id) {
		return true
	}
	return s.persister.RemovePortfolioItem(ctx, id)
}

func (s *Service) TogglePin(ctx context.Context, id string) (store.PortfolioItem, bool, error) {
	item, ok := s.store.TogglePortfolioPin(id)
	if !ok {
		return store.PortfolioItem{}, false, ErrNotFound
	}
	cached := s.persister.SavePortfolioItem(ctx, item)
	return item, cached, nil
}

// List returns the derived public view: pinned first, then newest first,
// optionally filtered by category.
func (s *Service) List(filter ListFilter) []store.PortfolioItem {
	return s.store.SortedPortfolio(strings.TrimSpace(filter.Category))
}
