package service

import (
	"context"

	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/deppfellow/portfolio-api/internal/normalize"
)

// PortfolioStore persists portfolios together with their gallery.
// A nil gallery on Update leaves the stored images untouched.
type PortfolioStore interface {
	List(ctx context.Context) ([]model.Portfolio, error)
	Get(ctx context.Context, id int64) (*model.Portfolio, error)
	Gallery(ctx context.Context, portfolioID int64) ([]model.GalleryRow, error)
	Create(ctx context.Context, p model.Portfolio, gallery []model.GalleryImage) (int64, error)
	Update(ctx context.Context, id int64, p model.Portfolio, gallery []model.GalleryImage) error
	Delete(ctx context.Context, id int64) error
}

type PortfolioService struct {
	store PortfolioStore
}

func NewPortfolioService(store PortfolioStore) *PortfolioService {
	return &PortfolioService{store: store}
}

func (s *PortfolioService) List(ctx context.Context) ([]model.Portfolio, error) {
	portfolios, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return normalize.Each(portfolios, normalize.Portfolio), nil
}

// Get returns the portfolio with its gallery in display order.
func (s *PortfolioService) Get(ctx context.Context, id int64) (*model.PortfolioDetail, error) {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.Gallery(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := normalize.PortfolioDetail(*p, rows)
	return &detail, nil
}

func (s *PortfolioService) Create(ctx context.Context, p model.PortfolioPayload) (model.WriteResult, error) {
	gallery := p.GalleryImages()
	if gallery == nil {
		gallery = []model.GalleryImage{}
	}

	id, err := s.store.Create(ctx, p.Portfolio(), gallery)
	if err != nil {
		return model.WriteResult{}, err
	}
	return model.WriteResult{ID: id, Affected: true}, nil
}

// Update replaces the portfolio row and, when the payload carries a
// gallery, every gallery image, atomically.
func (s *PortfolioService) Update(ctx context.Context, id int64, p model.PortfolioPayload) (model.WriteResult, error) {
	if err := s.store.Update(ctx, id, p.Portfolio(), p.GalleryImages()); err != nil {
		return model.WriteResult{}, err
	}
	return model.WriteResult{ID: id, Affected: true}, nil
}

func (s *PortfolioService) Delete(ctx context.Context, id int64) (model.WriteResult, error) {
	if err := s.store.Delete(ctx, id); err != nil {
		return model.WriteResult{}, err
	}
	return model.WriteResult{ID: id, Affected: true}, nil
}
