package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/portfolio-api/internal/database"
	"github.com/deppfellow/portfolio-api/internal/model"
	"github.com/jackc/pgx/v5"
)

const portfolioColumns = `id, title, description, cover_image, cover_caption, background_image,
	background_caption, technologies, features, demo_url, status, priority, created_at`

const galleryColumns = `id, portfolio_id, image_url, image_caption, sort_order`

// PortfolioRepository stores portfolios and their galleries. Every write
// touching both tables runs in one transaction.
type PortfolioRepository struct {
	db database.DBTX
}

func NewPortfolioRepository(db database.DBTX) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// List returns portfolios by priority ascending, newest first within a priority.
func (r *PortfolioRepository) List(ctx context.Context) ([]model.Portfolio, error) {
	rows, err := r.db.Query(ctx, `SELECT `+portfolioColumns+` FROM portfolios ORDER BY priority ASC, created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	return collectAll[model.Portfolio](rows, "portfolios")
}

func (r *PortfolioRepository) Get(ctx context.Context, id int64) (*model.Portfolio, error) {
	rows, err := r.db.Query(ctx, `SELECT `+portfolioColumns+` FROM portfolios WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	return collectOne[model.Portfolio](rows, "portfolios", id)
}

// Gallery returns the gallery rows of a portfolio by sort_order.
func (r *PortfolioRepository) Gallery(ctx context.Context, portfolioID int64) ([]model.GalleryRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+galleryColumns+` FROM portfolio_gallery
		WHERE portfolio_id = $1
		ORDER BY sort_order ASC, id ASC`, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio gallery: %w", err)
	}
	return collectAll[model.GalleryRow](rows, "portfolio_gallery")
}

// Create inserts the portfolio and its gallery atomically.
func (r *PortfolioRepository) Create(ctx context.Context, p model.Portfolio, gallery []model.GalleryImage) (int64, error) {
	var id int64
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO portfolios (title, description, cover_image, cover_caption, background_image,
				background_caption, technologies, features, demo_url, status, priority)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id`,
			p.Title, p.Description, p.CoverImage, p.CoverCaption, p.BackgroundImage,
			p.BackgroundCaption, p.Technologies, p.Features, p.DemoURL, p.Status, p.Priority,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to create portfolio: %w", err)
		}
		return insertGallery(ctx, tx, id, gallery)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Update rewrites the portfolio row. A nil gallery leaves the stored
// gallery untouched; any other value replaces it entirely.
func (r *PortfolioRepository) Update(ctx context.Context, id int64, p model.Portfolio, gallery []model.GalleryImage) error {
	return database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE portfolios
			SET title = $1, description = $2, cover_image = $3, cover_caption = $4,
			    background_image = $5, background_caption = $6, technologies = $7,
			    features = $8, demo_url = $9, status = $10, priority = $11
			WHERE id = $12`,
			p.Title, p.Description, p.CoverImage, p.CoverCaption, p.BackgroundImage,
			p.BackgroundCaption, p.Technologies, p.Features, p.DemoURL, p.Status, p.Priority, id,
		)
		if err != nil {
			return fmt.Errorf("failed to update portfolio: %w", err)
		}
		if err := expectAffected(tag, "portfolios", id); err != nil {
			return err
		}

		if gallery == nil {
			return nil
		}
		if _, err := tx.Exec(ctx, `DELETE FROM portfolio_gallery WHERE portfolio_id = $1`, id); err != nil {
			return fmt.Errorf("failed to clear portfolio gallery: %w", err)
		}
		return insertGallery(ctx, tx, id, gallery)
	})
}

// Delete removes the gallery and the portfolio together.
func (r *PortfolioRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM portfolio_gallery WHERE portfolio_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete portfolio gallery: %w", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM portfolios WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete portfolio: %w", err)
		}
		return expectAffected(tag, "portfolios", id)
	})
}

// insertGallery writes images with sort_order 1..N in slice order.
func insertGallery(ctx context.Context, tx pgx.Tx, portfolioID int64, gallery []model.GalleryImage) error {
	for i, img := range gallery {
		_, err := tx.Exec(ctx, `
			INSERT INTO portfolio_gallery (portfolio_id, image_url, image_caption, sort_order)
			VALUES ($1, $2, $3, $4)`,
			portfolioID, img.URL, img.Caption, i+1,
		)
		if err != nil {
			return fmt.Errorf("failed to insert gallery image %d: %w", i+1, err)
		}
	}
	return nil
}
