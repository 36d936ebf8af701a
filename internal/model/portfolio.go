package model

import (
	"time"

	"github.com/deppfellow/portfolio-api/internal/validation"
)

const (
	PortfolioStatusActive   = "active"
	PortfolioStatusInactive = "inactive"
)

type Portfolio struct {
	ID                int64     `json:"id" db:"id"`
	Title             string    `json:"title" db:"title"`
	Description       string    `json:"description" db:"description"`
	CoverImage        string    `json:"cover_image" db:"cover_image"`
	CoverCaption      string    `json:"cover_caption" db:"cover_caption"`
	BackgroundImage   string    `json:"background_image" db:"background_image"`
	BackgroundCaption string    `json:"background_caption" db:"background_caption"`
	Technologies      []string  `json:"technologies" db:"technologies"`
	Features          []string  `json:"features" db:"features"`
	DemoURL           string    `json:"demo_url" db:"demo_url"`
	Status            string    `json:"status" db:"status"`
	Priority          int       `json:"priority" db:"priority"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// GalleryRow is a stored gallery image. SortOrder starts at 1.
type GalleryRow struct {
	ID           int64  `db:"id"`
	PortfolioID  int64  `db:"portfolio_id"`
	ImageURL     string `db:"image_url"`
	ImageCaption string `db:"image_caption"`
	SortOrder    int    `db:"sort_order"`
}

// GalleryImage is the client-facing shape of a gallery row.
type GalleryImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// PortfolioDetail is a portfolio with its gallery attached.
type PortfolioDetail struct {
	Portfolio
	GalleryImages []GalleryImage `json:"gallery_images"`
}

type GalleryInput struct {
	URL     string `json:"url" validate:"required,max=2048"`
	Caption string `json:"caption"`
}

// PortfolioPayload is the create/update body.
//
// Gallery is a pointer so a missing key leaves the stored gallery
// untouched on update, while an empty array clears it.
type PortfolioPayload struct {
	Title             string          `json:"title" validate:"required,max=255"`
	Description       string          `json:"description"`
	CoverImage        string          `json:"cover_image"`
	CoverCaption      string          `json:"cover_caption"`
	BackgroundImage   string          `json:"background_image"`
	BackgroundCaption string          `json:"background_caption"`
	Technologies      []string        `json:"technologies"`
	Features          []string        `json:"features"`
	DemoURL           string          `json:"demo_url"`
	Status            string          `json:"status" validate:"omitempty,oneof=active inactive"`
	Priority          int             `json:"priority"`
	Gallery           *[]GalleryInput `json:"gallery" validate:"omitempty,dive"`
}

func (p PortfolioPayload) Portfolio() Portfolio {
	status := p.Status
	if status == "" {
		status = PortfolioStatusActive
	}
	return Portfolio{
		Title:             p.Title,
		Description:       p.Description,
		CoverImage:        p.CoverImage,
		CoverCaption:      p.CoverCaption,
		BackgroundImage:   p.BackgroundImage,
		BackgroundCaption: p.BackgroundCaption,
		Technologies:      nonNil(p.Technologies),
		Features:          nonNil(p.Features),
		DemoURL:           p.DemoURL,
		Status:            status,
		Priority:          p.Priority,
	}
}

// GalleryImages returns the requested gallery, or nil when the payload
// did not mention one.
func (p PortfolioPayload) GalleryImages() []GalleryImage {
	if p.Gallery == nil {
		return nil
	}
	images := make([]GalleryImage, 0, len(*p.Gallery))
	for _, g := range *p.Gallery {
		images = append(images, GalleryImage{URL: g.URL, Caption: g.Caption})
	}
	return images
}

type GetPortfolioRequest struct {
	IDParam
}

func (r *GetPortfolioRequest) Validate() error { return validation.Struct(r) }

type CreatePortfolioRequest struct {
	PortfolioPayload
}

func (r *CreatePortfolioRequest) Validate() error { return validation.Struct(r) }

type UpdatePortfolioRequest struct {
	IDParam
	PortfolioPayload
}

func (r *UpdatePortfolioRequest) Validate() error { return validation.Struct(r) }

type DeletePortfolioRequest struct {
	IDParam
}

func (r *DeletePortfolioRequest) Validate() error { return validation.Struct(r) }
