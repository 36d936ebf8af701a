package model

import "github.com/deppfellow/portfolio-api/internal/validation"

const DefaultExperienceType = "Full-time"

type Experience struct {
	ID               int64    `json:"id" db:"id"`
	Company          string   `json:"company" db:"company"`
	Position         string   `json:"position" db:"position"`
	Duration         string   `json:"duration" db:"duration"`
	StartDate        string   `json:"start_date" db:"start_date"`
	EndDate          string   `json:"end_date" db:"end_date"`
	Location         string   `json:"location" db:"location"`
	Type             string   `json:"type" db:"type"`
	Description      string   `json:"description" db:"description"`
	Responsibilities []string `json:"responsibilities" db:"responsibilities"`
	Technologies     []string `json:"technologies" db:"technologies"`
	Achievements     []string `json:"achievements" db:"achievements"`
	Current          bool     `json:"current" db:"current"`
}

type ExperiencePayload struct {
	Company          string   `json:"company" validate:"required,max=255"`
	Position         string   `json:"position" validate:"required,max=255"`
	Duration         string   `json:"duration"`
	StartDate        string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate          string   `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Location         string   `json:"location"`
	Type             string   `json:"type"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Technologies     []string `json:"technologies"`
	Achievements     []string `json:"achievements"`
	Current          bool     `json:"current"`
}

func (p ExperiencePayload) Experience() Experience {
	typ := p.Type
	if typ == "" {
		typ = DefaultExperienceType
	}
	return Experience{
		Company:          p.Company,
		Position:         p.Position,
		Duration:         p.Duration,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		Location:         p.Location,
		Type:             typ,
		Description:      p.Description,
		Responsibilities: nonNil(p.Responsibilities),
		Technologies:     nonNil(p.Technologies),
		Achievements:     nonNil(p.Achievements),
		Current:          p.Current,
	}
}

type GetExperienceRequest struct {
	IDParam
}

func (r *GetExperienceRequest) Validate() error { return validation.Struct(r) }

type CreateExperienceRequest struct {
	ExperiencePayload
}

func (r *CreateExperienceRequest) Validate() error { return validation.Struct(r) }

type UpdateExperienceRequest struct {
	IDParam
	ExperiencePayload
}

func (r *UpdateExperienceRequest) Validate() error { return validation.Struct(r) }

type DeleteExperienceRequest struct {
	IDParam
}

func (r *DeleteExperienceRequest) Validate() error { return validation.Struct(r) }
