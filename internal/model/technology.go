package model

import "github.com/deppfellow/portfolio-api/internal/validation"

// Usage levels, most frequent first.
const (
	UsageDaily   = "Daily"
	UsageWeekly  = "Weekly"
	UsageMonthly = "Monthly"
	UsageRarely  = "Rarely"
)

var UsageLevels = []string{UsageDaily, UsageWeekly, UsageMonthly, UsageRarely}

type Technology struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Category    string `json:"category" db:"category"`
	Description string `json:"description" db:"description"`
	UsageLevel  string `json:"usage_level" db:"usage_level"`
	Icon        string `json:"icon" db:"icon"`
}

type TechnologyBuckets struct {
	Tools          []Technology `json:"tools"`
	Libraries      []Technology `json:"libraries"`
	Testing        []Technology `json:"testing"`
	VersionControl []Technology `json:"version_control"`
	Deployment     []Technology `json:"deployment"`
}

type TechnologiesResponse struct {
	Envelope
	TotalTechnologies int `json:"totalTechnologies"`
}

// TechnologyPayload accepts the level as usage_level or, from older
// admin clients, as usage.
type TechnologyPayload struct {
	Name        string `json:"name" validate:"required,max=100"`
	Category    string `json:"category" validate:"required,max=100"`
	Description string `json:"description"`
	UsageLevel  string `json:"usage_level" validate:"omitempty,oneof=Daily Weekly Monthly Rarely"`
	Usage       string `json:"usage" validate:"omitempty,oneof=Daily Weekly Monthly Rarely"`
	Icon        string `json:"icon"`
}

func (p TechnologyPayload) Technology() Technology {
	level := p.UsageLevel
	if level == "" {
		level = p.Usage
	}
	if level == "" {
		level = UsageMonthly
	}
	return Technology{
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		UsageLevel:  level,
		Icon:        p.Icon,
	}
}

type GetTechnologyRequest struct {
	IDParam
}

func (r *GetTechnologyRequest) Validate() error { return validation.Struct(r) }

type CreateTechnologyRequest struct {
	TechnologyPayload
}

func (r *CreateTechnologyRequest) Validate() error { return validation.Struct(r) }

type UpdateTechnologyRequest struct {
	IDParam
	TechnologyPayload
}

func (r *UpdateTechnologyRequest) Validate() error { return validation.Struct(r) }

type DeleteTechnologyRequest struct {
	IDParam
}

func (r *DeleteTechnologyRequest) Validate() error { return validation.Struct(r) }
