package model

import "github.com/deppfellow/portfolio-api/internal/validation"

type Skill struct {
	ID             int64    `json:"id" db:"id"`
	Name           string   `json:"name" db:"name"`
	Category       string   `json:"category" db:"category"`
	Level          int      `json:"level" db:"level"`
	Timeline       string   `json:"timeline" db:"timeline"`
	StartYear      string   `json:"start_year" db:"start_year"`
	Description    string   `json:"description" db:"description"`
	Projects       int      `json:"projects" db:"projects"`
	Certifications []string `json:"certifications" db:"certifications"`
	Icon           string   `json:"icon" db:"icon"`
}

type SkillBuckets struct {
	Frontend []Skill `json:"frontend"`
	Backend  []Skill `json:"backend"`
	Database []Skill `json:"database"`
	DevOps   []Skill `json:"devops"`
}

// SkillsResponse carries the grouped skills plus aggregates computed over
// the full, ungrouped set.
type SkillsResponse struct {
	Envelope
	TotalSkills  int `json:"totalSkills"`
	AverageLevel int `json:"averageLevel"`
}

type SkillPayload struct {
	Name           string   `json:"name" validate:"required,max=100"`
	Category       string   `json:"category" validate:"required,max=100"`
	Level          int      `json:"level" validate:"min=0,max=100"`
	Timeline       string   `json:"timeline"`
	StartYear      string   `json:"start_year" validate:"max=16"`
	Description    string   `json:"description"`
	Projects       int      `json:"projects" validate:"min=0"`
	Certifications []string `json:"certifications" validate:"omitempty,dive,required"`
	Icon           string   `json:"icon"`
}

func (p SkillPayload) Skill() Skill {
	return Skill{
		Name:           p.Name,
		Category:       p.Category,
		Level:          p.Level,
		Timeline:       p.Timeline,
		StartYear:      p.StartYear,
		Description:    p.Description,
		Projects:       p.Projects,
		Certifications: nonNil(p.Certifications),
		Icon:           p.Icon,
	}
}

type GetSkillRequest struct {
	IDParam
}

func (r *GetSkillRequest) Validate() error { return validation.Struct(r) }

type CreateSkillRequest struct {
	SkillPayload
}

func (r *CreateSkillRequest) Validate() error { return validation.Struct(r) }

type UpdateSkillRequest struct {
	IDParam
	SkillPayload
}

func (r *UpdateSkillRequest) Validate() error { return validation.Struct(r) }

type DeleteSkillRequest struct {
	IDParam
}

func (r *DeleteSkillRequest) Validate() error { return validation.Struct(r) }

// nonNil keeps list columns from being written as NULL.
func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
