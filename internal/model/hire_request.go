package model

import (
	"time"

	"github.com/deppfellow/portfolio-api/internal/validation"
)

const (
	HireStatusNew          = "new"
	HireStatusContacted    = "contacted"
	HireStatusInDiscussion = "in_discussion"
	HireStatusAccepted     = "accepted"
	HireStatusDeclined     = "declined"

	DefaultContactMethod = "email"
)

const HireRequestThankYou = "Your hiring request has been submitted successfully! I will get back to you soon."

type HireRequest struct {
	ID            int64      `json:"id" db:"id"`
	Name          string     `json:"name" db:"name"`
	Email         string     `json:"email" db:"email"`
	Company       string     `json:"company" db:"company"`
	Position      string     `json:"position" db:"position"`
	Message       string     `json:"message" db:"message"`
	Budget        string     `json:"budget" db:"budget"`
	Timeline      string     `json:"timeline" db:"timeline"`
	ContactMethod string     `json:"contact_method" db:"contact_method"`
	Status        string     `json:"status" db:"status"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at" db:"updated_at"`
}

type CreateHireRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Company       string `json:"company" validate:"max=255"`
	Position      string `json:"position" validate:"max=255"`
	Message       string `json:"message" validate:"required,max=5000"`
	Budget        string `json:"budget" validate:"max=100"`
	Timeline      string `json:"timeline" validate:"max=100"`
	ContactMethod string `json:"contact_method" validate:"max=50"`
}

func (r *CreateHireRequest) Validate() error { return validation.Struct(r) }

func (r CreateHireRequest) HireRequest() HireRequest {
	method := r.ContactMethod
	if method == "" {
		method = DefaultContactMethod
	}
	return HireRequest{
		Name:          r.Name,
		Email:         r.Email,
		Company:       r.Company,
		Position:      r.Position,
		Message:       r.Message,
		Budget:        r.Budget,
		Timeline:      r.Timeline,
		ContactMethod: method,
		Status:        HireStatusNew,
	}
}

type GetHireRequestRequest struct {
	IDParam
}

func (r *GetHireRequestRequest) Validate() error { return validation.Struct(r) }

type UpdateHireStatusRequest struct {
	IDParam
	Status string `json:"status" validate:"required,oneof=new contacted in_discussion accepted declined"`
}

func (r *UpdateHireStatusRequest) Validate() error { return validation.Struct(r) }

// ListRequest is used by collection endpoints that take no input.
type ListRequest struct{}

func (r *ListRequest) Validate() error { return nil }
