package model

import "github.com/deppfellow/portfolio-api/internal/validation"

// Contact types. Grouping matches them by substring.
const (
	ContactTypeSocial       = "Social"
	ContactTypeProfessional = "Professional"
	ContactTypePortfolio    = "Portfolio"
)

const DefaultContactColor = "#000000"

type Contact struct {
	ID          int64  `json:"id" db:"id"`
	Platform    string `json:"platform" db:"platform"`
	URL         string `json:"url" db:"url"`
	Username    string `json:"username" db:"username"`
	Icon        string `json:"icon" db:"icon"`
	Color       string `json:"color" db:"color"`
	Description string `json:"description" db:"description"`
	Type        string `json:"type" db:"type"`
	Followers   int    `json:"followers" db:"followers"`
}

// ContactBuckets is the grouped shape of GET /contact.
type ContactBuckets struct {
	SocialMedia  []Contact `json:"social_media"`
	Professional []Contact `json:"professional"`
	Portfolio    []Contact `json:"portfolio"`
}

type ContactsResponse struct {
	Envelope
	TotalLinks int `json:"totalLinks"`
}

type ContactPayload struct {
	Platform    string `json:"platform" validate:"required,max=100"`
	URL         string `json:"url" validate:"required,max=2048"`
	Username    string `json:"username" validate:"max=255"`
	Icon        string `json:"icon"`
	Color       string `json:"color" validate:"max=32"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"required,oneof=Social Professional Portfolio"`
	Followers   int    `json:"followers" validate:"min=0"`
}

// Contact converts the payload into a row, applying defaults for
// omitted optional fields.
func (p ContactPayload) Contact() Contact {
	color := p.Color
	if color == "" {
		color = DefaultContactColor
	}
	return Contact{
		Platform:    p.Platform,
		URL:         p.URL,
		Username:    p.Username,
		Icon:        p.Icon,
		Color:       color,
		Description: p.Description,
		Type:        p.Type,
		Followers:   p.Followers,
	}
}

type GetContactRequest struct {
	IDParam
}

func (r *GetContactRequest) Validate() error { return validation.Struct(r) }

type CreateContactRequest struct {
	ContactPayload
}

func (r *CreateContactRequest) Validate() error { return validation.Struct(r) }

type UpdateContactRequest struct {
	IDParam
	ContactPayload
}

func (r *UpdateContactRequest) Validate() error { return validation.Struct(r) }

type DeleteContactRequest struct {
	IDParam
}

func (r *DeleteContactRequest) Validate() error { return validation.Struct(r) }
