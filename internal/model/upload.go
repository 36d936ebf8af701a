package model

import "github.com/deppfellow/portfolio-api/internal/validation"

// Upload modes.
const (
	ModeProcessed   = "processed"
	ModeDescriptive = "descriptive"
)

type UploadedFile struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
}

// Variant describes one derived image. In descriptive mode URL is the
// original file and Style tells the client how to render it.
type Variant struct {
	URL       string            `json:"url"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Style     map[string]string `json:"style,omitempty"`
	ClassName string            `json:"className,omitempty"`
}

// RoundedUpload is returned by the rounded upload endpoints.
//
// Failed lists size names whose variant could not be produced; those names
// are absent from Sizes.
type RoundedUpload struct {
	Original     string             `json:"original"`
	Rounded      *Variant           `json:"rounded,omitempty"`
	Sizes        map[string]Variant `json:"sizes"`
	Failed       []string           `json:"failed"`
	OriginalName string             `json:"originalName"`
	FileSize     int64              `json:"fileSize"`
	Mode         string             `json:"mode"`
	Degraded     bool               `json:"degraded"`
}

// ImageURLs are the derived paths of a stored file.
type ImageURLs struct {
	Original string            `json:"original"`
	Rounded  string            `json:"rounded"`
	Sizes    map[string]string `json:"sizes"`
}

type ImageURLsRequest struct {
	Filename string `param:"filename" json:"-" validate:"required,max=255"`
}

func (r *ImageURLsRequest) Validate() error { return validation.Struct(r) }

// UploadRequest carries no bound fields; files are read from the
// multipart form.
type UploadRequest struct{}

func (r *UploadRequest) Validate() error { return nil }
