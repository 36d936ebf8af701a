// Package model holds the domain entities, request payloads and the
// response envelope shared by every endpoint.
package model

import "github.com/deppfellow/portfolio-api/internal/errs"

// Envelope is the uniform wrapper around every API response.
//
//	{"success": true, "data": {...}, "message": "...", "total": 3}
//	{"success": false, "error": "Portfolio not found", "code": "NOT_FOUND"}
type Envelope struct {
	Success bool              `json:"success"`
	Data    any               `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Code    string            `json:"code,omitempty"`
	Errors  []errs.FieldError `json:"errors,omitempty"`
	Message string            `json:"message,omitempty"`
	Total   *int              `json:"total,omitempty"`
}

// OK wraps a single result.
func OK(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// List wraps a collection together with its size.
func List(data any, total int, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message, Total: &total}
}

// Fail builds the failure envelope for an application error.
func Fail(err *errs.HTTPError) Envelope {
	return Envelope{
		Success: false,
		Error:   err.Message,
		Code:    err.Code,
		Errors:  err.Errors,
	}
}

// WriteResult is returned by every create, update and delete.
// Affected is false only when a write matched no row.
type WriteResult struct {
	ID       int64 `json:"id"`
	Affected bool  `json:"affected"`
}

// IDParam is embedded by requests addressed to a single row.
type IDParam struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
}
