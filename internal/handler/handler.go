// Package handler is the HTTP entry point for business logic after the
// router.
//
// It binds and validates requests using the validation package, calls the
// service layer and wraps results in the response envelope.
package handler
