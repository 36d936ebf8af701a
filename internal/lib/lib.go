// Package lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains background job processing (using Redis/Asynq), the email
// client (Resend), image processing for uploads and the upload file store.
package lib
