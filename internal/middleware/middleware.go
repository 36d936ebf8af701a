// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// admin authentication (via Clerk), request logging, CORS, rate limiting,
// request deadlines and panic recovery.
package middleware
