// Package middleware holds the echo middleware shared by every route.
//
// It covers request correlation ids, request-scoped logging, New Relic
// tracing, CORS, secure headers, panic recovery and the global error
// handler that renders every failed request.
package middleware
