// Package handler is the HTTP entry point for business logic.
//
// Each endpoint declares a request payload whose Schemas method tells the
// shared pipeline what to validate; the pipeline binds the payload, calls
// the service layer and writes the JSON response.
package handler
