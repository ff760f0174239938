// Package validation contains the logic for validating
// request data.
//
// Schemas describe the shape of acceptable input; Validate checks a
// decoded candidate against a schema without touching the transport.
// Per-field rules are expressed as `validator` tags and the resulting
// issues are rendered in a format the client can understand.
package validation
