// Package static embeds the API documentation assets served under /static
// and /docs.
package static

import "embed"

const (
	OpenAPIUI       = "openapi.html"
	OpenAPIDocument = "openapi.json"
)

//go:embed openapi.html openapi.json
var FS embed.FS
