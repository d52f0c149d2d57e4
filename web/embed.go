// Package web holds the page templates and static assets served by the api
// package.
package web

import "embed"

//go:embed templates static
var FS embed.FS
