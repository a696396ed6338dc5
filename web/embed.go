// Package web holds the embedded single-page client for prompt-architect.
package web

import "embed"

// StaticFS contains index.html plus its CSS and JS.
//
//go:embed static
var StaticFS embed.FS
