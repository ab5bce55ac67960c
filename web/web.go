// Package web embeds the browser client.
package web

import "embed"

//go:embed index.html
var FS embed.FS
