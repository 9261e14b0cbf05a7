// Package static embeds browser assets served under /static/.
package static

import "embed"

// FS exposes static assets for HTTP serving.
//
//go:embed *.css *.js
var FS embed.FS
