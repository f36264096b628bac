// Package static embeds the portal's static assets.
package static

import "embed"

// StylesheetName is the embedded stylesheet file served under /static/.
const StylesheetName = "portal.css"

// FS exposes web static assets for HTTP serving and export.
//
//go:embed *.css
var FS embed.FS
