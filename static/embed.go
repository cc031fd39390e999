// Package static embeds the stylesheet and images served under /static/.
package static

import "embed"

//go:embed site.css img
var FS embed.FS
