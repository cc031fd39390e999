// Package content embeds the markdown blog posts, one directory per locale.
package content

import "embed"

// FS holds posts/<locale>/<slug>.md.
//
//go:embed posts
var FS embed.FS
