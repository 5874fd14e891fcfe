// Package web embeds the static front-end for the activities service.
package web

import (
	"embed"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Handler serves the embedded assets under /static/.
func Handler() http.Handler {
	return http.FileServerFS(staticFS)
}
