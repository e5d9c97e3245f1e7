// Package web serves the embedded submission page
package web

import (
	_ "embed"
	"net/http"

	phttp "langrelay/internal/platform/net/http"
)

//go:embed static/index.html
var index []byte

// Mount serves the page at / on r
func Mount(r phttp.Router) {
	r.Get("/", serveIndex)
}

func serveIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(index)
}
