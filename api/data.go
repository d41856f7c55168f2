package handler

import (
	"net/http"

	boardshttp "github.com/yuribeats/the-boards/http"
)

// Data is the Vercel entry point for /api/data.
func Data(w http.ResponseWriter, r *http.Request) {
	boardshttp.ServeFeed(w, r)
}
