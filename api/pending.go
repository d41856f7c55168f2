package handler

import (
	"net/http"

	boardshttp "github.com/yuribeats/the-boards/http"
)

// Pending is the Vercel entry point for /api/pending.
func Pending(w http.ResponseWriter, r *http.Request) {
	boardshttp.ServePending(w, r)
}
