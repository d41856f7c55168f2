package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/yuribeats/the-boards/constants"
	"github.com/yuribeats/the-boards/utils"
)

// RequestID tags each request with an ID, reusing an incoming X-Request-ID
// when present, and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(constants.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(constants.HeaderRequestID, id)
		ctx := utils.WithRequestID(r.Context(), id)
		utils.DebugCtx(ctx, "request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
