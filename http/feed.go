package http

import (
	"context"
	"net/http"

	"github.com/yuribeats/the-boards/constants"
	"github.com/yuribeats/the-boards/feed"
	"github.com/yuribeats/the-boards/utils"
)

// FeedLoader produces the parsed sheet feed.
type FeedLoader interface {
	Load(ctx context.Context) (feed.Result, error)
}

// NewFeedHandler serves the sheet feed for any method. Upstream failures
// become 500 {"error": ...}.
func NewFeedHandler(loader FeedLoader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, err := loader.Load(r.Context())
		if err != nil {
			utils.ErrorCtx(r.Context(), "load feed", "error", err)
			utils.WriteHTTPError(w, errorMessage(err), http.StatusInternalServerError)
			return
		}
		w.Header().Set(constants.HeaderAllowOrigin, constants.AllowOriginAny)
		w.Header().Set(constants.HeaderCacheControl, constants.FeedCacheControl)
		_ = utils.WriteHTTPJSON(w, http.StatusOK, res)
	})
}
