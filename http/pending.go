package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/yuribeats/the-boards/constants"
	"github.com/yuribeats/the-boards/pending"
	"github.com/yuribeats/the-boards/secrets"
	"github.com/yuribeats/the-boards/utils"
)

// PendingHandler serves the moderation queue to callers holding the admin
// password.
type PendingHandler struct {
	Secrets secrets.SecretsProvider
	Fetcher pending.Fetcher
}

// PendingResponse wraps the pending payload.
type PendingResponse struct {
	Pending any `json:"pending"`
}

func (h *PendingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(constants.HeaderAllowOrigin, constants.AllowOriginAny)
	w.Header().Set(constants.HeaderAllowMethods, constants.PendingAllowMethods)
	w.Header().Set(constants.HeaderAllowHeaders, constants.PendingAllowHeaders)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodGet:
	default:
		utils.WriteHTTPError(w, constants.ErrMethodNotAllowed, http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	want, err := secrets.Lookup(ctx, h.Secrets, constants.EnvAdminPassword)
	if err != nil {
		utils.ErrorCtx(ctx, "resolve admin password", "error", err)
		utils.WriteHTTPError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !passwordMatches(r.Header.Get(constants.HeaderAdminPassword), want) {
		utils.WarnCtx(ctx, "rejected pending request", "remote", r.RemoteAddr)
		utils.WriteHTTPError(w, constants.ErrUnauthorized, http.StatusUnauthorized)
		return
	}

	token, err := secrets.Lookup(ctx, h.Secrets, constants.EnvGitHubToken)
	if err != nil {
		utils.ErrorCtx(ctx, "resolve github token", "error", err)
		utils.WriteHTTPError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if token == "" {
		utils.ErrorCtx(ctx, "GITHUB_TOKEN is not configured")
		utils.WriteHTTPError(w, constants.ErrServerMisconfigured, http.StatusInternalServerError)
		return
	}

	payload, err := h.Fetcher.Fetch(ctx, token)
	if err != nil {
		utils.ErrorCtx(ctx, "fetch pending items", "error", err)
		utils.WriteHTTPError(w, errorMessage(err), http.StatusInternalServerError)
		return
	}
	w.Header().Set(constants.HeaderCacheControl, constants.PendingCacheControl)
	_ = utils.WriteHTTPJSON(w, http.StatusOK, PendingResponse{Pending: payload})
}

// passwordMatches compares in constant time. An empty supplied or configured
// password never matches.
func passwordMatches(got, want string) bool {
	if got == "" || want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
