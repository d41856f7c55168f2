package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yuribeats/the-boards/constants"
	"github.com/yuribeats/the-boards/telemetry"
)

// NewRouter mounts both handlers plus health and metrics endpoints.
func NewRouter(app *App) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID)

	r.Handle(constants.RouteFeed, telemetry.WrapHandler("feed", NewFeedHandler(app.Feed)))
	r.Handle(constants.RoutePending, telemetry.WrapHandler("pending", app.Pending))
	r.HandleFunc(constants.RouteHealth, healthHandler).Methods(http.MethodGet)
	r.Handle(constants.RouteMetrics, telemetry.MetricsHandler()).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}
