package http

import (
	"context"
	"net/http"
	"sync"

	"github.com/yuribeats/the-boards/config"
	"github.com/yuribeats/the-boards/utils"
)

var (
	initServerless sync.Once
	initErr        error
	serverlessApp  *App
	appMutex       sync.RWMutex
)

// serverlessDeps builds the App once per cold start from the environment.
func serverlessDeps() (*App, error) {
	initServerless.Do(func() {
		app, err := NewApp(context.Background(), config.FromEnv())
		if err != nil {
			utils.Error("serverless init failed: %v", err)
			initErr = err
			return
		}
		appMutex.Lock()
		serverlessApp = app
		appMutex.Unlock()
	})
	if initErr != nil {
		return nil, initErr
	}
	appMutex.RLock()
	defer appMutex.RUnlock()
	return serverlessApp, nil
}

// ServeFeed is the serverless entry point for /api/data.
func ServeFeed(w http.ResponseWriter, r *http.Request) {
	app, err := serverlessDeps()
	if err != nil {
		utils.WriteHTTPError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	RequestID(NewFeedHandler(app.Feed)).ServeHTTP(w, r)
}

// ServePending is the serverless entry point for /api/pending.
func ServePending(w http.ResponseWriter, r *http.Request) {
	app, err := serverlessDeps()
	if err != nil {
		utils.WriteHTTPError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	RequestID(app.Pending).ServeHTTP(w, r)
}

// ResetServerless drops the cached App so the next request rebuilds it
// (for testing).
func ResetServerless() {
	appMutex.Lock()
	defer appMutex.Unlock()
	initServerless = sync.Once{}
	initErr = nil
	serverlessApp = nil
}
