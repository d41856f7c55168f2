package http

import (
	"context"
	"fmt"
	"time"

	"github.com/yuribeats/the-boards/config"
	"github.com/yuribeats/the-boards/feed"
	"github.com/yuribeats/the-boards/pending"
	"github.com/yuribeats/the-boards/secrets"
	"github.com/yuribeats/the-boards/telemetry"
	"github.com/yuribeats/the-boards/utils"
)

// App holds the collaborators shared by every entry point.
type App struct {
	Config  *config.Config
	Feed    FeedLoader
	Pending *PendingHandler
	Secrets secrets.SecretsProvider
}

// NewApp wires the sheet source, the GitHub client and the secrets provider
// from cfg, and applies the configured log level.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	utils.SetLevel(cfg.Log.Level)
	client := telemetry.NewHTTPClient(time.Duration(cfg.HTTP.Timeout))

	src, err := feed.NewSource(cfg.Sheet, client)
	if err != nil {
		return nil, err
	}
	gh, err := pending.NewClient(cfg.GitHub, client)
	if err != nil {
		return nil, err
	}
	sp, err := secrets.NewSecretsProvider(ctx, &cfg.Secrets)
	if err != nil {
		return nil, fmt.Errorf("secrets provider: %w", err)
	}
	return &App{
		Config:  cfg,
		Feed:    src,
		Pending: &PendingHandler{Secrets: sp, Fetcher: gh},
		Secrets: sp,
	}, nil
}

// Close releases the secrets provider.
func (a *App) Close() error {
	if a.Secrets == nil {
		return nil
	}
	return a.Secrets.Close()
}
