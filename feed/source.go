package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/yuribeats/the-boards/config"
	"github.com/yuribeats/the-boards/templater"
	"github.com/yuribeats/the-boards/utils"
)

// ErrFetchSheet is returned when the sheet export answers with a non-2xx status.
var ErrFetchSheet = errors.New("failed to fetch sheet")

// Source fetches the published CSV export of the boards sheet.
type Source struct {
	URL    string
	Client *http.Client
}

// NewSource renders the export URL from cfg. A nil client gets a plain
// http.Client with a 10s timeout.
func NewSource(cfg config.SheetConfig, client *http.Client) (*Source, error) {
	tmpl := cfg.URLTemplate
	if tmpl == "" {
		tmpl = config.DefaultSheetURLTemplate
	}
	sheetURL, err := templater.Render(tmpl, map[string]any{
		"sheet_id": url.PathEscape(cfg.ID),
		"gid":      url.QueryEscape(cfg.GID),
	})
	if err != nil {
		return nil, fmt.Errorf("sheet url: %w", err)
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Source{URL: sheetURL, Client: client}, nil
}

// Fetch downloads the raw CSV text.
func (s *Source) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		utils.WarnCtx(ctx, "sheet export returned non-2xx", "status", resp.StatusCode, "url", s.URL)
		return "", ErrFetchSheet
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Load fetches the sheet and extracts the feed from it.
func (s *Source) Load(ctx context.Context) (Result, error) {
	text, err := s.Fetch(ctx)
	if err != nil {
		return Result{}, err
	}
	res := Parse(text)
	utils.DebugCtx(ctx, "parsed sheet feed", "rows", len(res.Rows), "last_updated", res.LastUpdated)
	return res, nil
}
