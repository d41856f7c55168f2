// Package pending reads the moderation queue file from the GitHub Contents API.
package pending

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yuribeats/the-boards/config"
	"github.com/yuribeats/the-boards/constants"
	"github.com/yuribeats/the-boards/templater"
	"github.com/yuribeats/the-boards/utils"
)

// ErrReadPending is returned when the Contents API answers with a non-2xx status.
var ErrReadPending = errors.New("failed to read pending.json")

// Fetcher loads the pending payload with the given access token.
type Fetcher interface {
	Fetch(ctx context.Context, token string) (any, error)
}

// Client fetches a single JSON file through the GitHub Contents API.
type Client struct {
	URL    string
	Client *http.Client
}

var _ Fetcher = (*Client)(nil)

type contentsResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// NewClient renders the Contents API URL from cfg.
func NewClient(cfg config.GitHubConfig, client *http.Client) (*Client, error) {
	tmpl := cfg.URLTemplate
	if tmpl == "" {
		tmpl = config.DefaultContentsURLTemplate
	}
	contentsURL, err := templater.Render(tmpl, map[string]any{
		"repo":   escapeSegments(cfg.Repo),
		"path":   escapeSegments(cfg.Path),
		"branch": url.QueryEscape(cfg.Branch),
	})
	if err != nil {
		return nil, fmt.Errorf("contents url: %w", err)
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{URL: contentsURL, Client: client}, nil
}

// escapeSegments path-escapes each "/"-separated segment of p.
func escapeSegments(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}

// Fetch downloads the file, base64-decodes its content and parses it as JSON.
// The decoded value is returned as-is.
func (c *Client) Fetch(ctx context.Context, token string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(constants.HeaderAuthorization, "token "+token)
	req.Header.Set(constants.HeaderAccept, constants.GitHubAcceptV3)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		utils.WarnCtx(ctx, "contents api returned non-2xx", "status", resp.StatusCode, "url", c.URL)
		return nil, ErrReadPending
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var contents contentsResponse
	if err := json.Unmarshal(body, &contents); err != nil {
		return nil, fmt.Errorf("decode contents response: %w", err)
	}
	return DecodeContent(contents.Content)
}

// DecodeContent decodes a base64 Contents API payload and parses it as JSON.
// GitHub wraps the base64 at 60 columns, so line breaks are stripped first.
func DecodeContent(content string) (any, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, content)
	raw, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode base64 content: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("parse pending json: %w", err)
	}
	return v, nil
}
