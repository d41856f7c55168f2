package pending

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuribeats/the-boards/config"
)

func contentsBody(payload string) string {
	enc := base64.StdEncoding.EncodeToString([]byte(payload))
	// wrap like GitHub does
	var wrapped string
	for len(enc) > 60 {
		wrapped += enc[:60] + "\n"
		enc = enc[60:]
	}
	wrapped += enc + "\n"
	return fmt.Sprintf(`{"name":"pending.json","encoding":"base64","content":%q}`, wrapped)
}

func TestNewClient_RendersDefaultURL(t *testing.T) {
	c, err := NewClient(config.GitHubConfig{Repo: "yuribeats/the-boards", Path: "data/pending.json", Branch: "main"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.github.com/repos/yuribeats/the-boards/contents/data/pending.json?ref=main", c.URL)
}

func TestNewClient_EscapesOverrides(t *testing.T) {
	c, err := NewClient(config.GitHubConfig{Repo: "o/r", Path: "data/q&a's queue.json", Branch: "feat/x&y"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.github.com/repos/o/r/contents/data/q&a%27s%20queue.json?ref=feat%2Fx%26y", c.URL)
}

func TestClient_Fetch(t *testing.T) {
	payload := `[{"type":"Gig","board":"North","description":"a fairly long description so the base64 wraps over multiple lines"}]`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		assert.Equal(t, "/repos/o/r/contents/data/pending.json", r.URL.Path)
		assert.Equal(t, "main", r.URL.Query().Get("ref"))
		_, _ = w.Write([]byte(contentsBody(payload)))
	}))
	defer srv.Close()

	c, err := NewClient(config.GitHubConfig{
		Repo:        "o/r",
		Path:        "data/pending.json",
		Branch:      "main",
		URLTemplate: srv.URL + "/repos/{{ repo }}/contents/{{ path }}?ref={{ branch }}",
	}, srv.Client())
	require.NoError(t, err)

	got, err := c.Fetch(context.Background(), "secret-token")
	require.NoError(t, err)
	items, ok := got.([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "North", items[0].(map[string]any)["board"])
}

func TestClient_FetchNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	}))
	defer srv.Close()

	c := &Client{URL: srv.URL, Client: srv.Client()}
	_, err := c.Fetch(context.Background(), "t")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReadPending))
	assert.Equal(t, "failed to read pending.json", err.Error())
}

func TestClient_FetchBadResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := &Client{URL: srv.URL, Client: srv.Client()}
	_, err := c.Fetch(context.Background(), "t")
	assert.Error(t, err)
}

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    any
		wantErr bool
	}{
		{"object", base64.StdEncoding.EncodeToString([]byte(`{"a":1}`)), map[string]any{"a": float64(1)}, false},
		{"empty array", base64.StdEncoding.EncodeToString([]byte(`[]`)), []any{}, false},
		{"null", base64.StdEncoding.EncodeToString([]byte(`null`)), nil, false},
		{"bad base64", "!!!", nil, true},
		{"bad json", base64.StdEncoding.EncodeToString([]byte(`{`)), nil, true},
		{"empty content", "", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeContent(tt.content)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
