package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserOutput(t *testing.T) {
	var buf bytes.Buffer
	SetUserOutput(&buf)
	defer SetUserOutput(nil)

	User("hello %s", "boards")
	assert.Equal(t, "hello boards\n", buf.String())
}

func TestInternalOutput(t *testing.T) {
	var buf bytes.Buffer
	SetInternalOutput(&buf)
	defer SetInternalOutput(nil)

	Info("info %d", 1)
	Warn("warn %d", 2)
	Debug("debug %d", 3)
	Error("error %d", 4)

	out := buf.String()
	for _, want := range []string{"info 1", "warn 2", "debug 3", "error 4"} {
		assert.Contains(t, out, want)
	}
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	SetInternalOutput(&buf)
	defer SetInternalOutput(nil)

	base := errors.New("boom")
	err := Errorf("fetch failed: %w", base)
	require.Error(t, err)
	assert.ErrorIs(t, err, base)
	assert.Contains(t, buf.String(), "fetch failed: boom")
}

func TestRequestIDContext(t *testing.T) {
	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithRequestID(context.Background(), "req-1")
	id, ok := RequestIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "req-1", id)

	var buf bytes.Buffer
	SetInternalOutput(&buf)
	defer SetInternalOutput(nil)
	ErrorCtx(ctx, "upstream failed", "status", 502)
	assert.Contains(t, buf.String(), "upstream failed")
	assert.Contains(t, buf.String(), "req-1")
}

func TestSetMode(t *testing.T) {
	SetMode("debug")
	assert.Equal(t, "debug", Mode())
	SetMode("production")
	assert.Equal(t, "production", Mode())
}

func TestSetLevel(t *testing.T) {
	defer SetMode("production")

	SetLevel("info")
	assert.Equal(t, "production", Mode())
	SetLevel(" DEBUG ")
	assert.Equal(t, "debug", Mode())
	SetLevel("info")
	assert.Equal(t, "debug", Mode())
}

func TestWriteHTTPJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, WriteHTTPJSON(rec, http.StatusCreated, map[string]int{"n": 1}))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"n":1}`, rec.Body.String())
}

func TestWriteHTTPJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	err := WriteHTTPJSON(rec, http.StatusOK, make(chan int))
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"failed to encode response"}`, rec.Body.String())
}

func TestWriteHTTPError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteHTTPError(rec, "Unauthorized", http.StatusUnauthorized)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body.Error)
}

func TestMarshalJSONIndent(t *testing.T) {
	out, err := MarshalJSONIndent(map[string]string{"a": "b"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": \"b\"\n}", string(out))
}
