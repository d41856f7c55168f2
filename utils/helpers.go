package utils

import (
	"encoding/json"
	"net/http"

	"github.com/yuribeats/the-boards/constants"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteHTTPJSON writes v as JSON with the given status code.
func WriteHTTPJSON(w http.ResponseWriter, code int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to encode response"}`))
		return err
	}
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(code)
	_, err = w.Write(data)
	return err
}

// WriteHTTPError writes {"error": message} with the given status code.
func WriteHTTPError(w http.ResponseWriter, message string, code int) {
	_ = WriteHTTPJSON(w, code, ErrorResponse{Error: message})
}

// MarshalJSONIndent marshals data to pretty JSON.
func MarshalJSONIndent(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", constants.JSONIndent)
}
