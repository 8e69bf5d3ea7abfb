package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ErrorResponse is the error body for all failures: the HTTP status plus
// a single human-readable, localized message. No structured error codes
// are exposed over the wire.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode,
// and encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError writes statusCode with an ErrorResponse body.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}

// DecodeJSON decodes the request body into dest. Unknown fields are
// ignored, matching the lenient payload handling of the public API.
func DecodeJSON(r *http.Request, dest any) error {
	return json.NewDecoder(r.Body).Decode(dest)
}

// Locale returns the preferred language from the Accept-Language header,
// e.g. "tr" from "tr-TR,tr;q=0.9,en;q=0.8". Empty when the header is
// absent; callers fall back to the default locale.
func Locale(r *http.Request) string {
	header := r.Header.Get("Accept-Language")
	if header == "" {
		return ""
	}
	first := strings.SplitN(header, ",", 2)[0]
	first = strings.SplitN(first, ";", 2)[0]
	return strings.TrimSpace(first)
}
