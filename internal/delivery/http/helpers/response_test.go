package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSONError(rec, http.StatusTeapot, "kısa ve öz")

	require.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"kısa ve öz"}`, rec.Body.String())
}

func TestLocale(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"absent", "", ""},
		{"single", "tr", "tr"},
		{"with region", "tr-TR,tr;q=0.9,en;q=0.8", "tr-TR"},
		{"quality on first", "en;q=0.5", "en"},
		{"padded", "  en , tr", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Accept-Language", tt.header)
			}
			assert.Equal(t, tt.want, Locale(r))
		})
	}
}
