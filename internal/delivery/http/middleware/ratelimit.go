package middleware

import (
	"net/http"
	"strings"

	"communitycalendar/internal/delivery/http/helpers"
	"communitycalendar/internal/i18n"
	"communitycalendar/internal/ratelimit"
)

// unknownClient is the shared bucket for requests whose origin cannot be
// determined from forwarding headers.
const unknownClient = "unknown"

// clientKey derives the rate-limit identifier: first X-Forwarded-For
// value, then X-Real-IP, then a shared sentinel. The headers are
// spoofable; the gate's fairness only holds when the forwarding layer is
// trusted to set them.
func clientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0]); first != "" {
			return first
		}
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return unknownClient
}

// RateLimit guards the events and auth APIs with the fixed window
// limiter. All other paths pass through untouched. Rejected requests get
// 429 with a localized message and never reach the handler.
func RateLimit(limiter *ratelimit.Limiter, translator *i18n.Translator, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if !strings.HasPrefix(path, "/api/events") && !strings.HasPrefix(path, "/api/auth") {
			next.ServeHTTP(w, r)
			return
		}
		if !limiter.Admit(clientKey(r)) {
			helpers.WriteJSONError(w, http.StatusTooManyRequests,
				translator.T(helpers.Locale(r), "error.rate_limited"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
