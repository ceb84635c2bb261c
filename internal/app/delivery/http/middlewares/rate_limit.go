package middlewares

import (
	"net/http"
	"time"

	"fhir-patient-service/internal/pkg/exceptions"
	"fhir-patient-service/internal/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimit caps requests per originating IP over a rolling window. The
// defaults allow 60 requests per 60 seconds; the 61st fails fast with 429
// before any handler runs.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.RateLimitWindowInSeconds) * time.Second
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(nil))
		}),
	)
}
