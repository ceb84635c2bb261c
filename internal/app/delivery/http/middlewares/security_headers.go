package middlewares

import (
	"net/http"

	"fhir-patient-service/internal/pkg/constvars"
)

// SecurityHeaders sets the baseline response headers on every request.
func (m *Middlewares) SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderXContentTypeOptions, "nosniff")
		w.Header().Set(constvars.HeaderXFrameOptions, "DENY")
		w.Header().Set(constvars.HeaderXXSSProtection, "1; mode=block")
		w.Header().Set(constvars.HeaderReferrerPolicy, "no-referrer")
		w.Header().Set(constvars.HeaderStrictTransportSecurity, "max-age=31536000; includeSubDomains")

		next.ServeHTTP(w, r)
	})
}
