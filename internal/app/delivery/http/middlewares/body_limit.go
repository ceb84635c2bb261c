package middlewares

import (
	"net/http"

	"fhir-patient-service/internal/pkg/exceptions"
	"fhir-patient-service/internal/pkg/utils"
)

// BodyLimit rejects oversized bodies before any handler reads them. Bodies
// without a Content-Length are still capped by MaxBytesReader, which fails
// the read once the limit is crossed.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > limit {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRequestBodyTooLarge(nil))
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}
