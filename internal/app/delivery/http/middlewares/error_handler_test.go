package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fhir-patient-service/internal/app/config"

	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	middlewares := newTestMiddlewares(config.App{})

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest("POST", "/fhir/Patient", nil)
	rr := httptest.NewRecorder()
	middlewares.ErrorHandler(panicking).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
}
