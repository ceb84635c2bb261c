package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fhir-patient-service/internal/app/config"

	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	middlewares := newTestMiddlewares(config.App{
		MaxRequests:              60,
		RateLimitWindowInSeconds: 60,
	})
	handler := middlewares.RateLimit()(okHandler())

	for i := 0; i < 60; i++ {
		req := httptest.NewRequest("GET", "/health", nil)
		req.RemoteAddr = "192.0.2.10:51000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "request %d should pass", i+1)
	}

	req := httptest.NewRequest("GET", "/health", nil)
	req.RemoteAddr = "192.0.2.10:51000"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTooManyRequests, rr.Code, "61st request within the window should be rejected")
	assert.JSONEq(t, `{"error":"too many requests"}`, rr.Body.String())

	otherClient := httptest.NewRequest("GET", "/health", nil)
	otherClient.RemoteAddr = "192.0.2.99:51000"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, otherClient)

	assert.Equal(t, http.StatusOK, rr.Code, "the limit is tracked per originating IP")
}
