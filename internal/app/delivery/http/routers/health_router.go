package routers

import (
	"fhir-patient-service/internal/app/services/health"

	"github.com/go-chi/chi/v5"
)

func attachHealthRoutes(router chi.Router, healthController *health.HealthController) {
	router.Get("/health", healthController.CheckHealth)
}
