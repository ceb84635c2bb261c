package routers

import (
	"fhir-patient-service/internal/app/delivery/http/middlewares"
	"fhir-patient-service/internal/app/services/health"
	"fhir-patient-service/internal/app/services/patients"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	healthController *health.HealthController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Location"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.SecurityHeaders)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)

	// Rate limiting middleware using httprate
	router.Use(middlewares.RateLimit())

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	router.Route("/fhir", func(r chi.Router) {
		r.Route("/Patient", func(r chi.Router) {
			attachPatientRoutes(r, patientController)
		})
	})

	attachHealthRoutes(router, healthController)
}
