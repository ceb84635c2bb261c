package routers

import (
	"fmt"

	"fhir-patient-service/internal/app/services/patients"
	"fhir-patient-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *patients.PatientController) {
	router.Post("/", patientController.CreatePatient)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamPatientID), patientController.FindPatientByID)
}
