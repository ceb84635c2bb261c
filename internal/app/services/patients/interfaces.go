package patients

import (
	"context"

	"fhir-patient-service/internal/app/models"
	"fhir-patient-service/internal/pkg/dto/requests"
	"fhir-patient-service/internal/pkg/fhir_dto"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*fhir_dto.Patient, error)
	FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error)
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (patientID string, err error)
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
}
