package patients

import (
	"context"

	"fhir-patient-service/internal/app/models"
	"fhir-patient-service/internal/pkg/constvars"
	"fhir-patient-service/internal/pkg/dto/requests"
	"fhir-patient-service/internal/pkg/exceptions"
	"fhir-patient-service/internal/pkg/fhir_dto"
	"fhir-patient-service/internal/pkg/utils"
)

type patientUsecase struct {
	PatientRepository PatientRepository
}

func NewPatientUsecase(patientRepository PatientRepository) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*fhir_dto.Patient, error) {
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	// active defaults to true when absent
	active := true
	if request.Active != nil {
		active = *request.Active
	}

	patientModel := &models.Patient{
		ResourceType: constvars.ResourcePatient,
		Active:       active,
		Name:         request.Name,
		Gender:       request.Gender,
		BirthDate:    request.BirthDate,
		Telecom:      request.Telecom,
	}

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patientModel)
	if err != nil {
		return nil, err
	}

	return &fhir_dto.Patient{
		ID:           patientID,
		ResourceType: constvars.ResourcePatient,
		Active:       active,
		Name:         request.Name,
		Gender:       request.Gender,
		BirthDate:    request.BirthDate,
		Telecom:      request.Telecom,
	}, nil
}

func (uc *patientUsecase) FindPatientByID(ctx context.Context, patientID string) (*fhir_dto.Patient, error) {
	patientModel, err := uc.PatientRepository.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patientModel == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	return &fhir_dto.Patient{
		ID:           patientModel.ID.Hex(),
		ResourceType: constvars.ResourcePatient,
		Active:       patientModel.Active,
		Name:         patientModel.Name,
		Gender:       patientModel.Gender,
		BirthDate:    patientModel.BirthDate,
		Telecom:      patientModel.Telecom,
	}, nil
}
