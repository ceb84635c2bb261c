package patients

import (
	"context"
	"testing"

	"fhir-patient-service/internal/app/models"
	"fhir-patient-service/internal/pkg/dto/requests"
	"fhir-patient-service/internal/pkg/exceptions"
	"fhir-patient-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubPatientRepository struct {
	documents   map[string]*models.Patient
	insertCalls int
	insertErr   error
	findErr     error
}

func newStubPatientRepository() *stubPatientRepository {
	return &stubPatientRepository{documents: make(map[string]*models.Patient)}
}

func (repo *stubPatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	repo.insertCalls++
	if repo.insertErr != nil {
		return "", repo.insertErr
	}
	patient.ID = primitive.NewObjectID()
	repo.documents[patient.ID.Hex()] = patient
	return patient.ID.Hex(), nil
}

func (repo *stubPatientRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	if repo.findErr != nil {
		return nil, repo.findErr
	}
	if _, err := primitive.ObjectIDFromHex(patientID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return repo.documents[patientID], nil
}

func createPatientRequest() *requests.CreatePatient {
	return &requests.CreatePatient{
		ResourceType: "Patient",
		Name: []fhir_dto.HumanName{
			{Family: "Doe", Given: []string{"Jane"}},
		},
		Gender:    "female",
		BirthDate: "1990-02-14",
		Telecom: []fhir_dto.ContactPoint{
			{System: "phone", Value: "+15551234567"},
		},
	}
}

func TestCreatePatient(t *testing.T) {
	t.Run("Valid Request Is Persisted", func(t *testing.T) {
		repo := newStubPatientRepository()
		usecase := NewPatientUsecase(repo)

		response, err := usecase.CreatePatient(context.Background(), createPatientRequest())

		assert.NoError(t, err)
		assert.NotEmpty(t, response.ID)
		assert.Equal(t, "Patient", response.ResourceType)
		assert.True(t, response.Active, "active should default to true when absent")
		assert.Equal(t, "female", response.Gender)
		assert.Equal(t, "1990-02-14", response.BirthDate)
		assert.Equal(t, 1, repo.insertCalls)
	})

	t.Run("Explicit Active False Is Kept", func(t *testing.T) {
		repo := newStubPatientRepository()
		usecase := NewPatientUsecase(repo)

		active := false
		request := createPatientRequest()
		request.Active = &active

		response, err := usecase.CreatePatient(context.Background(), request)

		assert.NoError(t, err)
		assert.False(t, response.Active)
	})

	t.Run("Validation Failure Skips Persistence", func(t *testing.T) {
		repo := newStubPatientRepository()
		usecase := NewPatientUsecase(repo)

		request := createPatientRequest()
		request.ResourceType = "Observation"

		response, err := usecase.CreatePatient(context.Background(), request)

		assert.Nil(t, response)
		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Equal(t, "resourceType must be 'Patient'", customErr.ClientMessage)
		assert.Equal(t, 0, repo.insertCalls, "no persistence on validation failure")
	})

	t.Run("Insert Failure Maps To Internal Error", func(t *testing.T) {
		repo := newStubPatientRepository()
		repo.insertErr = exceptions.ErrMongoDBInsertDocument(assert.AnError)
		usecase := NewPatientUsecase(repo)

		response, err := usecase.CreatePatient(context.Background(), createPatientRequest())

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 500, customErr.StatusCode)
		assert.Equal(t, "Internal server error", customErr.ClientMessage)
	})
}

func TestFindPatientByID(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		repo := newStubPatientRepository()
		usecase := NewPatientUsecase(repo)

		created, err := usecase.CreatePatient(context.Background(), createPatientRequest())
		assert.NoError(t, err)

		found, err := usecase.FindPatientByID(context.Background(), created.ID)

		assert.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "Patient", found.ResourceType)
		assert.Equal(t, created.Name, found.Name)
		assert.Equal(t, created.Gender, found.Gender)
		assert.Equal(t, created.BirthDate, found.BirthDate)
		assert.Equal(t, created.Telecom, found.Telecom)
		assert.Equal(t, created.Active, found.Active)
	})

	t.Run("Malformed Identifier", func(t *testing.T) {
		repo := newStubPatientRepository()
		usecase := NewPatientUsecase(repo)

		response, err := usecase.FindPatientByID(context.Background(), "not-a-real-id-format")

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Equal(t, "Invalid id", customErr.ClientMessage)
	})

	t.Run("Unknown Identifier", func(t *testing.T) {
		repo := newStubPatientRepository()
		usecase := NewPatientUsecase(repo)

		response, err := usecase.FindPatientByID(context.Background(), primitive.NewObjectID().Hex())

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
		assert.Equal(t, "Patient not found", customErr.ClientMessage)
	})
}
