package models

import (
	"fhir-patient-service/internal/pkg/fhir_dto"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient is the stored document shape. The _id and the timestamps are
// storage metadata and never leave the persistence layer in responses.
type Patient struct {
	ID           primitive.ObjectID      `bson:"_id,omitempty"`
	ResourceType string                  `bson:"resourceType"`
	Active       bool                    `bson:"active"`
	Name         []fhir_dto.HumanName    `bson:"name"`
	Gender       string                  `bson:"gender,omitempty"`
	BirthDate    string                  `bson:"birthDate,omitempty"`
	Telecom      []fhir_dto.ContactPoint `bson:"telecom,omitempty"`
	TimeModel    `bson:",inline"`
}
