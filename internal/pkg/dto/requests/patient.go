package requests

import (
	"fhir-patient-service/internal/pkg/fhir_dto"
)

// CreatePatient is the accepted payload for POST /fhir/Patient. Fields not
// declared here are dropped at decode time; clients cannot smuggle arbitrary
// keys into the stored document.
//
// Rules are checked in field order and the first failure wins. Only name[0]
// is checked for family/given; entries past index 0 are accepted as-is.
type CreatePatient struct {
	ResourceType string                  `json:"resourceType" validate:"required,eq=Patient"`
	Active       *bool                   `json:"active"`
	Name         []fhir_dto.HumanName    `json:"name" validate:"required,min=1,head_family,head_given"`
	Gender       string                  `json:"gender" validate:"omitempty,oneof=male female other unknown"`
	BirthDate    string                  `json:"birthDate" validate:"omitempty,fhir_date"`
	Telecom      []fhir_dto.ContactPoint `json:"telecom"`
}
