package constvars

const (
	ResourcePatient = "Patient"
)

const (
	FhirGenderMale    = "male"
	FhirGenderFemale  = "female"
	FhirGenderOther   = "other"
	FhirGenderUnknown = "unknown"
)

const (
	FhirTelecomSystemPhone = "phone"
	FhirTelecomSystemEmail = "email"
)

const PatientLocationFormat = "/fhir/Patient/%s"
