package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	MongoCollectionPatients = "patients"
)

const (
	URLParamPatientID = "patient_id"
)
