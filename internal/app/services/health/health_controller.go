package health

import (
	"net/http"

	"fhir-patient-service/internal/pkg/constvars"
	"fhir-patient-service/internal/pkg/utils"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

type healthResponse struct {
	Status string `json:"status"`
}

// CheckHealth reports liveness unconditionally.
func (ctrl *HealthController) CheckHealth(w http.ResponseWriter, r *http.Request) {
	utils.BuildJSONResponse(w, constvars.StatusOK, healthResponse{Status: "ok"})
}
