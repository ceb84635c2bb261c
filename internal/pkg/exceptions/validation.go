package exceptions

import (
	"strings"

	"fhir-patient-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError maps the first failed rule to its client
// message. The request struct declares its rules in field order, so the
// first entry of ValidationErrors is always the first rule violated.
func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	firstErr := validationErrors[0]
	fieldName := firstErr.Field()
	tag := firstErr.Tag()

	// resourceType has a single rule: present and equal to "Patient".
	if fieldName == "resourceType" {
		return constvars.ErrClientResourceTypeMustBePatient
	}
	if fieldName == "name" && (tag == "required" || tag == "min") {
		return "at least one name entry is required"
	}
	if tag == "head_family" {
		return "name[0].family is required"
	}
	if tag == "head_given" {
		return "name[0].given must contain at least one entry"
	}

	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(firstErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", firstErr.Param(), 1)
		}
	}
	return fieldName + " " + customMessage
}
