package utils

import (
	"reflect"
	"regexp"
	"strings"

	"fhir-patient-service/internal/pkg/constvars"
	"fhir-patient-service/internal/pkg/fhir_dto"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonTagName)
	validate.RegisterValidation("fhir_date", validateFhirDate)
	validate.RegisterValidation("head_family", validateHeadFamily)
	validate.RegisterValidation("head_given", validateHeadGiven)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// jsonTagName reports field names the way clients sent them.
func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func validateFhirDate(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexFhirDate).MatchString(fl.Field().String())
}

func validateHeadFamily(fl validator.FieldLevel) bool {
	names, ok := fl.Field().Interface().([]fhir_dto.HumanName)
	if !ok || len(names) == 0 {
		return false
	}
	return names[0].Family != ""
}

func validateHeadGiven(fl validator.FieldLevel) bool {
	names, ok := fl.Field().Interface().([]fhir_dto.HumanName)
	if !ok || len(names) == 0 {
		return false
	}
	return len(names[0].Given) >= 1
}
