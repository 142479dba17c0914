package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("radius_m", validateRadiusMeters)
	validate.RegisterValidation("role", validateRole)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateRadiusMeters(fl validator.FieldLevel) bool {
	radius := fl.Field().Float()
	return radius >= 1.0 && radius <= 10000.0
}

func validateRole(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "admin", "supervisor", "guard":
		return true
	}
	return false
}
