package validator

import (
	"log"
	"time"

	"photostudio_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs domain validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'media-category': value is in the authoritative category list
	mustRegister("media-category", validateMediaCategory)

	// 'locale': value is a supported UI locale
	mustRegister("locale", validateLocale)

	// 'future-date': "2006-01-02" date strictly after today
	mustRegister("future-date", validateFutureDate)
}

func validateMediaCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // emptiness is for 'required' to decide
	}
	return models.IsValidCategory(value)
}

var supportedLocales = map[string]bool{"en": true, "hr": true}

func validateLocale(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return supportedLocales[value]
}

func validateFutureDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return false
	}

	today := time.Now().Truncate(24 * time.Hour)
	return date.After(today)
}
