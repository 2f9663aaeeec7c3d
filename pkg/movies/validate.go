package movies

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/agentstation/cinemania/pkg/constants"
	"github.com/agentstation/cinemania/pkg/errors"
)

// IsValidYear reports whether year falls in the supported release range.
func IsValidYear(year int) bool {
	return year >= constants.MinYear && year <= constants.MaxYear
}

// IsValidDuration reports whether minutes is a plausible running time.
func IsValidDuration(minutes int) bool {
	return minutes > 0 && minutes <= constants.MaxDuration
}

// IsValidRating reports whether rating is on the 0-10 scale.
func IsValidRating(rating float64) bool {
	return !math.IsNaN(rating) && rating >= constants.MinRating && rating <= constants.MaxRating
}

// IsValidRevenue reports whether revenue is a finite non-negative amount.
func IsValidRevenue(revenue float64) bool {
	return !math.IsNaN(revenue) && !math.IsInf(revenue, 0) && revenue >= 0
}

var movieValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names so messages line up with CSV columns and CLI fields.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	rules := map[string]validator.Func{
		"movie_genre":    func(fl validator.FieldLevel) bool { return Genre(fl.Field().Int()).Valid() },
		"movie_year":     func(fl validator.FieldLevel) bool { return IsValidYear(int(fl.Field().Int())) },
		"movie_duration": func(fl validator.FieldLevel) bool { return IsValidDuration(int(fl.Field().Int())) },
		"movie_rating":   func(fl validator.FieldLevel) bool { return IsValidRating(fl.Field().Float()) },
		"movie_revenue":  func(fl validator.FieldLevel) bool { return IsValidRevenue(fl.Field().Float()) },
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("programming error: registering %s: %v", tag, err))
		}
	}
	return v
}

// Validate checks a movie field by field in column order and reports the
// first failure as a *errors.ValidationError.
func Validate(m Movie) error {
	err := movieValidator.Struct(m)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.WrapValidation("", err)
	}
	fe := fieldErrs[0]
	field, _, _ := strings.Cut(fe.Field(), "[")
	return errors.NewValidationError(field, fe.Value(), validationMessage(field, fe))
}

func validationMessage(field string, fe validator.FieldError) string {
	switch field {
	case "title":
		return "Movie title cannot be empty"
	case "genres":
		switch fe.Tag() {
		case "movie_genre":
			return fmt.Sprintf("Unknown genre %d", fe.Value())
		case "max":
			return fmt.Sprintf("Movie cannot have more than %d genres", constants.MaxGenresPerMovie)
		}
		return "Movie must have at least one valid genre"
	case "director":
		return "Director name cannot be empty"
	case "actors":
		return fmt.Sprintf("Movie cannot have more than %d actors", constants.MaxActorsPerMovie)
	case "year":
		return fmt.Sprintf("Invalid year (must be between %d and %d)", constants.MinYear, constants.MaxYear)
	case "duration":
		return fmt.Sprintf("Invalid duration (must be between 1 and %d minutes)", constants.MaxDuration)
	case "rating":
		return "Invalid rating (must be between 0 and 10)"
	case "favorite":
		return "Invalid favorites count (must be non-negative)"
	case "revenue":
		return "Invalid revenue (must be non-negative)"
	}
	return fmt.Sprintf("failed %s check", fe.Tag())
}
