package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vidseo/publish-ms-go/internal/usecase/upload"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Tell the validator to use the JSON tag as the “field name”
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// Grab the value of `json:"foo,omitempty"`
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			// fallback to the Go field name or skip
			return fld.Name
		}
		return name
	})

	// Empty means "not provided"; anything else has to be a date-time the
	// publish policy calculator can parse.
	if err := validate.RegisterValidation("scheduletime", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		return v == "" || upload.ParseableSchedule(v)
	}); err != nil {
		panic(err)
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Issue is one field-level validation failure.
type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ErrorsToIssues flattens validator errors into the issues list the API
// returns. Every offending field is reported, not just the first.
func ErrorsToIssues(validationErrs error) []Issue {
	var issues []Issue
	for _, fieldErr := range validationErrs.(validator.ValidationErrors) {
		reason := fieldErr.Tag()
		if fieldErr.Param() != "" {
			reason += "=" + fieldErr.Param()
		}
		issues = append(issues, Issue{Field: fieldErr.Field(), Reason: reason})
	}
	return issues
}
