package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Validator defines the interface for validation operations
type Validator interface {
	ValidateStruct(s any) map[string]string
}

// validatorImpl implements the Validator interface
type validatorImpl struct {
	validate *validator.Validate
}

var (
	codePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

	defaultValidator = NewValidator()
)

// NewValidator creates a new validator whose error keys are the JSON field names.
// It registers the "code" tag for identifiers that end up embedded in purchase order numbers.
func NewValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	_ = validate.RegisterValidation("code", func(fl validator.FieldLevel) bool {
		return codePattern.MatchString(fl.Field().String())
	})

	return &validatorImpl{
		validate: validate,
	}
}

// ValidateStruct validates a struct and returns field-specific errors keyed by JSON field name
func (v *validatorImpl) ValidateStruct(s any) map[string]string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	result := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		result[fieldErr.Field()] = formatValidationError(fieldErr, prettifyFieldName(fieldErr.Field()))
	}

	return result
}

// ValidateStruct validates a struct with the shared validator
func ValidateStruct(s any) map[string]string {
	return defaultValidator.ValidateStruct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// formatValidationError returns a more descriptive error message based on the validation tag
func formatValidationError(err validator.FieldError, fieldName string) string {
	switch err.Tag() {
	case "required":
		return fieldName + " is required"
	case "min":
		if isNumeric(err.Kind()) {
			return fieldName + " must be at least " + err.Param()
		}
		return fieldName + " must be at least " + err.Param() + " characters long"
	case "max":
		if isNumeric(err.Kind()) {
			return fieldName + " must be at most " + err.Param()
		}
		return fieldName + " must be at most " + err.Param() + " characters long"
	case "len":
		return fieldName + " must be exactly " + err.Param() + " characters long"
	case "numeric":
		return fieldName + " must be a numeric value"
	case "alphanum":
		return fieldName + " must contain only letters and numbers"
	case "code":
		return fieldName + " must start with a letter or digit and contain only letters, digits, '-' or '_'"
	case "gt":
		return fieldName + " must be greater than " + err.Param()
	case "gte":
		return fieldName + " must be greater than or equal to " + err.Param()
	case "lt":
		return fieldName + " must be less than " + err.Param()
	case "lte":
		return fieldName + " must be less than or equal to " + err.Param()
	case "oneof":
		return fieldName + " must be one of the following: " + err.Param()
	default:
		return fieldName + " is invalid"
	}
}

// prettifyFieldName turns a snake_case or camelCase field into a human-readable string
func prettifyFieldName(field string) string {
	field = strings.ReplaceAll(field, "_", " ")

	var result []rune
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' && field[i-1] >= 'a' && field[i-1] <= 'z' {
			result = append(result, ' ')
		}
		result = append(result, r)
	}
	return cases.Title(language.Und, cases.NoLower).String(string(result))
}
