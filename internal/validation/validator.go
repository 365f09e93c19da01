package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"debt-tracker/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("account_id", validateAccountID)
	_ = v.RegisterValidation("sort_key", validateSortKey)
	_ = v.RegisterValidation("sort_direction", validateSortDirection)
	_ = v.RegisterValidation("payoff_strategy", validatePayoffStrategy)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

var accountIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.:-]{1,64}$`)

// validateAccountID accepts an empty ID or up to 64 URL-safe characters
func validateAccountID(fl validator.FieldLevel) bool {
	id := strings.TrimSpace(fl.Field().String())
	if id == "" {
		return true
	}
	return accountIDPattern.MatchString(id)
}

// validateSortKey allows an empty key, meaning snapshot order
func validateSortKey(fl validator.FieldLevel) bool {
	key := fl.Field().String()
	return key == "" || models.IsValidSortKey(models.SortKey(key))
}

// validateSortDirection allows an empty direction, meaning ascending
func validateSortDirection(fl validator.FieldLevel) bool {
	dir := strings.ToLower(fl.Field().String())
	return dir == "" || models.IsValidSortDirection(models.SortDirection(dir))
}

func validatePayoffStrategy(fl validator.FieldLevel) bool {
	strategy := strings.ToLower(fl.Field().String())
	return models.IsValidPayoffStrategy(models.PayoffStrategy(strategy))
}

// FieldMessages flattens a validation failure into path -> message pairs,
// e.g. "accounts[2].name" -> "is required". ok is false for any other error.
func FieldMessages(err error) (map[string]string, bool) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, false
	}

	messages := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		messages[FieldPath(fe)] = FormatFieldError(fe)
	}
	return messages, true
}

// FieldPath is the JSON path of the failing field without the Go struct
// names of the root and of embedded structs
func FieldPath(fe validator.FieldError) string {
	segments := strings.Split(fe.Namespace(), ".")[1:]
	path := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment == "" || unicode.IsUpper([]rune(segment)[0]) {
			continue
		}
		path = append(path, segment)
	}
	if len(path) == 0 {
		return fe.Field()
	}
	return strings.Join(path, ".")
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "account_id":
		return "must be 1-64 letters, digits or . _ : -"
	case "sort_key":
		return "must be one of: name, apr, balance, utilization, interestPer100"
	case "sort_direction":
		return "must be asc or desc"
	case "payoff_strategy":
		return "must be avalanche or snowball"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
