package validator

import (
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance for struct tags
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Room type validation
	validate.RegisterValidation("room_type", func(fl validator.FieldLevel) bool {
		t := fl.Field().String()
		return t == "Standard" || t == "Deluxe" || t == "Suite"
	})

	// Decimal amount with at most two fractional digits
	validate.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		return ValidMoney(fl.Field().String())
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gt":
			errors[field] = "Value must be greater than " + err.Param()
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "room_type":
			errors[field] = "Invalid room type"
		case "money":
			errors[field] = "Invalid amount format"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// FirstError flattens a field-error map into a single deterministic message
func FirstError(errs map[string]string) string {
	if len(errs) == 0 {
		return ""
	}
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields[0] + ": " + errs[fields[0]]
}

// Pure format validators. These are stateless: compiled patterns are
// immutable and each function depends only on its argument.

var (
	roomNumberRe = regexp.MustCompile(`^\d+$`)
	moneyRe      = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	bedsRe       = regexp.MustCompile(`^\d+$`)
	nameRe       = regexp.MustCompile(`^[a-zA-Z]+(?:\s+[a-zA-Z]+)*$`)
	emailRe      = regexp.MustCompile(`^[a-z0-9._-]+@[a-z0-9.-]+\.[a-z]{2,4}$`)
)

// ValidRoomNumber reports whether s is a positive-integer room number
func ValidRoomNumber(s string) bool {
	return roomNumberRe.MatchString(s)
}

// ValidMoney reports whether s is a decimal amount with at most two
// fractional digits
func ValidMoney(s string) bool {
	return moneyRe.MatchString(s)
}

// ValidBeds reports whether s is a positive-integer bed count
func ValidBeds(s string) bool {
	return bedsRe.MatchString(s)
}

// ValidName reports whether s is a space-separated sequence of alphabetic words
func ValidName(s string) bool {
	return nameRe.MatchString(s)
}

// ValidEmail reports whether s looks like a lowercase email address
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidPassword requires 8-16 characters with at least one uppercase letter,
// one lowercase letter, one digit and one of !@#$%^&*()
func ValidPassword(s string) bool {
	if len(s) < 8 || len(s) > 16 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("!@#$%^&*()", r):
			special = true
		}
	}
	return upper && lower && digit && special
}
