// Package validation implements the client-side form checks for login and
// signup. The checks are purely advisory: the server re-validates everything.
// Error messages are field-scoped and stable so screens can show them next to
// the offending input.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	minAge = 13
	maxAge = 100
)

var nameChars = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Letters, spaces, hyphens and apostrophes only.
	_ = v.RegisterValidation("name_chars", func(fl validator.FieldLevel) bool {
		return nameChars.MatchString(fl.Field().String())
	})
	return v
}

// SignupForm carries the raw signup inputs. Last name is deliberately
// unconstrained.
type SignupForm struct {
	FirstName  string `validate:"required,min=2,max=50,name_chars"`
	LastName   string `validate:"-"`
	University string `validate:"required,min=3,max=100"`
	Email      string `validate:"required,email"`
	Major      string `validate:"required,min=2,max=100"`
	DOB        string
	Password   string
	AccessCode string `validate:"required,min=4,max=50"`
}

// ValidateSignup returns field-scoped messages for every failing input, or an
// empty map when the form may be submitted. Date of birth and password are
// checked by dedicated ladders because each rule carries its own message.
func ValidateSignup(f SignupForm) map[string]string {
	errs := map[string]string{}

	if err := validate.Struct(f); err != nil {
		var fieldErrs validator.ValidationErrors
		if ok := asValidationErrors(err, &fieldErrs); ok {
			for _, fe := range fieldErrs {
				errs[fieldKey(fe.StructField())] = messageFor(fe.StructField(), fe.Tag())
			}
		}
	}

	if ok, msg := ValidateDateOfBirth(f.DOB); !ok {
		errs["dob"] = msg
	}
	if ok, msg := ValidatePassword(f.Password); !ok {
		errs["password"] = msg
	}

	return errs
}

// ValidateLogin checks the login identifier (a syntactically valid email) and
// a non-empty password.
func ValidateLogin(email, password string) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(email) == "" {
		errs["username"] = "Email is required"
	} else if !IsValidEmail(email) {
		errs["username"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(password) == "" {
		errs["password"] = "Password is required"
	}

	return errs
}

// IsValidEmail reports whether email is syntactically valid.
func IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// ValidatePassword enforces the password policy: at least 8 characters with
// one lowercase letter, one uppercase letter and one digit. The message names
// the first rule that failed.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasLower {
		return false, "Password must contain at least one lowercase letter"
	}
	if !hasUpper {
		return false, "Password must contain at least one uppercase letter"
	}
	if !hasDigit {
		return false, "Password must contain at least one number"
	}
	return true, ""
}

// ValidateDateOfBirth expects YYYY-MM-DD and an implied age between 13 and
// 100 years.
func ValidateDateOfBirth(dob string) (bool, string) {
	if strings.TrimSpace(dob) == "" {
		return false, "Date of birth is required"
	}
	date, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return false, "Please enter a valid date"
	}
	age := time.Now().Year() - date.Year()
	if age < minAge {
		return false, "You must be at least 13 years old to register"
	}
	if age > maxAge {
		return false, "Please enter a valid date of birth"
	}
	return true, ""
}

// ValidateAccessCode checks the invite code's shape (4-50 characters). The
// code itself is verified server-side at signup.
func ValidateAccessCode(code string) (bool, string) {
	trimmed := strings.TrimSpace(code)
	switch {
	case trimmed == "":
		return false, "Access code is required"
	case len(trimmed) < 4:
		return false, "Access code must be at least 4 characters long"
	case len(trimmed) > 50:
		return false, "Access code must be less than 50 characters"
	}
	return true, ""
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}

func fieldKey(structField string) string {
	switch structField {
	case "FirstName":
		return "first_name"
	case "University":
		return "university"
	case "Email":
		return "email"
	case "Major":
		return "major"
	case "AccessCode":
		return "access_code"
	default:
		return strings.ToLower(structField)
	}
}

func messageFor(field, tag string) string {
	switch field {
	case "FirstName":
		switch tag {
		case "required":
			return "First name is required"
		case "min":
			return "First name must be at least 2 characters long"
		case "max":
			return "First name must be less than 50 characters"
		case "name_chars":
			return "First name can only contain letters, spaces, hyphens, and apostrophes"
		}
	case "University":
		switch tag {
		case "required":
			return "University is required"
		case "min":
			return "University name must be at least 3 characters long"
		case "max":
			return "University name must be less than 100 characters"
		}
	case "Email":
		if tag == "required" {
			return "Email is required"
		}
		return "Please enter a valid email address"
	case "Major":
		switch tag {
		case "required":
			return "Major is required"
		case "min":
			return "Major must be at least 2 characters long"
		case "max":
			return "Major must be less than 100 characters"
		}
	case "AccessCode":
		switch tag {
		case "required":
			return "Access code is required"
		case "min":
			return "Access code must be at least 4 characters long"
		case "max":
			return "Access code must be less than 50 characters"
		}
	}
	return "Invalid value"
}
