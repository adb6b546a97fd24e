package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/memberhub/portal/internal/core/domain"
)

var validate = validator.New()

type signupCredentials struct {
	Username string `validate:"required,alphanum,max=30"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,max=30"`
}

// Login only checks the email shape. The password is deliberately left to the
// hash comparison so a wrong-length password fails the same way as a wrong
// password, and the email rule is required/length only, not full syntax.
type loginCredentials struct {
	Email string `validate:"required,max=30"`
}

// ValidateSignup checks the candidate credentials and reports the first
// failing field as a *domain.ValidationError. Fields are checked in form
// order: username, email, password.
func ValidateSignup(username, email, password string) error {
	return firstFieldError(validate.Struct(signupCredentials{
		Username: username,
		Email:    email,
		Password: password,
	}))
}

// ValidateLogin checks only the login email against the required/length rule.
func ValidateLogin(email string) error {
	return firstFieldError(validate.Struct(loginCredentials{Email: email}))
}

func firstFieldError(err error) error {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return err
	}
	fe := ve[0]
	return &domain.ValidationError{
		Field:  strings.ToLower(fe.Field()),
		Reason: fieldReason(fe),
	}
}

// fieldReason converts a single validator error into a human-readable message.
func fieldReason(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "alphanum":
		return field + " must contain only letters and digits"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
