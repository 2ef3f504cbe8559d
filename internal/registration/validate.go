package registration

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field keys, shared by the schema, FieldErrors and the form views.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// Input is the registration form payload.
type Input struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email,tld"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// SignInInput is the sign-in form payload.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email,tld"`
	Password string `json:"password" validate:"required"`
}

// FieldErrors maps a field key to a human-readable message.
// An empty map means the input is valid.
type FieldErrors map[string]string

// Valid reports whether there are no field errors.
func (fe FieldErrors) Valid() bool { return len(fe) == 0 }

// Get returns the message for field, or "".
func (fe FieldErrors) Get(field string) string { return fe[field] }

// messages is keyed by "<field>.<tag>". The validator stops at the first
// failing tag per field, so an empty confirmation never also reports a mismatch.
var messages = map[string]string{
	FieldName + ".required":            "Name is required",
	FieldEmail + ".required":           "Invalid email",
	FieldEmail + ".email":              "Invalid email",
	FieldEmail + ".tld":                "Invalid email",
	FieldPassword + ".required":        "Password is required",
	FieldConfirmPassword + ".required": "Confirm password is required",
	FieldConfirmPassword + ".eqfield":  "Passwords do not match",
}

var schema = newSchema()

func newSchema() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their json key so errors line up with form keys.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("tld", hasLetterTLD); err != nil {
		panic(err)
	}
	return v
}

// hasLetterTLD requires the domain to end in a label of two or more ASCII
// letters, so "a@b.c" and "a@host.123" are rejected.
func hasLetterTLD(fl validator.FieldLevel) bool {
	addr := fl.Field().String()
	at := strings.LastIndexByte(addr, '@')
	dot := strings.LastIndexByte(addr, '.')
	if at < 0 || dot < at {
		return false
	}
	tld := addr[dot+1:]
	if len(tld) < 2 {
		return false
	}
	for _, r := range tld {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// Validate checks a registration input. It is a pure function of in.
func Validate(in Input) FieldErrors {
	return check(in)
}

// ValidateSignIn checks a sign-in input.
func ValidateSignIn(in SignInInput) FieldErrors {
	return check(in)
}

func check(v any) FieldErrors {
	errs := FieldErrors{}
	err := schema.Struct(v)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: a programming error, not user input.
		panic(err)
	}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		msg, ok := messages[field+"."+fe.Tag()]
		if !ok {
			msg = "Invalid " + field
		}
		errs[field] = msg
	}
	return errs
}
