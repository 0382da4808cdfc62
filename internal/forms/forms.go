package forms

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/sidebyside/internal/state"
)

// Registration is the reactive registration form.
type Registration struct {
	Name            string `validate:"required,min=2" label:"Name"`
	Email           string `validate:"required,email" label:"Email"`
	Age             int    `validate:"required,min=18,max=120" label:"Age"`
	Password        string `validate:"required,min=8,upperdigit" label:"Password"`
	ConfirmPassword string `validate:"required,eqfield=Password" label:"Confirm password"`
	Role            string `validate:"required,oneof=user admin" label:"Role"`
	Terms           bool   `validate:"required" label:"Terms"`
}

// NewRegistration returns an empty form with the default role.
func NewRegistration() Registration {
	return Registration{Role: "user"}
}

// RegistrationData is what a valid registration submits.
type RegistrationData struct {
	Name     string
	Email    string
	Age      int
	Password string
	Role     string
	Terms    bool
}

// Data drops the confirmation field.
func (r Registration) Data() RegistrationData {
	return RegistrationData{
		Name:     r.Name,
		Email:    r.Email,
		Age:      r.Age,
		Password: r.Password,
		Role:     r.Role,
		Terms:    r.Terms,
	}
}

// Schema is the schema-validation demo form.
type Schema struct {
	Email    string `validate:"required,zodemail" label:"Email"`
	Password string `validate:"required,strongpw" label:"Password"`
	Age      int    `validate:"required,minage=18" label:"Age"`
}

// FieldErrors maps lower-cased field names to a message.
type FieldErrors map[string]string

// Valid reports whether there are no errors.
func (f FieldErrors) Valid() bool {
	return len(f) == 0
}

// Fields returns the failing field names in sorted order.
func (f FieldErrors) Fields() []string {
	fields := make([]string, 0, len(f))
	for name := range f {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}

// Validate checks a form struct. Only the first failure per field is kept.
func Validate(form any) FieldErrors {
	out := FieldErrors{}
	err := validatorInstance().Struct(form)
	if err == nil {
		return out
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		out["form"] = err.Error()
		return out
	}
	for _, fe := range ves {
		key := strings.ToLower(fe.StructField())
		if _, seen := out[key]; seen {
			continue
		}
		out[key] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Bool {
			return fmt.Sprintf("%s must be accepted", label)
		}
		return fmt.Sprintf("%s is required", label)
	case "email", "zodemail":
		return "Invalid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "minage":
		return fmt.Sprintf("Must be at least %s years old", fe.Param())
	case "upperdigit":
		return fmt.Sprintf("%s needs an uppercase letter and a number", label)
	case "strongpw":
		value, _ := fe.Value().(string)
		return fmt.Sprintf("%s needs %s", label, strings.Join(missingRules(value), ", "))
	case "eqfield":
		return "Passwords do not match"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, fe.Tag())
	}
}

func missingRules(password string) []string {
	c := state.CheckPassword(password)
	var missing []string
	if !c.Length {
		missing = append(missing, fmt.Sprintf("%d+ characters", state.MinPasswordLength))
	}
	if !c.Upper {
		missing = append(missing, "an uppercase letter")
	}
	if !c.Lower {
		missing = append(missing, "a lowercase letter")
	}
	if !c.Digit {
		missing = append(missing, "a number")
	}
	if !c.Special {
		missing = append(missing, "a symbol")
	}
	return missing
}
