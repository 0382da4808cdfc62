package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegistration() Registration {
	r := NewRegistration()
	r.Name = "Ada"
	r.Email = "ada@example.com"
	r.Age = 36
	r.Password = "Analytical1"
	r.ConfirmPassword = "Analytical1"
	r.Terms = true
	return r
}

func TestRegistrationValid(t *testing.T) {
	errs := Validate(validRegistration())
	assert.True(t, errs.Valid(), "unexpected errors: %v", errs)
}

func TestRegistrationErrors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Registration)
		field   string
		message string
	}{
		{"short name", func(r *Registration) { r.Name = "A" }, "name", "Name must be at least 2 characters"},
		{"bad email", func(r *Registration) { r.Email = "nope" }, "email", "Invalid email"},
		{"too young", func(r *Registration) { r.Age = 17 }, "age", "Age must be at least 18"},
		{"too old", func(r *Registration) { r.Age = 121 }, "age", "Age must be at most 120"},
		{"missing age", func(r *Registration) { r.Age = 0 }, "age", "Age is required"},
		{"no digit", func(r *Registration) { r.Password, r.ConfirmPassword = "Analytical", "Analytical" }, "password", "Password needs an uppercase letter and a number"},
		{"mismatch", func(r *Registration) { r.ConfirmPassword = "Other1234" }, "confirmpassword", "Passwords do not match"},
		{"terms", func(r *Registration) { r.Terms = false }, "terms", "Terms must be accepted"},
		{"role", func(r *Registration) { r.Role = "root" }, "role", "Role must be one of: user, admin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validRegistration()
			tc.mutate(&r)
			errs := Validate(r)
			assert.Equal(t, []string{tc.field}, errs.Fields())
			assert.Equal(t, tc.message, errs[tc.field])
		})
	}
}

func TestSchemaValidation(t *testing.T) {
	ok := Schema{Email: "dev@angular.dev", Password: "Aa1!aaaa", Age: 18}
	assert.True(t, Validate(ok).Valid())

	errs := Validate(Schema{Email: "dev@localhost", Password: "abc", Age: 12})
	assert.Equal(t, []string{"age", "email", "password"}, errs.Fields())
	assert.Equal(t, "Invalid email", errs["email"])
	assert.Equal(t, "Must be at least 18 years old", errs["age"])
	assert.Equal(t, "Password needs 8+ characters, an uppercase letter, a number, a symbol", errs["password"])
}

func TestSchemaRequiredBeforeCustomRules(t *testing.T) {
	errs := Validate(Schema{})
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Password is required", errs["password"])
	assert.Equal(t, "Age is required", errs["age"])
}

func TestValidateNonStruct(t *testing.T) {
	errs := Validate(42)
	assert.False(t, errs.Valid())
	assert.Contains(t, errs, "form")
}

func TestRegistrationDataDropsConfirmation(t *testing.T) {
	data := validRegistration().Data()
	assert.Equal(t, RegistrationData{
		Name:     "Ada",
		Email:    "ada@example.com",
		Age:      36,
		Password: "Analytical1",
		Role:     "user",
		Terms:    true,
	}, data)
}
