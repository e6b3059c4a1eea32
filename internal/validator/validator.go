package validator

import (
	"regexp"
	"unicode/utf8"

	"TASK_MANAGER_API/internal/models"
)

var emailRegexp = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// Validator accumulates field-level validation errors. The first error
// reported for a field wins.
type Validator struct {
	errors map[string]string
}

// New creates an empty Validator
func New() *Validator {
	return &Validator{errors: make(map[string]string)}
}

// HasErrors reports whether any check failed
func (v *Validator) HasErrors() bool {
	return len(v.errors) != 0
}

// Errors returns the accumulated field errors
func (v *Validator) Errors() map[string]string {
	return v.errors
}

// Check records msg under key when cond is false
func (v *Validator) Check(cond bool, key, msg string) {
	if cond {
		return
	}
	if _, ok := v.errors[key]; !ok {
		v.errors[key] = msg
	}
}

// CheckEmail validates a required email address
func (v *Validator) CheckEmail(email string) {
	v.Check(email != "", "email", "must be provided")
	v.Check(email == "" || emailRegexp.MatchString(email), "email", "must be a valid email address")
	v.Check(utf8.RuneCountInString(email) <= 255, "email", "must be at most 255 characters")
}

// CheckPassword validates a registration password
func (v *Validator) CheckPassword(password string) {
	v.Check(password != "", "password", "must be provided")
	v.Check(len(password) >= 6, "password", "must be at least 6 characters long")
	v.Check(len(password) <= 72, "password", "must be at most 72 characters long")
}

// CheckRole validates an optional role value against the closed role set
func (v *Validator) CheckRole(role string) {
	if role == "" {
		return
	}
	_, err := models.ParseRole(role)
	v.Check(err == nil, "role", "must be one of: user, admin")
}

// CheckTitle validates a task title. The bound counts characters, not
// bytes, so multibyte titles are not penalized.
func (v *Validator) CheckTitle(title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(utf8.RuneCountInString(title) <= 255, "title", "must be at most 255 characters")
}
