package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"TASK_MANAGER_API/internal/middleware"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "a@b.com",
		"password": "secret123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: got status %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	decode(t, w, &resp)
	if resp.ID == "" {
		t.Error("expected a server-generated id")
	}
	if resp.Email != "a@b.com" {
		t.Errorf("email = %q, want %q", resp.Email, "a@b.com")
	}
	if resp.Role != "user" {
		t.Errorf("role = %q, want default %q", resp.Role, "user")
	}

	token := env.login(t, "a@b.com", "secret123")

	// The issued token must verify and carry the right identity
	identity, err := middleware.ValidateToken(token, &env.cfg.JWT)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if identity.UserID.String() != resp.ID {
		t.Errorf("token subject = %s, want %s", identity.UserID, resp.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv()
	env.register(t, "dup@e.com", "secret123", "")

	// Second registration fails regardless of other field differences
	w := env.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    "dup@e.com",
		"password": "different456",
		"role":     "admin",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: got status %d, want 400", w.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv()

	tests := []struct {
		name  string
		body  map[string]string
		field string
	}{
		{"missing email", map[string]string{"password": "secret123"}, "email"},
		{"malformed email", map[string]string{"email": "not-an-email", "password": "secret123"}, "email"},
		{"overlong email", map[string]string{"email": strings.Repeat("a", 250) + "@example.com", "password": "secret123"}, "email"},
		{"short password", map[string]string{"email": "v@e.com", "password": "short"}, "password"},
		{"unknown role", map[string]string{"email": "v@e.com", "password": "secret123", "role": "superuser"}, "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/auth/register", "", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("got status %d, want 400", w.Code)
			}
			var resp struct {
				Errors map[string]string `json:"errors"`
			}
			decode(t, w, &resp)
			if _, ok := resp.Errors[tt.field]; !ok {
				t.Errorf("expected a field error for %q, got %v", tt.field, resp.Errors)
			}
		})
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv()
	env.register(t, "x@y.com", "secret123", "")

	w := env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "x@y.com",
		"password": "bad-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: got status %d, want 401", w.Code)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "nobody@e.com",
		"password": "secret123",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unknown email: got status %d, want 401", w.Code)
	}
}

func TestPasswordHashNeverStoredPlain(t *testing.T) {
	env := newTestEnv()
	env.register(t, "h@e.com", "secret123", "")

	u, err := env.users.GetByEmail(t.Context(), "h@e.com")
	if err != nil {
		t.Fatal(err)
	}
	if u.PasswordHash == "secret123" || u.PasswordHash == "" {
		t.Errorf("password stored without hashing: %q", u.PasswordHash)
	}
}
