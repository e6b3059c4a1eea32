package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"user", RoleUser, false},
		{"admin", RoleAdmin, false},
		{"", "", true},
		{"superuser", "", true},
		{"Admin", "", true}, // the role set is case-sensitive
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRole(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIdentityCanAccess(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	tests := []struct {
		name     string
		identity Identity
		ownerID  uuid.UUID
		want     bool
	}{
		{"owner accesses own resource", Identity{UserID: owner, Role: RoleUser}, owner, true},
		{"non-owner denied", Identity{UserID: other, Role: RoleUser}, owner, false},
		{"admin accesses any resource", Identity{UserID: other, Role: RoleAdmin}, owner, true},
		{"admin accesses own resource", Identity{UserID: owner, Role: RoleAdmin}, owner, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.identity.CanAccess(tt.ownerID); got != tt.want {
				t.Errorf("CanAccess = %v, want %v", got, tt.want)
			}
		})
	}
}
