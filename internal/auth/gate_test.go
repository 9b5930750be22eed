package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hawkerhero/internal/errors"
	"hawkerhero/internal/model"
)

var (
	alice = &model.Identity{ID: 1, Username: "alice", Role: model.RoleUser}
	bob   = &model.Identity{ID: 2, Username: "bob", Role: model.RoleUser}
	admin = &model.Identity{ID: 9, Username: "admin", Role: model.RoleAdmin}
)

func TestRequireAuthenticated(t *testing.T) {
	got, err := RequireAuthenticated(alice)
	assert.NoError(t, err)
	assert.Equal(t, alice, got)

	_, err = RequireAuthenticated(nil)
	assert.ErrorIs(t, err, errors.ErrNotAuthenticated)

	_, err = RequireAuthenticated(&model.Identity{})
	assert.ErrorIs(t, err, errors.ErrNotAuthenticated)
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name    string
		id      *model.Identity
		wantErr error
	}{
		{"anonymous", nil, errors.ErrNotAuthenticated},
		{"regular user", alice, errors.ErrNotAuthorized},
		{"admin", admin, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RequireAdmin(tt.id)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	tests := []struct {
		name    string
		id      *model.Identity
		owner   uint
		wantErr error
	}{
		{"anonymous", nil, alice.ID, errors.ErrNotAuthenticated},
		{"owner", alice, alice.ID, nil},
		{"other user", bob, alice.ID, errors.ErrNotAuthorized},
		{"admin on someone else's resource", admin, alice.ID, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireOwnerOrAdmin(tt.id, tt.owner)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
