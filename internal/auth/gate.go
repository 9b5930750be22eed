package auth

import (
	"hawkerhero/internal/errors"
	"hawkerhero/internal/model"
)

// RequireAuthenticated passes through a logged in identity.
func RequireAuthenticated(id *model.Identity) (*model.Identity, error) {
	if id == nil || id.ID == 0 {
		return nil, errors.ErrNotAuthenticated
	}
	return id, nil
}

// RequireAdmin passes through an identity holding the admin role.
func RequireAdmin(id *model.Identity) (*model.Identity, error) {
	id, err := RequireAuthenticated(id)
	if err != nil {
		return nil, err
	}
	if !id.IsAdmin() {
		return nil, errors.ErrNotAuthorized
	}
	return id, nil
}

// RequireOwnerOrAdmin allows the action when id owns the resource or is an admin.
func RequireOwnerOrAdmin(id *model.Identity, ownerID uint) error {
	id, err := RequireAuthenticated(id)
	if err != nil {
		return err
	}
	if id.IsAdmin() || id.ID == ownerID {
		return nil
	}
	return errors.ErrNotAuthorized
}
