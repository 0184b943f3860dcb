package repository

import (
	"context"
	"errors"

	"stylus/internal/domain/entity"
)

// ErrPermissionNotFound is returned when no permission matches a lookup.
var ErrPermissionNotFound = errors.New("permission not found")

// PermissionRepository defines the operations for permission persistence.
//
// Name uniqueness is enforced by a unique index plus lookup-before-insert;
// concurrent seeders racing on the same name surface as a duplicate-key
// error from Create rather than a second row.
type PermissionRepository interface {
	// FindByName retrieves a permission by exact name match.
	FindByName(ctx context.Context, name string) (*entity.Permission, error)

	// Create persists a new permission.
	Create(ctx context.Context, permission *entity.Permission) error

	// CountByName returns the number of permissions with the given name.
	CountByName(ctx context.Context, name string) (int64, error)
}
