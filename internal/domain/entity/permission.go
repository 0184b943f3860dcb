package entity

import (
	"time"

	"github.com/google/uuid"
)

// PermissionStylus is the baseline permission gating the Stylus feature area.
// It is created by the seed initializer on first startup.
const PermissionStylus = "STYLUS"

// Permission is a named capability token. Users hold permissions through a
// many-to-many relation; lookups are by exact name.
type Permission struct {
	ID        uuid.UUID // The unique identifier for the permission.
	Name      string    // The capability name, e.g. "STYLUS".
	CreatedAt time.Time // Timestamp of when this permission was created.
}
