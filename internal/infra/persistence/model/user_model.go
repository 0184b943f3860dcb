// Package model contains the GORM persistence models mirroring the relational schema.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'user' table. IDs are generated application-side so
// the same mapping works on both the SQLite and PostgreSQL backends.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	DarkMode  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Permissions []*PermissionModel `gorm:"many2many:user_permissions"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "user"
}

// BeforeCreate assigns a fresh UUID when none was set by the caller.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
