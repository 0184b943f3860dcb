package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthInfoModel mirrors the 'auth_info' table. UserID stays NULL until a
// domain user is attached on first resolution.
type AuthInfoModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       *uuid.UUID `gorm:"type:uuid;index"`
	Email        string     `gorm:"type:varchar(255)"`
	PasswordHash string     `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Identities []*IdentityModel        `gorm:"foreignKey:AuthInfoID"`
	Tokens     []*CredentialTokenModel `gorm:"foreignKey:AuthInfoID"`
}

// TableName explicitly sets the table name for GORM.
func (AuthInfoModel) TableName() string {
	return "auth_info"
}

// BeforeCreate assigns a fresh UUID when none was set by the caller.
func (m *AuthInfoModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// IdentityModel mirrors the 'auth_identity' table, one row per
// (provider, identity) pair. The composite unique index backs lookup by pair.
type IdentityModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthInfoID uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider   string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_identity_provider_identity"`
	Identity   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_identity_provider_identity"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "auth_identity"
}

// BeforeCreate assigns a fresh UUID when none was set by the caller.
func (m *IdentityModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// CredentialTokenModel mirrors the 'auth_token' table holding remembered
// session tokens. Only the SHA-256 hash of the raw token is stored.
type CredentialTokenModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	AuthInfoID uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash  string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt  time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialTokenModel) TableName() string {
	return "auth_token"
}

// BeforeCreate assigns a fresh UUID when none was set by the caller.
func (m *CredentialTokenModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
