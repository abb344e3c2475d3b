package models

import (
	"time"

	"github.com/fatflowers/membership/pkg/types"
)

// Identity is a signed-up user. Role is assigned once at sign-up and never changes.
type Identity struct {
	ID           string     `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Email        string     `gorm:"column:email;type:varchar(256);not null;uniqueIndex" json:"email"`
	Name         string     `gorm:"column:name;type:varchar(128)" json:"name"`
	Role         types.Role `gorm:"column:role;type:varchar(16);not null" json:"role"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(128);not null" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Identity) TableName() string {
	return "identity"
}

const AdminBootstrapKey = "first_admin"

// AdminBootstrap is a single-row marker claimed by the first admin. The primary key
// makes the claim single-winner across concurrent sign-ups.
type AdminBootstrap struct {
	Key        string `gorm:"column:key;type:varchar(32);primaryKey"`
	IdentityID string `gorm:"column:identity_id;type:uuid;not null"`
	CreatedAt  time.Time
}

func (AdminBootstrap) TableName() string {
	return "admin_bootstrap"
}
