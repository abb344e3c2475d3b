package models

import (
	"time"

	"github.com/fatflowers/membership/pkg/types"
)

// Membership is one member's paid enrollment period.
// Status only ever stores active or cancelled; use EffectiveStatus for the status a reader sees.
type Membership struct {
	ID               string                 `gorm:"column:id;type:uuid;primary_key" json:"id"`
	MembershipNumber string                 `gorm:"column:membership_number;type:varchar(32);not null;uniqueIndex" json:"membership_number"`
	MemberName       string                 `gorm:"column:member_name;type:varchar(128);not null" json:"member_name"`
	Email            string                 `gorm:"column:email;type:varchar(256);not null;index" json:"email"`
	Phone            string                 `gorm:"column:phone;type:varchar(64)" json:"phone"`
	Address          string                 `gorm:"column:address;type:varchar(512)" json:"address"`
	Duration         types.Duration         `gorm:"column:duration;type:varchar(32);not null" json:"duration"`
	Status           types.MembershipStatus `gorm:"column:status;type:varchar(32);not null;index" json:"status"`
	// StartDate is set once at creation and never changes.
	StartDate time.Time `gorm:"column:start_date;type:date;not null" json:"start_date"`
	// EndDate moves forward on every extension.
	EndDate time.Time `gorm:"column:end_date;type:date;not null;index" json:"end_date"`
	// Version guards concurrent extend/cancel/edit; every update bumps it.
	Version   int64     `gorm:"column:version;not null;default:1" json:"version"`
	CreatedBy string    `gorm:"column:created_by;type:varchar(64)" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Membership) TableName() string {
	return "membership"
}

// EffectiveStatus derives expiry on read: an active membership whose end date is
// before today reads as expired.
func (m *Membership) EffectiveStatus(today time.Time) types.MembershipStatus {
	if m.Status == types.MembershipStatusActive && m.EndDate.Before(today) {
		return types.MembershipStatusExpired
	}
	return m.Status
}
