package models

import (
	"time"

	"github.com/fatflowers/membership/pkg/types"

	"gorm.io/datatypes"
)

// MembershipLog is the membership transaction history: one row per create, extension,
// renewal, cancellation or profile edit.
type MembershipLog struct {
	ID               string                 `gorm:"column:id;type:uuid;primary_key;index:idx_membership_id_id,priority:2,sort:desc" json:"id"`
	MembershipID     string                 `gorm:"column:membership_id;type:uuid;not null;index:idx_membership_id_id,priority:1" json:"membership_id"`
	MembershipNumber string                 `gorm:"column:membership_number;type:varchar(32);not null" json:"membership_number"`
	Action           types.MembershipAction `gorm:"column:action;type:varchar(32);not null" json:"action"`
	OperatorID       string                 `gorm:"column:operator_id;type:varchar(64)" json:"operator_id"`
	// Before is the membership before the change; null on create.
	Before datatypes.JSONType[*Membership] `gorm:"column:before;type:jsonb;default:'null'" json:"before"`
	After  datatypes.JSONType[*Membership] `gorm:"column:after;type:jsonb;default:'null'" json:"after"`
	// Extra holds action details such as the requested duration.
	Extra     datatypes.JSONMap `gorm:"column:extra;type:jsonb;default:'{}'" json:"extra"`
	CreatedAt time.Time         `gorm:"index" json:"created_at"`
}

func (MembershipLog) TableName() string {
	return "membership_log"
}
