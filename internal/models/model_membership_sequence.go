package models

// MembershipSequence is a named counter. Increments happen with an UPDATE inside the
// caller's transaction so concurrent writers serialize on the row.
type MembershipSequence struct {
	Name  string `gorm:"column:name;type:varchar(64);primaryKey"`
	Value int64  `gorm:"column:value;not null;default:0"`
}

func (MembershipSequence) TableName() string {
	return "membership_sequence"
}
