package types

// Duration is the selectable enrollment length used at creation and extension.
type Duration string

const (
	DurationSixMonths Duration = "6_months"
	DurationOneYear   Duration = "1_year"
	DurationTwoYears  Duration = "2_years"
)

var durationMonths = map[Duration]int{
	DurationSixMonths: 6,
	DurationOneYear:   12,
	DurationTwoYears:  24,
}

// Months returns the number of calendar months for the duration and false for an
// unrecognized tag.
func (d Duration) Months() (int, bool) {
	m, ok := durationMonths[d]
	return m, ok
}

func (d Duration) Valid() bool {
	_, ok := durationMonths[d]
	return ok
}

type MembershipStatus string

const (
	MembershipStatusActive    MembershipStatus = "active"
	MembershipStatusCancelled MembershipStatus = "cancelled"
	MembershipStatusExpired   MembershipStatus = "expired"
)

func (s MembershipStatus) Valid() bool {
	switch s {
	case MembershipStatusActive, MembershipStatusCancelled, MembershipStatusExpired:
		return true
	}
	return false
}

// Role is the authorization level of a signed-in identity.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// MembershipAction is the reason recorded in the membership transaction history.
type MembershipAction string

const (
	MembershipActionCreate        MembershipAction = "create"
	MembershipActionExtend        MembershipAction = "extend"
	MembershipActionRenew         MembershipAction = "renew"
	MembershipActionCancel        MembershipAction = "cancel"
	MembershipActionUpdateProfile MembershipAction = "update_profile"
)
