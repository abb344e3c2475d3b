package membership

import (
	"fmt"
	"time"

	models "github.com/fatflowers/membership/internal/models"
	"github.com/fatflowers/membership/pkg/tool"
	types "github.com/fatflowers/membership/pkg/types"
)

const (
	MembershipNumberPrefix = "MEM"
	membershipNumberDigits = 6
	// MaxMembershipSequence is the largest sequence value that fits the fixed width.
	MaxMembershipSequence = 999999
)

// NextMembershipNumber formats the number following existingCount issued numbers,
// e.g. 41 -> MEM000042.
func NextMembershipNumber(existingCount int64) (string, error) {
	if existingCount < 0 {
		return "", fmt.Errorf("%w: negative membership count %d", ErrInvalidInput, existingCount)
	}
	next := existingCount + 1
	if next > MaxMembershipSequence {
		return "", fmt.Errorf("%w: sequence %d does not fit %d digits", ErrOverflow, next, membershipNumberDigits)
	}
	return fmt.Sprintf("%s%0*d", MembershipNumberPrefix, membershipNumberDigits, next), nil
}

// ComputeEndDate adds the duration's calendar months to the date of from.
func ComputeEndDate(from time.Time, d types.Duration) (time.Time, error) {
	months, ok := d.Months()
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown duration %q", ErrInvalidInput, d)
	}
	return tool.AddMonths(from, months), nil
}

// Extend applies an extension at now and returns the updated copy together with the
// history action. Active memberships extend from their current end date; expired
// ones are renewed from today.
func Extend(m *models.Membership, d types.Duration, now time.Time) (*models.Membership, types.MembershipAction, error) {
	today := tool.DateOf(now)
	next := *m

	var (
		from   time.Time
		action types.MembershipAction
	)
	switch status := m.EffectiveStatus(today); status {
	case types.MembershipStatusActive:
		from, action = m.EndDate, types.MembershipActionExtend
	case types.MembershipStatusExpired:
		from, action = today, types.MembershipActionRenew
	case types.MembershipStatusCancelled:
		return nil, "", fmt.Errorf("%w: cancelled membership %s cannot be extended", ErrInvalidTransition, m.MembershipNumber)
	default:
		return nil, "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	end, err := ComputeEndDate(from, d)
	if err != nil {
		return nil, "", err
	}
	next.EndDate = end
	next.Duration = d
	next.Status = types.MembershipStatusActive
	next.UpdatedAt = now
	if err := checkDates(&next); err != nil {
		return nil, "", err
	}
	return &next, action, nil
}

// Cancel moves an active membership to cancelled.
func Cancel(m *models.Membership, now time.Time) (*models.Membership, error) {
	switch status := m.EffectiveStatus(tool.DateOf(now)); status {
	case types.MembershipStatusActive:
	case types.MembershipStatusCancelled:
		return nil, fmt.Errorf("%w: membership %s is already cancelled", ErrInvalidTransition, m.MembershipNumber)
	case types.MembershipStatusExpired:
		return nil, fmt.Errorf("%w: membership %s has expired, nothing to cancel", ErrInvalidTransition, m.MembershipNumber)
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	next := *m
	next.Status = types.MembershipStatusCancelled
	next.UpdatedAt = now
	return &next, nil
}

// newMembership builds the initial active record starting today.
func newMembership(req *CreateRequest, number string, now time.Time) (*models.Membership, error) {
	start := tool.DateOf(now)
	end, err := ComputeEndDate(start, req.Duration)
	if err != nil {
		return nil, err
	}
	m := &models.Membership{
		ID:               tool.GenerateUUIDV7(),
		MembershipNumber: number,
		MemberName:       req.MemberName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		Duration:         req.Duration,
		Status:           types.MembershipStatusActive,
		StartDate:        start,
		EndDate:          end,
		Version:          1,
		CreatedBy:        req.OperatorID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return m, checkDates(m)
}

func checkDates(m *models.Membership) error {
	if m.EndDate.Before(m.StartDate) {
		return fmt.Errorf("%w: end date %s before start date %s", ErrInvalidTransition,
			m.EndDate.Format(time.DateOnly), m.StartDate.Format(time.DateOnly))
	}
	return nil
}
