package membership

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	models "github.com/fatflowers/membership/internal/models"
	types "github.com/fatflowers/membership/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextMembershipNumber(t *testing.T) {
	tests := []struct {
		count   int64
		want    string
		wantErr error
	}{
		{count: 0, want: "MEM000001"},
		{count: 41, want: "MEM000042"},
		{count: 999998, want: "MEM999999"},
		{count: 999999, wantErr: ErrOverflow},
		{count: -1, wantErr: ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.count), func(t *testing.T) {
			got, err := NextMembershipNumber(tt.count)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeEndDate(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		d    types.Duration
		want time.Time
	}{
		{"six months", date(2024, 1, 15), types.DurationSixMonths, date(2024, 7, 15)},
		{"one year", date(2024, 1, 15), types.DurationOneYear, date(2025, 1, 15)},
		{"two years", date(2024, 1, 15), types.DurationTwoYears, date(2026, 1, 15)},
		{"clamps to february", date(2024, 8, 31), types.DurationSixMonths, date(2025, 2, 28)},
		{"leap day plus one year", date(2024, 2, 29), types.DurationOneYear, date(2025, 2, 28)},
		{"leap day plus two years", date(2024, 2, 29), types.DurationTwoYears, date(2026, 2, 28)},
		{"time of day dropped", time.Date(2024, 3, 10, 17, 45, 0, 0, time.UTC), types.DurationSixMonths, date(2024, 9, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeEndDate(tt.from, tt.d)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}

	_, err := ComputeEndDate(date(2024, 1, 1), "3_months")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func activeMembership(start, end time.Time) *models.Membership {
	return &models.Membership{
		ID:               "m-1",
		MembershipNumber: "MEM000001",
		Duration:         types.DurationSixMonths,
		Status:           types.MembershipStatusActive,
		StartDate:        start,
		EndDate:          end,
		Version:          1,
	}
}

func TestExtend(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	t.Run("active extends from end date", func(t *testing.T) {
		m := activeMembership(date(2024, 1, 1), date(2024, 12, 31))
		next, action, err := Extend(m, types.DurationOneYear, now)
		require.NoError(t, err)
		assert.Equal(t, types.MembershipActionExtend, action)
		assert.Equal(t, date(2025, 12, 31), next.EndDate)
		assert.Equal(t, types.DurationOneYear, next.Duration)
		assert.Equal(t, now, next.UpdatedAt)
		assert.Equal(t, date(2024, 12, 31), m.EndDate, "input must not be mutated")
	})

	t.Run("end date today is still active", func(t *testing.T) {
		m := activeMembership(date(2024, 1, 1), date(2024, 6, 1))
		next, action, err := Extend(m, types.DurationSixMonths, now)
		require.NoError(t, err)
		assert.Equal(t, types.MembershipActionExtend, action)
		assert.Equal(t, date(2024, 12, 1), next.EndDate)
	})

	t.Run("expired renews from today", func(t *testing.T) {
		m := activeMembership(date(2023, 1, 1), date(2024, 1, 1))
		next, action, err := Extend(m, types.DurationSixMonths, now)
		require.NoError(t, err)
		assert.Equal(t, types.MembershipActionRenew, action)
		assert.Equal(t, date(2024, 12, 1), next.EndDate)
		assert.Equal(t, types.MembershipStatusActive, next.Status)
		assert.Equal(t, date(2023, 1, 1), next.StartDate)
	})

	t.Run("stored expired renews", func(t *testing.T) {
		m := activeMembership(date(2023, 1, 1), date(2024, 1, 1))
		m.Status = types.MembershipStatusExpired
		next, action, err := Extend(m, types.DurationOneYear, now)
		require.NoError(t, err)
		assert.Equal(t, types.MembershipActionRenew, action)
		assert.Equal(t, types.MembershipStatusActive, next.Status)
	})

	t.Run("cancelled is rejected", func(t *testing.T) {
		m := activeMembership(date(2024, 1, 1), date(2024, 12, 31))
		m.Status = types.MembershipStatusCancelled
		_, _, err := Extend(m, types.DurationOneYear, now)
		require.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown duration", func(t *testing.T) {
		_, _, err := Extend(activeMembership(date(2024, 1, 1), date(2024, 12, 31)), "forever", now)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCancel(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	next, err := Cancel(activeMembership(date(2024, 1, 1), date(2024, 12, 31)), now)
	require.NoError(t, err)
	assert.Equal(t, types.MembershipStatusCancelled, next.Status)
	assert.Equal(t, now, next.UpdatedAt)

	_, err = Cancel(next, now)
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = Cancel(activeMembership(date(2023, 1, 1), date(2024, 1, 1)), now)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestNewMembership(t *testing.T) {
	now := time.Date(2024, 8, 31, 23, 0, 0, 0, time.UTC)
	m, err := newMembership(&CreateRequest{MemberName: "Ann", Email: "ann@example.com", Duration: types.DurationSixMonths, OperatorID: "admin-1"}, "MEM000001", now)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 8, 31), m.StartDate)
	assert.Equal(t, date(2025, 2, 28), m.EndDate)
	assert.Equal(t, types.MembershipStatusActive, m.Status)
	assert.Equal(t, int64(1), m.Version)
	assert.Equal(t, "admin-1", m.CreatedBy)
	assert.NotEmpty(t, m.ID)
}

var durations = []types.Duration{types.DurationSixMonths, types.DurationOneYear, types.DurationTwoYears}

func genDate(t *rapid.T, label string) time.Time {
	return date(2000, 1, 1).AddDate(0, 0, rapid.IntRange(0, 365*60).Draw(t, label))
}

func TestProperty_MembershipNumberFormat(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.Int64Range(0, MaxMembershipSequence-1).Draw(t, "count")
		got, err := NextMembershipNumber(count)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 9 || got[:3] != "MEM" {
			t.Fatalf("bad format %q", got)
		}
		var n int64
		if _, err := fmt.Sscanf(got[3:], "%d", &n); err != nil || n != count+1 {
			t.Fatalf("%q does not encode %d", got, count+1)
		}
	})
}

func TestProperty_EndDateNeverBeforeStart(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		from := genDate(t, "from")
		d := rapid.SampledFrom(durations).Draw(t, "duration")
		end, err := ComputeEndDate(from, d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !end.After(from) {
			t.Fatalf("end %s not after from %s", end, from)
		}
		months, _ := d.Months()
		if gap := (end.Year()-from.Year())*12 + int(end.Month()-from.Month()); gap != months {
			t.Fatalf("end %s is %d months from %s, want %d", end, gap, from, months)
		}
	})
}

func TestProperty_TransitionsKeepInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := genDate(t, "start")
		end, _ := ComputeEndDate(start, rapid.SampledFrom(durations).Draw(t, "initial"))
		m := activeMembership(start, end)
		now := start

		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			now = now.AddDate(0, 0, rapid.IntRange(0, 400).Draw(t, "advance"))
			if rapid.IntRange(0, 9).Draw(t, "op") == 0 {
				next, err := Cancel(m, now)
				if m.EffectiveStatus(date(now.Year(), now.Month(), now.Day())) != types.MembershipStatusActive {
					if !errors.Is(err, ErrInvalidTransition) {
						t.Fatalf("cancel of non-active membership: %v", err)
					}
					continue
				}
				if err != nil {
					t.Fatalf("cancel: %v", err)
				}
				m = next
				continue
			}
			next, _, err := Extend(m, rapid.SampledFrom(durations).Draw(t, "extend"), now)
			if m.Status == types.MembershipStatusCancelled {
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("extend of cancelled membership: %v", err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("extend: %v", err)
			}
			if next.EndDate.Before(m.EndDate) {
				t.Fatalf("end date moved backwards: %s -> %s", m.EndDate, next.EndDate)
			}
			m = next
			if m.EndDate.Before(m.StartDate) {
				t.Fatalf("end %s before start %s", m.EndDate, m.StartDate)
			}
			if !m.StartDate.Equal(start) {
				t.Fatalf("start date changed")
			}
		}
	})
}
