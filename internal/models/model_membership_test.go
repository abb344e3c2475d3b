package models

import (
	"testing"
	"time"

	"github.com/fatflowers/membership/pkg/types"
	"github.com/stretchr/testify/require"
)

func TestTableNames(t *testing.T) {
	require.Equal(t, "membership", Membership{}.TableName())
	require.Equal(t, "membership_log", MembershipLog{}.TableName())
	require.Equal(t, "membership_sequence", MembershipSequence{}.TableName())
	require.Equal(t, "identity", Identity{}.TableName())
	require.Equal(t, "admin_bootstrap", AdminBootstrap{}.TableName())
}

func TestMembership_EffectiveStatus(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name   string
		status types.MembershipStatus
		end    time.Time
		want   types.MembershipStatus
	}{
		{name: "active in range", status: types.MembershipStatusActive, end: today.AddDate(0, 1, 0), want: types.MembershipStatusActive},
		{name: "active ends today", status: types.MembershipStatusActive, end: today, want: types.MembershipStatusActive},
		{name: "active past end", status: types.MembershipStatusActive, end: today.AddDate(0, 0, -1), want: types.MembershipStatusExpired},
		{name: "cancelled past end stays cancelled", status: types.MembershipStatusCancelled, end: today.AddDate(-1, 0, 0), want: types.MembershipStatusCancelled},
		{name: "stored expired", status: types.MembershipStatusExpired, end: today.AddDate(0, 0, -3), want: types.MembershipStatusExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Membership{Status: tt.status, EndDate: tt.end}
			require.Equal(t, tt.want, m.EffectiveStatus(today))
		})
	}
}
