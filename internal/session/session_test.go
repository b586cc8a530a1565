package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sprillex/hahealth/internal/model"
)

func TestEstablishAndClear(t *testing.T) {
	s := New()
	require.False(t, s.Authenticated())

	s.Establish("tok", model.Profile{Name: "alice"})
	require.True(t, s.Authenticated())
	require.Equal(t, "tok", s.Token())
	require.Equal(t, "alice", s.User().Name)

	s.Clear()
	require.False(t, s.Authenticated())
	require.Empty(t, s.Token())
	require.Empty(t, s.User().Name)
}

func TestClearIsIdempotent(t *testing.T) {
	s := New()
	s.Establish("tok", model.Profile{Name: "alice"})
	s.Clear()
	s.Clear()
	require.False(t, s.Authenticated())
}

func TestSetUserRequiresToken(t *testing.T) {
	s := New()
	s.SetUser(model.Profile{Name: "ghost"})
	require.False(t, s.Authenticated())
	require.Empty(t, s.User().Name)
}

func TestDashboardDateDefaultsToToday(t *testing.T) {
	s := New()
	require.Equal(t, time.Now().Format("2006-01-02"), s.DashboardDate())
}

func TestShiftDashboardDate(t *testing.T) {
	s := New()
	require.NoError(t, s.SetDashboardDate("2025-03-15"))

	s.ShiftDashboardDate(-1)
	require.Equal(t, "2025-03-14", s.DashboardDate())

	s.ShiftDashboardDate(2)
	require.Equal(t, "2025-03-16", s.DashboardDate())
}

func TestSetDashboardDateRejectsBadFormat(t *testing.T) {
	s := New()
	require.Error(t, s.SetDashboardDate("15/03/2025"))
}
