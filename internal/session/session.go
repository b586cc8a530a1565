// Package session holds the client's transient state: the bearer token,
// the cached profile, and the currently selected dashboard date. State
// lives on an explicit object rather than package globals so the
// lifecycle is testable without any terminal attached.
package session

import (
	"time"

	"github.com/sprillex/hahealth/internal/model"
)

const dateLayout = "2006-01-02"

type Session struct {
	token         string
	user          *model.Profile
	dashboardDate time.Time
}

func New() *Session {
	return &Session{dashboardDate: time.Now()}
}

// Establish records a validated token and its profile. It replaces any
// previous session wholesale.
func (s *Session) Establish(token string, user model.Profile) {
	s.token = token
	u := user
	s.user = &u
}

// Clear tears the session down. Explicit logout and failed token
// validation share this path, and calling it repeatedly is harmless.
func (s *Session) Clear() {
	s.token = ""
	s.user = nil
}

func (s *Session) Authenticated() bool { return s.token != "" && s.user != nil }

func (s *Session) Token() string { return s.token }

// User returns the cached profile; the zero Profile when none is cached.
func (s *Session) User() model.Profile {
	if s.user == nil {
		return model.Profile{}
	}
	return *s.user
}

// SetUser refreshes the cached profile without touching the token.
func (s *Session) SetUser(user model.Profile) {
	if s.token == "" {
		return
	}
	u := user
	s.user = &u
}

// DashboardDate is the single date the dashboard view is scoped to,
// formatted YYYY-MM-DD. Defaults to today.
func (s *Session) DashboardDate() string {
	return s.dashboardDate.Format(dateLayout)
}

// SetDashboardDate pins the dashboard to an explicit date.
func (s *Session) SetDashboardDate(date string) error {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return err
	}
	s.dashboardDate = t
	return nil
}

// ShiftDashboardDate moves the dashboard date by days (negative for
// back navigation). Only the dashboard's date context changes; nothing
// else in the session is touched.
func (s *Session) ShiftDashboardDate(days int) {
	s.dashboardDate = s.dashboardDate.AddDate(0, 0, days)
}
