package ui

import (
	"context"

	"go.uber.org/zap"

	"github.com/sprillex/hahealth/internal/render"
	"github.com/sprillex/hahealth/internal/store"
)

// Login exchanges credentials for a token, persists it, and validates it
// by fetching the profile. Any failure runs the same teardown as an
// explicit logout.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	token, err := c.API.IssueToken(ctx, username, password)
	if err != nil {
		c.Logout()
		c.Notifier.Notify("login", render.Failure(err))
		return err
	}
	c.API.Token = token
	if err := c.Store.Set(store.KeyAccessToken, token); err != nil {
		c.Logger.Warn("persist token failed", zap.Error(err))
	}

	profile, err := c.API.CurrentUser(ctx)
	if err != nil {
		c.Logout()
		c.Notifier.Notify("login", render.Failure(err))
		return err
	}
	c.Session.Establish(token, profile)
	c.Notifier.Notify("login", render.Success("signed in as "+profile.Name))
	return nil
}

// Resume validates a previously stored token. With no stored token, or
// when validation fails, the session ends up cleared exactly as if the
// user had logged out.
func (c *Controller) Resume(ctx context.Context) (bool, error) {
	token, err := c.Store.Get(store.KeyAccessToken)
	if err != nil {
		return false, err
	}
	if token == "" {
		c.Logout()
		return false, nil
	}
	c.API.Token = token
	profile, err := c.API.CurrentUser(ctx)
	if err != nil {
		c.Logout()
		return false, nil
	}
	c.Session.Establish(token, profile)
	return true, nil
}

// Logout clears the token, the cached user, and the persisted token.
// Safe to call repeatedly and from any state.
func (c *Controller) Logout() {
	c.Session.Clear()
	c.API.Token = ""
	if err := c.Store.Delete(store.KeyAccessToken); err != nil {
		c.Logger.Warn("clear stored token failed", zap.Error(err))
	}
}
