package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sprillex/hahealth/internal/model"
)

func (c *Client) CurrentUser(ctx context.Context) (model.Profile, error) {
	var p model.Profile
	if err := c.doJSON(ctx, http.MethodGet, "/users/me", nil, &p); err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

func (c *Client) UpdateUser(ctx context.Context, update model.ProfileUpdate) (model.Profile, error) {
	var p model.Profile
	if err := c.doJSON(ctx, http.MethodPut, "/users/me", update, &p); err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

// ChangePassword validates the confirmation locally before sending; a
// mismatch never reaches the server.
func (c *Client) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	if newPassword != confirm {
		return fmt.Errorf("new password and confirmation do not match")
	}
	body := model.PasswordUpdate{
		CurrentPassword: current,
		NewPassword:     newPassword,
		ConfirmPassword: confirm,
	}
	return c.doJSON(ctx, http.MethodPut, "/users/me/password", body, nil)
}
