package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/sprillex/hahealth/internal/model"
)

// ServerVersion hits the unprefixed version endpoint.
func (c *Client) ServerVersion(ctx context.Context) (model.VersionInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		strings.TrimRight(c.BaseURL, "/")+"/version", nil)
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("create version request: %w", err)
	}
	var out model.VersionInfo
	if err := c.send(req, &out); err != nil {
		return model.VersionInfo{}, err
	}
	return out, nil
}
