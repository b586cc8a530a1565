package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sprillex/hahealth/internal/model"
)

func (c *Client) ListFoods(ctx context.Context) ([]model.FoodItem, error) {
	var items []model.FoodItem
	if err := c.doJSON(ctx, http.MethodGet, "/nutrition/", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateFood(ctx context.Context, food model.FoodItem) (model.FoodItem, error) {
	var out model.FoodItem
	if err := c.doJSON(ctx, http.MethodPost, "/nutrition/", food, &out); err != nil {
		return model.FoodItem{}, err
	}
	return out, nil
}

func (c *Client) SearchFoods(ctx context.Context, query string) ([]model.FoodItem, error) {
	var items []model.FoodItem
	path := "/nutrition/search?" + url.Values{"query": {query}}.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) LogFood(ctx context.Context, entry model.FoodLogRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/nutrition/log", entry, nil)
}
