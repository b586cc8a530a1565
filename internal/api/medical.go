package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sprillex/hahealth/internal/model"
)

func (c *Client) ListAllergies(ctx context.Context) ([]model.Allergy, error) {
	var out []model.Allergy
	if err := c.doJSON(ctx, http.MethodGet, "/medical/allergies", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateAllergy(ctx context.Context, allergy model.Allergy) (model.Allergy, error) {
	var out model.Allergy
	if err := c.doJSON(ctx, http.MethodPost, "/medical/allergies", allergy, &out); err != nil {
		return model.Allergy{}, err
	}
	return out, nil
}

func (c *Client) UpdateAllergy(ctx context.Context, allergy model.Allergy) (model.Allergy, error) {
	if allergy.AllergyID == 0 {
		return model.Allergy{}, fmt.Errorf("allergy id is required for update")
	}
	var out model.Allergy
	path := fmt.Sprintf("/medical/allergies/%d", allergy.AllergyID)
	if err := c.doJSON(ctx, http.MethodPut, path, allergy, &out); err != nil {
		return model.Allergy{}, err
	}
	return out, nil
}

func (c *Client) DeleteAllergy(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/medical/allergies/%d", id), nil, nil)
}

func (c *Client) LogVaccination(ctx context.Context, vac model.Vaccination) (model.Vaccination, error) {
	var out model.Vaccination
	if err := c.doJSON(ctx, http.MethodPost, "/medical/vaccinations", vac, &out); err != nil {
		return model.Vaccination{}, err
	}
	return out, nil
}

func (c *Client) VaccinationReport(ctx context.Context) ([]model.VaccinationStatus, error) {
	var out []model.VaccinationStatus
	if err := c.doJSON(ctx, http.MethodGet, "/medical/reports/vaccinations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
