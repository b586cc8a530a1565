package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sprillex/hahealth/internal/model"
)

func (c *Client) ListMedications(ctx context.Context) ([]model.Medication, error) {
	var meds []model.Medication
	if err := c.doJSON(ctx, http.MethodGet, "/medications/", nil, &meds); err != nil {
		return nil, err
	}
	return meds, nil
}

func (c *Client) CreateMedication(ctx context.Context, med model.Medication) (model.Medication, error) {
	var out model.Medication
	if err := c.doJSON(ctx, http.MethodPost, "/medications/", med, &out); err != nil {
		return model.Medication{}, err
	}
	return out, nil
}

// UpdateMedication requires the medication identifier to already be known
// from a prior list fetch.
func (c *Client) UpdateMedication(ctx context.Context, med model.Medication) (model.Medication, error) {
	if med.MedID == 0 {
		return model.Medication{}, fmt.Errorf("medication id is required for update")
	}
	var out model.Medication
	if err := c.doJSON(ctx, http.MethodPut, "/medications/", med, &out); err != nil {
		return model.Medication{}, err
	}
	return out, nil
}

func (c *Client) RefillMedication(ctx context.Context, medID int64, quantity int) (model.Medication, error) {
	var out model.Medication
	path := fmt.Sprintf("/medications/%d/refill", medID)
	if err := c.doJSON(ctx, http.MethodPost, path, model.RefillRequest{Quantity: quantity}, &out); err != nil {
		return model.Medication{}, err
	}
	return out, nil
}

func (c *Client) ListDoseLogs(ctx context.Context) ([]model.DoseLog, error) {
	var logs []model.DoseLog
	if err := c.doJSON(ctx, http.MethodGet, "/medications/log", nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) LogDose(ctx context.Context, log model.DoseLog) (model.DoseLog, error) {
	var out model.DoseLog
	if err := c.doJSON(ctx, http.MethodPost, "/medications/log", log, &out); err != nil {
		return model.DoseLog{}, err
	}
	return out, nil
}

func (c *Client) UpdateDoseLog(ctx context.Context, log model.DoseLog) (model.DoseLog, error) {
	if log.LogID == 0 {
		return model.DoseLog{}, fmt.Errorf("dose log id is required for update")
	}
	var out model.DoseLog
	path := fmt.Sprintf("/medications/log/%d", log.LogID)
	if err := c.doJSON(ctx, http.MethodPut, path, log, &out); err != nil {
		return model.DoseLog{}, err
	}
	return out, nil
}

func (c *Client) DeleteDoseLog(ctx context.Context, logID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/medications/log/%d", logID), nil, nil)
}
