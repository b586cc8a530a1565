package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/sprillex/hahealth/internal/model"
)

func (c *Client) SetBackupKey(ctx context.Context, key string) (model.BackupResult, error) {
	var out model.BackupResult
	body := map[string]string{"key": key}
	if err := c.doJSON(ctx, http.MethodPost, "/admin/key", body, &out); err != nil {
		return model.BackupResult{}, err
	}
	return out, nil
}

func (c *Client) CreateBackup(ctx context.Context) (model.BackupResult, error) {
	var out model.BackupResult
	if err := c.doJSON(ctx, http.MethodPost, "/admin/backup", nil, &out); err != nil {
		return model.BackupResult{}, err
	}
	return out, nil
}

// DownloadLatestBackup streams the most recent backup archive into w and
// returns the number of bytes written.
func (c *Client) DownloadLatestBackup(ctx context.Context, w io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/admin/backup/latest"), nil)
	if err != nil {
		return 0, fmt.Errorf("create backup download request: %w", err)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return 0, fmt.Errorf("download backup: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return 0, &StatusError{StatusCode: resp.StatusCode, Detail: decodeDetail(data)}
	}
	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("write backup file: %w", err)
	}
	return n, nil
}

// RestoreBackup uploads a backup archive as a multipart form.
func (c *Client) RestoreBackup(ctx context.Context, filename string, content io.Reader) (model.BackupResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return model.BackupResult{}, fmt.Errorf("create multipart file part: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return model.BackupResult{}, fmt.Errorf("read backup file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return model.BackupResult{}, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/admin/restore"), &buf)
	if err != nil {
		return model.BackupResult{}, fmt.Errorf("create restore request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out model.BackupResult
	if err := c.send(req, &out); err != nil {
		return model.BackupResult{}, err
	}
	return out, nil
}

func (c *Client) MQTTStatus(ctx context.Context) (model.MQTTStatus, error) {
	var out model.MQTTStatus
	if err := c.doJSON(ctx, http.MethodGet, "/admin/mqtt_status", nil, &out); err != nil {
		return model.MQTTStatus{}, err
	}
	return out, nil
}
