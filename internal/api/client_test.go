package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sprillex/hahealth/internal/model"
)

func newTestClient(ts *httptest.Server) *Client {
	c := New(ts.URL, nil)
	c.HTTPClient = ts.Client()
	c.Token = "test-token"
	return c
}

func TestIssueTokenPostsForm(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/token" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("unexpected content type %s", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.PostForm.Get("username") != "alice" || r.PostForm.Get("password") != "secret" {
			t.Errorf("unexpected form values: %v", r.PostForm)
		}
		_, _ = w.Write([]byte(`{"access_token": "issued-token", "token_type": "bearer"}`))
	}))
	defer ts.Close()

	c := New(ts.URL, nil)
	c.HTTPClient = ts.Client()

	token, err := c.IssueToken(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if token != "issued-token" {
		t.Fatalf("expected issued-token, got %q", token)
	}
}

func TestIssueTokenRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := New(ts.URL, nil)
	c.HTTPClient = ts.Client()

	if _, err := c.IssueToken(context.Background(), "alice", "secret"); err == nil {
		t.Fatal("expected error for empty access_token")
	}
}

func TestAuthenticatedRequestCarriesBearerAndRequestID(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected authorization header %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		if r.URL.Path != "/api/v1/users/me" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"user_id": 1, "name": "alice", "unit_system": "METRIC", "weight_kg": 80, "height_cm": 180}`))
	}))
	defer ts.Close()

	p, err := newTestClient(ts).CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if p.Name != "alice" || p.WeightKg != 80 {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestNonSuccessSurfacesServerDetail(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "Barcode already exists"}`))
	}))
	defer ts.Close()

	_, err := newTestClient(ts).CreateFood(context.Background(), model.FoodItem{FoodName: "Apple"})
	if err == nil {
		t.Fatal("expected error")
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %T", err)
	}
	if statusErr.StatusCode != http.StatusBadRequest || statusErr.Detail != "Barcode already exists" {
		t.Fatalf("unexpected status error: %+v", statusErr)
	}
}

func TestNonSuccessWithoutDetailFallsBackToStatus(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	_, err := newTestClient(ts).CreateBackup(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "403") {
		t.Fatalf("expected status in message, got %q", err.Error())
	}
}

func TestDailySummaryEncodesDateQuery(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/log/summary" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("date_str"); got != "2025-03-01" {
			t.Errorf("unexpected date_str %q", got)
		}
		_, _ = w.Write([]byte(`{"date": "2025-03-01", "calories_consumed": 1850, "calories_burned": 320}`))
	}))
	defer ts.Close()

	s, err := newTestClient(ts).DailySummary(context.Background(), "2025-03-01")
	if err != nil {
		t.Fatalf("daily summary: %v", err)
	}
	if s.CaloriesConsumed != 1850 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestSearchFoodsEncodesQuery(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "greek yogurt" {
			t.Errorf("unexpected query %q", got)
		}
		_, _ = w.Write([]byte(`[{"food_id": 7, "food_name": "Greek Yogurt", "calories": 100, "protein": 17, "fat": 0, "carbs": 6, "source": "OFF"}]`))
	}))
	defer ts.Close()

	items, err := newTestClient(ts).SearchFoods(context.Background(), "greek yogurt")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 1 || items[0].FoodID != 7 {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestChangePasswordRejectsMismatchLocally(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("mismatched confirmation must not reach the server")
	}))
	defer ts.Close()

	err := newTestClient(ts).ChangePassword(context.Background(), "old", "new1", "new2")
	if err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestRestoreBackupUploadsMultipart(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/admin/restore" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			return
		}
		defer file.Close()
		if header.Filename != "backup.tar.gz" {
			t.Errorf("unexpected filename %q", header.Filename)
		}
		_, _ = w.Write([]byte(`{"message": "Database restored successfully. Server logic may require restart."}`))
	}))
	defer ts.Close()

	out, err := newTestClient(ts).RestoreBackup(context.Background(), "backup.tar.gz", strings.NewReader("archive-bytes"))
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !strings.Contains(out.Message, "restored") {
		t.Fatalf("unexpected result: %+v", out)
	}
}

func TestDownloadLatestBackupStreamsBody(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/admin/backup/latest" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte("backup-bytes"))
	}))
	defer ts.Close()

	var buf bytes.Buffer
	n, err := newTestClient(ts).DownloadLatestBackup(context.Background(), &buf)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if n != int64(len("backup-bytes")) || buf.String() != "backup-bytes" {
		t.Fatalf("unexpected download: %d %q", n, buf.String())
	}
}

func TestDeleteSendsNoBody(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("unexpected method %s", r.Method)
		}
		if r.URL.Path != "/api/v1/medical/allergies/4" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	if err := newTestClient(ts).DeleteAllergy(context.Background(), 4); err != nil {
		t.Fatalf("delete allergy: %v", err)
	}
}
