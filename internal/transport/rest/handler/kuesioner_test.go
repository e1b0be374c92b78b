package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/freelinkd/kuesioner-api/internal/model"
	"github.com/freelinkd/kuesioner-api/internal/service"
)

type fakeKuesionerRepo struct {
	docs    []model.Kuesioner
	failing bool
}

func (f *fakeKuesionerRepo) Insert(ctx context.Context, k *model.Kuesioner) (string, error) {
	if f.failing {
		return "", errors.New("store unavailable")
	}
	f.docs = append(f.docs, *k)
	return "abc123", nil
}

func (f *fakeKuesionerRepo) FindAll(ctx context.Context) ([]model.Kuesioner, error) {
	if f.failing {
		return nil, errors.New("store unavailable")
	}
	return f.docs, nil
}

func (f *fakeKuesionerRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.docs)), nil
}

func newTestHandler(repo *fakeKuesionerRepo) *KuesionerHandler {
	return NewKuesionerHandler(
		service.NewKuesionerService(repo, nil, nil),
		service.NewExportService(),
	)
}

const validSubmission = `{
	"intro": {"fullName": "Budi Santoso", "gender": "Laki-laki", "age": "21-30 tahun"},
	"userRole": "UMKM",
	"qaUmum": {"answers": [
		{"questionId": 1, "answer": "Cukup mengenal"},
		{"questionId": 2, "answer": "Sulit menilai kualitas"},
		{"questionId": 3, "answer": "UMKM"}
	]},
	"roleSpecific": {"answers": [{"questionId": 1, "rating": 4}]},
	"qaEnd": {"answers": [
		{"questionId": 1, "rating": 5},
		{"questionId": 2, "rating": 4},
		{"questionId": 3, "answer": "Tidak ada"}
	]}
}`

func TestSubmitCreated(t *testing.T) {
	repo := &fakeKuesionerRepo{}
	h := newTestHandler(repo)

	req := httptest.NewRequest(http.MethodPost, "/submit-questionnaire", strings.NewReader(validSubmission))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Data    struct {
			ID        string `json:"id"`
			Timestamp string `json:"timestamp"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Data.ID != "abc123" {
		t.Fatalf("resp = %+v", resp)
	}
	if _, err := time.Parse(time.RFC3339, resp.Data.Timestamp); err != nil {
		t.Fatalf("timestamp %q not RFC3339: %v", resp.Data.Timestamp, err)
	}
	if len(repo.docs) != 1 {
		t.Fatalf("stored %d docs", len(repo.docs))
	}
}

func TestSubmitValidationError(t *testing.T) {
	h := newTestHandler(&fakeKuesionerRepo{})

	body := `{"userRole": "UMKM"}`
	req := httptest.NewRequest(http.MethodPost, "/submit-questionnaire", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success || resp.Message != "missing required field: intro" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestSubmitMalformedBody(t *testing.T) {
	h := newTestHandler(&fakeKuesionerRepo{})

	req := httptest.NewRequest(http.MethodPost, "/submit-questionnaire", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestSubmitStoreFailure(t *testing.T) {
	h := newTestHandler(&fakeKuesionerRepo{failing: true})

	req := httptest.NewRequest(http.MethodPost, "/submit-questionnaire", strings.NewReader(validSubmission))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "failed to submit questionnaire") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestListForms(t *testing.T) {
	repo := &fakeKuesionerRepo{docs: []model.Kuesioner{
		{ID: "a", UserRole: "Guru/Dosen/Tenaga Pendidik"},
		{ID: "b", UserRole: "UMKM"},
	}}
	h := newTestHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/admin/forms", nil)
	rec := httptest.NewRecorder()
	h.ListForms(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Success    bool              `json:"success"`
		Data       []model.Kuesioner `json:"data"`
		TotalCount int               `json:"totalCount"`
		Message    string            `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.TotalCount != 2 || len(resp.Data) != 2 {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Message != "Successfully fetched all 2 questionnaire records" {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestListFormsStoreFailure(t *testing.T) {
	h := newTestHandler(&fakeKuesionerRepo{failing: true})

	req := httptest.NewRequest(http.MethodGet, "/admin/forms", nil)
	rec := httptest.NewRecorder()
	h.ListForms(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDownloadCSV(t *testing.T) {
	repo := &fakeKuesionerRepo{docs: []model.Kuesioner{{
		Intro:       model.IntroData{FullName: "Budi", Gender: "Laki-laki", Age: "21-30 tahun"},
		UserRole:    "UMKM",
		SubmittedAt: time.Date(2026, time.August, 5, 10, 0, 0, 0, time.UTC),
	}}}
	h := newTestHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/admin/download-csv", nil)
	rec := httptest.NewRecorder()
	h.DownloadCSV(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/csv;charset=utf-8;" {
		t.Fatalf("content type = %q", got)
	}
	disp := rec.Header().Get("Content-Disposition")
	if !strings.HasPrefix(disp, `attachment; filename="data-kuesioner-`) || !strings.HasSuffix(disp, `.csv"`) {
		t.Fatalf("disposition = %q", disp)
	}
	if !strings.HasPrefix(rec.Body.String(), `"No",`) {
		t.Fatalf("body does not start with header row: %s", rec.Body.String())
	}
}

func TestDownloadCSVStoreFailure(t *testing.T) {
	h := newTestHandler(&fakeKuesionerRepo{failing: true})

	req := httptest.NewRequest(http.MethodGet, "/admin/download-csv", nil)
	rec := httptest.NewRecorder()
	h.DownloadCSV(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); strings.Contains(ct, "csv") {
		t.Fatalf("error response advertises CSV: %q", ct)
	}
}
