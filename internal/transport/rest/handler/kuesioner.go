package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/freelinkd/kuesioner-api/internal/model"
	"github.com/freelinkd/kuesioner-api/internal/service"
)

// KuesionerHandler handles the public submission endpoint and the admin
// listing/export endpoints.
type KuesionerHandler struct {
	kuesionerSvc *service.KuesionerService
	exportSvc    *service.ExportService
}

func NewKuesionerHandler(kuesionerSvc *service.KuesionerService, exportSvc *service.ExportService) *KuesionerHandler {
	return &KuesionerHandler{
		kuesionerSvc: kuesionerSvc,
		exportSvc:    exportSvc,
	}
}

// submitResponse is the body returned by POST /submit-questionnaire.
type submitResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    *submitData `json:"data,omitempty"`
}

type submitData struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
}

// Submit handles POST /submit-questionnaire
func (h *KuesionerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, submitResponse{Success: false, Message: "invalid request body"})
		return
	}

	doc, err := h.kuesionerSvc.Submit(r.Context(), &req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, submitResponse{Success: false, Message: verr.Message})
			return
		}
		log.Printf("submit-questionnaire: %v", err)
		writeJSON(w, http.StatusInternalServerError, submitResponse{Success: false, Message: "failed to submit questionnaire"})
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		Success: true,
		Message: "Questionnaire submitted successfully",
		Data: &submitData{
			ID:        doc.ID,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// listResponse is the body returned by GET /admin/forms.
type listResponse struct {
	Success    bool              `json:"success"`
	Data       []model.Kuesioner `json:"data,omitempty"`
	TotalCount int               `json:"totalCount"`
	Message    string            `json:"message"`
}

// ListForms handles GET /admin/forms. The whole collection is returned,
// newest first, regardless of its size.
func (h *KuesionerHandler) ListForms(w http.ResponseWriter, r *http.Request) {
	forms, err := h.kuesionerSvc.ListAll(r.Context())
	if err != nil {
		log.Printf("admin/forms: %v", err)
		writeJSON(w, http.StatusInternalServerError, listResponse{
			Success: false,
			Message: "failed to fetch questionnaire data",
		})
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success:    true,
		Data:       forms,
		TotalCount: len(forms),
		Message:    fmt.Sprintf("Successfully fetched all %d questionnaire records", len(forms)),
	})
}

// DownloadCSV handles GET /admin/download-csv
func (h *KuesionerHandler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	forms, err := h.kuesionerSvc.ListAll(r.Context())
	if err != nil {
		log.Printf("admin/download-csv: %v", err)
		w.Header().Set("Content-Type", "text/plain")
		http.Error(w, "error generating CSV file", http.StatusInternalServerError)
		return
	}

	content := h.exportSvc.Render(forms)

	w.Header().Set("Content-Type", "text/csv;charset=utf-8;")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, h.exportSvc.Filename(time.Now())))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(content))
}
