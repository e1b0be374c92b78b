package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/freelinkd/kuesioner-api/internal/questions"
	"github.com/freelinkd/kuesioner-api/internal/wizard"
)

// WizardHandler exposes the stateless wizard transitions for the
// client-rendered form: the client holds its own state and asks the server
// where to go next.
type WizardHandler struct{}

func NewWizardHandler() *WizardHandler {
	return &WizardHandler{}
}

type wizardRequest struct {
	CurrentStep string `json:"currentStep"`
	UserRole    string `json:"userRole"`
}

type wizardResponse struct {
	Step        string   `json:"step"`
	StepNumber  int      `json:"stepNumber"`
	TotalSteps  int      `json:"totalSteps"`
	Breadcrumbs []string `json:"breadcrumbs"`
}

// Next handles POST /wizard/next
func (h *WizardHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, wizard.Next)
}

// Back handles POST /wizard/back
func (h *WizardHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, wizard.Prev)
}

func (h *WizardHandler) transition(w http.ResponseWriter, r *http.Request, move func(wizard.Step, string) (wizard.Step, error)) {
	var req wizardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	step, err := move(wizard.Step(req.CurrentStep), req.UserRole)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, wizardResponse{
		Step:        string(step),
		StepNumber:  wizard.StepNumber(step, req.UserRole),
		TotalSteps:  wizard.TotalSteps,
		Breadcrumbs: wizard.Breadcrumbs(step, req.UserRole),
	})
}

// Questions handles GET /questions/{section}. The role section takes the
// role label as a query parameter.
func (h *WizardHandler) Questions(w http.ResponseWriter, r *http.Request) {
	section := mux.Vars(r)["section"]

	var set []questions.Question
	switch section {
	case "umum":
		set = questions.QaUmum
	case "end":
		set = questions.QaEnd
	case "role":
		var ok bool
		if set, ok = questions.ForRole(r.URL.Query().Get("role")); !ok {
			writeError(w, http.StatusBadRequest, "unknown role")
			return
		}
	default:
		writeError(w, http.StatusBadRequest, "unknown section")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": set})
}
