// Package wizard drives a respondent through the questionnaire:
// intro -> qa-umum -> exactly one role-specific panel -> qa-end -> results.
// Backward navigation mirrors the forward path.
package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/freelinkd/kuesioner-api/internal/model"
)

// Step is one screen of the questionnaire wizard.
type Step string

const (
	StepIntro      Step = "intro"
	StepQAUmum     Step = "qa-umum"
	StepFreelancer Step = "qa-freelancer"
	StepUmkm       Step = "qa-umkm"
	StepGuru       Step = "qa-guru"
	StepStudent    Step = "qa-student"
	StepQAEnd      Step = "qa-end"
	StepResults    Step = "results"
)

// Role labels as produced by question 3 of the general section. Routing is
// an exact string match against these four values.
const (
	RoleStudentNonFreelancer = "Mahasiswa/Pelajar Non Freelancer"
	RoleStudentFreelancer    = "Mahasiswa/Pelajar Freelancer"
	RoleGuru                 = "Guru/Dosen/Tenaga Pendidik"
	RoleUMKM                 = "UMKM"
)

// roleQuestionID is the qa-umum question whose answer selects the role panel.
const roleQuestionID = 3

// TotalSteps is the length of any complete forward path, for the
// "Step N of 4" counter.
const TotalSteps = 4

var (
	ErrUnknownRole    = errors.New("unknown role")
	ErrMissingField   = errors.New("missing required field")
	ErrWrongStep      = errors.New("operation not valid for current step")
	ErrNoTransition   = errors.New("no transition")
	ErrRoleNotChosen  = errors.New("role has not been selected")
	ErrMissingRating  = errors.New("rating is required")
	ErrMissingAnswers = errors.New("answers are required")
)

// StepForRole maps a role label to its question panel. An unrecognized label
// is rejected rather than routed to a fallback panel.
func StepForRole(role string) (Step, error) {
	switch role {
	case RoleGuru:
		return StepGuru, nil
	case RoleUMKM:
		return StepUmkm, nil
	case RoleStudentNonFreelancer:
		return StepStudent, nil
	case RoleStudentFreelancer:
		return StepFreelancer, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, role)
}

// IsRoleStep reports whether s is one of the four role-specific panels.
func IsRoleStep(s Step) bool {
	switch s {
	case StepFreelancer, StepUmkm, StepGuru, StepStudent:
		return true
	}
	return false
}

// roleCrumb is the breadcrumb label of a role panel.
func roleCrumb(s Step) string {
	switch s {
	case StepFreelancer:
		return "Kuesioner Freelancer"
	case StepUmkm:
		return "Kuesioner UMKM"
	case StepGuru:
		return "Kuesioner Guru"
	case StepStudent:
		return "Kuesioner Mahasiswa"
	}
	return ""
}

// Next returns the step after current. The role is only consulted when
// leaving qa-umum, where it selects the role panel.
func Next(current Step, role string) (Step, error) {
	switch current {
	case StepIntro:
		return StepQAUmum, nil
	case StepQAUmum:
		return StepForRole(role)
	case StepFreelancer, StepUmkm, StepGuru, StepStudent:
		return StepQAEnd, nil
	case StepQAEnd:
		return StepResults, nil
	}
	return "", fmt.Errorf("%w forward from %q", ErrNoTransition, current)
}

// Prev mirrors the forward path: any role panel returns to qa-umum, qa-end
// returns to the panel matching the stored role.
func Prev(current Step, role string) (Step, error) {
	switch current {
	case StepQAUmum:
		return StepIntro, nil
	case StepFreelancer, StepUmkm, StepGuru, StepStudent:
		return StepQAUmum, nil
	case StepQAEnd:
		return StepForRole(role)
	}
	return "", fmt.Errorf("%w backward from %q", ErrNoTransition, current)
}

// StepNumber is the 1-based position of current within the forward path
// implied by role, or 0 when current is not on that path (intro is 1,
// qa-end is 4 once a role is known).
func StepNumber(current Step, role string) int {
	for i, s := range pathSteps(role) {
		if s == current {
			return i + 1
		}
	}
	return 0
}

func pathSteps(role string) []Step {
	steps := []Step{StepIntro, StepQAUmum}
	if s, err := StepForRole(role); err == nil {
		steps = append(steps, s)
	}
	return append(steps, StepQAEnd)
}

// Breadcrumbs is the trail shown above the form, derived purely from
// (current, role). At qa-end it includes the role panel the respondent came
// through, e.g. Home > Kuesioner Umum > Kuesioner UMKM > Kuesioner Penutup.
func Breadcrumbs(current Step, role string) []string {
	items := []string{"Home"}

	if current == StepQAUmum || IsRoleStep(current) || current == StepQAEnd {
		items = append(items, "Kuesioner Umum")
	}

	if IsRoleStep(current) {
		items = append(items, roleCrumb(current))
	}

	if current == StepQAEnd {
		if s, err := StepForRole(role); err == nil {
			items = append(items, roleCrumb(s))
		}
		items = append(items, "Kuesioner Penutup")
	}

	return items
}

// BreadcrumbSteps is the step each breadcrumb item navigates back to, index
// aligned with Breadcrumbs.
func BreadcrumbSteps(current Step, role string) []Step {
	steps := []Step{StepIntro}

	if current == StepQAUmum || IsRoleStep(current) || current == StepQAEnd {
		steps = append(steps, StepQAUmum)
	}

	if IsRoleStep(current) {
		steps = append(steps, current)
	}

	if current == StepQAEnd {
		if s, err := StepForRole(role); err == nil {
			steps = append(steps, s)
		}
		steps = append(steps, StepQAEnd)
	}

	return steps
}

// State is an in-progress wizard walk with the accumulated form data. Each
// section stays nil until its step completes.
type State struct {
	Current  Step
	UserRole string

	Intro        *model.IntroData
	QaUmum       []model.Answer
	RoleSpecific []model.Answer
	QaEnd        []model.Answer
}

// New starts a wizard at the intro step.
func New() *State {
	return &State{Current: StepIntro}
}

// CompleteIntro stores the respondent identity and advances to qa-umum.
// All three fields are required.
func (s *State) CompleteIntro(in model.IntroData) error {
	if s.Current != StepIntro {
		return fmt.Errorf("%w: %q", ErrWrongStep, s.Current)
	}
	if strings.TrimSpace(in.FullName) == "" {
		return fmt.Errorf("%w: fullName", ErrMissingField)
	}
	if strings.TrimSpace(in.Gender) == "" {
		return fmt.Errorf("%w: gender", ErrMissingField)
	}
	if strings.TrimSpace(in.Age) == "" {
		return fmt.Errorf("%w: age", ErrMissingField)
	}
	s.Intro = &in
	s.Current = StepQAUmum
	return nil
}

// CompleteUmum stores the general answers, reads the role from question 3
// and routes to the matching role panel. An unknown role label leaves the
// wizard on qa-umum.
func (s *State) CompleteUmum(answers []model.Answer) error {
	if s.Current != StepQAUmum {
		return fmt.Errorf("%w: %q", ErrWrongStep, s.Current)
	}
	role, ok := roleFromAnswers(answers)
	if !ok {
		return ErrRoleNotChosen
	}
	next, err := StepForRole(role)
	if err != nil {
		return err
	}
	s.QaUmum = answers
	s.UserRole = role
	s.Current = next
	return nil
}

// CompleteRoleSpecific stores the role panel answers and advances to qa-end.
func (s *State) CompleteRoleSpecific(answers []model.Answer) error {
	if !IsRoleStep(s.Current) {
		return fmt.Errorf("%w: %q", ErrWrongStep, s.Current)
	}
	if len(answers) == 0 {
		return ErrMissingAnswers
	}
	s.RoleSpecific = answers
	s.Current = StepQAEnd
	return nil
}

// CompleteEnd validates the closing answers and advances to results. The
// two rating questions (ids 1 and 2) must carry a rating; the submission
// itself is best-effort and happens outside the wizard, so the results step
// is reached regardless of persistence outcome.
func (s *State) CompleteEnd(answers []model.Answer) error {
	if s.Current != StepQAEnd {
		return fmt.Errorf("%w: %q", ErrWrongStep, s.Current)
	}
	for _, id := range []float64{1, 2} {
		if !hasRating(answers, id) {
			return fmt.Errorf("%w: question %d", ErrMissingRating, int(id))
		}
	}
	s.QaEnd = answers
	s.Current = StepResults
	return nil
}

// Back moves one step backward along the path implied by the stored role.
func (s *State) Back() error {
	prev, err := Prev(s.Current, s.UserRole)
	if err != nil {
		return err
	}
	s.Current = prev
	return nil
}

// StepNumber is the 1-based position of the current step, for the header's
// "Step N of 4" counter.
func (s *State) StepNumber() int {
	return StepNumber(s.Current, s.UserRole)
}

// Breadcrumbs is the trail for the current position.
func (s *State) Breadcrumbs() []string {
	return Breadcrumbs(s.Current, s.UserRole)
}

// Submission assembles the completed walk into a submission request body.
func (s *State) Submission() *model.SubmissionRequest {
	req := &model.SubmissionRequest{
		Intro:        s.Intro,
		UserRole:     s.UserRole,
		QaUmum:       rawSection(s.QaUmum),
		RoleSpecific: rawSection(s.RoleSpecific),
		QaEnd:        rawSection(s.QaEnd),
	}
	return req
}

func rawSection(answers []model.Answer) *model.RawSection {
	sec := &model.RawSection{Answers: make([]model.RawAnswer, 0, len(answers))}
	for _, a := range answers {
		raw := model.RawAnswer{QuestionID: a.QuestionID, Answer: a.Answer}
		if a.Rating != nil {
			raw.Rating = *a.Rating
		}
		sec.Answers = append(sec.Answers, raw)
	}
	return sec
}

func roleFromAnswers(answers []model.Answer) (string, bool) {
	for _, a := range answers {
		if a.QuestionID != roleQuestionID {
			continue
		}
		if role, ok := a.Answer.(string); ok && role != "" {
			return role, true
		}
	}
	return "", false
}

func hasRating(answers []model.Answer, id float64) bool {
	for _, a := range answers {
		if a.QuestionID == id && a.Rating != nil {
			return true
		}
	}
	return false
}
