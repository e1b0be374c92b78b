package service

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/freelinkd/kuesioner-api/internal/cache"
	"github.com/freelinkd/kuesioner-api/internal/model"
	"github.com/freelinkd/kuesioner-api/internal/questions"
	"github.com/freelinkd/kuesioner-api/internal/repository"
)

// insertTimeout bounds the wait on the store; a timed-out request does not
// abort an insert already in flight on the server side.
const insertTimeout = 10 * time.Second

// markupChars is the character class the questionnaire form rejects at
// keystroke entry. Not a security boundary, just basic markup hygiene.
var markupChars = regexp.MustCompile(`[<>?/{}\[\]=+]`)

// ValidationError is a client input error; handlers map it to a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Notifier receives successful submissions, e.g. to fan them out to
// connected admin dashboards.
type Notifier interface {
	SubmissionReceived(k *model.Kuesioner)
}

// KuesionerService validates, sanitizes and persists submissions, and serves
// the admin listing. cache and feed are optional; a nil value disables the
// concern.
type KuesionerService struct {
	repo  repository.KuesionerRepository
	cache cache.FormsCache
	feed  Notifier
}

func NewKuesionerService(repo repository.KuesionerRepository, formsCache cache.FormsCache, feed Notifier) *KuesionerService {
	return &KuesionerService{
		repo:  repo,
		cache: formsCache,
		feed:  feed,
	}
}

// Submit runs validation and sanitization, stamps the server-side submission
// time and inserts the document. The dashboard cache refresh and the live
// feed notification are best-effort: their failure is logged, never surfaced
// to the submitter.
func (s *KuesionerService) Submit(ctx context.Context, req *model.SubmissionRequest) (*model.Kuesioner, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	doc := Sanitize(req)
	doc.SubmittedAt = time.Now()

	insertCtx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()

	id, err := s.repo.Insert(insertCtx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = id

	if s.cache != nil {
		if err := s.cache.Invalidate(context.Background()); err != nil {
			log.Printf("kuesioner: dashboard cache invalidation failed: %v", err)
		}
	}
	if s.feed != nil {
		s.feed.SubmissionReceived(doc)
	}

	return doc, nil
}

// ListAll returns every stored response, newest first, serving from the
// dashboard cache when it is warm.
func (s *KuesionerService) ListAll(ctx context.Context) ([]model.Kuesioner, error) {
	if s.cache != nil {
		forms, err := s.cache.Get(ctx)
		if err != nil {
			log.Printf("kuesioner: dashboard cache read failed: %v", err)
		} else if forms != nil {
			return forms, nil
		}
	}

	forms, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, forms); err != nil {
			log.Printf("kuesioner: dashboard cache write failed: %v", err)
		}
	}
	return forms, nil
}

// Count returns the number of stored responses.
func (s *KuesionerService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Validate enforces the required submission shape. Roles are deliberately
// not checked against the four known labels: any non-empty string passes.
func Validate(req *model.SubmissionRequest) error {
	if req.Intro == nil {
		return &ValidationError{Message: "missing required field: intro"}
	}
	if strings.TrimSpace(req.Intro.FullName) == "" {
		return &ValidationError{Message: "missing required field: intro.fullName"}
	}
	if strings.TrimSpace(req.Intro.Gender) == "" {
		return &ValidationError{Message: "missing required field: intro.gender"}
	}
	if strings.TrimSpace(req.Intro.Age) == "" {
		return &ValidationError{Message: "missing required field: intro.age"}
	}
	if strings.TrimSpace(req.UserRole) == "" {
		return &ValidationError{Message: "missing required field: userRole"}
	}
	if req.QaUmum == nil || req.QaUmum.Answers == nil {
		return &ValidationError{Message: "missing required field: qaUmum.answers"}
	}
	if req.QaEnd == nil || req.QaEnd.Answers == nil {
		return &ValidationError{Message: "missing required field: qaEnd.answers"}
	}
	return nil
}

// Sanitize produces the document to persist: intro fields trimmed, each
// answer list filtered down to entries keyed by a numeric questionId, and the
// markup character filter applied to free-text values. fullName is the only
// typed intro field; gender and age come from selects.
func Sanitize(req *model.SubmissionRequest) *model.Kuesioner {
	k := &model.Kuesioner{
		UserRole: strings.TrimSpace(req.UserRole),
	}
	if req.Intro != nil {
		k.Intro = model.IntroData{
			FullName: CleanText(req.Intro.FullName),
			Gender:   strings.TrimSpace(req.Intro.Gender),
			Age:      strings.TrimSpace(req.Intro.Age),
		}
	}
	k.QaUmum = model.AnswerSection{Answers: sanitizeSection(req.QaUmum, questions.QaUmum)}
	k.RoleSpecific = model.AnswerSection{Answers: sanitizeSection(req.RoleSpecific, nil)}
	k.QaEnd = model.AnswerSection{Answers: sanitizeSection(req.QaEnd, questions.QaEnd)}
	return k
}

// sanitizeSection filters the raw answers, then strips markup from answers to
// typed text questions. Radio and select values pass through unchanged, so
// role labels like "Guru/Dosen/Tenaga Pendidik" keep their slashes.
func sanitizeSection(sec *model.RawSection, catalog []questions.Question) []model.Answer {
	answers := SanitizeAnswers(sec)
	for i, a := range answers {
		s, ok := a.Answer.(string)
		if !ok {
			continue
		}
		if questions.IsFreeText(catalog, int(a.QuestionID)) {
			answers[i].Answer = CleanText(s)
		}
	}
	return answers
}

// SanitizeAnswers keeps entries with a numeric questionId in their original
// order, trims string answers, passes numeric answers and ratings through
// unchanged, and drops any other value shape silently.
func SanitizeAnswers(sec *model.RawSection) []model.Answer {
	if sec == nil {
		return []model.Answer{}
	}
	out := make([]model.Answer, 0, len(sec.Answers))
	for _, raw := range sec.Answers {
		id, ok := asNumber(raw.QuestionID)
		if !ok {
			continue
		}
		a := model.Answer{QuestionID: id}

		switch v := raw.Answer.(type) {
		case string:
			a.Answer = strings.TrimSpace(v)
		default:
			if n, ok := asNumber(raw.Answer); ok {
				a.Answer = n
			}
		}

		if n, ok := asNumber(raw.Rating); ok {
			a.Rating = &n
		}

		out = append(out, a)
	}
	return out
}

// CleanText strips the rejected markup characters and trims, matching what
// the form applies as the respondent types.
func CleanText(s string) string {
	return strings.TrimSpace(markupChars.ReplaceAllString(s, ""))
}

func asNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
