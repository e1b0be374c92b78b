package wizard

import (
	"errors"
	"reflect"
	"testing"

	"github.com/freelinkd/kuesioner-api/internal/model"
)

func ratingOf(v float64) *float64 {
	return &v
}

func umumAnswers(role string) []model.Answer {
	return []model.Answer{
		{QuestionID: 1, Answer: "Cukup mengenal"},
		{QuestionID: 2, Answer: "Sulit menilai kualitas freelancer"},
		{QuestionID: 3, Answer: role},
	}
}

func TestStepForRole(t *testing.T) {
	cases := []struct {
		role string
		want Step
	}{
		{RoleGuru, StepGuru},
		{RoleUMKM, StepUmkm},
		{RoleStudentNonFreelancer, StepStudent},
		{RoleStudentFreelancer, StepFreelancer},
	}
	for _, tc := range cases {
		got, err := StepForRole(tc.role)
		if err != nil {
			t.Fatalf("StepForRole(%q): %v", tc.role, err)
		}
		if got != tc.want {
			t.Fatalf("StepForRole(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}

	if _, err := StepForRole("Direktur"); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("unknown role: got %v, want ErrUnknownRole", err)
	}
}

func TestForwardPathUMKM(t *testing.T) {
	s := New()

	err := s.CompleteIntro(model.IntroData{FullName: "Budi Santoso", Gender: "Laki-laki", Age: "21-30 tahun"})
	if err != nil {
		t.Fatalf("intro: %v", err)
	}
	if s.Current != StepQAUmum {
		t.Fatalf("after intro: at %q", s.Current)
	}

	if err := s.CompleteUmum(umumAnswers(RoleUMKM)); err != nil {
		t.Fatalf("qa-umum: %v", err)
	}
	if s.Current != StepUmkm {
		t.Fatalf("after qa-umum: at %q, want %q", s.Current, StepUmkm)
	}
	if s.UserRole != RoleUMKM {
		t.Fatalf("role = %q", s.UserRole)
	}

	if err := s.CompleteRoleSpecific([]model.Answer{{QuestionID: 1, Rating: ratingOf(4)}}); err != nil {
		t.Fatalf("role specific: %v", err)
	}
	if s.Current != StepQAEnd {
		t.Fatalf("after role specific: at %q", s.Current)
	}

	end := []model.Answer{
		{QuestionID: 1, Rating: ratingOf(5)},
		{QuestionID: 2, Rating: ratingOf(4)},
		{QuestionID: 3, Answer: "Tidak ada"},
	}
	if err := s.CompleteEnd(end); err != nil {
		t.Fatalf("qa-end: %v", err)
	}
	if s.Current != StepResults {
		t.Fatalf("after qa-end: at %q", s.Current)
	}
}

func TestIntroRequiresAllFields(t *testing.T) {
	s := New()
	err := s.CompleteIntro(model.IntroData{FullName: "Budi", Gender: "", Age: "21-30 tahun"})
	if !errors.Is(err, ErrMissingField) {
		t.Fatalf("got %v, want ErrMissingField", err)
	}
	if s.Current != StepIntro {
		t.Fatalf("wizard moved to %q on invalid intro", s.Current)
	}
}

func TestUnknownRoleStaysOnUmum(t *testing.T) {
	s := New()
	if err := s.CompleteIntro(model.IntroData{FullName: "Budi", Gender: "Laki-laki", Age: "21-30 tahun"}); err != nil {
		t.Fatal(err)
	}

	err := s.CompleteUmum(umumAnswers("CEO"))
	if !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("got %v, want ErrUnknownRole", err)
	}
	if s.Current != StepQAUmum {
		t.Fatalf("wizard moved to %q on unknown role", s.Current)
	}
	if s.UserRole != "" {
		t.Fatalf("role stored despite rejection: %q", s.UserRole)
	}
}

func TestEndRequiresRatings(t *testing.T) {
	s := &State{Current: StepQAEnd, UserRole: RoleGuru}

	// Question 2 has no rating, must be rejected before any network call.
	err := s.CompleteEnd([]model.Answer{
		{QuestionID: 1, Rating: ratingOf(3)},
		{QuestionID: 2, Answer: "lima"},
		{QuestionID: 3, Answer: "Bagus"},
	})
	if !errors.Is(err, ErrMissingRating) {
		t.Fatalf("got %v, want ErrMissingRating", err)
	}
	if s.Current != StepQAEnd {
		t.Fatalf("wizard moved to %q without ratings", s.Current)
	}
}

func TestBackwardMirrorsForward(t *testing.T) {
	s := &State{Current: StepQAEnd, UserRole: RoleStudentFreelancer}

	if err := s.Back(); err != nil {
		t.Fatal(err)
	}
	if s.Current != StepFreelancer {
		t.Fatalf("back from qa-end: at %q, want %q", s.Current, StepFreelancer)
	}

	if err := s.Back(); err != nil {
		t.Fatal(err)
	}
	if s.Current != StepQAUmum {
		t.Fatalf("back from role step: at %q", s.Current)
	}

	if err := s.Back(); err != nil {
		t.Fatal(err)
	}
	if s.Current != StepIntro {
		t.Fatalf("back from qa-umum: at %q", s.Current)
	}

	if err := s.Back(); err == nil {
		t.Fatal("back from intro should fail")
	}
}

func TestBreadcrumbsAtClosingStep(t *testing.T) {
	got := Breadcrumbs(StepQAEnd, RoleUMKM)
	want := []string{"Home", "Kuesioner Umum", "Kuesioner UMKM", "Kuesioner Penutup"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("breadcrumbs = %v, want %v", got, want)
	}

	steps := BreadcrumbSteps(StepQAEnd, RoleUMKM)
	wantSteps := []Step{StepIntro, StepQAUmum, StepUmkm, StepQAEnd}
	if !reflect.DeepEqual(steps, wantSteps) {
		t.Fatalf("breadcrumb steps = %v, want %v", steps, wantSteps)
	}
}

func TestBreadcrumbsOnRolePanel(t *testing.T) {
	got := Breadcrumbs(StepGuru, RoleGuru)
	want := []string{"Home", "Kuesioner Umum", "Kuesioner Guru"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("breadcrumbs = %v, want %v", got, want)
	}

	// Intro shows only Home.
	if got := Breadcrumbs(StepIntro, ""); !reflect.DeepEqual(got, []string{"Home"}) {
		t.Fatalf("intro breadcrumbs = %v", got)
	}
}

func TestStepNumber(t *testing.T) {
	cases := []struct {
		step Step
		role string
		want int
	}{
		{StepIntro, "", 1},
		{StepQAUmum, "", 2},
		{StepStudent, RoleStudentNonFreelancer, 3},
		{StepQAEnd, RoleStudentNonFreelancer, 4},
		// Before a role is chosen qa-end sits right after qa-umum.
		{StepQAEnd, "", 3},
		{StepResults, RoleUMKM, 0},
	}
	for _, tc := range cases {
		if got := StepNumber(tc.step, tc.role); got != tc.want {
			t.Fatalf("StepNumber(%q, %q) = %d, want %d", tc.step, tc.role, got, tc.want)
		}
	}
}

func TestSubmissionCarriesAllSections(t *testing.T) {
	s := New()
	if err := s.CompleteIntro(model.IntroData{FullName: "Sari", Gender: "Perempuan", Age: "15-20 tahun"}); err != nil {
		t.Fatal(err)
	}
	if err := s.CompleteUmum(umumAnswers(RoleGuru)); err != nil {
		t.Fatal(err)
	}
	if err := s.CompleteRoleSpecific([]model.Answer{{QuestionID: 1, Rating: ratingOf(5)}}); err != nil {
		t.Fatal(err)
	}
	if err := s.CompleteEnd([]model.Answer{
		{QuestionID: 1, Rating: ratingOf(5)},
		{QuestionID: 2, Rating: ratingOf(5)},
	}); err != nil {
		t.Fatal(err)
	}

	req := s.Submission()
	if req.Intro == nil || req.Intro.FullName != "Sari" {
		t.Fatalf("intro not carried: %+v", req.Intro)
	}
	if req.UserRole != RoleGuru {
		t.Fatalf("role = %q", req.UserRole)
	}
	if len(req.QaUmum.Answers) != 3 || len(req.RoleSpecific.Answers) != 1 || len(req.QaEnd.Answers) != 2 {
		t.Fatalf("section sizes: %d/%d/%d", len(req.QaUmum.Answers), len(req.RoleSpecific.Answers), len(req.QaEnd.Answers))
	}
}
