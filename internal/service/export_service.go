package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/freelinkd/kuesioner-api/internal/model"
)

// csvHeaders is the fixed export layout: row number, respondent identity,
// submission date, then one column per question slot.
var csvHeaders = []string{
	"No",
	"Nama Lengkap",
	"Jenis Kelamin",
	"Usia",
	"Peran",
	"Tanggal Submit",
	"QA Umum - Pertanyaan 1",
	"QA Umum - Pertanyaan 2",
	"QA Umum - Pertanyaan 3",
	"Role Specific - Pertanyaan 1",
	"Role Specific - Pertanyaan 2",
	"Role Specific - Pertanyaan 3",
	"Role Specific - Pertanyaan 4",
	"Role Specific - Pertanyaan 5",
	"Role Specific - Pertanyaan 6",
	"Role Specific - Pertanyaan 7",
	"Role Specific - Pertanyaan 8",
	"Role Specific - Pertanyaan 9",
	"Role Specific - Pertanyaan 10",
	"QA End - Pertanyaan 1",
	"QA End - Pertanyaan 2",
	"QA End - Pertanyaan 3",
}

// numericCell matches an optionally signed integer or decimal with a comma
// or dot separator.
var numericCell = regexp.MustCompile(`^-?\d+(?:[.,]\d+)?$`)

// ExportService renders stored responses to CSV. The exact same layout and
// cell rules back both the server download endpoint and the dashboard's
// in-browser export, so the two outputs are byte-identical.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// Render produces the full CSV document: header row first, one row per
// response in the order given (callers pass newest-first), cells joined by
// commas, rows by newlines, no trailing newline. Every cell, headers
// included, goes through FormatCell.
func (s *ExportService) Render(forms []model.Kuesioner) string {
	rows := make([][]interface{}, 0, len(forms)+1)
	rows = append(rows, headerRow())
	for i := range forms {
		rows = append(rows, buildRow(i+1, &forms[i]))
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = FormatCell(cell)
		}
		lines[i] = strings.Join(cells, ",")
	}
	return strings.Join(lines, "\n")
}

// Filename is the attachment name for the download endpoint, dated in UTC.
func (s *ExportService) Filename(now time.Time) string {
	return "data-kuesioner-" + now.UTC().Format("2006-01-02") + ".csv"
}

func headerRow() []interface{} {
	row := make([]interface{}, len(csvHeaders))
	for i, h := range csvHeaders {
		row[i] = h
	}
	return row
}

func buildRow(no int, k *model.Kuesioner) []interface{} {
	row := make([]interface{}, 0, len(csvHeaders))
	row = append(row,
		no,
		k.Intro.FullName,
		k.Intro.Gender,
		k.Intro.Age,
		k.UserRole,
		formatSubmitDate(k.SubmittedAt),
	)
	for id := 1; id <= 3; id++ {
		row = append(row, answerValue(k.QaUmum.Answers, id))
	}
	for id := 1; id <= 10; id++ {
		row = append(row, answerValue(k.RoleSpecific.Answers, id))
	}
	for id := 1; id <= 3; id++ {
		row = append(row, answerValue(k.QaEnd.Answers, id))
	}
	return row
}

// answerValue looks up a question's cell with the answer-then-rating
// precedence. A rating of 0 alongside an answer value is shadowed; that
// matches the dashboard's exporter and is kept deliberately.
func answerValue(answers []model.Answer, id int) interface{} {
	for _, a := range answers {
		if a.QuestionID != float64(id) {
			continue
		}
		if a.Answer != nil {
			return a.Answer
		}
		if a.Rating != nil {
			return *a.Rating
		}
		return ""
	}
	return ""
}

// formatSubmitDate renders the id-ID short date: day/month/year without
// zero padding.
func formatSubmitDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// FormatCell keeps numeric cells raw so spreadsheet tools type them as
// numbers; a comma decimal separator is normalized to a dot. Everything
// else is quote-wrapped with embedded quotes doubled.
func FormatCell(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case string:
		trimmed := strings.TrimSpace(v)
		if numericCell.MatchString(trimmed) {
			return strings.Replace(trimmed, ",", ".", 1)
		}
		return quote(v)
	default:
		return quote(fmt.Sprint(v))
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
