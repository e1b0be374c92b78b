package model

import "time"

// IntroData identifies the respondent. Age is a bucket label such as
// "21-30 tahun", not a number.
type IntroData struct {
	FullName string `json:"fullName" bson:"fullName"`
	Gender   string `json:"gender" bson:"gender"`
	Age      string `json:"age" bson:"age"`
}

// Answer is one sanitized answer entry. Answer holds free text or a number,
// Rating a 1-5 scale value. Valid data carries one of the two; the sanitizer
// does not enforce exclusivity, only a numeric questionId.
type Answer struct {
	QuestionID float64     `json:"questionId" bson:"questionId"`
	Answer     interface{} `json:"answer,omitempty" bson:"answer,omitempty"`
	Rating     *float64    `json:"rating,omitempty" bson:"rating,omitempty"`
}

// AnswerSection groups the answers of one wizard section.
type AnswerSection struct {
	Answers []Answer `json:"answers" bson:"answers"`
}

// Kuesioner is one questionnaire submission. Write-once: inserted by the
// public endpoint, read by the admin listing and the CSV export. No update
// or delete path exists anywhere in the system.
type Kuesioner struct {
	ID           string        `json:"_id,omitempty" bson:"_id,omitempty"`
	Intro        IntroData     `json:"intro" bson:"intro"`
	UserRole     string        `json:"userRole" bson:"userRole"`
	QaUmum       AnswerSection `json:"qaUmum" bson:"qaUmum"`
	RoleSpecific AnswerSection `json:"roleSpecific" bson:"roleSpecific"`
	QaEnd        AnswerSection `json:"qaEnd" bson:"qaEnd"`
	SubmittedAt  time.Time     `json:"submittedAt" bson:"submittedAt"`
}

// RawAnswer is an answer entry as received from the client, before
// sanitization. questionId may be any JSON value at this point.
type RawAnswer struct {
	QuestionID interface{} `json:"questionId"`
	Answer     interface{} `json:"answer"`
	Rating     interface{} `json:"rating"`
}

// RawSection is an unsanitized answer section.
type RawSection struct {
	Answers []RawAnswer `json:"answers"`
}

// SubmissionRequest is the body of POST /submit-questionnaire.
type SubmissionRequest struct {
	Intro        *IntroData  `json:"intro"`
	UserRole     string      `json:"userRole"`
	QaUmum       *RawSection `json:"qaUmum"`
	RoleSpecific *RawSection `json:"roleSpecific"`
	QaEnd        *RawSection `json:"qaEnd"`
}
