// file: internals/features/school/tests/dto/test_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/school/tests/model"
)

/* ======================================================
   Create: satu submission = satu "ujian" logis.
   Satu row Test dibuat per subject kelas; nilai dikirim
   per (subject, roll number).
====================================================== */

type TestMarkEntry struct {
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	RollNo    int       `json:"roll_no" validate:"required,min=1"`
	Marks     float64   `json:"marks" validate:"min=0"`
}

type CreateTestRequest struct {
	TestName   string          `json:"test_name" validate:"required,max=100"`
	Date       string          `json:"date" validate:"required,datetime=2006-01-02"`
	TotalMarks int             `json:"total_marks" validate:"required,min=1"`
	Entries    []TestMarkEntry `json:"entries" validate:"dive"`
}

func (r *CreateTestRequest) Normalize() {
	r.TestName = strings.TrimSpace(r.TestName)
}

func (r *CreateTestRequest) ParseDate() (datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

/* ======================================================
   Edit / delete by name
====================================================== */

type MarkRowUpdate struct {
	MarksID uuid.UUID `json:"marks_id" validate:"required"`
	Value   float64   `json:"value" validate:"min=0"`
}

type EditTestRequest struct {
	TestName   string          `json:"test_name" validate:"required"`
	TotalMarks int             `json:"total_marks" validate:"required,min=1"`
	Marks      []MarkRowUpdate `json:"marks" validate:"dive"`
}

/* ======================================================
   Responses
====================================================== */

type TestResponse struct {
	TestID         uuid.UUID      `json:"test_id"`
	TestSubjectID  uuid.UUID      `json:"test_subject_id"`
	TestName       string         `json:"test_name"`
	TestTotalMarks int            `json:"test_total_marks"`
	TestDate       datatypes.Date `json:"test_date"`
}

func FromModel(m *model.TestModel) TestResponse {
	return TestResponse{
		TestID:         m.TestID,
		TestSubjectID:  m.TestSubjectID,
		TestName:       m.TestName,
		TestTotalMarks: m.TestTotalMarks,
		TestDate:       m.TestDate,
	}
}

type MarkRowResponse struct {
	MarksID     uuid.UUID `json:"marks_id"`
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	RollNo      int       `json:"roll_no"`
	SubjectName string    `json:"subject_name"`
	Value       float64   `json:"value"`
}

type TestDetailResponse struct {
	Tests []TestResponse    `json:"tests"`
	Marks []MarkRowResponse `json:"marks"`
}
