// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/students/model"
)

type CreateStudentRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Phone    int64  `json:"phone" validate:"required"`
	RollNo   int    `json:"roll_no" validate:"required,min=1"`
}

func (r *CreateStudentRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.FullName = strings.TrimSpace(r.FullName)
}

// StudentRowUpdate: satu baris pada bulk edit, identitas row terstruktur.
type StudentRowUpdate struct {
	StudentID   uuid.UUID `json:"student_id" validate:"required"`
	FullName    string    `json:"full_name"`
	Phone       int64     `json:"phone"`
	RollNo      int       `json:"roll_no"`
	ClassID     uuid.UUID `json:"class_id"`
	NewPassword string    `json:"new_password"`
	Delete      bool      `json:"delete"`
}

type BulkEditStudentsRequest struct {
	Rows []StudentRowUpdate `json:"rows" validate:"required,min=1,dive"`
}

type StudentResponse struct {
	StudentID      uuid.UUID `json:"student_id"`
	StudentUserID  uuid.UUID `json:"student_user_id"`
	StudentClassID uuid.UUID `json:"student_class_id"`
	StudentPhone   int64     `json:"student_phone"`
	StudentRollNo  int       `json:"student_roll_no"`
	StudentName    string    `json:"student_name"`
}

func FromModel(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:      m.StudentID,
		StudentUserID:  m.StudentUserID,
		StudentClassID: m.StudentClassID,
		StudentPhone:   m.StudentPhone,
		StudentRollNo:  m.StudentRollNo,
		StudentName:    m.StudentName,
	}
}

func FromModels(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
