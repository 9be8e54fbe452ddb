// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/teachers/model"
)

type CreateTeacherRequest struct {
	Username string     `json:"username" validate:"required,min=3,max=100"`
	Password string     `json:"password" validate:"required,min=6"`
	FullName string     `json:"full_name" validate:"required,max=100"`
	ClassID  *uuid.UUID `json:"class_id"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.FullName = strings.TrimSpace(r.FullName)
}

// TeacherRowUpdate: satu baris pada bulk edit. Identitas row dibawa
// terstruktur, bukan lewat nama field dinamis.
type TeacherRowUpdate struct {
	TeacherID   uuid.UUID `json:"teacher_id" validate:"required"`
	TeacherName string    `json:"teacher_name"`
	NewPassword string    `json:"new_password"`
	Delete      bool      `json:"delete"`
}

type BulkEditTeachersRequest struct {
	Rows []TeacherRowUpdate `json:"rows" validate:"required,min=1,dive"`
}

type TeacherResponse struct {
	TeacherID      uuid.UUID  `json:"teacher_id"`
	TeacherUserID  uuid.UUID  `json:"teacher_user_id"`
	TeacherClassID *uuid.UUID `json:"teacher_class_id"`
	TeacherName    string     `json:"teacher_name"`
}

func FromModel(m *model.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:      m.TeacherID,
		TeacherUserID:  m.TeacherUserID,
		TeacherClassID: m.TeacherClassID,
		TeacherName:    m.TeacherName,
	}
}

func FromModels(ms []model.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
