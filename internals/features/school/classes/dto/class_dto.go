// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/classes/model"
)

type CreateClassRequest struct {
	ClassGrade    int    `json:"class_grade" validate:"required,min=1,max=12"`
	ClassDivision string `json:"class_division" validate:"required,len=1,alpha"`
}

func (r *CreateClassRequest) Normalize() {
	r.ClassDivision = strings.ToUpper(strings.TrimSpace(r.ClassDivision))
}

func (r *CreateClassRequest) ToModel() *model.ClassModel {
	return &model.ClassModel{
		ClassGrade:    r.ClassGrade,
		ClassDivision: r.ClassDivision,
	}
}

type ClassResponse struct {
	ClassID       uuid.UUID `json:"class_id"`
	ClassGrade    int       `json:"class_grade"`
	ClassDivision string    `json:"class_division"`
	ClassLabel    string    `json:"class_label"`
}

func FromModel(m *model.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:       m.ClassID,
		ClassGrade:    m.ClassGrade,
		ClassDivision: m.ClassDivision,
		ClassLabel:    m.Label(),
	}
}

func FromModels(ms []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
