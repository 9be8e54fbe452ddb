// file: internals/features/school/subjects/dto/subject_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/subjects/model"
)

type CreateSubjectRequest struct {
	SubjectName string `json:"subject_name" validate:"required,max=100"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.SubjectName = strings.TrimSpace(r.SubjectName)
}

type SubjectRowUpdate struct {
	SubjectID   uuid.UUID `json:"subject_id" validate:"required"`
	SubjectName string    `json:"subject_name"`
	Delete      bool      `json:"delete"`
}

type BulkEditSubjectsRequest struct {
	Rows []SubjectRowUpdate `json:"rows" validate:"required,min=1,dive"`
}

type SubjectResponse struct {
	SubjectID      uuid.UUID `json:"subject_id"`
	SubjectName    string    `json:"subject_name"`
	SubjectClassID uuid.UUID `json:"subject_class_id"`
}

func FromModel(m *model.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:      m.SubjectID,
		SubjectName:    m.SubjectName,
		SubjectClassID: m.SubjectClassID,
	}
}

func FromModels(ms []model.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
