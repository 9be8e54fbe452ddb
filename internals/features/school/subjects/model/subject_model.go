// file: internals/features/school/subjects/model/subject_model.go
package model

import (
	"github.com/google/uuid"
)

type SubjectModel struct {
	SubjectID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`
	SubjectName    string    `gorm:"size:100;not null;column:subject_name" json:"subject_name"`
	SubjectClassID uuid.UUID `gorm:"type:uuid;not null;index;column:subject_class_id" json:"subject_class_id"`
}

func (SubjectModel) TableName() string { return "subjects" }
