// file: internals/features/school/classes/model/class_model.go
package model

import (
	"fmt"

	"github.com/google/uuid"
)

/* ======================================================
   Model: classes
   Identitas logis = (grade, division); class_id surrogate key.
====================================================== */

type ClassModel struct {
	ClassID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`
	ClassGrade    int       `gorm:"not null;uniqueIndex:uq_classes_grade_division;column:class_grade" json:"class_grade"`
	ClassDivision string    `gorm:"size:1;not null;uniqueIndex:uq_classes_grade_division;column:class_division" json:"class_division"`
}

func (ClassModel) TableName() string { return "classes" }

func (m ClassModel) Label() string {
	return fmt.Sprintf("%d:%s", m.ClassGrade, m.ClassDivision)
}
