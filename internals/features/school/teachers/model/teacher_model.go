// file: internals/features/school/teachers/model/teacher_model.go
package model

import (
	"github.com/google/uuid"
)

/* ======================================================
   Model: teachers
   teacher_class_id nullable; maksimal satu teacher per kelas
   (dijaga di application logic, bukan constraint).
====================================================== */

type TeacherModel struct {
	TeacherID      uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`
	TeacherUserID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_teachers_user_id;column:teacher_user_id" json:"teacher_user_id"`
	TeacherClassID *uuid.UUID `gorm:"type:uuid;column:teacher_class_id" json:"teacher_class_id"`
	TeacherName    string     `gorm:"size:100;not null;column:teacher_name" json:"teacher_name"`
}

func (TeacherModel) TableName() string { return "teachers" }
