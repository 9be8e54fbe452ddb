// file: internals/features/school/students/model/student_model.go
package model

import (
	"github.com/google/uuid"
)

/* ======================================================
   Model: students
   student_roll_no unik hanya di dalam kelasnya (application
   check, bukan unique index — lihat controller).
====================================================== */

type StudentModel struct {
	StudentID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentUserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_students_user_id;column:student_user_id" json:"student_user_id"`
	StudentClassID uuid.UUID `gorm:"type:uuid;not null;index;column:student_class_id" json:"student_class_id"`
	StudentPhone   int64     `gorm:"not null;column:student_phone" json:"student_phone"`
	StudentRollNo  int       `gorm:"not null;column:student_roll_no" json:"student_roll_no"`
	StudentName    string    `gorm:"size:100;not null;column:student_name" json:"student_name"`
}

func (StudentModel) TableName() string { return "students" }
