// file: internals/features/school/attendance/model/attendance_model.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ======================================================
   Model: attendances
   Satu row per (student, date); unique index menutup celah
   duplicate capture.
====================================================== */

type AttendanceModel struct {
	AttendanceID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`
	AttendanceDate      datatypes.Date `gorm:"not null;uniqueIndex:uq_attendances_student_date;column:attendance_date" json:"attendance_date"`
	AttendanceStudentID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_attendances_student_date;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceIsPresent bool           `gorm:"not null;default:true;column:attendance_is_present" json:"attendance_is_present"`
}

func (AttendanceModel) TableName() string { return "attendances" }
