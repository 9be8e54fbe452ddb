// file: internals/features/school/tests/model/test_model.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ======================================================
   Model: tests
   test_name TIDAK unik: satu "ujian" logis = beberapa row
   Test dengan nama sama, satu per subject.
====================================================== */

type TestModel struct {
	TestID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:test_id" json:"test_id"`
	TestSubjectID  uuid.UUID      `gorm:"type:uuid;not null;index;column:test_subject_id" json:"test_subject_id"`
	TestTotalMarks int            `gorm:"not null;column:test_total_marks" json:"test_total_marks"`
	TestName       string         `gorm:"size:100;not null;index;column:test_name" json:"test_name"`
	TestDate       datatypes.Date `gorm:"not null;column:test_date" json:"test_date"`
}

func (TestModel) TableName() string { return "tests" }

/* ======================================================
   Model: marks
   Tepat satu row per (test, student) untuk setiap student
   yang terdaftar — dijaga oleh backfill + unique index.
====================================================== */

type MarksModel struct {
	MarksID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:marks_id" json:"marks_id"`
	MarksTestID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_marks_test_student;column:marks_test_id" json:"marks_test_id"`
	MarksStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_marks_test_student;column:marks_student_id" json:"marks_student_id"`
	MarksValue     float64   `gorm:"type:numeric(7,2);not null;default:0;column:marks_value" json:"marks_value"`
}

func (MarksModel) TableName() string { return "marks" }
