// file: internals/features/school/tests/service/mark_rows.go
package service

import (
	"github.com/google/uuid"

	studentModel "schoolku_backend/internals/features/school/students/model"
	"schoolku_backend/internals/features/school/tests/model"
)

// MarkKey: alamat nilai di form submission, per (subject, roll).
type MarkKey struct {
	SubjectID uuid.UUID
	RollNo    int
}

// BuildMarkRows membuat tepat satu row marks per student terdaftar untuk
// satu test. Nilai diambil dari values per (subject, roll); student yang
// tidak ada di submission di-stamp nol.
func BuildMarkRows(testID, subjectID uuid.UUID, students []studentModel.StudentModel, values map[MarkKey]float64) []model.MarksModel {
	rows := make([]model.MarksModel, 0, len(students))
	for _, s := range students {
		rows = append(rows, model.MarksModel{
			MarksTestID:    testID,
			MarksStudentID: s.StudentID,
			MarksValue:     values[MarkKey{SubjectID: subjectID, RollNo: s.StudentRollNo}],
		})
	}
	return rows
}
