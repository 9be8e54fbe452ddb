// file: internals/features/school/students/service/backfill_service.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	testModel "schoolku_backend/internals/features/school/tests/model"
)

/* ======================================================
   Mark backfill: setiap student terdaftar harus punya tepat
   satu row marks untuk setiap test di kelasnya.
====================================================== */

// MissingTestIDs: test kelas yang belum punya row marks untuk student,
// urut mengikuti classTestIDs.
func MissingTestIDs(classTestIDs, existing []uuid.UUID) []uuid.UUID {
	have := make(map[uuid.UUID]struct{}, len(existing))
	for _, id := range existing {
		have[id] = struct{}{}
	}
	missing := make([]uuid.UUID, 0, len(classTestIDs))
	for _, id := range classTestIDs {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// BackfillMarksForStudent membuat row marks bernilai nol untuk setiap test
// yang sudah ada di kelas tujuan, skip pasangan (test, student) yang sudah
// punya row. Return: jumlah row yang dibuat.
func BackfillMarksForStudent(tx *gorm.DB, studentID, classID uuid.UUID) (int, error) {
	var classTestIDs []uuid.UUID
	if err := tx.Model(&testModel.TestModel{}).
		Joins("JOIN subjects ON subjects.subject_id = tests.test_subject_id").
		Where("subjects.subject_class_id = ?", classID).
		Pluck("tests.test_id", &classTestIDs).Error; err != nil {
		return 0, err
	}
	if len(classTestIDs) == 0 {
		return 0, nil
	}

	var existing []uuid.UUID
	if err := tx.Model(&testModel.MarksModel{}).
		Where("marks_student_id = ? AND marks_test_id IN ?", studentID, classTestIDs).
		Pluck("marks_test_id", &existing).Error; err != nil {
		return 0, err
	}

	missing := MissingTestIDs(classTestIDs, existing)
	for _, testID := range missing {
		mark := testModel.MarksModel{
			MarksTestID:    testID,
			MarksStudentID: studentID,
			MarksValue:     0,
		}
		if err := tx.Create(&mark).Error; err != nil {
			return 0, err
		}
	}
	return len(missing), nil
}
