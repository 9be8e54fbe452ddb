// file: internals/features/school/tests/service/mark_rows_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	studentModel "schoolku_backend/internals/features/school/students/model"
)

func enrolled(rolls ...int) []studentModel.StudentModel {
	students := make([]studentModel.StudentModel, 0, len(rolls))
	for _, roll := range rolls {
		students = append(students, studentModel.StudentModel{
			StudentID:     uuid.New(),
			StudentRollNo: roll,
		})
	}
	return students
}

func TestBuildMarkRowsOnePerStudent(t *testing.T) {
	testID := uuid.New()
	subjectID := uuid.New()
	students := enrolled(1, 2, 3, 4)

	// N student terdaftar → tepat N row marks
	rows := BuildMarkRows(testID, subjectID, students, nil)
	require.Len(t, rows, len(students))
	for i, row := range rows {
		assert.Equal(t, testID, row.MarksTestID)
		assert.Equal(t, students[i].StudentID, row.MarksStudentID)
		assert.Equal(t, 0.0, row.MarksValue)
	}
}

func TestBuildMarkRowsFillsSubmittedValues(t *testing.T) {
	testID := uuid.New()
	subjectID := uuid.New()
	otherSubject := uuid.New()
	students := enrolled(1, 2)

	values := map[MarkKey]float64{
		{SubjectID: subjectID, RollNo: 1}:    88,
		{SubjectID: otherSubject, RollNo: 2}: 77, // subject lain, tidak boleh kepakai
	}
	rows := BuildMarkRows(testID, subjectID, students, values)
	require.Len(t, rows, 2)
	assert.Equal(t, 88.0, rows[0].MarksValue)
	assert.Equal(t, 0.0, rows[1].MarksValue)
}

func TestBuildMarkRowsEmptyClass(t *testing.T) {
	assert.Empty(t, BuildMarkRows(uuid.New(), uuid.New(), nil, nil))
}
