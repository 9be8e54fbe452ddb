// file: internals/features/school/reports/service/report_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cell(test, subject string, value float64) MarkCell {
	return MarkCell{TestName: test, SubjectName: subject, TotalMarks: 100, Value: value}
}

func TestGroupByTestName(t *testing.T) {
	cells := []MarkCell{
		cell("UTS", "Math", 80),
		cell("UTS", "Biology", 75),
		cell("UAS", "Math", 90),
		cell("UTS", "English", 60),
		cell("UAS", "Biology", 85),
	}

	groups := GroupByTestName(cells)
	require.Len(t, groups, 2)

	// urutan grup ikut kemunculan pertama
	assert.Equal(t, "UTS", groups[0].TestName)
	assert.Equal(t, "UAS", groups[1].TestName)

	// subject alfabetis dalam grup
	require.Len(t, groups[0].Cells, 3)
	assert.Equal(t, "Biology", groups[0].Cells[0].SubjectName)
	assert.Equal(t, "English", groups[0].Cells[1].SubjectName)
	assert.Equal(t, "Math", groups[0].Cells[2].SubjectName)

	require.Len(t, groups[1].Cells, 2)
	assert.Equal(t, "Biology", groups[1].Cells[0].SubjectName)
	assert.Equal(t, "Math", groups[1].Cells[1].SubjectName)
	assert.Equal(t, 90.0, groups[1].Cells[1].Value)
}

func subjTest(id uuid.UUID, name, date string) SubjectTest {
	return SubjectTest{TestID: id, TestName: name, TestDate: date, TotalMarks: 100}
}

func TestAssembleSubjectCells(t *testing.T) {
	t1 := uuid.New()
	t2 := uuid.New()
	tests := []SubjectTest{
		subjTest(t1, "UTS", "2026-03-01"),
		subjTest(t2, "UAS", "2026-06-01"),
	}

	cells, err := AssembleSubjectCells("Math", tests, map[uuid.UUID]float64{t1: 80, t2: 95})
	require.NoError(t, err)
	require.Len(t, cells, 2)
	assert.Equal(t, "UTS", cells[0].TestName)
	assert.Equal(t, 80.0, cells[0].Value)
	assert.Equal(t, "Math", cells[0].SubjectName)
	assert.Equal(t, 95.0, cells[1].Value)
}

func TestAssembleSubjectCellsMissingMark(t *testing.T) {
	t1 := uuid.New()
	t2 := uuid.New()
	tests := []SubjectTest{
		subjTest(t1, "UTS", "2026-03-01"),
		subjTest(t2, "UAS", "2026-06-01"),
	}

	// row marks untuk UAS hilang: inkonsistensi backfill, bukan nilai nol
	cells, err := AssembleSubjectCells("Math", tests, map[uuid.UUID]float64{t1: 80})
	assert.Nil(t, cells)
	assert.ErrorIs(t, err, ErrMarksNotFound)
}

func TestAssembleSubjectCellsNoTests(t *testing.T) {
	// subject tanpa test: laporan kosong, bukan error
	cells, err := AssembleSubjectCells("Math", nil, map[uuid.UUID]float64{})
	require.NoError(t, err)
	assert.Empty(t, cells)
}

func TestGroupByTestNameEmpty(t *testing.T) {
	assert.Empty(t, GroupByTestName(nil))
	assert.Empty(t, GroupByTestName([]MarkCell{}))
}

func TestGroupByTestNameSingle(t *testing.T) {
	groups := GroupByTestName([]MarkCell{cell("Quiz 1", "Math", 0)})
	require.Len(t, groups, 1)
	assert.Equal(t, "Quiz 1", groups[0].TestName)
	assert.Equal(t, 0.0, groups[0].Cells[0].Value)
}
