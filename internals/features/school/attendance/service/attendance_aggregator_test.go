// file: internals/features/school/attendance/service/attendance_aggregator_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"schoolku_backend/internals/features/school/attendance/model"
)

func rows(present ...bool) []model.AttendanceModel {
	out := make([]model.AttendanceModel, 0, len(present))
	for _, p := range present {
		out = append(out, model.AttendanceModel{AttendanceIsPresent: p})
	}
	return out
}

func TestTally(t *testing.T) {
	tests := []struct {
		name    string
		rows    []model.AttendanceModel
		present int
		absent  int
		pct     string
	}{
		{"kosong", nil, 0, 0, "0.00"},
		{"semua hadir", rows(true, true, true), 3, 0, "100.00"},
		{"semua absen", rows(false, false), 0, 2, "0.00"},
		{"dua dari tiga", rows(true, false, true), 2, 1, "66.67"},
		{"satu dari dua", rows(true, false), 1, 1, "50.00"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Tally(tc.rows)
			assert.Equal(t, tc.present, got.Present)
			assert.Equal(t, tc.absent, got.Absent)
			assert.Equal(t, tc.present+tc.absent, got.Total)
			assert.Equal(t, tc.pct, got.PercentagePresent)
		})
	}
}

func TestTallyPresentPlusAbsentEqualsTotal(t *testing.T) {
	got := Tally(rows(true, false, false, true, true, false, true))
	assert.Equal(t, got.Total, got.Present+got.Absent)
}

func TestTallyTwoStudentsTwoDays(t *testing.T) {
	// Alice hadir dua hari, Bob hadir satu dari dua.
	alice := Tally(rows(true, true))
	assert.Equal(t, AttendanceSummary{Present: 2, Absent: 0, Total: 2, PercentagePresent: "100.00"}, alice)

	bob := Tally(rows(true, false))
	assert.Equal(t, AttendanceSummary{Present: 1, Absent: 1, Total: 2, PercentagePresent: "50.00"}, bob)
}

func day(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func TestInRangeInclusiveBounds(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	// row tepat di batas from / to ikut terhitung
	assert.True(t, InRange(day(2026, 3, 1), from, to))
	assert.True(t, InRange(day(2026, 3, 31), from, to))
	assert.True(t, InRange(day(2026, 3, 15), from, to))
	assert.False(t, InRange(day(2026, 2, 28), from, to))
	assert.False(t, InRange(day(2026, 4, 1), from, to))
}

func TestRowsForDay(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()
	today := day(2026, 9, 1)

	// hanya a disebut hadir: b dan c tetap dapat row, default absen
	got := RowsForDay(today, []uuid.UUID{a, b, c}, map[uuid.UUID]bool{a: true})
	require.Len(t, got, 3)

	byStudent := make(map[uuid.UUID]model.AttendanceModel, len(got))
	for _, row := range got {
		assert.Equal(t, today, row.AttendanceDate)
		byStudent[row.AttendanceStudentID] = row
	}
	assert.True(t, byStudent[a].AttendanceIsPresent)
	assert.False(t, byStudent[b].AttendanceIsPresent)
	assert.False(t, byStudent[c].AttendanceIsPresent)

	summary := Tally(got)
	assert.Equal(t, 1, summary.Present)
	assert.Equal(t, 2, summary.Absent)
	assert.Equal(t, 3, summary.Total)
}

func TestRowsForDayEmptyRoster(t *testing.T) {
	assert.Empty(t, RowsForDay(day(2026, 9, 1), nil, nil))
}

func TestFormatPercentage(t *testing.T) {
	tests := []struct {
		present int
		total   int
		want    string
	}{
		{0, 0, "0.00"},
		{0, 5, "0.00"},
		{5, 5, "100.00"},
		{2, 3, "66.67"},
		{1, 3, "33.33"},
		{1, 8, "12.50"},
		{7, 9, "77.78"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatPercentage(tc.present, tc.total),
			"present=%d total=%d", tc.present, tc.total)
	}
}
