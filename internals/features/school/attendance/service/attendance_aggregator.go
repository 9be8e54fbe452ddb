// file: internals/features/school/attendance/service/attendance_aggregator.go
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/attendance/model"
)

/* ======================================================
   Attendance aggregator
   present + absent == total selalu; total 0 → "0.00".
====================================================== */

type AttendanceSummary struct {
	Present           int    `json:"present"`
	Absent            int    `json:"absent"`
	Total             int    `json:"total"`
	PercentagePresent string `json:"percentage_present"`
}

// Tally menghitung summary dari kumpulan row attendance.
// Tidak ada dedup per hari: row duplikat (kalau ada) ikut terhitung.
func Tally(rows []model.AttendanceModel) AttendanceSummary {
	present := 0
	absent := 0
	for _, att := range rows {
		if att.AttendanceIsPresent {
			present++
		} else {
			absent++
		}
	}
	total := present + absent
	return AttendanceSummary{
		Present:           present,
		Absent:            absent,
		Total:             total,
		PercentagePresent: FormatPercentage(present, total),
	}
}

// FormatPercentage memformat persentase hadir dengan tepat 2 digit desimal.
// total == 0 → "0.00", bukan error.
func FormatPercentage(present, total int) string {
	if total == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(present)/float64(total)*100)
}

// RowsForDay membuat tepat satu row per student kelas untuk satu tanggal.
// Student yang tidak ada di map present dianggap absen.
func RowsForDay(day datatypes.Date, studentIDs []uuid.UUID, present map[uuid.UUID]bool) []model.AttendanceModel {
	rows := make([]model.AttendanceModel, 0, len(studentIDs))
	for _, id := range studentIDs {
		rows = append(rows, model.AttendanceModel{
			AttendanceDate:      day,
			AttendanceStudentID: id,
			AttendanceIsPresent: present[id],
		})
	}
	return rows
}

// AggregateAll menghitung rekap absensi seorang student sepanjang waktu.
func AggregateAll(db *gorm.DB, studentID uuid.UUID) (AttendanceSummary, error) {
	var rows []model.AttendanceModel
	if err := db.
		Where("attendance_student_id = ?", studentID).
		Find(&rows).Error; err != nil {
		return AttendanceSummary{}, err
	}
	return Tally(rows), nil
}

// InRange: tanggal d masuk rentang inklusif [from, to], presisi hari.
// Row tepat di from atau to ikut terhitung.
func InRange(d datatypes.Date, from, to time.Time) bool {
	day := time.Time(d).Format("2006-01-02")
	return day >= from.Format("2006-01-02") && day <= to.Format("2006-01-02")
}

// AggregateRange sama dengan AggregateAll tapi dibatasi rentang tanggal
// inklusif [from, to].
func AggregateRange(db *gorm.DB, studentID uuid.UUID, from, to time.Time) (AttendanceSummary, error) {
	var rows []model.AttendanceModel
	if err := db.
		Where("attendance_student_id = ?", studentID).
		Find(&rows).Error; err != nil {
		return AttendanceSummary{}, err
	}

	inRange := make([]model.AttendanceModel, 0, len(rows))
	for _, att := range rows {
		if InRange(att.AttendanceDate, from, to) {
			inRange = append(inRange, att)
		}
	}
	return Tally(inRange), nil
}
