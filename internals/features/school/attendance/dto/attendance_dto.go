// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/school/attendance/service"
)

/* ===================== Request DTO ===================== */

type AttendanceEntry struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	IsPresent bool      `json:"is_present"`
}

// CaptureAttendanceRequest — satu entry per student kelas untuk hari ini.
type CaptureAttendanceRequest struct {
	Entries []AttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

// EditAttendanceRequest — koreksi flag hadir untuk row yang sudah ada.
type EditAttendanceRequest struct {
	Entries []AttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

/* ===================== Response DTO ===================== */

type AttendanceRowResponse struct {
	AttendanceID uuid.UUID `json:"attendance_id"`
	StudentID    uuid.UUID `json:"student_id"`
	StudentName  string    `json:"student_name"`
	RollNo       int       `json:"roll_no"`
	IsPresent    bool      `json:"is_present"`
}

type RosterRowResponse struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	RollNo      int       `json:"roll_no"`
}

// TodayAttendanceResponse — state hari ini: taken=false membawa roster
// untuk form capture, taken=true membawa row yang sudah tercatat plus
// rekap hadir/absen-nya.
type TodayAttendanceResponse struct {
	Date    string                     `json:"date"`
	Taken   bool                       `json:"taken"`
	Roster  []RosterRowResponse        `json:"roster,omitempty"`
	Rows    []AttendanceRowResponse    `json:"rows,omitempty"`
	Summary *service.AttendanceSummary `json:"summary,omitempty"`
}
