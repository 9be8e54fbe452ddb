// file: internals/features/school/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/attendance/controller"
)

// AttendanceTeacherRoutes — capture & koreksi absensi harian kelas teacher.
func AttendanceTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	att := teacher.Group("/attendance")
	att.Get("/today", ctrl.GetToday)
	att.Post("/today", ctrl.CaptureToday)
	att.Put("/today", ctrl.EditToday)
	att.Get("/report/:student_id", ctrl.StudentReport)
}

// AttendanceStudentRoutes — rekap absensi milik student yang login.
func AttendanceStudentRoutes(student fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)
	student.Get("/attendance", ctrl.MyReport)
}
