// file: internals/features/school/reports/route/report_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/reports/controller"
)

// ReportTeacherRoutes — laporan nilai kelas teacher.
func ReportTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	reports := teacher.Group("/reports")
	reports.Get("/class", ctrl.ClassReport)
	reports.Get("/subject/:subject_id", ctrl.SubjectTable)
	reports.Get("/subject/:subject_id/student/:student_id", ctrl.SubjectReport)
}

// ReportStudentRoutes — laporan nilai milik student yang login.
func ReportStudentRoutes(student fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)
	student.Get("/reports", ctrl.MyReport)
}

// ReportPrincipalRoutes — laporan lintas kelas untuk principal.
func ReportPrincipalRoutes(principal fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportController(db)
	principal.Get("/classes", ctrl.ListClasses)
	principal.Get("/reports/class/:class_id", ctrl.ClassReportByID)
}
