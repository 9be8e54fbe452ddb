// file: internals/features/school/teachers/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/school/teachers/controller"
)

// TeacherAdminRoutes: mount di group admin (/api/a)
func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherController(db)

	teachers := admin.Group("/teachers")
	teachers.Get("/", ctrl.ListTeachers)
	teachers.Post("/", ctrl.CreateTeacher)
	teachers.Put("/", ctrl.BulkEditTeachers)
	teachers.Delete("/:id", ctrl.DeleteTeacher)
}
