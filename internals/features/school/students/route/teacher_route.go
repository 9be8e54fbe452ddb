// file: internals/features/school/students/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/school/students/controller"
)

// StudentTeacherRoutes: mount di group teacher (/api/t)
func StudentTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	students := teacher.Group("/students")
	students.Get("/", ctrl.ListStudents)
	students.Post("/", ctrl.CreateStudent)
	students.Put("/", ctrl.BulkEditStudents)
	students.Delete("/:id", ctrl.DeleteStudent)
}
