// file: internals/features/school/subjects/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/school/subjects/controller"
)

// SubjectTeacherRoutes: mount di group teacher (/api/t)
func SubjectTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubjectController(db)

	subjects := teacher.Group("/subjects")
	subjects.Get("/", ctrl.ListSubjects)
	subjects.Post("/", ctrl.CreateSubject)
	subjects.Put("/", ctrl.BulkEditSubjects)
}
