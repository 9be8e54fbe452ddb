// file: internals/features/school/tests/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/tests/controller"
)

// TestTeacherRoutes — endpoint test & marks milik teacher (scoped ke kelasnya).
func TestTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTestController(db)

	tests := teacher.Group("/tests")
	tests.Get("/", ctrl.ListTestNames)
	tests.Post("/", ctrl.CreateTest)
	tests.Put("/", ctrl.EditTest)
	tests.Get("/:name", ctrl.GetTestDetail)
	tests.Delete("/:name", ctrl.DeleteTest)
}
