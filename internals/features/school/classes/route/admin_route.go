// file: internals/features/school/classes/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "schoolku_backend/internals/features/school/classes/controller"
)

// ClassAdminRoutes: mount di group admin (/api/a)
func ClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassController(db)

	classes := admin.Group("/classes")
	classes.Get("/", ctrl.ListClasses)
	classes.Post("/", ctrl.CreateClass)
	classes.Delete("/:id", ctrl.DeleteClass)
}
