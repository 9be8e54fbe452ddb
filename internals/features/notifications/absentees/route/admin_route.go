// file: internals/features/notifications/absentees/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/notifications/absentees/controller"
)

// AbsenteeAdminRoutes — notifikasi SMS absentee, dipicu admin.
func AbsenteeAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAbsenteeController(db)

	absentees := admin.Group("/absentees")
	absentees.Get("/", ctrl.ListToday)
	absentees.Post("/notify", ctrl.NotifyToday)
}
