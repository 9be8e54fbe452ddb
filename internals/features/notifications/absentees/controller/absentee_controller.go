// file: internals/features/notifications/absentees/controller/absentee_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/notifications/absentees/service"
	helper "schoolku_backend/internals/helpers"
)

type AbsenteeController struct {
	DB *gorm.DB
}

func NewAbsenteeController(db *gorm.DB) *AbsenteeController {
	return &AbsenteeController{DB: db}
}

// GET /api/a/absentees — daftar absentee hari ini (tanpa kirim SMS).
func (ctrl *AbsenteeController) ListToday(c *fiber.Ctx) error {
	absentees, err := service.AbsenteesToday(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absentee")
	}
	return helper.JsonList(c, "Data diterima", absentees)
}

// POST /api/a/absentees/notify — kirim SMS ke wali semua absentee hari ini.
func (ctrl *AbsenteeController) NotifyToday(c *fiber.Ctx) error {
	result, err := service.NotifyAbsentees(ctrl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim notifikasi")
	}
	return helper.JsonOK(c, "Notifikasi selesai diproses", result)
}
