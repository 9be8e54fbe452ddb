// file: internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/teachers/dto"
	"schoolku_backend/internals/features/school/teachers/model"
	authService "schoolku_backend/internals/features/users/auth/service"
	userModel "schoolku_backend/internals/features/users/users/model"
	helper "schoolku_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

var validate = validator.New()

/* =========================== CREATE =========================== */
// POST /api/a/teachers
// Account dibuat lebih dulu, lalu record teacher — satu transaksi.
// Username bentrok → userexist, tidak ada record yatim.
func (ctrl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}

	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	tx := ctrl.DB.WithContext(c.Context()).Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback().Error
			panic(r)
		}
	}()

	// Maksimal satu teacher per kelas (application check).
	if req.ClassID != nil {
		var count int64
		if err := tx.Model(&model.TeacherModel{}).
			Where("teacher_class_id = ?", *req.ClassID).
			Count(&count).Error; err != nil {
			_ = tx.Rollback().Error
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek kelas")
		}
		if count > 0 {
			_ = tx.Rollback().Error
			return helper.JsonError(c, fiber.StatusConflict, "Kelas ini sudah punya teacher")
		}
	}

	user := userModel.UserModel{
		UserName:     req.Username,
		UserPassword: hash,
	}
	if err := tx.Create(&user).Error; err != nil {
		_ = tx.Rollback().Error
		if isUniqueViolation(err, "uq_users_user_name") {
			return helper.JsonStatusError(c, fiber.StatusConflict, helper.StatusUserExist)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat account")
	}

	teacher := model.TeacherModel{
		TeacherUserID:  user.UserID,
		TeacherClassID: req.ClassID,
		TeacherName:    req.FullName,
	}
	if err := tx.Create(&teacher).Error; err != nil {
		_ = tx.Rollback().Error
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat teacher")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Teacher berhasil dibuat", dto.FromModel(&teacher))
}

/* ============================ LIST ============================ */
// GET /api/a/teachers
func (ctrl *TeacherController) ListTeachers(c *fiber.Ctx) error {
	var teachers []model.TeacherModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("teacher_name").
		Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data teacher")
	}
	return helper.JsonList(c, "Data diterima", dto.FromModels(teachers))
}

/* =========================== DELETE =========================== */
// DELETE /api/a/teachers/:id
// Account + record dihapus bersama dalam satu transaksi.
func (ctrl *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusSelectError)
	}

	tx := ctrl.DB.WithContext(c.Context()).Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback().Error
			panic(r)
		}
	}()

	var teacher model.TeacherModel
	if err := tx.First(&teacher, "teacher_id = ?", teacherID).Error; err != nil {
		_ = tx.Rollback().Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := removeTeacher(tx, &teacher); err != nil {
		_ = tx.Rollback().Error
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus teacher")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Teacher berhasil dihapus", fiber.Map{
		"teacher_id": teacherID,
	})
}

/* ========================== BULK EDIT ========================== */
// PUT /api/a/teachers
// Semua row diproses dalam satu transaksi; gagal di tengah → rollback total.
func (ctrl *TeacherController) BulkEditTeachers(c *fiber.Ctx) error {
	var req dto.BulkEditTeachersRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}

	tx := ctrl.DB.WithContext(c.Context()).Begin()
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback().Error
			panic(r)
		}
	}()

	for _, row := range req.Rows {
		var teacher model.TeacherModel
		if err := tx.First(&teacher, "teacher_id = ?", row.TeacherID).Error; err != nil {
			_ = tx.Rollback().Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		if row.Delete {
			if err := removeTeacher(tx, &teacher); err != nil {
				_ = tx.Rollback().Error
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus teacher")
			}
			continue
		}

		if name := strings.TrimSpace(row.TeacherName); name != "" {
			if err := tx.Model(&model.TeacherModel{}).
				Where("teacher_id = ?", teacher.TeacherID).
				Update("teacher_name", name).Error; err != nil {
				_ = tx.Rollback().Error
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui teacher")
			}
		}
		if row.NewPassword != "" {
			hash, err := authService.HashPassword(row.NewPassword)
			if err != nil {
				_ = tx.Rollback().Error
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
			}
			if err := tx.Model(&userModel.UserModel{}).
				Where("user_id = ?", teacher.TeacherUserID).
				Update("user_password", hash).Error; err != nil {
				_ = tx.Rollback().Error
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui password")
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Teacher berhasil diperbarui", nil)
}

/* ============================ helpers ============================ */

func removeTeacher(tx *gorm.DB, teacher *model.TeacherModel) error {
	if err := tx.Delete(&model.TeacherModel{}, "teacher_id = ?", teacher.TeacherID).Error; err != nil {
		return err
	}
	return tx.Delete(&userModel.UserModel{}, "user_id = ?", teacher.TeacherUserID).Error
}

func isUniqueViolation(err error, index string) bool {
	low := strings.ToLower(err.Error())
	return strings.Contains(low, index) ||
		strings.Contains(low, "duplicate") ||
		strings.Contains(low, "unique constraint")
}
