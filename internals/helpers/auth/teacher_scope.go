// file: internals/helpers/auth/teacher_scope.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	teacherModel "schoolku_backend/internals/features/school/teachers/model"
)

// GetUserIDFromLocals membaca user_id yang disimpan auth middleware.
func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals("user_id").(string)
	if !ok || v == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user id")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user id")
	}
	return id, nil
}

// GetTeacherFromLocals me-resolve record teacher milik user yang sedang login.
func GetTeacherFromLocals(db *gorm.DB, c *fiber.Ctx) (*teacherModel.TeacherModel, error) {
	userID, err := GetUserIDFromLocals(c)
	if err != nil {
		return nil, err
	}
	var teacher teacherModel.TeacherModel
	if err := db.First(&teacher, "teacher_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusForbidden, "Teacher record tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data teacher")
	}
	return &teacher, nil
}

// GetTeacherClassID: kelas yang dipegang teacher yang login.
// Teacher tanpa kelas tidak boleh mengakses operasi roster kelas.
func GetTeacherClassID(db *gorm.DB, c *fiber.Ctx) (uuid.UUID, error) {
	teacher, err := GetTeacherFromLocals(db, c)
	if err != nil {
		return uuid.Nil, err
	}
	if teacher.TeacherClassID == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Teacher belum memegang kelas")
	}
	return *teacher.TeacherClassID, nil
}
