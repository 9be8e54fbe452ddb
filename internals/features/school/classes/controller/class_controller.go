// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "schoolku_backend/internals/features/school/attendance/model"
	"schoolku_backend/internals/features/school/classes/dto"
	"schoolku_backend/internals/features/school/classes/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	testModel "schoolku_backend/internals/features/school/tests/model"
	userModel "schoolku_backend/internals/features/users/users/model"
	helper "schoolku_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

/* =========================== CREATE =========================== */
// POST /api/a/classes
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}

	m := req.ToModel()
	if err := ctrl.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "uq_classes_grade_division") || strings.Contains(low, "duplicate") {
			return helper.JsonError(c, fiber.StatusConflict, "Kelas dengan grade/division ini sudah ada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kelas")
	}

	return helper.JsonCreated(c, "Kelas berhasil dibuat", dto.FromModel(m))
}

/* ============================ LIST ============================ */
// GET /api/a/classes
func (ctrl *ClassController) ListClasses(c *fiber.Ctx) error {
	var classes []model.ClassModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("class_grade, class_division").
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kelas")
	}
	return helper.JsonList(c, "Data diterima", dto.FromModels(classes))
}

/* =========================== DELETE =========================== */
// DELETE /api/a/classes/:id
// Menghapus kelas beserta seluruh turunannya: teacher pemegang kelas
// (dengan account-nya), students (dengan account-nya), subjects,
// tests, marks, dan attendances — satu transaksi.
func (ctrl *ClassController) DeleteClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
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

	var class model.ClassModel
	if err := tx.First(&class, "class_id = ?", classID).Error; err != nil {
		_ = tx.Rollback().Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// Teacher pemegang kelas: hapus record + account (kalau ada).
	var teacher teacherModel.TeacherModel
	err = tx.First(&teacher, "teacher_class_id = ?", classID).Error
	switch {
	case err == nil:
		if err := tx.Delete(&teacherModel.TeacherModel{}, "teacher_id = ?", teacher.TeacherID).Error; err != nil {
			_ = tx.Rollback().Error
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus teacher")
		}
		if err := tx.Delete(&userModel.UserModel{}, "user_id = ?", teacher.TeacherUserID).Error; err != nil {
			_ = tx.Rollback().Error
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus account teacher")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// kelas tanpa teacher, lanjut
	default:
		_ = tx.Rollback().Error
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data teacher")
	}

	var studentIDs []uuid.UUID
	if err := tx.Model(&studentModel.StudentModel{}).
		Where("student_class_id = ?", classID).
		Pluck("student_id", &studentIDs).Error; err != nil {
		_ = tx.Rollback().Error
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}
	var studentUserIDs []uuid.UUID
	if err := tx.Model(&studentModel.StudentModel{}).
		Where("student_class_id = ?", classID).
		Pluck("student_user_id", &studentUserIDs).Error; err != nil {
		_ = tx.Rollback().Error
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}
	var subjectIDs []uuid.UUID
	if err := tx.Model(&subjectModel.SubjectModel{}).
		Where("subject_class_id = ?", classID).
		Pluck("subject_id", &subjectIDs).Error; err != nil {
		_ = tx.Rollback().Error
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data subject")
	}

	// turunan paling dalam dulu: marks → tests → subjects,
	// attendances → students → class → account student
	if len(subjectIDs) > 0 {
		var testIDs []uuid.UUID
		if err := tx.Model(&testModel.TestModel{}).
			Where("test_subject_id IN ?", subjectIDs).
			Pluck("test_id", &testIDs).Error; err != nil {
			_ = tx.Rollback().Error
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data test")
		}
		if len(testIDs) > 0 {
			if err := tx.Delete(&testModel.MarksModel{}, "marks_test_id IN ?", testIDs).Error; err != nil {
				_ = tx.Rollback().Error
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus marks")
			}
			if err := tx.Delete(&testModel.TestModel{}, "test_id IN ?", testIDs).Error; err != nil {
				_ = tx.Rollback().Error
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus test")
			}
		}
		if err := tx.Delete(&subjectModel.SubjectModel{}, "subject_id IN ?", subjectIDs).Error; err != nil {
			_ = tx.Rollback().Error
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus subject")
		}
	}

	if len(studentIDs) > 0 {
		// marks yang masih menempel ke test kelas lain (sisa pindah kelas)
		// juga harus hilang bersama student-nya
		if err := tx.Delete(&testModel.MarksModel{}, "marks_student_id IN ?", studentIDs).Error; err != nil {
			_ = tx.Rollback().Error
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus marks")
		}
		if err := tx.Delete(&attendanceModel.AttendanceModel{}, "attendance_student_id IN ?", studentIDs).Error; err != nil {
			_ = tx.Rollback().Error
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus absensi")
		}
		if err := tx.Delete(&studentModel.StudentModel{}, "student_id IN ?", studentIDs).Error; err != nil {
			_ = tx.Rollback().Error
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus student")
		}
	}

	if err := tx.Delete(&model.ClassModel{}, "class_id = ?", classID).Error; err != nil {
		_ = tx.Rollback().Error
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kelas")
	}

	if len(studentUserIDs) > 0 {
		if err := tx.Delete(&userModel.UserModel{}, "user_id IN ?", studentUserIDs).Error; err != nil {
			_ = tx.Rollback().Error
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus account student")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{
		"class_id": classID,
	})
}
