// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "schoolku_backend/internals/features/school/attendance/model"
	"schoolku_backend/internals/features/school/students/dto"
	"schoolku_backend/internals/features/school/students/model"
	"schoolku_backend/internals/features/school/students/service"
	testModel "schoolku_backend/internals/features/school/tests/model"
	authService "schoolku_backend/internals/features/users/auth/service"
	userModel "schoolku_backend/internals/features/users/users/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* ================= Controller & Constructor ================= */

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

/* =========================== CREATE =========================== */
// POST /api/t/students
// Scoped ke kelas teacher yang login. Urutan validasi mengikuti alur
// aslinya: phone → roll → account. Semua write satu transaksi,
// termasuk backfill marks nol untuk test yang sudah ada.
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}

	if !service.ValidPhone(req.Phone) {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusPhoneError)
	}

	var existingRolls []int
	if err := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_class_id = ?", classID).
		Pluck("student_roll_no", &existingRolls).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek roll number")
	}
	if service.RollTaken(req.RollNo, existingRolls) {
		return helper.JsonStatusError(c, fiber.StatusConflict, helper.StatusRollError)
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

	user := userModel.UserModel{
		UserName:     req.Username,
		UserPassword: hash,
	}
	if err := tx.Create(&user).Error; err != nil {
		_ = tx.Rollback().Error
		if isUniqueViolation(err) {
			return helper.JsonStatusError(c, fiber.StatusConflict, helper.StatusUserExist)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat account")
	}

	student := model.StudentModel{
		StudentUserID:  user.UserID,
		StudentClassID: classID,
		StudentPhone:   req.Phone,
		StudentRollNo:  req.RollNo,
		StudentName:    req.FullName,
	}
	if err := tx.Create(&student).Error; err != nil {
		_ = tx.Rollback().Error
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat student")
	}

	// Backfill marks nol untuk semua test yang sudah ada di kelas.
	if _, err := service.BackfillMarksForStudent(tx, student.StudentID, classID); err != nil {
		_ = tx.Rollback().Error
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal backfill marks")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Student berhasil dibuat", dto.FromModel(&student))
}

/* ============================ LIST ============================ */
// GET /api/t/students — roster kelas teacher, urut roll number.
func (ctrl *StudentController) ListStudents(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}

	var students []model.StudentModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("student_class_id = ?", classID).
		Order("student_roll_no").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}
	return helper.JsonList(c, "Data diterima", dto.FromModels(students))
}

/* =========================== DELETE =========================== */
// DELETE /api/t/students/:id — account + record dihapus bersama.
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
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

	var student model.StudentModel
	if err := tx.First(&student, "student_id = ? AND student_class_id = ?", studentID, classID).Error; err != nil {
		_ = tx.Rollback().Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	if err := removeStudent(tx, &student); err != nil {
		_ = tx.Rollback().Error
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus student")
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Student berhasil dihapus", fiber.Map{
		"student_id": studentID,
	})
}

/* ========================== BULK EDIT ========================== */
// PUT /api/t/students
// Validasi seluruh batch dulu (roll duplikat, phone), baru menulis —
// satu transaksi, gagal di tengah → rollback total. Pindah kelas
// mem-backfill marks nol untuk test kelas tujuan, skip yang sudah ada.
func (ctrl *StudentController) BulkEditStudents(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}

	var req dto.BulkEditStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}

	// Validasi sebelum write apapun.
	var keptRolls []int
	for _, row := range req.Rows {
		if row.Delete {
			continue
		}
		if !service.ValidPhone(row.Phone) {
			return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusPhoneError)
		}
		keptRolls = append(keptRolls, row.RollNo)
	}
	if _, dup := service.DuplicateRoll(keptRolls); dup {
		return helper.JsonStatusError(c, fiber.StatusConflict, helper.StatusRollError)
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
		var student model.StudentModel
		if err := tx.First(&student, "student_id = ? AND student_class_id = ?", row.StudentID, classID).Error; err != nil {
			_ = tx.Rollback().Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		if row.Delete {
			if err := removeStudent(tx, &student); err != nil {
				_ = tx.Rollback().Error
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus student")
			}
			continue
		}

		targetClass := student.StudentClassID
		if row.ClassID != uuid.Nil && row.ClassID != student.StudentClassID {
			targetClass = row.ClassID
			// Pindah kelas: pastikan setiap test kelas tujuan punya row marks.
			if _, err := service.BackfillMarksForStudent(tx, student.StudentID, targetClass); err != nil {
				_ = tx.Rollback().Error
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal backfill marks")
			}
		}

		updates := map[string]any{
			"student_roll_no":  row.RollNo,
			"student_phone":    row.Phone,
			"student_class_id": targetClass,
		}
		if name := strings.TrimSpace(row.FullName); name != "" {
			updates["student_name"] = name
		}
		if err := tx.Model(&model.StudentModel{}).
			Where("student_id = ?", student.StudentID).
			Updates(updates).Error; err != nil {
			_ = tx.Rollback().Error
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui student")
		}

		if row.NewPassword != "" {
			hash, err := authService.HashPassword(row.NewPassword)
			if err != nil {
				_ = tx.Rollback().Error
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
			}
			if err := tx.Model(&userModel.UserModel{}).
				Where("user_id = ?", student.StudentUserID).
				Update("user_password", hash).Error; err != nil {
				_ = tx.Rollback().Error
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui password")
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Student berhasil diperbarui", nil)
}

/* ============================ helpers ============================ */

// removeStudent menghapus student beserta marks, absensi, dan account-nya.
func removeStudent(tx *gorm.DB, student *model.StudentModel) error {
	if err := tx.Delete(&testModel.MarksModel{}, "marks_student_id = ?", student.StudentID).Error; err != nil {
		return err
	}
	if err := tx.Delete(&attendanceModel.AttendanceModel{}, "attendance_student_id = ?", student.StudentID).Error; err != nil {
		return err
	}
	if err := tx.Delete(&model.StudentModel{}, "student_id = ?", student.StudentID).Error; err != nil {
		return err
	}
	return tx.Delete(&userModel.UserModel{}, "user_id = ?", student.StudentUserID).Error
}

func isUniqueViolation(err error) bool {
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate") || strings.Contains(low, "unique constraint")
}
