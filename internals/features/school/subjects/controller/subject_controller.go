// file: internals/features/school/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/subjects/dto"
	"schoolku_backend/internals/features/school/subjects/model"
	testModel "schoolku_backend/internals/features/school/tests/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* ================= Controller & Constructor ================= */

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

var validate = validator.New()

/* =========================== CREATE =========================== */
// POST /api/t/subjects — subject baru untuk kelas teacher yang login.
func (ctrl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}

	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}

	m := model.SubjectModel{
		SubjectName:    req.SubjectName,
		SubjectClassID: classID,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat subject")
	}

	return helper.JsonCreated(c, "Subject berhasil dibuat", dto.FromModel(&m))
}

/* ============================ LIST ============================ */
// GET /api/t/subjects
func (ctrl *SubjectController) ListSubjects(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}

	var subjects []model.SubjectModel
	if err := ctrl.DB.WithContext(c.Context()).
		Where("subject_class_id = ?", classID).
		Order("subject_name").
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data subject")
	}
	return helper.JsonList(c, "Data diterima", dto.FromModels(subjects))
}

/* ========================== BULK EDIT ========================== */
// PUT /api/t/subjects — rename/hapus banyak subject sekaligus, satu transaksi.
func (ctrl *SubjectController) BulkEditSubjects(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}

	var req dto.BulkEditSubjectsRequest
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
		var subject model.SubjectModel
		if err := tx.First(&subject, "subject_id = ? AND subject_class_id = ?", row.SubjectID, classID).Error; err != nil {
			_ = tx.Rollback().Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
		}

		if row.Delete {
			// test subject ini beserta marks-nya ikut terhapus
			var testIDs []uuid.UUID
			if err := tx.Model(&testModel.TestModel{}).
				Where("test_subject_id = ?", subject.SubjectID).
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
			if err := tx.Delete(&model.SubjectModel{}, "subject_id = ?", subject.SubjectID).Error; err != nil {
				_ = tx.Rollback().Error
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus subject")
			}
			continue
		}

		if name := strings.TrimSpace(row.SubjectName); name != "" && name != subject.SubjectName {
			if err := tx.Model(&model.SubjectModel{}).
				Where("subject_id = ?", subject.SubjectID).
				Update("subject_name", name).Error; err != nil {
				_ = tx.Rollback().Error
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui subject")
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Subject berhasil diperbarui", nil)
}
