// file: internals/features/school/reports/controller/report_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "schoolku_backend/internals/features/school/classes/model"
	"schoolku_backend/internals/features/school/reports/service"
	studentModel "schoolku_backend/internals/features/school/students/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* ================= Controller & Constructor ================= */

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

/* ===================== Teacher views ===================== */

// GET /api/t/reports/class — matriks nilai + absensi seluruh kelas.
func (ctrl *ReportController) ClassReport(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}
	rows, err := service.ClassReport(ctrl.DB, classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan kelas")
	}
	return helper.JsonList(c, "Data diterima", rows)
}

// GET /api/t/reports/subject/:subject_id — tabel nilai satu subject
// untuk seluruh kelas, baris per student + rekap absensinya.
func (ctrl *ReportController) SubjectTable(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}
	subjectID, err := uuid.Parse(c.Params("subject_id"))
	if err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusSelectError)
	}

	var subject subjectModel.SubjectModel
	if err := ctrl.DB.
		Where("subject_id = ? AND subject_class_id = ?", subjectID, classID).
		First(&subject).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
	}

	rows, err := service.ClassSubjectTable(ctrl.DB, classID, subjectID, subject.SubjectName)
	if err != nil {
		if errors.Is(err, service.ErrMarksNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Marks tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan subject")
	}
	return helper.JsonOK(c, "Data diterima", fiber.Map{
		"subject_name": subject.SubjectName,
		"rows":         rows,
	})
}

// GET /api/t/reports/subject/:subject_id/student/:student_id
// Nilai satu student di satu subject. Marks yang tidak ada → 404.
func (ctrl *ReportController) SubjectReport(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}
	subjectID, err := uuid.Parse(c.Params("subject_id"))
	if err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusSelectError)
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusSelectError)
	}

	var subject subjectModel.SubjectModel
	if err := ctrl.DB.
		Where("subject_id = ? AND subject_class_id = ?", subjectID, classID).
		First(&subject).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
	}
	var student studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_id = ? AND student_class_id = ?", studentID, classID).
		First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
	}

	cells, err := service.SubjectReport(ctrl.DB, studentID, subjectID, subject.SubjectName)
	if err != nil {
		if errors.Is(err, service.ErrMarksNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Marks tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan subject")
	}
	return helper.JsonOK(c, "Data diterima", fiber.Map{
		"student_name": student.StudentName,
		"roll_no":      student.StudentRollNo,
		"subject_name": subject.SubjectName,
		"cells":        cells,
	})
}

/* ===================== Student view ===================== */

// GET /api/s/reports — seluruh nilai student yang login,
// digroup per nama test.
func (ctrl *ReportController) MyReport(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	var student studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_user_id = ?", userID).
		First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
	}

	groups, err := service.StudentOverview(ctrl.DB, student.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan")
	}
	return helper.JsonOK(c, "Data diterima", fiber.Map{
		"student_name": student.StudentName,
		"roll_no":      student.StudentRollNo,
		"tests":        groups,
	})
}

/* ===================== Principal view ===================== */

// GET /api/p/reports/class/:class_id — laporan kelas mana pun,
// termasuk teacher pemegang kelasnya.
func (ctrl *ReportController) ClassReportByID(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("class_id"))
	if err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusSelectError)
	}

	var class classModel.ClassModel
	if err := ctrl.DB.First(&class, "class_id = ?", classID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class tidak ditemukan")
	}

	var teacherName *string
	var teacher teacherModel.TeacherModel
	switch err := ctrl.DB.First(&teacher, "teacher_class_id = ?", classID).Error; {
	case err == nil:
		teacherName = &teacher.TeacherName
	case errors.Is(err, gorm.ErrRecordNotFound):
		// kelas tanpa teacher
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data teacher")
	}

	rows, err := service.ClassReport(ctrl.DB, classID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyusun laporan kelas")
	}
	return helper.JsonOK(c, "Data diterima", fiber.Map{
		"class":   class.Label(),
		"teacher": teacherName,
		"rows":    rows,
	})
}

// GET /api/p/classes — daftar kelas untuk navigasi principal.
func (ctrl *ReportController) ListClasses(c *fiber.Ctx) error {
	var classes []classModel.ClassModel
	if err := ctrl.DB.
		Order("class_grade, class_division").
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data class")
	}
	return helper.JsonList(c, "Data diterima", classes)
}
