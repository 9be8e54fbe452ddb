// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/attendance/dto"
	"schoolku_backend/internals/features/school/attendance/model"
	"schoolku_backend/internals/features/school/attendance/service"
	studentModel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* ================= Controller & Constructor ================= */

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

var validate = validator.New()

const dateLayout = "2006-01-02"

/* ======================== GET TODAY ======================== */
// GET /api/t/attendance/today
// Belum diambil → roster kelas untuk form capture.
// Sudah diambil → row absensi hari ini.
func (ctrl *AttendanceController) GetToday(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}
	today := time.Now().Format(dateLayout)

	rows, err := ctrl.todayRows(classID, today)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}

	resp := dto.TodayAttendanceResponse{Date: today, Taken: len(rows) > 0}
	if resp.Taken {
		resp.Rows = rows
		summary := service.Tally(toModels(rows))
		resp.Summary = &summary
		return helper.JsonOK(c, "Absensi hari ini sudah tercatat", resp)
	}

	var students []studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_class_id = ?", classID).
		Order("student_roll_no").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}
	for _, s := range students {
		resp.Roster = append(resp.Roster, dto.RosterRowResponse{
			StudentID:   s.StudentID,
			StudentName: s.StudentName,
			RollNo:      s.StudentRollNo,
		})
	}
	return helper.JsonOK(c, "Absensi hari ini belum tercatat", resp)
}

/* ========================= CAPTURE ========================= */
// POST /api/t/attendance/today
// Satu row untuk SETIAP student kelas (yang tidak disebut di entries
// dianggap absen), satu transaksi. Kalau hari ini sudah tercatat →
// 409, form harus lewat jalur edit.
func (ctrl *AttendanceController) CaptureToday(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}

	var req dto.CaptureAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}

	today := time.Now().Format(dateLayout)

	var taken int64
	if err := ctrl.DB.Model(&model.AttendanceModel{}).
		Joins("JOIN students ON students.student_id = attendances.attendance_student_id").
		Where("students.student_class_id = ? AND attendances.attendance_date = ?", classID, today).
		Count(&taken).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data absensi")
	}
	if taken > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Absensi hari ini sudah tercatat")
	}

	// entry hanya boleh menunjuk student kelas ini
	var classStudentIDs []uuid.UUID
	if err := ctrl.DB.Model(&studentModel.StudentModel{}).
		Where("student_class_id = ?", classID).
		Pluck("student_id", &classStudentIDs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}
	inClass := make(map[uuid.UUID]bool, len(classStudentIDs))
	for _, id := range classStudentIDs {
		inClass[id] = true
	}
	present := make(map[uuid.UUID]bool, len(req.Entries))
	for _, e := range req.Entries {
		if !inClass[e.StudentID] {
			return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusSelectError)
		}
		present[e.StudentID] = e.IsPresent
	}

	// seluruh roster dapat row; yang tidak disebut → absen
	dayRows := service.RowsForDay(datatypes.Date(time.Now()), classStudentIDs, present)

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

	for i := range dayRows {
		if err := tx.Create(&dayRows[i]).Error; err != nil {
			_ = tx.Rollback().Error
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Absensi berhasil dicatat", fiber.Map{
		"date":    today,
		"entries": len(dayRows),
	})
}

/* ========================== EDIT ========================== */
// PUT /api/t/attendance/today
// Hanya memperbarui row yang sudah ada; tidak pernah membuat row baru.
func (ctrl *AttendanceController) EditToday(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}

	var req dto.EditAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}

	today := time.Now().Format(dateLayout)

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

	for _, e := range req.Entries {
		res := tx.Model(&model.AttendanceModel{}).
			Where(`attendance_student_id = ? AND attendance_date = ?
				AND attendance_student_id IN (
					SELECT student_id FROM students WHERE student_class_id = ?)`,
				e.StudentID, today, classID).
			Update("attendance_is_present", e.IsPresent)
		if res.Error != nil {
			_ = tx.Rollback().Error
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui absensi")
		}
		if res.RowsAffected == 0 {
			_ = tx.Rollback().Error
			return helper.JsonError(c, fiber.StatusNotFound, "Absensi tidak ditemukan")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Absensi berhasil diperbarui", fiber.Map{
		"date":    today,
		"entries": len(req.Entries),
	})
}

/* ========================= REPORT ========================= */
// GET /api/t/attendance/report/:student_id?from=2006-01-02&to=2006-01-02
// Tanpa query → rekap sepanjang waktu.
func (ctrl *AttendanceController) StudentReport(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusSelectError)
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_id = ? AND student_class_id = ?", studentID, classID).
		First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
	}

	summary, err := ctrl.summarize(studentID, c.Query("from"), c.Query("to"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung rekap absensi")
	}
	return helper.JsonOK(c, "Data diterima", fiber.Map{
		"student_id":   student.StudentID,
		"student_name": student.StudentName,
		"roll_no":      student.StudentRollNo,
		"summary":      summary,
	})
}

// GET /api/s/attendance — rekap milik student yang login.
func (ctrl *AttendanceController) MyReport(c *fiber.Ctx) error {
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

	summary, err := ctrl.summarize(student.StudentID, c.Query("from"), c.Query("to"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung rekap absensi")
	}
	return helper.JsonOK(c, "Data diterima", fiber.Map{
		"student_name": student.StudentName,
		"roll_no":      student.StudentRollNo,
		"summary":      summary,
	})
}

/* ============================ helpers ============================ */

func (ctrl *AttendanceController) summarize(studentID uuid.UUID, fromQ, toQ string) (service.AttendanceSummary, error) {
	if fromQ == "" && toQ == "" {
		return service.AggregateAll(ctrl.DB, studentID)
	}
	from, err := time.Parse(dateLayout, fromQ)
	if err != nil {
		return service.AttendanceSummary{}, err
	}
	to, err := time.Parse(dateLayout, toQ)
	if err != nil {
		return service.AttendanceSummary{}, err
	}
	return service.AggregateRange(ctrl.DB, studentID, from, to)
}

// toModels: row response → model, cukup untuk Tally.
func toModels(rows []dto.AttendanceRowResponse) []model.AttendanceModel {
	out := make([]model.AttendanceModel, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.AttendanceModel{AttendanceIsPresent: r.IsPresent})
	}
	return out
}

func (ctrl *AttendanceController) todayRows(classID uuid.UUID, today string) ([]dto.AttendanceRowResponse, error) {
	var rows []dto.AttendanceRowResponse
	err := ctrl.DB.Model(&model.AttendanceModel{}).
		Select(`attendances.attendance_id AS attendance_id,
			students.student_id AS student_id,
			students.student_name AS student_name,
			students.student_roll_no AS roll_no,
			attendances.attendance_is_present AS is_present`).
		Joins("JOIN students ON students.student_id = attendances.attendance_student_id").
		Where("students.student_class_id = ? AND attendances.attendance_date = ?", classID, today).
		Order("students.student_roll_no").
		Scan(&rows).Error
	return rows, err
}
