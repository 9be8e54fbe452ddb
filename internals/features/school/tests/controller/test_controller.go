// file: internals/features/school/tests/controller/test_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "schoolku_backend/internals/features/school/students/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	"schoolku_backend/internals/features/school/tests/dto"
	"schoolku_backend/internals/features/school/tests/model"
	"schoolku_backend/internals/features/school/tests/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* ================= Controller & Constructor ================= */

type TestController struct {
	DB *gorm.DB
}

func NewTestController(db *gorm.DB) *TestController {
	return &TestController{DB: db}
}

var validate = validator.New()

/* =========================== CREATE =========================== */
// POST /api/t/tests
// Satu row Test per subject kelas; setiap student terdaftar di-stamp
// satu row marks (nol, lalu diisi dari entries per (subject, roll)).
// Semua dalam satu transaksi.
func (ctrl *TestController) CreateTest(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}

	var req dto.CreateTestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}
	testDate, err := req.ParseDate()
	if err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}

	var subjects []subjectModel.SubjectModel
	if err := ctrl.DB.
		Where("subject_class_id = ?", classID).
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data subject")
	}
	if len(subjects) == 0 {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusSelectError)
	}

	var students []studentModel.StudentModel
	if err := ctrl.DB.
		Where("student_class_id = ?", classID).
		Order("student_roll_no").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}

	// nilai per (subject, roll)
	entryValues := make(map[service.MarkKey]float64, len(req.Entries))
	for _, e := range req.Entries {
		entryValues[service.MarkKey{SubjectID: e.SubjectID, RollNo: e.RollNo}] = e.Marks
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

	created := make([]dto.TestResponse, 0, len(subjects))
	for _, subject := range subjects {
		test := model.TestModel{
			TestSubjectID:  subject.SubjectID,
			TestTotalMarks: req.TotalMarks,
			TestName:       req.TestName,
			TestDate:       testDate,
		}
		if err := tx.Create(&test).Error; err != nil {
			_ = tx.Rollback().Error
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat test")
		}

		markRows := service.BuildMarkRows(test.TestID, subject.SubjectID, students, entryValues)
		for i := range markRows {
			if err := tx.Create(&markRows[i]).Error; err != nil {
				_ = tx.Rollback().Error
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat marks")
			}
		}
		created = append(created, dto.FromModel(&test))
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Test berhasil dibuat", created)
}

/* ======================== LIST NAMES ======================== */
// GET /api/t/tests — nama test distinct milik kelas teacher.
func (ctrl *TestController) ListTestNames(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}

	var names []string
	if err := ctrl.DB.Model(&model.TestModel{}).
		Distinct("test_name").
		Joins("JOIN subjects ON subjects.subject_id = tests.test_subject_id").
		Where("subjects.subject_class_id = ?", classID).
		Order("test_name").
		Pluck("test_name", &names).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data test")
	}
	return helper.JsonList(c, "Data diterima", names)
}

/* ======================== GET FOR EDIT ======================== */
// GET /api/t/tests/:name — row test + row marks untuk form edit.
// Marks diurutkan per roll number lalu nama subject.
func (ctrl *TestController) GetTestDetail(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}
	testName := c.Params("name")
	if testName == "" {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusSelectError)
	}

	tests, err := ctrl.testsByName(classID, testName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data test")
	}
	if len(tests) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Test tidak ditemukan")
	}

	var rows []dto.MarkRowResponse
	if err := ctrl.DB.Model(&model.MarksModel{}).
		Select(`marks.marks_id AS marks_id,
			students.student_id AS student_id,
			students.student_name AS student_name,
			students.student_roll_no AS roll_no,
			subjects.subject_name AS subject_name,
			marks.marks_value AS value`).
		Joins("JOIN tests ON tests.test_id = marks.marks_test_id").
		Joins("JOIN subjects ON subjects.subject_id = tests.test_subject_id").
		Joins("JOIN students ON students.student_id = marks.marks_student_id").
		Where("tests.test_name = ? AND subjects.subject_class_id = ?", testName, classID).
		Order("students.student_roll_no, subjects.subject_name").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data marks")
	}

	resp := dto.TestDetailResponse{Marks: rows}
	for i := range tests {
		resp.Tests = append(resp.Tests, dto.FromModel(&tests[i]))
	}
	return helper.JsonOK(c, "Data diterima", resp)
}

/* ============================ EDIT ============================ */
// PUT /api/t/tests
// Update total_marks untuk semua row test bernama sama + nilai marks
// per row (marks_id), satu transaksi.
func (ctrl *TestController) EditTest(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}

	var req dto.EditTestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}

	tests, err := ctrl.testsByName(classID, req.TestName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data test")
	}
	if len(tests) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Test tidak ditemukan")
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

	testIDs := make([]uuid.UUID, 0, len(tests))
	for _, t := range tests {
		testIDs = append(testIDs, t.TestID)
	}

	if err := tx.Model(&model.TestModel{}).
		Where("test_id IN ?", testIDs).
		Update("test_total_marks", req.TotalMarks).Error; err != nil {
		_ = tx.Rollback().Error
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui test")
	}

	for _, row := range req.Marks {
		res := tx.Model(&model.MarksModel{}).
			Where("marks_id = ? AND marks_test_id IN ?", row.MarksID, testIDs).
			Update("marks_value", row.Value)
		if res.Error != nil {
			_ = tx.Rollback().Error
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui marks")
		}
		if res.RowsAffected == 0 {
			_ = tx.Rollback().Error
			return helper.JsonError(c, fiber.StatusNotFound, "Marks tidak ditemukan")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Test berhasil diperbarui", nil)
}

/* =========================== DELETE =========================== */
// DELETE /api/t/tests/:name — hapus semua row test bernama sama
// beserta marks-nya, satu transaksi.
func (ctrl *TestController) DeleteTest(c *fiber.Ctx) error {
	classID, err := helperAuth.GetTeacherClassID(ctrl.DB, c)
	if err != nil {
		return err
	}
	testName := c.Params("name")
	if testName == "" {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusSelectError)
	}

	tests, err := ctrl.testsByName(classID, testName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data test")
	}
	if len(tests) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Test tidak ditemukan")
	}

	testIDs := make([]uuid.UUID, 0, len(tests))
	for _, t := range tests {
		testIDs = append(testIDs, t.TestID)
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

	if err := tx.Delete(&model.MarksModel{}, "marks_test_id IN ?", testIDs).Error; err != nil {
		_ = tx.Rollback().Error
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus marks")
	}
	if err := tx.Delete(&model.TestModel{}, "test_id IN ?", testIDs).Error; err != nil {
		_ = tx.Rollback().Error
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus test")
	}
	if err := tx.Commit().Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Test berhasil dihapus", fiber.Map{
		"test_name": testName,
		"deleted":   len(testIDs),
	})
}

/* ============================ helpers ============================ */

func (ctrl *TestController) testsByName(classID uuid.UUID, name string) ([]model.TestModel, error) {
	var tests []model.TestModel
	err := ctrl.DB.
		Joins("JOIN subjects ON subjects.subject_id = tests.test_subject_id").
		Where("tests.test_name = ? AND subjects.subject_class_id = ?", name, classID).
		Order("subjects.subject_name").
		Find(&tests).Error
	return tests, err
}
