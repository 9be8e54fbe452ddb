// file: internals/features/school/reports/service/report_service.go
package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceService "schoolku_backend/internals/features/school/attendance/service"
)

var ErrMarksNotFound = errors.New("marks not found")

/* ======================================================
   Report service
   Laporan per subject berjalan per test: setiap test subject
   wajib punya tepat satu row marks untuk student-nya. Row yang
   hilang berarti backfill bolong dan dilaporkan sebagai error,
   tidak pernah dipaksakan jadi nol.
====================================================== */

type MarkCell struct {
	TestName    string  `json:"test_name"`
	TestDate    string  `json:"test_date"`
	SubjectName string  `json:"subject_name"`
	TotalMarks  int     `json:"total_marks"`
	Value       float64 `json:"value"`
}

type TestGroup struct {
	TestName string     `json:"test_name"`
	Cells    []MarkCell `json:"cells"`
}

// GroupByTestName mengelompokkan cell per nama test (urut kemunculan
// pertama), subject diurutkan alfabetis di tiap grup.
func GroupByTestName(cells []MarkCell) []TestGroup {
	order := make([]string, 0)
	byName := make(map[string][]MarkCell)
	for _, cell := range cells {
		if _, seen := byName[cell.TestName]; !seen {
			order = append(order, cell.TestName)
		}
		byName[cell.TestName] = append(byName[cell.TestName], cell)
	}

	groups := make([]TestGroup, 0, len(order))
	for _, name := range order {
		group := byName[name]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].SubjectName < group[j].SubjectName
		})
		groups = append(groups, TestGroup{TestName: name, Cells: group})
	}
	return groups
}

/* ===================== Subject report ===================== */

type SubjectTest struct {
	TestID     uuid.UUID `json:"test_id"`
	TestName   string    `json:"test_name"`
	TestDate   string    `json:"test_date"`
	TotalMarks int       `json:"total_marks"`
}

// AssembleSubjectCells memasangkan tepat satu nilai untuk setiap test
// subject, urut mengikuti tests. Test tanpa nilai → ErrMarksNotFound.
// Subject tanpa test sama sekali → laporan kosong, bukan error.
func AssembleSubjectCells(subjectName string, tests []SubjectTest, values map[uuid.UUID]float64) ([]MarkCell, error) {
	cells := make([]MarkCell, 0, len(tests))
	for _, t := range tests {
		v, ok := values[t.TestID]
		if !ok {
			return nil, fmt.Errorf("%w: test %s", ErrMarksNotFound, t.TestName)
		}
		cells = append(cells, MarkCell{
			TestName:    t.TestName,
			TestDate:    t.TestDate,
			SubjectName: subjectName,
			TotalMarks:  t.TotalMarks,
			Value:       v,
		})
	}
	return cells, nil
}

// SubjectReport — nilai satu student untuk satu subject, satu cell per
// test subject itu urut tanggal.
func SubjectReport(db *gorm.DB, studentID, subjectID uuid.UUID, subjectName string) ([]MarkCell, error) {
	tests, err := subjectTests(db, subjectID)
	if err != nil {
		return nil, err
	}
	values, err := studentMarkValues(db, studentID, tests)
	if err != nil {
		return nil, err
	}
	return AssembleSubjectCells(subjectName, tests, values)
}

/* ===================== Student overview ===================== */

// StudentOverview — semua nilai student digroup per nama test.
func StudentOverview(db *gorm.DB, studentID uuid.UUID) ([]TestGroup, error) {
	cells, err := markCells(db.Where("marks.marks_student_id = ?", studentID))
	if err != nil {
		return nil, err
	}
	return GroupByTestName(cells), nil
}

/* ===================== Class report ===================== */

type ClassReportRow struct {
	StudentID   uuid.UUID                           `json:"student_id"`
	StudentName string                              `json:"student_name"`
	RollNo      int                                 `json:"roll_no"`
	Tests       []TestGroup                         `json:"tests"`
	Attendance  attendanceService.AttendanceSummary `json:"attendance"`
}

type classStudent struct {
	StudentID   uuid.UUID
	StudentName string
	RollNo      int
}

// ClassReport — matriks nilai + rekap absensi per student kelas,
// urut roll number.
func ClassReport(db *gorm.DB, classID uuid.UUID) ([]ClassReportRow, error) {
	students, err := classStudents(db, classID)
	if err != nil {
		return nil, err
	}

	rows := make([]ClassReportRow, 0, len(students))
	for _, s := range students {
		groups, err := StudentOverview(db, s.StudentID)
		if err != nil {
			return nil, err
		}
		summary, err := attendanceService.AggregateAll(db, s.StudentID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, ClassReportRow{
			StudentID:   s.StudentID,
			StudentName: s.StudentName,
			RollNo:      s.RollNo,
			Tests:       groups,
			Attendance:  summary,
		})
	}
	return rows, nil
}

/* ===================== Class subject table ===================== */

type SubjectTableRow struct {
	StudentID   uuid.UUID                           `json:"student_id"`
	StudentName string                              `json:"student_name"`
	RollNo      int                                 `json:"roll_no"`
	Cells       []MarkCell                          `json:"cells"`
	Attendance  attendanceService.AttendanceSummary `json:"attendance"`
}

// ClassSubjectTable — tabel satu subject: baris = student urut roll,
// kolom = test subject itu urut tanggal, tiap baris dipasangkan rekap
// absensi student-nya. Marks bolong → ErrMarksNotFound.
func ClassSubjectTable(db *gorm.DB, classID, subjectID uuid.UUID, subjectName string) ([]SubjectTableRow, error) {
	tests, err := subjectTests(db, subjectID)
	if err != nil {
		return nil, err
	}
	students, err := classStudents(db, classID)
	if err != nil {
		return nil, err
	}

	rows := make([]SubjectTableRow, 0, len(students))
	for _, s := range students {
		values, err := studentMarkValues(db, s.StudentID, tests)
		if err != nil {
			return nil, err
		}
		cells, err := AssembleSubjectCells(subjectName, tests, values)
		if err != nil {
			return nil, err
		}
		summary, err := attendanceService.AggregateAll(db, s.StudentID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, SubjectTableRow{
			StudentID:   s.StudentID,
			StudentName: s.StudentName,
			RollNo:      s.RollNo,
			Cells:       cells,
			Attendance:  summary,
		})
	}
	return rows, nil
}

/* ============================ helpers ============================ */

func subjectTests(db *gorm.DB, subjectID uuid.UUID) ([]SubjectTest, error) {
	var tests []SubjectTest
	err := db.Table("tests").
		Select(`test_id,
			test_name,
			to_char(test_date, 'YYYY-MM-DD') AS test_date,
			test_total_marks AS total_marks`).
		Where("test_subject_id = ?", subjectID).
		Order("test_date, test_name").
		Scan(&tests).Error
	return tests, err
}

func studentMarkValues(db *gorm.DB, studentID uuid.UUID, tests []SubjectTest) (map[uuid.UUID]float64, error) {
	if len(tests) == 0 {
		return map[uuid.UUID]float64{}, nil
	}
	testIDs := make([]uuid.UUID, 0, len(tests))
	for _, t := range tests {
		testIDs = append(testIDs, t.TestID)
	}

	var rows []struct {
		TestID uuid.UUID
		Value  float64
	}
	if err := db.Table("marks").
		Select("marks_test_id AS test_id, marks_value AS value").
		Where("marks_student_id = ? AND marks_test_id IN ?", studentID, testIDs).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	values := make(map[uuid.UUID]float64, len(rows))
	for _, r := range rows {
		values[r.TestID] = r.Value
	}
	return values, nil
}

func classStudents(db *gorm.DB, classID uuid.UUID) ([]classStudent, error) {
	var students []classStudent
	err := db.Table("students").
		Select("student_id, student_name, student_roll_no AS roll_no").
		Where("student_class_id = ?", classID).
		Order("student_roll_no").
		Scan(&students).Error
	return students, err
}

func markCells(scope *gorm.DB) ([]MarkCell, error) {
	var cells []MarkCell
	err := scope.Table("marks").
		Select(`tests.test_name AS test_name,
			to_char(tests.test_date, 'YYYY-MM-DD') AS test_date,
			subjects.subject_name AS subject_name,
			tests.test_total_marks AS total_marks,
			marks.marks_value AS value`).
		Joins("JOIN tests ON tests.test_id = marks.marks_test_id").
		Joins("JOIN subjects ON subjects.subject_id = tests.test_subject_id").
		Order("tests.test_date, tests.test_name, subjects.subject_name").
		Scan(&cells).Error
	return cells, err
}
