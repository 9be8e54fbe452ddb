// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	absenteeRoute "schoolku_backend/internals/features/notifications/absentees/route"
	attendanceRoute "schoolku_backend/internals/features/school/attendance/route"
	classRoute "schoolku_backend/internals/features/school/classes/route"
	reportRoute "schoolku_backend/internals/features/school/reports/route"
	studentRoute "schoolku_backend/internals/features/school/students/route"
	subjectRoute "schoolku_backend/internals/features/school/subjects/route"
	teacherRoute "schoolku_backend/internals/features/school/teachers/route"
	testRoute "schoolku_backend/internals/features/school/tests/route"
	authRoute "schoolku_backend/internals/features/users/auth/route"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

/* ======================================================
   Route index
   /api/auth  → publik (login) + sesi
   /api/a     → admin
   /api/t     → teacher
   /api/s     → student
   /api/p     → principal
====================================================== */

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manajemen sekolah"), constants.RoleAdmin),
	)
	classRoute.ClassAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	absenteeRoute.AbsenteeAdminRoutes(admin, db)

	teacher := app.Group("/api/t",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("kelas"), constants.RoleTeacher),
	)
	studentRoute.StudentTeacherRoutes(teacher, db)
	subjectRoute.SubjectTeacherRoutes(teacher, db)
	testRoute.TestTeacherRoutes(teacher, db)
	attendanceRoute.AttendanceTeacherRoutes(teacher, db)
	reportRoute.ReportTeacherRoutes(teacher, db)

	student := app.Group("/api/s",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("rapor"), constants.RoleStudent),
	)
	attendanceRoute.AttendanceStudentRoutes(student, db)
	reportRoute.ReportStudentRoutes(student, db)

	principal := app.Group("/api/p",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorPrincipal("laporan sekolah"), constants.RolePrincipal),
	)
	reportRoute.ReportPrincipalRoutes(principal, db)
}
