// file: internals/features/users/auth/service/role_classifier.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	studentModel "schoolku_backend/internals/features/school/students/model"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	userModel "schoolku_backend/internals/features/users/users/model"
)

// ErrRoleIntegrity: account tidak cocok dengan role manapun. Ini kondisi
// data korup — tidak boleh di-default-kan diam-diam.
var ErrRoleIntegrity = errors.New("account does not belong to any role")

// ClassifyRole menentukan tepat satu role untuk sebuah account, dengan urutan
// pengecekan: student, teacher, admin, principal.
func ClassifyRole(db *gorm.DB, userID uuid.UUID) (string, error) {
	isStudent, err := existsByUser(db, &studentModel.StudentModel{}, "student_user_id", userID)
	if err != nil {
		return "", err
	}
	isTeacher, err := existsByUser(db, &teacherModel.TeacherModel{}, "teacher_user_id", userID)
	if err != nil {
		return "", err
	}
	isAdmin, err := existsByUser(db, &userModel.AdminModel{}, "admin_user_id", userID)
	if err != nil {
		return "", err
	}
	isPrincipal, err := existsByUser(db, &userModel.PrincipalModel{}, "principal_user_id", userID)
	if err != nil {
		return "", err
	}
	return PickRole(isStudent, isTeacher, isAdmin, isPrincipal)
}

// PickRole memilih role dari flag keanggotaan, urutan preseden tetap.
func PickRole(isStudent, isTeacher, isAdmin, isPrincipal bool) (string, error) {
	switch {
	case isStudent:
		return constants.RoleStudent, nil
	case isTeacher:
		return constants.RoleTeacher, nil
	case isAdmin:
		return constants.RoleAdmin, nil
	case isPrincipal:
		return constants.RolePrincipal, nil
	default:
		return "", ErrRoleIntegrity
	}
}

// LandingPath: group route tujuan setelah login, per role.
func LandingPath(role string) string {
	switch role {
	case constants.RoleStudent:
		return "/api/s"
	case constants.RoleTeacher:
		return "/api/t"
	case constants.RoleAdmin:
		return "/api/a"
	case constants.RolePrincipal:
		return "/api/p"
	}
	return "/"
}

func existsByUser(db *gorm.DB, m any, column string, userID uuid.UUID) (bool, error) {
	var count int64
	if err := db.Model(m).Where(column+" = ?", userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
