package constants

import "fmt"

const (
	RoleStudent   = "student"
	RoleTeacher   = "teacher"
	RoleAdmin     = "admin"
	RolePrincipal = "principal"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess   = "Hanya teacher yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess     = "Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyStudentsCanAccess   = "Hanya student yang boleh mengakses fitur %s."
	ErrOnlyPrincipalsCanAccess = "Hanya principal yang boleh mengakses fitur %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorPrincipal(feature string) string {
	return fmt.Sprintf(ErrOnlyPrincipalsCanAccess, feature)
}
