// file: internals/features/users/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* ======================================================
   Model: users
====================================================== */

type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName     string    `gorm:"size:100;not null;uniqueIndex:uq_users_user_name;column:user_name" json:"user_name"`
	UserPassword string    `gorm:"size:255;not null;column:user_password" json:"-"`
	UserIsActive bool      `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"not null;default:now();column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"not null;default:now();column:user_updated_at" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

/* ======================================================
   Role tag tables (1:1 user). Teacher & Student punya tabel
   sendiri di features/school karena membawa data kelas.
====================================================== */

type AdminModel struct {
	AdminID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:admin_id" json:"admin_id"`
	AdminUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_admins_user_id;column:admin_user_id" json:"admin_user_id"`
}

func (AdminModel) TableName() string { return "admins" }

type PrincipalModel struct {
	PrincipalID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:principal_id" json:"principal_id"`
	PrincipalUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_principals_user_id;column:principal_user_id" json:"principal_user_id"`
}

func (PrincipalModel) TableName() string { return "principals" }
