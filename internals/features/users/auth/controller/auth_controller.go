// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/users/auth/dto"
	"schoolku_backend/internals/features/users/auth/service"
	userModel "schoolku_backend/internals/features/users/users/model"
	helper "schoolku_backend/internals/helpers"
)

/* ================= Controller & Constructor ================= */

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

/* =========================== LOGIN =========================== */
// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}

	var user userModel.UserModel
	if err := ctrl.DB.
		Where("user_name = ? AND user_is_active = TRUE", req.Username).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonStatusError(c, fiber.StatusUnauthorized, helper.StatusLoginError)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	if err := service.CheckPasswordHash(user.UserPassword, req.Password); err != nil {
		return helper.JsonStatusError(c, fiber.StatusUnauthorized, helper.StatusLoginError)
	}

	// Klasifikasi role: account harus cocok tepat satu role, kalau tidak
	// berarti data user korup → fatal untuk request ini.
	role, err := service.ClassifyRole(ctrl.DB, user.UserID)
	if err != nil {
		if errors.Is(err, service.ErrRoleIntegrity) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Account role integrity failure")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal klasifikasi role")
	}

	token, err := service.IssueAccessToken(user.UserID, user.UserName, role)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		AccessToken: token,
		Role:        role,
		Redirect:    service.LandingPath(role),
	})
}

/* ======================= CHANGE PASSWORD ======================= */
// POST /api/auth/change-password (butuh auth)
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := userIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}
	if strings.TrimSpace(req.NewPassword) == "" {
		return helper.JsonStatusError(c, fiber.StatusBadRequest, helper.StatusFormError)
	}

	newHash, err := service.HashPassword(req.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	res := ctrl.DB.Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{"user_password": newHash, "user_updated_at": gorm.Expr("now()")})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonUpdated(c, helper.StatusMessage(helper.StatusPasswordChg), fiber.Map{
		"status": helper.StatusPasswordChg,
	})
}

/* =========================== LOGOUT =========================== */
// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Logout berhasil", nil)
}

func userIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals("user_id").(string)
	if !ok || v == "" {
		return uuid.Nil, errors.New("missing user id")
	}
	return uuid.Parse(v)
}
