package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gymku_backend/internals/constants"
	authDTO "gymku_backend/internals/features/auth/dto"
	authModel "gymku_backend/internals/features/auth/model"
	authService "gymku_backend/internals/features/auth/service"
	gymModel "gymku_backend/internals/features/gyms/model"
	memberModel "gymku_backend/internals/features/members/model"
	"gymku_backend/internals/configs"
	helper "gymku_backend/internals/helpers"
)

var validate = validator.New()

// Satu pesan untuk semua kegagalan login, tidak membocorkan akun mana yang ada.
var errBadCredentials = fiber.NewError(fiber.StatusUnauthorized, "Username atau password salah")

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func parseLogin(c *fiber.Ctx) (*authDTO.LoginRequest, error) {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return nil, helper.JsonValidationError(c, err)
	}
	req.Identifier = strings.TrimSpace(req.Identifier)
	return &req, nil
}

func comparePassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

/* =======================================================================
   Login per role
======================================================================= */

// POST /api/auth/admin/login — kredensial di tabel gyms.
func (ctrl *AuthController) AdminLogin(c *fiber.Ctx) error {
	req, err := parseLogin(c)
	if err != nil {
		return err
	}

	var gym gymModel.GymModel
	if err := ctrl.DB.
		Where("gym_username = ? OR LOWER(gym_email) = LOWER(?)", req.Identifier, req.Identifier).
		First(&gym).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errBadCredentials
		}
		log.Printf("[ERROR] admin login lookup: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if gym.GymPasswordHash == nil || !comparePassword(*gym.GymPasswordHash, req.Password) {
		return errBadCredentials
	}
	if gym.GymStatus != constants.StatusActive {
		return fiber.NewError(fiber.StatusForbidden, "Gym sedang tidak aktif")
	}

	gymID := gym.GymID
	pair, err := authService.IssueTokenPair(authService.TokenSubject{
		Subject: gym.GymID,
		Role:    constants.RoleGymAdmin,
		GymID:   &gymID,
	}, configs.JWTSecret, configs.JWTRefreshSecret)
	if err != nil {
		log.Printf("[ERROR] admin login sign: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	name := gym.GymName
	if gym.GymAdminName != nil && *gym.GymAdminName != "" {
		name = *gym.GymAdminName
	}
	return helper.JsonOK(c, "Login berhasil", authDTO.LoginResponse{
		Role:   constants.RoleGymAdmin,
		Name:   name,
		Tokens: pair,
		Extra:  map[string]interface{}{"gym_id": gym.GymID, "gym_name": gym.GymName},
	})
}

// POST /api/auth/member/login — username atau email member.
func (ctrl *AuthController) MemberLogin(c *fiber.Ctx) error {
	req, err := parseLogin(c)
	if err != nil {
		return err
	}

	var member memberModel.MemberModel
	if err := ctrl.DB.
		Where("member_username = ? OR LOWER(member_email) = LOWER(?)", req.Identifier, req.Identifier).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errBadCredentials
		}
		log.Printf("[ERROR] member login lookup: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if member.MemberPasswordHash == nil || !comparePassword(*member.MemberPasswordHash, req.Password) {
		return errBadCredentials
	}
	if member.MemberStatus == constants.StatusSuspended {
		return fiber.NewError(fiber.StatusForbidden, "Akun Anda sedang ditangguhkan")
	}

	memberID := member.MemberID
	pair, err := authService.IssueTokenPair(authService.TokenSubject{
		Subject:  member.MemberID,
		Role:     constants.RoleMember,
		GymID:    member.MemberGymID,
		MemberID: &memberID,
	}, configs.JWTSecret, configs.JWTRefreshSecret)
	if err != nil {
		log.Printf("[ERROR] member login sign: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", authDTO.LoginResponse{
		Role:   constants.RoleMember,
		Name:   member.MemberName,
		Tokens: pair,
		Extra: map[string]interface{}{
			"member_id":     member.MemberID,
			"member_status": member.MemberStatus,
		},
	})
}

// POST /api/auth/owner/login — akun super admin platform.
func (ctrl *AuthController) OwnerLogin(c *fiber.Ctx) error {
	req, err := parseLogin(c)
	if err != nil {
		return err
	}

	var owner authModel.SuperAdminModel
	if err := ctrl.DB.
		Where("LOWER(super_admin_email) = LOWER(?)", req.Identifier).
		First(&owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errBadCredentials
		}
		log.Printf("[ERROR] owner login lookup: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if !comparePassword(owner.SuperAdminPasswordHash, req.Password) {
		return errBadCredentials
	}

	pair, err := authService.IssueTokenPair(authService.TokenSubject{
		Subject: owner.SuperAdminID,
		Role:    constants.RoleOwner,
	}, configs.JWTSecret, configs.JWTRefreshSecret)
	if err != nil {
		log.Printf("[ERROR] owner login sign: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", authDTO.LoginResponse{
		Role:   constants.RoleOwner,
		Name:   owner.SuperAdminName,
		Tokens: pair,
	})
}

/* =======================================================================
   Refresh & ganti password
======================================================================= */

// POST /api/auth/refresh
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req authDTO.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	sub, err := authService.ParseToken(req.RefreshToken, configs.JWTRefreshSecret)
	if err != nil {
		if errors.Is(err, authService.ErrExpiredToken) {
			return fiber.NewError(fiber.StatusUnauthorized, "Refresh token sudah kedaluwarsa, silakan login ulang")
		}
		return fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	pair, err := authService.IssueTokenPair(sub, configs.JWTSecret, configs.JWTRefreshSecret)
	if err != nil {
		log.Printf("[ERROR] refresh sign: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Token berhasil diperbarui", pair)
}

// POST /api/auth/change-password — akun yang sedang login (semua role).
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	var req authDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	role := helper.GetRoleFromToken(c)
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	switch role {
	case constants.RoleGymAdmin:
		var gym gymModel.GymModel
		if err := ctrl.DB.Where("gym_id = ?", userID).First(&gym).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		if gym.GymPasswordHash == nil || !comparePassword(*gym.GymPasswordHash, req.OldPassword) {
			return fiber.NewError(fiber.StatusUnauthorized, "Password lama salah")
		}
		return ctrl.savePassword(c, ctrl.DB.Model(&gym).Update("gym_password_hash", string(newHash)).Error)

	case constants.RoleMember:
		var member memberModel.MemberModel
		if err := ctrl.DB.Where("member_id = ?", userID).First(&member).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		if member.MemberPasswordHash == nil || !comparePassword(*member.MemberPasswordHash, req.OldPassword) {
			return fiber.NewError(fiber.StatusUnauthorized, "Password lama salah")
		}
		return ctrl.savePassword(c, ctrl.DB.Model(&member).Update("member_password_hash", string(newHash)).Error)

	case constants.RoleOwner:
		var owner authModel.SuperAdminModel
		if err := ctrl.DB.Where("super_admin_id = ?", userID).First(&owner).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Akun tidak ditemukan")
		}
		if !comparePassword(owner.SuperAdminPasswordHash, req.OldPassword) {
			return fiber.NewError(fiber.StatusUnauthorized, "Password lama salah")
		}
		return ctrl.savePassword(c, ctrl.DB.Model(&owner).Update("super_admin_password_hash", string(newHash)).Error)

	default:
		return fiber.NewError(fiber.StatusForbidden, "Role tidak dikenali")
	}
}

func (ctrl *AuthController) savePassword(c *fiber.Ctx, err error) error {
	if err != nil {
		log.Printf("[ERROR] change password: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan password baru")
	}
	return helper.JsonUpdated(c, "Password berhasil diubah", nil)
}
