package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	gymModel "gymku_backend/internals/features/gyms/model"
	memberDTO "gymku_backend/internals/features/members/dto"
	memberModel "gymku_backend/internals/features/members/model"
	notifService "gymku_backend/internals/features/notifications/service"
	helper "gymku_backend/internals/helpers"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

var validate = validator.New()

/* ===============================
   CREATE
=============================== */

// POST /api/a/members — barcode + kredensial digenerate di sini,
// kredensial dikirim fire-and-forget ke email/SMS member.
func (ctrl *MemberController) CreateMember(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	var req memberDTO.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Cek email unik dalam tenant
	var dupe int64
	if err := ctrl.DB.Model(&memberModel.MemberModel{}).
		Where("member_gym_id = ? AND member_email = ?", gymID, req.MemberEmail).
		Count(&dupe).Error; err == nil && dupe > 0 {
		return fiber.NewError(fiber.StatusConflict, "Email member sudah terdaftar di gym ini")
	}

	barcode, err := helper.GenerateMemberBarcode()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat barcode member")
	}

	username := helper.UsernameFromEmail(req.MemberEmail)
	password, err := helper.GenerateRandomPassword(10)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kredensial")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}
	hashedStr := string(hashed)

	m := req.ToModel(gymID, barcode, time.Now())
	m.MemberUsername = &username
	m.MemberPasswordHash = &hashedStr

	if err := ctrl.DB.Create(m).Error; err != nil {
		if strings.Contains(err.Error(), "uq_members_username") {
			return fiber.NewError(fiber.StatusConflict, "Username sudah dipakai, gunakan email lain")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat member")
	}

	// Nama gym untuk template email
	var gym gymModel.GymModel
	gymName := "your gym"
	if err := ctrl.DB.Select("gym_id, gym_name").First(&gym, "gym_id = ?", gymID).Error; err == nil {
		gymName = gym.GymName
	}

	notifService.NotifyCredentialsAsync(notifService.Credentials{
		RecipientName: m.MemberName,
		Email:         m.MemberEmail,
		Phone:         m.MemberPhone,
		Username:      username,
		Password:      password,
		GymName:       gymName,
		GymID:         &gymID,
	})

	return helper.JsonCreated(c, "Member berhasil dibuat", memberDTO.FromMemberModel(*m))
}

/* ===============================
   READ
=============================== */

// GET /api/a/members
func (ctrl *MemberController) ListMembers(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&memberModel.MemberModel{}).Where("member_gym_id = ?", gymID)
	if status := c.Query("status"); status != "" {
		q = q.Where("member_status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("member_name ILIKE ? OR member_email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung member")
	}

	var members []memberModel.MemberModel
	if err := q.Order("member_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&members).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar member")
	}

	return helper.JsonList(c, "Daftar member",
		memberDTO.FromMemberModels(members),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(members)))
}

// GET /api/a/members/:id
func (ctrl *MemberController) GetMember(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}
	memberID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m memberModel.MemberModel
	if err := ctrl.DB.First(&m, "member_id = ? AND member_gym_id = ?", memberID, gymID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Member tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil member")
	}
	return helper.JsonOK(c, "Detail member", memberDTO.FromMemberModel(m))
}

// GET /api/a/members/by-barcode/:barcode — lookup cepat front desk
func (ctrl *MemberController) GetMemberByBarcode(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}
	barcode := strings.TrimSpace(c.Params("barcode"))
	if barcode == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Barcode wajib diisi")
	}

	var m memberModel.MemberModel
	if err := ctrl.DB.First(&m, "member_barcode = ? AND member_gym_id = ?", barcode, gymID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Member dengan barcode tersebut tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil member")
	}
	return helper.JsonOK(c, "Detail member", memberDTO.FromMemberModel(m))
}

/* ===============================
   UPDATE / DELETE
=============================== */

// PUT /api/a/members/:id
func (ctrl *MemberController) UpdateMember(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}
	memberID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var existing memberModel.MemberModel
	if err := ctrl.DB.First(&existing, "member_id = ? AND member_gym_id = ?", memberID, gymID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Member tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil member")
	}

	var req memberDTO.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.Apply(&existing)
	if err := ctrl.DB.Save(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui member")
	}
	return helper.JsonUpdated(c, "Member berhasil diperbarui", memberDTO.FromMemberModel(existing))
}

// DELETE /api/a/members/:id
func (ctrl *MemberController) DeleteMember(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}
	memberID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.Delete(&memberModel.MemberModel{}, "member_id = ? AND member_gym_id = ?", memberID, gymID)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus member")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Member tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Member dihapus", fiber.Map{"member_id": memberID})
}

/* ===============================
   MEMBER SELF-SERVICE
=============================== */

// GET /api/u/members/me
func (ctrl *MemberController) GetOwnProfile(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return err
	}

	var m memberModel.MemberModel
	if err := ctrl.DB.First(&m, "member_id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Member tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonOK(c, "Profil member", memberDTO.FromMemberModel(m))
}
