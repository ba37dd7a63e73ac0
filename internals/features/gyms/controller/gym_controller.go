package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	attendanceModel "gymku_backend/internals/features/attendance/model"
	gymDTO "gymku_backend/internals/features/gyms/dto"
	gymModel "gymku_backend/internals/features/gyms/model"
	memberModel "gymku_backend/internals/features/members/model"
	notifService "gymku_backend/internals/features/notifications/service"
	paymentModel "gymku_backend/internals/features/payments/model"
	helper "gymku_backend/internals/helpers"
)

type GymController struct {
	DB *gorm.DB
}

func NewGymController(db *gorm.DB) *GymController {
	return &GymController{DB: db}
}

var validate = validator.New()

/* ===============================
   OWNER: CRUD tenant gym
=============================== */

// POST /api/o/gyms
func (ctrl *GymController) CreateGym(c *fiber.Ctx) error {
	ownerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req gymDTO.CreateGymRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Cek email unik
	var dupe int64
	if err := ctrl.DB.Model(&gymModel.GymModel{}).
		Where("gym_email = ?", req.GymEmail).
		Count(&dupe).Error; err == nil && dupe > 0 {
		return fiber.NewError(fiber.StatusConflict, "Email gym sudah terdaftar")
	}

	qrCode, err := helper.GenerateGymQRCode()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kode QR gym")
	}

	// Kredensial awal admin gym
	username := helper.UsernameFromEmail(req.GymEmail)
	password, err := helper.GenerateRandomPassword(10)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kredensial")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}
	hashedStr := string(hashed)

	m := req.ToModel(qrCode, &ownerID)
	m.GymUsername = &username
	m.GymPasswordHash = &hashedStr
	if err := ctrl.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat gym")
	}

	// Kirim kredensial admin (fire-and-forget, kegagalan tidak membatalkan create)
	adminEmail := req.GymEmail
	if req.GymAdminEmail != nil {
		adminEmail = *req.GymAdminEmail
	}
	notifService.NotifyCredentialsAsync(notifService.Credentials{
		RecipientName: m.GymName,
		Email:         adminEmail,
		Username:      username,
		Password:      password,
		GymName:       m.GymName,
		GymID:         &m.GymID,
	})

	return helper.JsonCreated(c, "Gym berhasil dibuat", gymDTO.FromGymModel(*m))
}

// GET /api/o/gyms
func (ctrl *GymController) ListGyms(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&gymModel.GymModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("gym_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung gym")
	}

	var gyms []gymModel.GymModel
	if err := q.Order("gym_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&gyms).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar gym")
	}

	return helper.JsonList(c, "Daftar gym",
		gymDTO.FromGymModels(gyms),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(gyms)))
}

// GET /api/o/gyms/:id
func (ctrl *GymController) GetGym(c *fiber.Ctx) error {
	gymID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m gymModel.GymModel
	if err := ctrl.DB.First(&m, "gym_id = ?", gymID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Gym tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil gym")
	}
	return helper.JsonOK(c, "Detail gym", gymDTO.FromGymModel(m))
}

// PUT /api/o/gyms/:id
func (ctrl *GymController) UpdateGym(c *fiber.Ctx) error {
	gymID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var existing gymModel.GymModel
	if err := ctrl.DB.First(&existing, "gym_id = ?", gymID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Gym tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil gym")
	}

	var req gymDTO.UpdateGymRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.Apply(&existing)
	if err := ctrl.DB.Save(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui gym")
	}
	return helper.JsonUpdated(c, "Gym berhasil diperbarui", gymDTO.FromGymModel(existing))
}

// DELETE /api/o/gyms/:id — nonaktifkan, data tenant tidak dihapus
func (ctrl *GymController) DeactivateGym(c *fiber.Ctx) error {
	gymID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.Model(&gymModel.GymModel{}).
		Where("gym_id = ?", gymID).
		Update("gym_status", "inactive")
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menonaktifkan gym")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Gym tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Gym dinonaktifkan", fiber.Map{"gym_id": gymID})
}

// POST /api/o/gyms/:id/regenerate-qr — kode lama langsung tidak berlaku
func (ctrl *GymController) RegenerateQRCode(c *fiber.Ctx) error {
	gymID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	qrCode, err := helper.GenerateGymQRCode()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kode QR gym")
	}

	res := ctrl.DB.Model(&gymModel.GymModel{}).
		Where("gym_id = ?", gymID).
		Update("gym_qr_code", qrCode)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui kode QR")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Gym tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Kode QR gym diperbarui", fiber.Map{
		"gym_id":      gymID,
		"gym_qr_code": qrCode,
	})
}

// GET /api/o/stats — ringkasan lintas tenant untuk dashboard owner
func (ctrl *GymController) OwnerStats(c *fiber.Ctx) error {
	var totalGyms, activeGyms, totalMembers, checkInsToday, pendingPayments int64

	if err := ctrl.DB.Model(&gymModel.GymModel{}).Count(&totalGyms).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung gym")
	}
	if err := ctrl.DB.Model(&gymModel.GymModel{}).
		Where("gym_status = ?", "active").
		Count(&activeGyms).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung gym aktif")
	}
	if err := ctrl.DB.Model(&memberModel.MemberModel{}).Count(&totalMembers).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung member")
	}

	today := time.Now().Format("2006-01-02")
	if err := ctrl.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_date = ?", today).
		Count(&checkInsToday).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung kehadiran")
	}
	if err := ctrl.DB.Model(&paymentModel.PaymentModel{}).
		Where("payment_status IN ?", []string{paymentModel.PaymentStatusPending, paymentModel.PaymentStatusOverdue}).
		Count(&pendingPayments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung pembayaran")
	}

	return helper.JsonOK(c, "Statistik platform", fiber.Map{
		"total_gyms":       totalGyms,
		"active_gyms":      activeGyms,
		"total_members":    totalMembers,
		"check_ins_today":  checkInsToday,
		"pending_payments": pendingPayments,
	})
}

/* ===============================
   GYM ADMIN: profil gym sendiri
=============================== */

// GET /api/a/gym/profile
func (ctrl *GymController) GetOwnProfile(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	var m gymModel.GymModel
	if err := ctrl.DB.First(&m, "gym_id = ?", gymID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Gym tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil gym")
	}
	return helper.JsonOK(c, "Profil gym", gymDTO.FromGymModel(m))
}

// PUT /api/a/gym/profile — admin tidak boleh mengubah status/tenant lain
func (ctrl *GymController) UpdateOwnProfile(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	var existing gymModel.GymModel
	if err := ctrl.DB.First(&existing, "gym_id = ?", gymID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Gym tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil gym")
	}

	var req gymDTO.UpdateGymRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	// Guard: status hanya boleh diubah owner
	req.GymStatus = nil
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	req.Apply(&existing)
	if err := ctrl.DB.Save(&existing).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui profil gym")
	}
	return helper.JsonUpdated(c, "Profil gym diperbarui", gymDTO.FromGymModel(existing))
}
