package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceDTO "gymku_backend/internals/features/attendance/dto"
	attendanceModel "gymku_backend/internals/features/attendance/model"
	attendanceService "gymku_backend/internals/features/attendance/service"
	helper "gymku_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB     *gorm.DB
	Engine *attendanceService.Engine
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	dir := attendanceService.NewGormDirectory(db)
	store := attendanceService.NewGormStore(db)
	return &AttendanceController{
		DB:     db,
		Engine: attendanceService.NewEngine(dir, store),
	}
}

/* ===============================
   Mapping error engine -> HTTP
=============================== */

// scanError menerjemahkan taksonomi error engine ke satu pesan per kasus.
func scanError(err error) error {
	var inactive *attendanceService.MemberInactiveError
	var persist *attendanceService.PersistenceError

	switch {
	case errors.Is(err, attendanceService.ErrMemberNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Member tidak ditemukan")
	case errors.Is(err, attendanceService.ErrGymNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Gym tidak ditemukan")
	case errors.Is(err, attendanceService.ErrGymMismatch):
		return fiber.NewError(fiber.StatusForbidden, "Kode QR gym tidak cocok dengan keanggotaan member")
	case errors.As(err, &inactive):
		return fiber.NewError(fiber.StatusForbidden, "Membership tidak aktif (status: "+inactive.Status+")")
	case errors.As(err, &persist):
		log.Printf("[ERROR] scan persistence failure (%s): %v", persist.Op, persist.Err)
		return fiber.NewError(fiber.StatusServiceUnavailable, "Sistem sedang sibuk, silakan scan ulang")
	default:
		log.Printf("[ERROR] scan unexpected failure: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses scan")
	}
}

/* ===============================
   Admin: scan barcode member di front desk
=============================== */

// POST /api/a/attendance/scan
func (ctrl *AttendanceController) ScanMember(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	var req attendanceDTO.ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	now := time.Now()
	// ExpectedGymID: engine menolak member gym lain sebelum menulis apa pun
	res, err := ctrl.Engine.RecordScan(c.Context(), attendanceService.ScanInput{
		MemberIdentifier: req.MemberIdentifier,
		ExpectedGymID:    &gymID,
		OccurredAt:       now,
		StartNewCycle:    req.StartNewCycle,
	})
	if err != nil {
		if errors.Is(err, attendanceService.ErrGymMismatch) {
			return fiber.NewError(fiber.StatusForbidden, "Member bukan bagian dari gym Anda")
		}
		return scanError(err)
	}

	return helper.JsonOK(c, "Scan berhasil diproses", attendanceDTO.FromScanResult(res, now))
}

/* ===============================
   Member: scan QR gym dari aplikasi
=============================== */

// POST /api/u/attendance/scan
func (ctrl *AttendanceController) SelfScan(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return err
	}

	var req attendanceDTO.SelfScanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	now := time.Now()
	res, err := ctrl.Engine.RecordScan(c.Context(), attendanceService.ScanInput{
		MemberIdentifier: memberID.String(),
		GymQRCode:        req.GymQRCode,
		OccurredAt:       now,
		StartNewCycle:    req.StartNewCycle,
	})
	if err != nil {
		return scanError(err)
	}

	return helper.JsonOK(c, "Scan berhasil diproses", attendanceDTO.FromScanResult(res, now))
}

/* ===============================
   Proyeksi read-only
=============================== */

// GET /api/a/attendance?date=YYYY-MM-DD
func (ctrl *AttendanceController) ListAttendance(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, perr := time.Parse("2006-01-02", raw)
		if perr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		date = parsed
	}

	recs, err := ctrl.Engine.ListAttendance(c.Context(), gymID, date)
	if err != nil {
		log.Printf("[ERROR] list attendance: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data kehadiran")
	}

	out := make([]*attendanceDTO.AttendanceDetail, 0, len(recs))
	for i := range recs {
		out = append(out, attendanceDTO.FromAttendanceModel(&recs[i]))
	}
	return helper.JsonOK(c, "Data kehadiran berhasil diambil", out)
}

// GET /api/a/attendance/present — member yang sedang berada di dalam gym.
func (ctrl *AttendanceController) CurrentlyPresent(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	recs, err := ctrl.Engine.CurrentlyPresent(c.Context(), gymID, time.Now())
	if err != nil {
		log.Printf("[ERROR] currently present: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data kehadiran")
	}

	out := make([]*attendanceDTO.AttendanceDetail, 0, len(recs))
	for i := range recs {
		out = append(out, attendanceDTO.FromAttendanceModel(&recs[i]))
	}
	return helper.JsonOK(c, "Member yang sedang hadir berhasil diambil", out)
}

// GET /api/u/attendance/history — riwayat kehadiran member yang login.
func (ctrl *AttendanceController) MyHistory(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Table("attendance").
		Where("attendance_member_id = ?", memberID).
		Count(&total).Error; err != nil {
		log.Printf("[ERROR] count attendance history: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}

	var list []attendanceModel.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_member_id = ?", memberID).
		Order("attendance_check_in DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&list).Error; err != nil {
		log.Printf("[ERROR] list attendance history: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}

	out := make([]*attendanceDTO.AttendanceDetail, 0, len(list))
	for i := range list {
		out = append(out, attendanceDTO.FromAttendanceModel(&list[i]))
	}
	return helper.JsonList(c, "Riwayat kehadiran berhasil diambil", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(out)))
}
