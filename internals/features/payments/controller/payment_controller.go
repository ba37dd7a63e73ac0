package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	memberModel "gymku_backend/internals/features/members/model"
	paymentDTO "gymku_backend/internals/features/payments/dto"
	paymentModel "gymku_backend/internals/features/payments/model"
	paymentService "gymku_backend/internals/features/payments/service"
	planModel "gymku_backend/internals/features/plans/model"
	helper "gymku_backend/internals/helpers"
)

var validate = validator.New()

type PaymentController struct {
	DB                *gorm.DB
	MidtransServerKey string
}

func NewPaymentController(db *gorm.DB, serverKey string) *PaymentController {
	return &PaymentController{DB: db, MidtransServerKey: serverKey}
}

/* =======================================================================
   Admin: buat tagihan + snap token
======================================================================= */

// POST /api/a/payments
func (ctrl *PaymentController) CreatePayment(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	var req paymentDTO.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var member memberModel.MemberModel
	if err := ctrl.DB.
		Where("member_id = ? AND member_gym_id = ?", req.PaymentMemberID, gymID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Member tidak ditemukan")
		}
		log.Printf("[ERROR] payment member lookup: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data member")
	}

	amount := int64(0)
	desc := req.PaymentDescription
	if req.PaymentPlanID != nil {
		var plan planModel.MembershipPlanModel
		if err := ctrl.DB.
			Where("plan_id = ? AND plan_gym_id = ? AND plan_is_active = TRUE", *req.PaymentPlanID, gymID).
			First(&plan).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Paket membership tidak ditemukan")
			}
			log.Printf("[ERROR] payment plan lookup: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data paket")
		}
		amount = plan.PlanPriceIDR
		if desc == nil {
			d := plan.PlanName + " (" + fmt.Sprintf("%d", plan.PlanDurationDays) + " hari)"
			desc = &d
		}
	}
	if req.PaymentAmountIDR != nil {
		amount = *req.PaymentAmountIDR
	}
	if amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Nominal pembayaran wajib diisi (atau pilih paket)")
	}

	payment := &paymentModel.PaymentModel{
		PaymentGymID:       gymID,
		PaymentMemberID:    member.MemberID,
		PaymentPlanID:      req.PaymentPlanID,
		PaymentOrderID:     newOrderID(),
		PaymentAmountIDR:   amount,
		PaymentDescription: desc,
		PaymentStatus:      paymentModel.PaymentStatusPending,
	}
	if req.PaymentDueDate != nil {
		due, _ := time.Parse("2006-01-02", *req.PaymentDueDate)
		payment.PaymentDueDate = &due
	}

	// Snap token opsional: tanpa server key, tagihan tetap tercatat (bayar tunai)
	if ctrl.MidtransServerKey != "" {
		token, redirectURL, terr := paymentService.GenerateSnapToken(*payment, paymentService.CustomerInput{
			Name:  member.MemberName,
			Email: member.MemberEmail,
			Phone: member.MemberPhone,
		})
		if terr != nil {
			log.Printf("[ERROR] generate snap token: %v", terr)
			return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat transaksi di payment gateway")
		}
		payment.PaymentGatewayToken = &token
		payment.PaymentGatewayRedirectURL = &redirectURL
	}

	if err := ctrl.DB.Create(payment).Error; err != nil {
		log.Printf("[ERROR] create payment: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pembayaran")
	}

	return helper.JsonCreated(c, "Tagihan berhasil dibuat", paymentDTO.FromPaymentModel(payment))
}

// GET /api/a/payments?status=&member_id=
func (ctrl *PaymentController) ListPayments(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	// Tandai tagihan telat sebelum listing supaya filter status akurat
	if _, err := paymentService.MarkOverduePayments(ctrl.DB, time.Now()); err != nil {
		log.Printf("[WARN] overdue sweep: %v", err)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	q := ctrl.DB.Model(&paymentModel.PaymentModel{}).Where("payment_gym_id = ?", gymID)

	if status := c.Query("status"); status != "" {
		q = q.Where("payment_status = ?", status)
	}
	if rawMember := c.Query("member_id"); rawMember != "" {
		memberID, perr := uuid.Parse(rawMember)
		if perr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "member_id tidak valid")
		}
		q = q.Where("payment_member_id = ?", memberID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count payments: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data pembayaran")
	}

	var payments []paymentModel.PaymentModel
	if err := q.Order("payment_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&payments).Error; err != nil {
		log.Printf("[ERROR] list payments: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data pembayaran")
	}

	out := make([]*paymentDTO.PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, paymentDTO.FromPaymentModel(&payments[i]))
	}
	return helper.JsonList(c, "Daftar pembayaran berhasil diambil", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(out)))
}

// GET /api/a/payments/:id
func (ctrl *PaymentController) GetPayment(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}
	paymentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var payment paymentModel.PaymentModel
	if err := ctrl.DB.
		Where("payment_id = ? AND payment_gym_id = ?", paymentID, gymID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		log.Printf("[ERROR] get payment: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pembayaran")
	}

	return helper.JsonOK(c, "Pembayaran berhasil diambil", paymentDTO.FromPaymentModel(&payment))
}

// POST /api/a/payments/:id/mark-paid — pembayaran tunai di front desk.
func (ctrl *PaymentController) MarkPaidManually(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}
	paymentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var payment paymentModel.PaymentModel
	if err := ctrl.DB.
		Where("payment_id = ? AND payment_gym_id = ?", paymentID, gymID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		log.Printf("[ERROR] mark paid lookup: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pembayaran")
	}
	if payment.PaymentStatus == paymentModel.PaymentStatusPaid {
		return fiber.NewError(fiber.StatusConflict, "Pembayaran sudah lunas")
	}

	method := "cash"
	if err := ctrl.DB.Model(&payment).Update("payment_method", method).Error; err != nil {
		log.Printf("[ERROR] mark paid method: %v", err)
	}
	if err := paymentService.ApplySettlement(ctrl.DB, &payment, time.Now()); err != nil {
		log.Printf("[ERROR] manual settlement: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses pelunasan")
	}

	return helper.JsonUpdated(c, "Pembayaran ditandai lunas", fiber.Map{"payment_id": payment.PaymentID})
}

/* =======================================================================
   Member: tagihan sendiri
======================================================================= */

// GET /api/u/payments
func (ctrl *PaymentController) MyPayments(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return err
	}

	var payments []paymentModel.PaymentModel
	if err := ctrl.DB.
		Where("payment_member_id = ?", memberID).
		Order("payment_created_at DESC").
		Limit(50).
		Find(&payments).Error; err != nil {
		log.Printf("[ERROR] my payments: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil tagihan")
	}

	out := make([]*paymentDTO.PaymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, paymentDTO.FromPaymentModel(&payments[i]))
	}
	return helper.JsonOK(c, "Tagihan berhasil diambil", out)
}

/* =======================================================================
   Webhook Midtrans
======================================================================= */

type midtransNotif struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire, failure
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"` // string dari Midtrans
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"` // accept / challenge / deny
}

// POST /api/public/payments/midtrans/callback
func (ctrl *PaymentController) MidtransCallback(c *fiber.Ctx) error {
	var notif midtransNotif
	if err := c.BodyParser(&notif); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload: "+err.Error())
	}

	// Verify signature — SHA512(order_id + status_code + gross_amount + ServerKey)
	want := strings.ToLower(notif.SignatureKey)
	raw := notif.OrderID + notif.StatusCode + notif.GrossAmount + ctrl.MidtransServerKey
	got := sha512sum(raw)
	if want == "" || got != want {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid signature")
	}

	var payment paymentModel.PaymentModel
	if err := ctrl.DB.
		Where("payment_order_id = ?", notif.OrderID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "unknown order_id")
		}
		log.Printf("[ERROR] callback lookup: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "lookup failed")
	}

	// Idempotensi: notifikasi ulang untuk payment yang sudah final diabaikan
	if payment.PaymentStatus == paymentModel.PaymentStatusPaid {
		return helper.JsonOK(c, "already processed", fiber.Map{"order_id": notif.OrderID})
	}

	meta := datatypes.JSONMap{
		"transaction_status": notif.TransactionStatus,
		"payment_type":       notif.PaymentType,
		"fraud_status":       notif.FraudStatus,
		"transaction_time":   notif.TransactionTime,
	}
	updates := map[string]interface{}{
		"payment_meta":   meta,
		"payment_method": notif.PaymentType,
	}
	if err := ctrl.DB.Model(&payment).Updates(updates).Error; err != nil {
		log.Printf("[WARN] callback meta update: %v", err)
	}

	newStatus := paymentService.MapGatewayStatus(notif.TransactionStatus, notif.FraudStatus)
	switch newStatus {
	case paymentModel.PaymentStatusPaid:
		if err := paymentService.ApplySettlement(ctrl.DB, &payment, time.Now()); err != nil {
			log.Printf("[ERROR] settlement %s: %v", notif.OrderID, err)
			return fiber.NewError(fiber.StatusInternalServerError, "settlement failed")
		}
	case paymentModel.PaymentStatusFailed, paymentModel.PaymentStatusExpired:
		if err := ctrl.DB.Model(&payment).
			Update("payment_status", newStatus).Error; err != nil {
			log.Printf("[ERROR] callback status update: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "status update failed")
		}
	}

	return helper.JsonOK(c, "ok", fiber.Map{"order_id": notif.OrderID, "status": payment.PaymentStatus})
}

/* =======================================================================
   Helpers
======================================================================= */

func sha512sum(s string) string {
	h := sha512.Sum512([]byte(s))
	return hex.EncodeToString(h[:])
}

// newOrderID: GYMPAY-<uuid tanpa strip, 20 char> — unik dan aman di URL gateway.
func newOrderID() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "GYMPAY-" + strings.ToUpper(raw[:20])
}
