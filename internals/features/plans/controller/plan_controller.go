package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gymModel "gymku_backend/internals/features/gyms/model"
	planDTO "gymku_backend/internals/features/plans/dto"
	planModel "gymku_backend/internals/features/plans/model"
	helper "gymku_backend/internals/helpers"
)

var validate = validator.New()

type PlanController struct {
	DB *gorm.DB
}

func NewPlanController(db *gorm.DB) *PlanController {
	return &PlanController{DB: db}
}

// findOwnedPlan mengambil plan milik gym admin yang login (guard tenant).
func (ctrl *PlanController) findOwnedPlan(c *fiber.Ctx) (*planModel.MembershipPlanModel, error) {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return nil, err
	}
	planID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return nil, err
	}

	var plan planModel.MembershipPlanModel
	if err := ctrl.DB.
		Where("plan_id = ? AND plan_gym_id = ?", planID, gymID).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Paket membership tidak ditemukan")
		}
		log.Printf("[ERROR] find plan: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil paket")
	}
	return &plan, nil
}

// POST /api/a/plans
func (ctrl *PlanController) CreatePlan(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	var req planDTO.CreatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	plan := req.ToModel(gymID)
	if err := ctrl.DB.Create(plan).Error; err != nil {
		log.Printf("[ERROR] create plan: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat paket membership")
	}

	return helper.JsonCreated(c, "Paket membership berhasil dibuat", planDTO.FromPlanModel(plan))
}

// GET /api/a/plans
func (ctrl *PlanController) ListPlans(c *fiber.Ctx) error {
	gymID, err := helper.GetGymIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&planModel.MembershipPlanModel{}).Where("plan_gym_id = ?", gymID)
	if c.Query("active") == "true" {
		q = q.Where("plan_is_active = TRUE")
	}

	var plans []planModel.MembershipPlanModel
	if err := q.Order("plan_price_idr ASC").Find(&plans).Error; err != nil {
		log.Printf("[ERROR] list plans: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar paket")
	}

	out := make([]*planDTO.PlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, planDTO.FromPlanModel(&plans[i]))
	}
	return helper.JsonOK(c, "Daftar paket berhasil diambil", out)
}

// GET /api/a/plans/:id
func (ctrl *PlanController) GetPlan(c *fiber.Ctx) error {
	plan, err := ctrl.findOwnedPlan(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Paket berhasil diambil", planDTO.FromPlanModel(plan))
}

// PUT /api/a/plans/:id
func (ctrl *PlanController) UpdatePlan(c *fiber.Ctx) error {
	plan, err := ctrl.findOwnedPlan(c)
	if err != nil {
		return err
	}

	var req planDTO.UpdatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.Apply(plan)
	if err := ctrl.DB.Save(plan).Error; err != nil {
		log.Printf("[ERROR] update plan: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui paket")
	}

	return helper.JsonUpdated(c, "Paket berhasil diperbarui", planDTO.FromPlanModel(plan))
}

// DELETE /api/a/plans/:id — soft deactivate, member lama tetap merujuk plan.
func (ctrl *PlanController) DeactivatePlan(c *fiber.Ctx) error {
	plan, err := ctrl.findOwnedPlan(c)
	if err != nil {
		return err
	}

	if err := ctrl.DB.Model(plan).Update("plan_is_active", false).Error; err != nil {
		log.Printf("[ERROR] deactivate plan: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menonaktifkan paket")
	}

	return helper.JsonDeleted(c, "Paket berhasil dinonaktifkan", fiber.Map{"plan_id": plan.PlanID})
}

// GET /api/public/gyms/:qr_code/plans — daftar paket aktif utk halaman pendaftaran.
func (ctrl *PlanController) PublicPlansByGymCode(c *fiber.Ctx) error {
	code := c.Params("qr_code")
	if code == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Kode gym wajib diisi")
	}

	var gym gymModel.GymModel
	if err := ctrl.DB.
		Where("gym_qr_code = ? AND gym_status = ?", code, "active").
		First(&gym).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Gym tidak ditemukan")
		}
		log.Printf("[ERROR] public gym lookup: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data gym")
	}

	var plans []planModel.MembershipPlanModel
	if err := ctrl.DB.
		Where("plan_gym_id = ? AND plan_is_active = TRUE", gym.GymID).
		Order("plan_price_idr ASC").
		Find(&plans).Error; err != nil {
		log.Printf("[ERROR] public list plans: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil daftar paket")
	}

	out := make([]*planDTO.PlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, planDTO.FromPlanModel(&plans[i]))
	}
	return helper.JsonOK(c, "Daftar paket berhasil diambil", fiber.Map{
		"gym_name": gym.GymName,
		"plans":    out,
	})
}
