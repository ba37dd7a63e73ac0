package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	planModel "gymku_backend/internals/features/plans/model"
)

type CreatePlanRequest struct {
	PlanName         string   `json:"plan_name" validate:"required,min=2,max=100"`
	PlanDescription  *string  `json:"plan_description" validate:"omitempty,max=2000"`
	PlanPriceIDR     int64    `json:"plan_price_idr" validate:"required,gt=0"`
	PlanDurationDays int      `json:"plan_duration_days" validate:"required,gt=0,lte=3650"`
	PlanFeatures     []string `json:"plan_features" validate:"omitempty,dive,min=1,max=200"`
}

func (r *CreatePlanRequest) ToModel(gymID uuid.UUID) *planModel.MembershipPlanModel {
	return &planModel.MembershipPlanModel{
		PlanGymID:        gymID,
		PlanName:         r.PlanName,
		PlanDescription:  r.PlanDescription,
		PlanPriceIDR:     r.PlanPriceIDR,
		PlanDurationDays: r.PlanDurationDays,
		PlanFeatures:     pq.StringArray(r.PlanFeatures),
		PlanIsActive:     true,
	}
}

type UpdatePlanRequest struct {
	PlanName         *string   `json:"plan_name" validate:"omitempty,min=2,max=100"`
	PlanDescription  *string   `json:"plan_description" validate:"omitempty,max=2000"`
	PlanPriceIDR     *int64    `json:"plan_price_idr" validate:"omitempty,gt=0"`
	PlanDurationDays *int      `json:"plan_duration_days" validate:"omitempty,gt=0,lte=3650"`
	PlanFeatures     *[]string `json:"plan_features" validate:"omitempty,dive,min=1,max=200"`
	PlanIsActive     *bool     `json:"plan_is_active"`
}

func (r *UpdatePlanRequest) Apply(m *planModel.MembershipPlanModel) {
	if r.PlanName != nil {
		m.PlanName = *r.PlanName
	}
	if r.PlanDescription != nil {
		m.PlanDescription = r.PlanDescription
	}
	if r.PlanPriceIDR != nil {
		m.PlanPriceIDR = *r.PlanPriceIDR
	}
	if r.PlanDurationDays != nil {
		m.PlanDurationDays = *r.PlanDurationDays
	}
	if r.PlanFeatures != nil {
		m.PlanFeatures = pq.StringArray(*r.PlanFeatures)
	}
	if r.PlanIsActive != nil {
		m.PlanIsActive = *r.PlanIsActive
	}
}

type PlanResponse struct {
	PlanID           uuid.UUID `json:"plan_id"`
	PlanGymID        uuid.UUID `json:"plan_gym_id"`
	PlanName         string    `json:"plan_name"`
	PlanDescription  *string   `json:"plan_description,omitempty"`
	PlanPriceIDR     int64     `json:"plan_price_idr"`
	PlanDurationDays int       `json:"plan_duration_days"`
	PlanFeatures     []string  `json:"plan_features"`
	PlanIsActive     bool      `json:"plan_is_active"`
	PlanCreatedAt    time.Time `json:"plan_created_at"`
}

func FromPlanModel(m *planModel.MembershipPlanModel) *PlanResponse {
	if m == nil {
		return nil
	}
	return &PlanResponse{
		PlanID:           m.PlanID,
		PlanGymID:        m.PlanGymID,
		PlanName:         m.PlanName,
		PlanDescription:  m.PlanDescription,
		PlanPriceIDR:     m.PlanPriceIDR,
		PlanDurationDays: m.PlanDurationDays,
		PlanFeatures:     []string(m.PlanFeatures),
		PlanIsActive:     m.PlanIsActive,
		PlanCreatedAt:    m.PlanCreatedAt,
	}
}
