package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type MembershipPlanModel struct {
	PlanID    uuid.UUID `gorm:"column:plan_id;type:uuid;default:gen_random_uuid();primaryKey" json:"plan_id"`
	PlanGymID uuid.UUID `gorm:"column:plan_gym_id;type:uuid;not null;index" json:"plan_gym_id"`

	PlanName         string         `gorm:"column:plan_name;type:varchar(100);not null" json:"plan_name"`
	PlanDescription  *string        `gorm:"column:plan_description;type:text" json:"plan_description,omitempty"`
	PlanPriceIDR     int64          `gorm:"column:plan_price_idr;not null" json:"plan_price_idr"`
	PlanDurationDays int            `gorm:"column:plan_duration_days;not null" json:"plan_duration_days"`
	PlanFeatures     pq.StringArray `gorm:"column:plan_features;type:text[]" json:"plan_features"`

	// Plan nonaktif tetap dirujuk member lama, jadi tidak pernah dihapus keras
	PlanIsActive bool `gorm:"column:plan_is_active;default:true" json:"plan_is_active"`

	PlanCreatedAt time.Time `gorm:"column:plan_created_at;autoCreateTime" json:"plan_created_at"`
	PlanUpdatedAt time.Time `gorm:"column:plan_updated_at;autoUpdateTime" json:"plan_updated_at"`
}

func (MembershipPlanModel) TableName() string {
	return "membership_plans"
}
