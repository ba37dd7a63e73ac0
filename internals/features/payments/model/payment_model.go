package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
	PaymentStatusExpired = "expired"
	PaymentStatusOverdue = "overdue"
)

type PaymentModel struct {
	PaymentID       uuid.UUID  `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentGymID    uuid.UUID  `gorm:"column:payment_gym_id;type:uuid;not null;index" json:"payment_gym_id"`
	PaymentMemberID uuid.UUID  `gorm:"column:payment_member_id;type:uuid;not null;index" json:"payment_member_id"`
	PaymentPlanID   *uuid.UUID `gorm:"column:payment_plan_id;type:uuid" json:"payment_plan_id,omitempty"`

	// Order ID yang dikirim ke gateway, juga kunci idempotensi webhook
	PaymentOrderID string `gorm:"column:payment_order_id;type:varchar(64);uniqueIndex:uq_payments_order_id;not null" json:"payment_order_id"`

	PaymentAmountIDR   int64   `gorm:"column:payment_amount_idr;not null" json:"payment_amount_idr"`
	PaymentDescription *string `gorm:"column:payment_description;type:text" json:"payment_description,omitempty"`
	PaymentStatus      string  `gorm:"column:payment_status;type:varchar(20);default:'pending';index" json:"payment_status"`
	PaymentMethod      *string `gorm:"column:payment_method;type:varchar(50)" json:"payment_method,omitempty"`

	PaymentGatewayToken       *string           `gorm:"column:payment_gateway_token;type:varchar(255)" json:"payment_gateway_token,omitempty"`
	PaymentGatewayRedirectURL *string           `gorm:"column:payment_gateway_redirect_url;type:text" json:"payment_gateway_redirect_url,omitempty"`
	PaymentMeta               datatypes.JSONMap `gorm:"column:payment_meta;type:jsonb" json:"payment_meta,omitempty"`

	PaymentDueDate *time.Time `gorm:"column:payment_due_date;type:date" json:"payment_due_date,omitempty"`
	PaymentPaidAt  *time.Time `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
