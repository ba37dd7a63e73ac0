package dto

import (
	"time"

	"github.com/google/uuid"

	paymentModel "gymku_backend/internals/features/payments/model"
)

type CreatePaymentRequest struct {
	PaymentMemberID    uuid.UUID  `json:"payment_member_id" validate:"required"`
	PaymentPlanID      *uuid.UUID `json:"payment_plan_id"`
	PaymentAmountIDR   *int64     `json:"payment_amount_idr" validate:"omitempty,gt=0"`
	PaymentDescription *string    `json:"payment_description" validate:"omitempty,max=500"`
	PaymentDueDate     *string    `json:"payment_due_date" validate:"omitempty,datetime=2006-01-02"`
}

type PaymentResponse struct {
	PaymentID                 uuid.UUID  `json:"payment_id"`
	PaymentMemberID           uuid.UUID  `json:"payment_member_id"`
	PaymentPlanID             *uuid.UUID `json:"payment_plan_id,omitempty"`
	PaymentOrderID            string     `json:"payment_order_id"`
	PaymentAmountIDR          int64      `json:"payment_amount_idr"`
	PaymentDescription        *string    `json:"payment_description,omitempty"`
	PaymentStatus             string     `json:"payment_status"`
	PaymentMethod             *string    `json:"payment_method,omitempty"`
	PaymentGatewayToken       *string    `json:"payment_gateway_token,omitempty"`
	PaymentGatewayRedirectURL *string    `json:"payment_gateway_redirect_url,omitempty"`
	PaymentDueDate            *string    `json:"payment_due_date,omitempty"`
	PaymentPaidAt             *time.Time `json:"payment_paid_at,omitempty"`
	PaymentCreatedAt          time.Time  `json:"payment_created_at"`
}

func FromPaymentModel(m *paymentModel.PaymentModel) *PaymentResponse {
	if m == nil {
		return nil
	}
	var due *string
	if m.PaymentDueDate != nil {
		d := m.PaymentDueDate.Format("2006-01-02")
		due = &d
	}
	return &PaymentResponse{
		PaymentID:                 m.PaymentID,
		PaymentMemberID:           m.PaymentMemberID,
		PaymentPlanID:             m.PaymentPlanID,
		PaymentOrderID:            m.PaymentOrderID,
		PaymentAmountIDR:          m.PaymentAmountIDR,
		PaymentDescription:        m.PaymentDescription,
		PaymentStatus:             m.PaymentStatus,
		PaymentMethod:             m.PaymentMethod,
		PaymentGatewayToken:       m.PaymentGatewayToken,
		PaymentGatewayRedirectURL: m.PaymentGatewayRedirectURL,
		PaymentDueDate:            due,
		PaymentPaidAt:             m.PaymentPaidAt,
		PaymentCreatedAt:          m.PaymentCreatedAt,
	}
}
