package dto

import (
	"time"

	model "gymku_backend/internals/features/members/model"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

type CreateMemberRequest struct {
	MemberName             string     `json:"member_name" validate:"required,min=2,max=120"`
	MemberEmail            string     `json:"member_email" validate:"required,email"`
	MemberPhone            string     `json:"member_phone" validate:"required,max=30"`
	MemberMembershipType   string     `json:"member_membership_type" validate:"required,oneof=basic premium vip"`
	MemberMembershipPlanID *uuid.UUID `json:"member_membership_plan_id" validate:"omitempty"`
	MemberEmergencyContact *string    `json:"member_emergency_contact" validate:"omitempty,max=30"`
}

func (r *CreateMemberRequest) ToModel(gymID uuid.UUID, barcode string, joinDate time.Time) *model.MemberModel {
	return &model.MemberModel{
		MemberGymID:            &gymID,
		MemberName:             r.MemberName,
		MemberEmail:            r.MemberEmail,
		MemberPhone:            r.MemberPhone,
		MemberBarcode:          &barcode,
		MemberMembershipType:   r.MemberMembershipType,
		MemberMembershipPlanID: r.MemberMembershipPlanID,
		MemberJoinDate:         joinDate,
		MemberEmergencyContact: r.MemberEmergencyContact,
	}
}

// Update (partial, semua optional)
type UpdateMemberRequest struct {
	MemberName             *string    `json:"member_name" validate:"omitempty,min=2,max=120"`
	MemberEmail            *string    `json:"member_email" validate:"omitempty,email"`
	MemberPhone            *string    `json:"member_phone" validate:"omitempty,max=30"`
	MemberMembershipType   *string    `json:"member_membership_type" validate:"omitempty,oneof=basic premium vip"`
	MemberMembershipPlanID *uuid.UUID `json:"member_membership_plan_id" validate:"omitempty"`
	MemberEmergencyContact *string    `json:"member_emergency_contact" validate:"omitempty,max=30"`
	MemberStatus           *string    `json:"member_status" validate:"omitempty,oneof=active inactive suspended"`
}

func (r *UpdateMemberRequest) Apply(m *model.MemberModel) {
	if r.MemberName != nil {
		m.MemberName = *r.MemberName
	}
	if r.MemberEmail != nil {
		m.MemberEmail = *r.MemberEmail
	}
	if r.MemberPhone != nil {
		m.MemberPhone = *r.MemberPhone
	}
	if r.MemberMembershipType != nil {
		m.MemberMembershipType = *r.MemberMembershipType
	}
	if r.MemberMembershipPlanID != nil {
		m.MemberMembershipPlanID = r.MemberMembershipPlanID
	}
	if r.MemberEmergencyContact != nil {
		m.MemberEmergencyContact = r.MemberEmergencyContact
	}
	if r.MemberStatus != nil {
		m.MemberStatus = *r.MemberStatus
	}
}

/* ===================== RESPONSES ===================== */

type MemberResponse struct {
	MemberID                  uuid.UUID  `json:"member_id"`
	MemberGymID               *uuid.UUID `json:"member_gym_id,omitempty"`
	MemberName                string     `json:"member_name"`
	MemberEmail               string     `json:"member_email"`
	MemberPhone               string     `json:"member_phone"`
	MemberUsername            *string    `json:"member_username,omitempty"`
	MemberBarcode             *string    `json:"member_barcode,omitempty"`
	MemberMembershipType      string     `json:"member_membership_type"`
	MemberMembershipPlanID    *uuid.UUID `json:"member_membership_plan_id,omitempty"`
	MemberMembershipStartDate *time.Time `json:"member_membership_start_date,omitempty"`
	MemberMembershipEndDate   *time.Time `json:"member_membership_end_date,omitempty"`
	MemberJoinDate            time.Time  `json:"member_join_date"`
	MemberEmergencyContact    *string    `json:"member_emergency_contact,omitempty"`
	MemberStatus              string     `json:"member_status"`
	MemberCreatedAt           time.Time  `json:"member_created_at"`
	MemberUpdatedAt           *time.Time `json:"member_updated_at,omitempty"`
}

func FromMemberModel(m model.MemberModel) MemberResponse {
	return MemberResponse{
		MemberID:                  m.MemberID,
		MemberGymID:               m.MemberGymID,
		MemberName:                m.MemberName,
		MemberEmail:               m.MemberEmail,
		MemberPhone:               m.MemberPhone,
		MemberUsername:            m.MemberUsername,
		MemberBarcode:             m.MemberBarcode,
		MemberMembershipType:      m.MemberMembershipType,
		MemberMembershipPlanID:    m.MemberMembershipPlanID,
		MemberMembershipStartDate: m.MemberMembershipStartDate,
		MemberMembershipEndDate:   m.MemberMembershipEndDate,
		MemberJoinDate:            m.MemberJoinDate,
		MemberEmergencyContact:    m.MemberEmergencyContact,
		MemberStatus:              m.MemberStatus,
		MemberCreatedAt:           m.MemberCreatedAt,
		MemberUpdatedAt:           m.MemberUpdatedAt,
	}
}

func FromMemberModels(ms []model.MemberModel) []MemberResponse {
	out := make([]MemberResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMemberModel(m))
	}
	return out
}
