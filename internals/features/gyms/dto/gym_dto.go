package dto

import (
	"time"

	model "gymku_backend/internals/features/gyms/model"

	"github.com/google/uuid"
)

/* ===================== REQUESTS ===================== */

type CreateGymRequest struct {
	GymName       string  `json:"gym_name" validate:"required,min=3,max=120"`
	GymEmail      string  `json:"gym_email" validate:"required,email"`
	GymAdminName  *string `json:"gym_admin_name" validate:"omitempty,max=120"`
	GymAdminEmail *string `json:"gym_admin_email" validate:"omitempty,email"`
	GymPhone      *string `json:"gym_phone" validate:"omitempty,max=30"`
	GymAddress    *string `json:"gym_address" validate:"omitempty"`
}

func (r *CreateGymRequest) ToModel(qrCode string, ownerID *uuid.UUID) *model.GymModel {
	return &model.GymModel{
		GymName:       r.GymName,
		GymEmail:      r.GymEmail,
		GymAdminName:  r.GymAdminName,
		GymAdminEmail: r.GymAdminEmail,
		GymPhone:      r.GymPhone,
		GymAddress:    r.GymAddress,
		GymQRCode:     qrCode,
		GymOwnerID:    ownerID,
	}
}

// Update (partial, semua optional)
type UpdateGymRequest struct {
	GymName              *string `json:"gym_name" validate:"omitempty,min=3,max=120"`
	GymAdminName         *string `json:"gym_admin_name" validate:"omitempty,max=120"`
	GymAdminEmail        *string `json:"gym_admin_email" validate:"omitempty,email"`
	GymPhone             *string `json:"gym_phone" validate:"omitempty,max=30"`
	GymAddress           *string `json:"gym_address" validate:"omitempty"`
	GymStatus            *string `json:"gym_status" validate:"omitempty,oneof=active inactive suspended"`
	GymAllowMultiSession *bool   `json:"gym_allow_multi_session" validate:"omitempty"`
}

func (r *UpdateGymRequest) Apply(m *model.GymModel) {
	if r.GymName != nil {
		m.GymName = *r.GymName
	}
	if r.GymAdminName != nil {
		m.GymAdminName = r.GymAdminName
	}
	if r.GymAdminEmail != nil {
		m.GymAdminEmail = r.GymAdminEmail
	}
	if r.GymPhone != nil {
		m.GymPhone = r.GymPhone
	}
	if r.GymAddress != nil {
		m.GymAddress = r.GymAddress
	}
	if r.GymStatus != nil {
		m.GymStatus = *r.GymStatus
	}
	if r.GymAllowMultiSession != nil {
		m.GymAllowMultiSession = *r.GymAllowMultiSession
	}
}

/* ===================== RESPONSES ===================== */

type GymResponse struct {
	GymID                uuid.UUID  `json:"gym_id"`
	GymName              string     `json:"gym_name"`
	GymEmail             string     `json:"gym_email"`
	GymUsername          *string    `json:"gym_username,omitempty"`
	GymAdminName         *string    `json:"gym_admin_name,omitempty"`
	GymAdminEmail        *string    `json:"gym_admin_email,omitempty"`
	GymPhone             *string    `json:"gym_phone,omitempty"`
	GymAddress           *string    `json:"gym_address,omitempty"`
	GymQRCode            string     `json:"gym_qr_code"`
	GymStatus            string     `json:"gym_status"`
	GymAllowMultiSession bool       `json:"gym_allow_multi_session"`
	GymCreatedAt         time.Time  `json:"gym_created_at"`
	GymUpdatedAt         *time.Time `json:"gym_updated_at,omitempty"`
}

func FromGymModel(m model.GymModel) GymResponse {
	return GymResponse{
		GymID:                m.GymID,
		GymName:              m.GymName,
		GymEmail:             m.GymEmail,
		GymUsername:          m.GymUsername,
		GymAdminName:         m.GymAdminName,
		GymAdminEmail:        m.GymAdminEmail,
		GymPhone:             m.GymPhone,
		GymAddress:           m.GymAddress,
		GymQRCode:            m.GymQRCode,
		GymStatus:            m.GymStatus,
		GymAllowMultiSession: m.GymAllowMultiSession,
		GymCreatedAt:         m.GymCreatedAt,
		GymUpdatedAt:         m.GymUpdatedAt,
	}
}

func FromGymModels(ms []model.GymModel) []GymResponse {
	out := make([]GymResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromGymModel(m))
	}
	return out
}
