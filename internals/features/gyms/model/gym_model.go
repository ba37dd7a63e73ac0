package model

import (
	"time"

	"github.com/google/uuid"
)

// Status gym: active | inactive | suspended
type GymModel struct {
	GymID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:gym_id" json:"gym_id"`

	GymName  string `gorm:"type:varchar(120);not null;column:gym_name" json:"gym_name"`
	GymEmail string `gorm:"type:varchar(120);not null;uniqueIndex:uq_gyms_email;column:gym_email" json:"gym_email"`

	// Kredensial admin gym (login front-desk)
	GymUsername     *string `gorm:"type:varchar(60);uniqueIndex:uq_gyms_username;column:gym_username" json:"gym_username,omitempty"`
	GymPasswordHash *string `gorm:"column:gym_password_hash" json:"-"`
	GymAdminName    *string `gorm:"type:varchar(120);column:gym_admin_name" json:"gym_admin_name,omitempty"`
	GymAdminEmail   *string `gorm:"type:varchar(120);column:gym_admin_email" json:"gym_admin_email,omitempty"`

	GymPhone   *string `gorm:"type:varchar(30);column:gym_phone" json:"gym_phone,omitempty"`
	GymAddress *string `gorm:"column:gym_address" json:"gym_address,omitempty"`

	// Kode QR identitas gym untuk check-in member, format GYM-XXXXXXXX
	GymQRCode string `gorm:"type:varchar(16);not null;uniqueIndex:uq_gyms_qr_code;column:gym_qr_code" json:"gym_qr_code"`

	GymStatus string `gorm:"type:varchar(16);not null;default:'active';column:gym_status" json:"gym_status"`

	// Opt-in beberapa siklus check-in/check-out per hari (default satu siklus)
	GymAllowMultiSession bool `gorm:"not null;default:false;column:gym_allow_multi_session" json:"gym_allow_multi_session"`

	GymOwnerID *uuid.UUID `gorm:"type:uuid;column:gym_owner_id" json:"gym_owner_id,omitempty"`

	GymCreatedAt time.Time  `gorm:"column:gym_created_at;autoCreateTime" json:"gym_created_at"`
	GymUpdatedAt *time.Time `gorm:"column:gym_updated_at;autoUpdateTime" json:"gym_updated_at,omitempty"`
}

func (GymModel) TableName() string {
	return "gyms"
}
