package model

import (
	"time"

	"github.com/google/uuid"
)

// SuperAdminModel: akun owner platform, di atas semua gym.
type SuperAdminModel struct {
	SuperAdminID           uuid.UUID `gorm:"column:super_admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"super_admin_id"`
	SuperAdminName         string    `gorm:"column:super_admin_name;type:varchar(100);not null" json:"super_admin_name"`
	SuperAdminEmail        string    `gorm:"column:super_admin_email;type:varchar(255);uniqueIndex:uq_super_admins_email;not null" json:"super_admin_email"`
	SuperAdminPasswordHash string    `gorm:"column:super_admin_password_hash;type:varchar(255);not null" json:"-"`

	SuperAdminCreatedAt time.Time `gorm:"column:super_admin_created_at;autoCreateTime" json:"super_admin_created_at"`
	SuperAdminUpdatedAt time.Time `gorm:"column:super_admin_updated_at;autoUpdateTime" json:"super_admin_updated_at"`
}

func (SuperAdminModel) TableName() string {
	return "super_admins"
}
