package model

import (
	"time"

	"github.com/google/uuid"
)

// Status member: active | inactive | suspended
type MemberModel struct {
	MemberID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:member_id" json:"member_id"`

	MemberGymID *uuid.UUID `gorm:"type:uuid;column:member_gym_id;index:idx_members_gym" json:"member_gym_id,omitempty"`

	MemberName  string `gorm:"type:varchar(120);not null;column:member_name" json:"member_name"`
	MemberEmail string `gorm:"type:varchar(120);not null;column:member_email;index:idx_members_email" json:"member_email"`
	MemberPhone string `gorm:"type:varchar(30);not null;column:member_phone" json:"member_phone"`

	// Kredensial login member (self-service)
	MemberUsername     *string `gorm:"type:varchar(60);column:member_username;uniqueIndex:uq_members_username" json:"member_username,omitempty"`
	MemberPasswordHash *string `gorm:"column:member_password_hash" json:"-"`

	// Barcode kartu member, format MBR- + 10 digit
	MemberBarcode *string `gorm:"type:varchar(16);column:member_barcode;uniqueIndex:uq_members_barcode" json:"member_barcode,omitempty"`

	MemberMembershipType      string     `gorm:"type:varchar(16);not null;column:member_membership_type" json:"member_membership_type"`
	MemberMembershipPlanID    *uuid.UUID `gorm:"type:uuid;column:member_membership_plan_id" json:"member_membership_plan_id,omitempty"`
	MemberMembershipStartDate *time.Time `gorm:"type:date;column:member_membership_start_date" json:"member_membership_start_date,omitempty"`
	MemberMembershipEndDate   *time.Time `gorm:"type:date;column:member_membership_end_date" json:"member_membership_end_date,omitempty"`

	MemberJoinDate         time.Time `gorm:"type:date;not null;column:member_join_date" json:"member_join_date"`
	MemberEmergencyContact *string   `gorm:"type:varchar(30);column:member_emergency_contact" json:"member_emergency_contact,omitempty"`

	MemberStatus string `gorm:"type:varchar(16);not null;default:'active';column:member_status" json:"member_status"`

	MemberCreatedAt time.Time  `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt *time.Time `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at,omitempty"`
}

func (MemberModel) TableName() string {
	return "members"
}
