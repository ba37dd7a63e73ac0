package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceModel adalah satu sesi kehadiran member per tanggal.
// Record dibuat saat check-in dan hanya berubah sekali: saat check-out.
//
// Invariant di DB: maksimal satu record terbuka per (member, tanggal),
// dijaga partial unique index uq_attendance_open (lihat
// migrations/001_schema.sql; dipasang ulang tiap startup oleh
// database.EnsureIndexes):
//
//	CREATE UNIQUE INDEX uq_attendance_open
//	  ON attendance (attendance_member_id, attendance_date)
//	  WHERE attendance_check_out IS NULL;
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceMemberID uuid.UUID  `gorm:"type:uuid;not null;column:attendance_member_id;index:idx_attendance_member_date,priority:1" json:"attendance_member_id"`
	AttendanceGymID    *uuid.UUID `gorm:"type:uuid;column:attendance_gym_id;index:idx_attendance_gym_date,priority:1" json:"attendance_gym_id,omitempty"`

	// Tanggal kalender lokal gym; di-set sekali saat create, tidak pernah berubah.
	AttendanceDate time.Time `gorm:"type:date;not null;column:attendance_date;index:idx_attendance_member_date,priority:2;index:idx_attendance_gym_date,priority:2" json:"attendance_date"`

	AttendanceCheckIn  time.Time  `gorm:"type:timestamptz;not null;column:attendance_check_in" json:"attendance_check_in"`
	AttendanceCheckOut *time.Time `gorm:"type:timestamptz;column:attendance_check_out" json:"attendance_check_out,omitempty"`

	// Dihitung saat check-out: floor((check_out - check_in) / 60s), clamp >= 0
	AttendanceDurationMinutes *int `gorm:"column:attendance_duration_minutes" json:"attendance_duration_minutes,omitempty"`

	// True kalau durasi mentah negatif (mis. koreksi jam / sesi lewat tengah
	// malam) dan di-clamp ke 0; perlu koreksi manual operator.
	AttendanceNeedsReview bool `gorm:"not null;default:false;column:attendance_needs_review" json:"attendance_needs_review"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}

// IsOpen: sesi masih berjalan (belum check-out).
func (a *AttendanceModel) IsOpen() bool {
	return a.AttendanceCheckOut == nil
}
