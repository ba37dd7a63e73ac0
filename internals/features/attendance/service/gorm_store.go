package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "gymku_backend/internals/features/attendance/model"
	gymModel "gymku_backend/internals/features/gyms/model"
	memberModel "gymku_backend/internals/features/members/model"
)

/* ===============================
   Directory berbasis GORM (tabel members + gyms)
=============================== */

type GormDirectory struct {
	DB *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{DB: db}
}

// FindMemberByIdentifier mencoba barcode, username, lalu email — tiga flow
// scan lama disatukan ke satu resolusi. UUID diterima juga (self-scan dari
// token, identitas = member_id).
func (d *GormDirectory) FindMemberByIdentifier(ctx context.Context, identifier string) (*MemberRef, error) {
	var m memberModel.MemberModel
	q := d.DB.WithContext(ctx)
	if id, perr := uuid.Parse(identifier); perr == nil {
		q = q.Where("member_id = ?", id)
	} else {
		q = q.Where("member_barcode = ? OR member_username = ? OR LOWER(member_email) = LOWER(?)",
			identifier, identifier, identifier)
	}
	err := q.First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &MemberRef{
		ID:     m.MemberID,
		Name:   m.MemberName,
		Status: m.MemberStatus,
		GymID:  m.MemberGymID,
	}, nil
}

func (d *GormDirectory) FindGymByCode(ctx context.Context, code string) (*GymRef, error) {
	var g gymModel.GymModel
	err := d.DB.WithContext(ctx).
		Where("gym_qr_code = ?", code).
		First(&g).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}
	return gymRefFromModel(g), nil
}

func (d *GormDirectory) FindGymByID(ctx context.Context, id uuid.UUID) (*GymRef, error) {
	var g gymModel.GymModel
	err := d.DB.WithContext(ctx).First(&g, "gym_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGymNotFound
		}
		return nil, err
	}
	return gymRefFromModel(g), nil
}

func gymRefFromModel(g gymModel.GymModel) *GymRef {
	return &GymRef{
		ID:                g.GymID,
		Name:              g.GymName,
		Status:            g.GymStatus,
		AllowMultiSession: g.GymAllowMultiSession,
	}
}

/* ===============================
   Store berbasis GORM (tabel attendance)
=============================== */

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) FindOpenAttendance(ctx context.Context, memberID uuid.UUID, date time.Time) (*attendanceModel.AttendanceModel, error) {
	var rec attendanceModel.AttendanceModel
	err := s.DB.WithContext(ctx).
		Where("attendance_member_id = ? AND attendance_date = ? AND attendance_check_out IS NULL",
			memberID, date.Format("2006-01-02")).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (s *GormStore) CountCompletedAttendance(ctx context.Context, memberID uuid.UUID, date time.Time) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_member_id = ? AND attendance_date = ? AND attendance_check_out IS NOT NULL",
			memberID, date.Format("2006-01-02")).
		Count(&n).Error
	return n, err
}

func (s *GormStore) InsertAttendance(ctx context.Context, rec *attendanceModel.AttendanceModel) error {
	err := s.DB.WithContext(ctx).Create(rec).Error
	if err != nil && isUniqueViolation(err) {
		// race kalah lawan uq_attendance_open: pemanggil retry RecordScan,
		// pembacaan ulang akan melihat record terbuka dan jadi check-out
		return errors.New("sesi terbuka sudah ada untuk member & tanggal ini (silakan ulangi scan)")
	}
	return err
}

func (s *GormStore) UpdateAttendanceCheckout(ctx context.Context, id uuid.UUID, checkOut time.Time, durationMinutes int, needsReview bool) error {
	res := s.DB.WithContext(ctx).Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_id = ? AND attendance_check_out IS NULL", id).
		Updates(map[string]any{
			"attendance_check_out":        checkOut,
			"attendance_duration_minutes": durationMinutes,
			"attendance_needs_review":     needsReview,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("record kehadiran sudah ditutup proses lain")
	}
	return nil
}

func (s *GormStore) ListAttendanceByGymAndDate(ctx context.Context, gymID uuid.UUID, date time.Time) ([]attendanceModel.AttendanceModel, error) {
	var recs []attendanceModel.AttendanceModel
	err := s.DB.WithContext(ctx).
		Where("attendance_gym_id = ? AND attendance_date = ?", gymID, date.Format("2006-01-02")).
		Order("attendance_check_in ASC").
		Find(&recs).Error
	return recs, err
}

// Deteksi unique violation Postgres (kode "23505")
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
