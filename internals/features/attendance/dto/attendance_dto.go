package dto

import (
	"time"

	"github.com/google/uuid"

	attendanceModel "gymku_backend/internals/features/attendance/model"
	attendanceService "gymku_backend/internals/features/attendance/service"
)

/* ===============================
   Request DTO
=============================== */

// ScanRequest dipakai admin panel: identitas member datang dari hasil scan barcode.
type ScanRequest struct {
	MemberIdentifier string `json:"member_identifier" validate:"required,min=1,max=100"`
	StartNewCycle    bool   `json:"start_new_cycle"`
}

// SelfScanRequest dipakai member: QR gym hasil scan kamera, identitas dari token.
type SelfScanRequest struct {
	GymQRCode     string `json:"gym_qr_code" validate:"required,min=1,max=32"`
	StartNewCycle bool   `json:"start_new_cycle"`
}

/* ===============================
   Response DTO
=============================== */

type ScanResponse struct {
	Outcome         string             `json:"outcome"` // checked_in | checked_out | already_completed
	Message         string             `json:"message"`
	MemberID        uuid.UUID          `json:"member_id"`
	MemberName      string             `json:"member_name"`
	GymName         string             `json:"gym_name,omitempty"`
	Record          *AttendanceDetail  `json:"record,omitempty"`
	DurationMinutes *int               `json:"duration_minutes,omitempty"`
	ScannedAt       time.Time          `json:"scanned_at"`
}

type AttendanceDetail struct {
	AttendanceID              uuid.UUID  `json:"attendance_id"`
	AttendanceMemberID        uuid.UUID  `json:"attendance_member_id"`
	AttendanceGymID           *uuid.UUID `json:"attendance_gym_id,omitempty"`
	AttendanceDate            string     `json:"attendance_date"` // YYYY-MM-DD
	AttendanceCheckIn         time.Time  `json:"attendance_check_in"`
	AttendanceCheckOut        *time.Time `json:"attendance_check_out,omitempty"`
	AttendanceDurationMinutes *int       `json:"attendance_duration_minutes,omitempty"`
	AttendanceNeedsReview     bool       `json:"attendance_needs_review"`
}

func FromAttendanceModel(m *attendanceModel.AttendanceModel) *AttendanceDetail {
	if m == nil {
		return nil
	}
	return &AttendanceDetail{
		AttendanceID:              m.AttendanceID,
		AttendanceMemberID:        m.AttendanceMemberID,
		AttendanceGymID:           m.AttendanceGymID,
		AttendanceDate:            m.AttendanceDate.Format("2006-01-02"),
		AttendanceCheckIn:         m.AttendanceCheckIn,
		AttendanceCheckOut:        m.AttendanceCheckOut,
		AttendanceDurationMinutes: m.AttendanceDurationMinutes,
		AttendanceNeedsReview:     m.AttendanceNeedsReview,
	}
}

// scanMessage: satu pesan manusiawi per outcome.
func scanMessage(res attendanceService.ScanResult) string {
	switch res.Outcome {
	case attendanceService.OutcomeCheckedIn:
		return "Welcome, " + res.Member.Name + "! Check-in berhasil."
	case attendanceService.OutcomeCheckedOut:
		return "Sampai jumpa, " + res.Member.Name + "! Check-out berhasil."
	case attendanceService.OutcomeAlreadyCompleted:
		return res.Member.Name + " sudah menyelesaikan sesi hari ini."
	default:
		return "Scan diproses."
	}
}

func FromScanResult(res attendanceService.ScanResult, scannedAt time.Time) ScanResponse {
	return ScanResponse{
		Outcome:         string(res.Outcome),
		Message:         scanMessage(res),
		MemberID:        res.Member.ID,
		MemberName:      res.Member.Name,
		GymName:         res.GymName,
		Record:          FromAttendanceModel(res.Record),
		DurationMinutes: res.DurationMinutes,
		ScannedAt:       scannedAt,
	}
}
