package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	attendanceModel "gymku_backend/internals/features/attendance/model"
)

/* ===============================
   Nilai direktori (tervalidasi di boundary, bukan blob dinamis)
=============================== */

type MemberRef struct {
	ID     uuid.UUID
	Name   string
	Status string // active | inactive | suspended
	GymID  *uuid.UUID
}

type GymRef struct {
	ID                uuid.UUID
	Name              string
	Status            string
	AllowMultiSession bool
}

/* ===============================
   Taksonomi kegagalan
=============================== */

var (
	ErrMemberNotFound = errors.New("member tidak ditemukan")
	ErrGymNotFound    = errors.New("gym tidak ditemukan")
	ErrGymMismatch    = errors.New("kode QR bukan milik gym member ini")
)

// MemberInactiveError membawa status member sebenarnya supaya front desk
// bisa menindaklanjuti (mis. arahkan ke billing).
type MemberInactiveError struct {
	Status string
}

func (e *MemberInactiveError) Error() string {
	return fmt.Sprintf("member tidak aktif (status: %s)", e.Status)
}

// PersistenceError membungkus error storage apa pun. Selalu aman di-retry:
// RecordScan membaca ulang state sebelum memutuskan insert/update.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

/* ===============================
   Kontrak kolaborator
=============================== */

type Directory interface {
	// FindMemberByIdentifier me-resolve token opaque (barcode / username /
	// email) ke tepat satu member. ErrMemberNotFound kalau nol match.
	FindMemberByIdentifier(ctx context.Context, identifier string) (*MemberRef, error)
	FindGymByCode(ctx context.Context, code string) (*GymRef, error)
	FindGymByID(ctx context.Context, id uuid.UUID) (*GymRef, error)
}

type Store interface {
	// FindOpenAttendance mengembalikan (nil, nil) kalau tidak ada record terbuka.
	FindOpenAttendance(ctx context.Context, memberID uuid.UUID, date time.Time) (*attendanceModel.AttendanceModel, error)
	CountCompletedAttendance(ctx context.Context, memberID uuid.UUID, date time.Time) (int64, error)
	InsertAttendance(ctx context.Context, rec *attendanceModel.AttendanceModel) error
	UpdateAttendanceCheckout(ctx context.Context, id uuid.UUID, checkOut time.Time, durationMinutes int, needsReview bool) error
	ListAttendanceByGymAndDate(ctx context.Context, gymID uuid.UUID, date time.Time) ([]attendanceModel.AttendanceModel, error)
}

/* ===============================
   Input / hasil scan
=============================== */

type ScanInput struct {
	// Token yang discan/diketik front desk atau member: barcode, username,
	// atau email — diserahkan apa adanya ke direktori.
	MemberIdentifier string

	// Kode QR gym, opsional kalau gym sudah diketahui dari konteks sesi.
	GymQRCode string

	// Tenant pemanggil (sesi admin). Kalau diisi, member yang ter-resolve
	// wajib milik gym ini — ditolak sebelum ada tulisan apa pun.
	ExpectedGymID *uuid.UUID

	// Wall-clock saat scan, disuplai pemanggil (engine tidak membaca jam
	// sendiri supaya deterministik dan mudah dites).
	OccurredAt time.Time

	// Minta siklus baru setelah siklus hari ini selesai. Hanya dihormati
	// kalau gym mengaktifkan multi-session.
	StartNewCycle bool
}

type ScanOutcome string

const (
	OutcomeCheckedIn        ScanOutcome = "checked_in"
	OutcomeCheckedOut       ScanOutcome = "checked_out"
	OutcomeAlreadyCompleted ScanOutcome = "already_completed"
)

type ScanResult struct {
	Outcome         ScanOutcome
	Member          MemberRef
	GymName         string
	Record          *attendanceModel.AttendanceModel // nil untuk already_completed
	DurationMinutes *int                             // terisi untuk checked_out
}

/* ===============================
   Engine
=============================== */

// Engine memutuskan apakah sebuah scan adalah check-in atau check-out dan
// menjaga invariant maksimal satu record terbuka per (member, tanggal).
// Kolaborator di-inject; tidak ada state global.
type Engine struct {
	dir   Directory
	store Store

	// serialisiasi read-decide-write per member; entri bertahan selama
	// proses hidup (wajar, cardinality = jumlah member aktif)
	memberLocks sync.Map // uuid.UUID -> *sync.Mutex
}

func NewEngine(dir Directory, store Store) *Engine {
	return &Engine{dir: dir, store: store}
}

func (e *Engine) lockMember(id uuid.UUID) func() {
	v, _ := e.memberLocks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// DateOf memotong timestamp ke tanggal kalender (kunci partisi record).
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RecordScan adalah satu-satunya pintu masuk aksi kehadiran: entry manual
// front desk, scan barcode, dan self-service QR member semuanya lewat sini.
// Tepat satu tulisan ke storage per panggilan (insert ATAU update).
func (e *Engine) RecordScan(ctx context.Context, in ScanInput) (ScanResult, error) {
	var res ScanResult

	identifier := strings.TrimSpace(in.MemberIdentifier)
	if identifier == "" {
		return res, ErrMemberNotFound
	}

	// 1) Resolve member
	member, err := e.dir.FindMemberByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			return res, ErrMemberNotFound
		}
		return res, &PersistenceError{Op: "find member", Err: err}
	}
	res.Member = *member

	// 2) Hanya member aktif yang boleh check-in/out
	if member.Status != "active" {
		return res, &MemberInactiveError{Status: member.Status}
	}

	// 3) Guard tenant: member harus milik gym pemanggil / gym ber-QR.
	//    Semua penolakan di sini terjadi sebelum storage disentuh.
	if in.ExpectedGymID != nil {
		if member.GymID == nil || *member.GymID != *in.ExpectedGymID {
			return res, ErrGymMismatch
		}
	}

	//    Resolve gym: dari kode QR (dengan guard tenant) atau dari
	//    penugasan member (untuk flag multi-session)
	var gym *GymRef
	if code := strings.TrimSpace(in.GymQRCode); code != "" {
		gym, err = e.dir.FindGymByCode(ctx, code)
		if err != nil {
			if errors.Is(err, ErrGymNotFound) {
				return res, ErrGymNotFound
			}
			return res, &PersistenceError{Op: "find gym", Err: err}
		}
		if member.GymID == nil || *member.GymID != gym.ID {
			return res, ErrGymMismatch
		}
	} else if member.GymID != nil {
		gym, err = e.dir.FindGymByID(ctx, *member.GymID)
		if err != nil && !errors.Is(err, ErrGymNotFound) {
			return res, &PersistenceError{Op: "find gym", Err: err}
		}
	}
	if gym != nil {
		res.GymName = gym.Name
	}

	// 4) Read-decide-write diserialisasi per member; index parsial di DB
	//    tetap jadi jaring pengaman lintas proses (race muncul sebagai
	//    PersistenceError yang bisa di-retry).
	unlock := e.lockMember(member.ID)
	defer unlock()

	date := DateOf(in.OccurredAt)

	open, err := e.store.FindOpenAttendance(ctx, member.ID, date)
	if err != nil {
		return res, &PersistenceError{Op: "find open attendance", Err: err}
	}

	if open != nil {
		// CHECK-OUT: tutup sesi berjalan
		raw := in.OccurredAt.Sub(open.AttendanceCheckIn)
		minutes := int(raw / time.Minute)
		needsReview := false
		if minutes < 0 {
			// jam mundur / sesi aneh: clamp ke 0, tandai utk koreksi manual
			minutes = 0
			needsReview = true
		}
		if err := e.store.UpdateAttendanceCheckout(ctx, open.AttendanceID, in.OccurredAt, minutes, needsReview); err != nil {
			return res, &PersistenceError{Op: "update checkout", Err: err}
		}
		checkOut := in.OccurredAt
		open.AttendanceCheckOut = &checkOut
		open.AttendanceDurationMinutes = &minutes
		open.AttendanceNeedsReview = needsReview

		res.Outcome = OutcomeCheckedOut
		res.Record = open
		res.DurationMinutes = &minutes
		return res, nil
	}

	// Tidak ada sesi terbuka: cek apakah siklus hari ini sudah selesai
	completed, err := e.store.CountCompletedAttendance(ctx, member.ID, date)
	if err != nil {
		return res, &PersistenceError{Op: "count completed attendance", Err: err}
	}
	if completed > 0 {
		allowNewCycle := in.StartNewCycle && gym != nil && gym.AllowMultiSession
		if !allowNewCycle {
			// default satu siklus per hari; bukan error, state terminal jinak
			res.Outcome = OutcomeAlreadyCompleted
			return res, nil
		}
	}

	// CHECK-IN: buka sesi baru
	rec := &attendanceModel.AttendanceModel{
		AttendanceMemberID: member.ID,
		AttendanceDate:     date,
		AttendanceCheckIn:  in.OccurredAt,
	}
	if gym != nil {
		gymID := gym.ID
		rec.AttendanceGymID = &gymID
	} else {
		rec.AttendanceGymID = member.GymID
	}
	if err := e.store.InsertAttendance(ctx, rec); err != nil {
		return res, &PersistenceError{Op: "insert attendance", Err: err}
	}

	res.Outcome = OutcomeCheckedIn
	res.Record = rec
	return res, nil
}

// ListAttendance: proyeksi read-only record satu gym pada satu tanggal,
// urut check_in naik.
func (e *Engine) ListAttendance(ctx context.Context, gymID uuid.UUID, date time.Time) ([]attendanceModel.AttendanceModel, error) {
	recs, err := e.store.ListAttendanceByGymAndDate(ctx, gymID, DateOf(date))
	if err != nil {
		return nil, &PersistenceError{Op: "list attendance", Err: err}
	}
	return recs, nil
}

// CurrentlyPresent: siapa yang sedang berada di gym sekarang (record hari
// ini yang belum check-out). View turunan murni, tanpa side effect.
func (e *Engine) CurrentlyPresent(ctx context.Context, gymID uuid.UUID, now time.Time) ([]attendanceModel.AttendanceModel, error) {
	recs, err := e.ListAttendance(ctx, gymID, now)
	if err != nil {
		return nil, err
	}
	present := make([]attendanceModel.AttendanceModel, 0, len(recs))
	for _, r := range recs {
		if r.IsOpen() {
			present = append(present, r)
		}
	}
	return present, nil
}
