package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	attendanceModel "gymku_backend/internals/features/attendance/model"
)

/* ===============================
   Fakes
=============================== */

type fakeDirectory struct {
	members map[string]*MemberRef // identifier -> member
	gyms    map[string]*GymRef    // qr code -> gym
	gymByID map[uuid.UUID]*GymRef
	err     error
}

func (d *fakeDirectory) FindMemberByIdentifier(ctx context.Context, identifier string) (*MemberRef, error) {
	if d.err != nil {
		return nil, d.err
	}
	if m, ok := d.members[identifier]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, ErrMemberNotFound
}

func (d *fakeDirectory) FindGymByCode(ctx context.Context, code string) (*GymRef, error) {
	if g, ok := d.gyms[code]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, ErrGymNotFound
}

func (d *fakeDirectory) FindGymByID(ctx context.Context, id uuid.UUID) (*GymRef, error) {
	if g, ok := d.gymByID[id]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, ErrGymNotFound
}

type fakeStore struct {
	records []*attendanceModel.AttendanceModel

	insertErr error // simulasi transaksi gagal (sekali pakai)
	updateErr error
	writes    int
}

func (s *fakeStore) FindOpenAttendance(ctx context.Context, memberID uuid.UUID, date time.Time) (*attendanceModel.AttendanceModel, error) {
	for _, r := range s.records {
		if r.AttendanceMemberID == memberID && r.AttendanceDate.Equal(date) && r.AttendanceCheckOut == nil {
			return r, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) CountCompletedAttendance(ctx context.Context, memberID uuid.UUID, date time.Time) (int64, error) {
	var n int64
	for _, r := range s.records {
		if r.AttendanceMemberID == memberID && r.AttendanceDate.Equal(date) && r.AttendanceCheckOut != nil {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) InsertAttendance(ctx context.Context, rec *attendanceModel.AttendanceModel) error {
	if s.insertErr != nil {
		err := s.insertErr
		s.insertErr = nil // gagal sekali, retry berikutnya sukses
		return err
	}
	s.writes++
	rec.AttendanceID = uuid.New()
	cp := *rec
	s.records = append(s.records, &cp)
	return nil
}

func (s *fakeStore) UpdateAttendanceCheckout(ctx context.Context, id uuid.UUID, checkOut time.Time, durationMinutes int, needsReview bool) error {
	if s.updateErr != nil {
		err := s.updateErr
		s.updateErr = nil
		return err
	}
	for _, r := range s.records {
		if r.AttendanceID == id {
			s.writes++
			co := checkOut
			dm := durationMinutes
			r.AttendanceCheckOut = &co
			r.AttendanceDurationMinutes = &dm
			r.AttendanceNeedsReview = needsReview
			return nil
		}
	}
	return errors.New("record tidak ditemukan")
}

func (s *fakeStore) ListAttendanceByGymAndDate(ctx context.Context, gymID uuid.UUID, date time.Time) ([]attendanceModel.AttendanceModel, error) {
	var out []attendanceModel.AttendanceModel
	for _, r := range s.records {
		if r.AttendanceGymID != nil && *r.AttendanceGymID == gymID && r.AttendanceDate.Equal(date) {
			out = append(out, *r)
		}
	}
	// urut check_in naik (kontrak ListAttendance)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].AttendanceCheckIn.Before(out[j-1].AttendanceCheckIn); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

// openRecordCount menghitung record terbuka tersimpan utk (member, date).
func (s *fakeStore) openRecordCount(memberID uuid.UUID, date time.Time) int {
	n := 0
	for _, r := range s.records {
		if r.AttendanceMemberID == memberID && r.AttendanceDate.Equal(date) && r.AttendanceCheckOut == nil {
			n++
		}
	}
	return n
}

/* ===============================
   Fixture
=============================== */

var (
	gymAID    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	gymBID    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	memberMID = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func at(hour, min int) time.Time {
	return time.Date(2026, 8, 28, hour, min, 0, 0, time.UTC)
}

func newFixture(multiSession bool) (*Engine, *fakeStore) {
	gymA := &GymRef{ID: gymAID, Name: "Iron Temple", Status: "active", AllowMultiSession: multiSession}
	gymB := &GymRef{ID: gymBID, Name: "Steel Works", Status: "active"}
	dir := &fakeDirectory{
		members: map[string]*MemberRef{
			"MBR-0000000001": {ID: memberMID, Name: "John Doe", Status: "active", GymID: &gymAID},
			"suspended-guy":  {ID: uuid.New(), Name: "Mike", Status: "suspended", GymID: &gymAID},
		},
		gyms:    map[string]*GymRef{"GYM-AAAA2222": gymA, "GYM-BBBB3333": gymB},
		gymByID: map[uuid.UUID]*GymRef{gymAID: gymA, gymBID: gymB},
	}
	store := &fakeStore{}
	return NewEngine(dir, store), store
}

func scan(t *testing.T, e *Engine, identifier, qr string, occurredAt time.Time) ScanResult {
	t.Helper()
	res, err := e.RecordScan(context.Background(), ScanInput{
		MemberIdentifier: identifier,
		GymQRCode:        qr,
		OccurredAt:       occurredAt,
	})
	if err != nil {
		t.Fatalf("RecordScan unexpected error: %v", err)
	}
	return res
}

/* ===============================
   Properti toggle & siklus harian
=============================== */

func TestToggleCheckInThenOutThenAlreadyCompleted(t *testing.T) {
	e, store := newFixture(false)

	// Scan 1 (09:00): check-in, record terbuka
	res := scan(t, e, "MBR-0000000001", "GYM-AAAA2222", at(9, 0))
	if res.Outcome != OutcomeCheckedIn {
		t.Fatalf("scan 1: expected checked_in, got %s", res.Outcome)
	}
	if res.Record == nil || res.Record.AttendanceCheckOut != nil {
		t.Fatalf("scan 1: expected open record")
	}
	if !res.Record.AttendanceCheckIn.Equal(at(9, 0)) {
		t.Errorf("scan 1: check_in = %v, want 09:00", res.Record.AttendanceCheckIn)
	}

	// Scan 2 (10:30): check-out record yang sama, durasi 90 menit
	res = scan(t, e, "MBR-0000000001", "GYM-AAAA2222", at(10, 30))
	if res.Outcome != OutcomeCheckedOut {
		t.Fatalf("scan 2: expected checked_out, got %s", res.Outcome)
	}
	if res.DurationMinutes == nil || *res.DurationMinutes != 90 {
		t.Fatalf("scan 2: duration = %v, want 90", res.DurationMinutes)
	}
	if len(store.records) != 1 {
		t.Fatalf("scan 2: expected 1 stored record, got %d", len(store.records))
	}

	// Scan 3 (14:00): siklus sudah selesai, default satu siklus per hari
	res = scan(t, e, "MBR-0000000001", "GYM-AAAA2222", at(14, 0))
	if res.Outcome != OutcomeAlreadyCompleted {
		t.Fatalf("scan 3: expected already_completed, got %s", res.Outcome)
	}
	if len(store.records) != 1 {
		t.Errorf("scan 3: no new record should be created, got %d", len(store.records))
	}
}

func TestDurationExactMinutes(t *testing.T) {
	e, _ := newFixture(false)

	scan(t, e, "MBR-0000000001", "", at(8, 0))
	res := scan(t, e, "MBR-0000000001", "", at(10, 15))

	if res.Outcome != OutcomeCheckedOut {
		t.Fatalf("expected checked_out, got %s", res.Outcome)
	}
	if res.DurationMinutes == nil || *res.DurationMinutes != 135 {
		t.Errorf("duration = %v, want 135", res.DurationMinutes)
	}
}

func TestDurationFloorsPartialMinute(t *testing.T) {
	e, _ := newFixture(false)

	scan(t, e, "MBR-0000000001", "", at(8, 0))
	res, err := e.RecordScan(context.Background(), ScanInput{
		MemberIdentifier: "MBR-0000000001",
		OccurredAt:       at(8, 30).Add(45 * time.Second),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.DurationMinutes == nil || *res.DurationMinutes != 30 {
		t.Errorf("duration = %v, want floor to 30", res.DurationMinutes)
	}
}

func TestNegativeDurationClampedAndFlagged(t *testing.T) {
	e, store := newFixture(false)

	scan(t, e, "MBR-0000000001", "", at(23, 0))
	// check-out dengan jam lebih awal dari check-in (koreksi jam)
	res, err := e.RecordScan(context.Background(), ScanInput{
		MemberIdentifier: "MBR-0000000001",
		OccurredAt:       at(22, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeCheckedOut {
		t.Fatalf("expected checked_out, got %s", res.Outcome)
	}
	if res.DurationMinutes == nil || *res.DurationMinutes != 0 {
		t.Errorf("duration = %v, want clamp to 0", res.DurationMinutes)
	}
	if !store.records[0].AttendanceNeedsReview {
		t.Errorf("expected needs_review flag set on clamped record")
	}
}

func TestMultiSessionOptInAllowsSecondCycle(t *testing.T) {
	e, store := newFixture(true)

	scan(t, e, "MBR-0000000001", "GYM-AAAA2222", at(7, 0))
	scan(t, e, "MBR-0000000001", "GYM-AAAA2222", at(8, 0))

	// Tanpa StartNewCycle tetap already_completed meski gym multi-session
	res := scan(t, e, "MBR-0000000001", "GYM-AAAA2222", at(17, 0))
	if res.Outcome != OutcomeAlreadyCompleted {
		t.Fatalf("expected already_completed without StartNewCycle, got %s", res.Outcome)
	}

	// Dengan StartNewCycle: siklus kedua dibuka
	res, err := e.RecordScan(context.Background(), ScanInput{
		MemberIdentifier: "MBR-0000000001",
		GymQRCode:        "GYM-AAAA2222",
		OccurredAt:       at(17, 30),
		StartNewCycle:    true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeCheckedIn {
		t.Fatalf("expected checked_in for new cycle, got %s", res.Outcome)
	}
	if len(store.records) != 2 {
		t.Errorf("expected 2 records, got %d", len(store.records))
	}
	if store.openRecordCount(memberMID, DateOf(at(17, 30))) != 1 {
		t.Errorf("invariant violated: more than one open record")
	}
}

func TestSingleCycleGymIgnoresStartNewCycle(t *testing.T) {
	e, store := newFixture(false)

	scan(t, e, "MBR-0000000001", "GYM-AAAA2222", at(7, 0))
	scan(t, e, "MBR-0000000001", "GYM-AAAA2222", at(8, 0))

	res, err := e.RecordScan(context.Background(), ScanInput{
		MemberIdentifier: "MBR-0000000001",
		GymQRCode:        "GYM-AAAA2222",
		OccurredAt:       at(17, 30),
		StartNewCycle:    true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeAlreadyCompleted {
		t.Errorf("expected already_completed (gym not multi-session), got %s", res.Outcome)
	}
	if len(store.records) != 1 {
		t.Errorf("expected 1 record, got %d", len(store.records))
	}
}

/* ===============================
   Validasi & zero-writes
=============================== */

func TestUnknownIdentifierNoWrites(t *testing.T) {
	e, store := newFixture(false)

	_, err := e.RecordScan(context.Background(), ScanInput{
		MemberIdentifier: "no-such-member",
		OccurredAt:       at(9, 0),
	})
	if !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound, got %v", err)
	}
	if store.writes != 0 {
		t.Errorf("expected zero writes, got %d", store.writes)
	}
}

func TestInactiveMemberRejectedWithStatus(t *testing.T) {
	e, store := newFixture(false)

	_, err := e.RecordScan(context.Background(), ScanInput{
		MemberIdentifier: "suspended-guy",
		OccurredAt:       at(9, 0),
	})
	var inactive *MemberInactiveError
	if !errors.As(err, &inactive) {
		t.Fatalf("expected MemberInactiveError, got %v", err)
	}
	if inactive.Status != "suspended" {
		t.Errorf("expected actual status carried, got %q", inactive.Status)
	}
	if store.writes != 0 {
		t.Errorf("expected zero writes, got %d", store.writes)
	}
}

func TestGymMismatchNoWrites(t *testing.T) {
	e, store := newFixture(false)

	// Member gym A scan kode QR gym B
	_, err := e.RecordScan(context.Background(), ScanInput{
		MemberIdentifier: "MBR-0000000001",
		GymQRCode:        "GYM-BBBB3333",
		OccurredAt:       at(9, 0),
	})
	if !errors.Is(err, ErrGymMismatch) {
		t.Fatalf("expected ErrGymMismatch, got %v", err)
	}
	if store.writes != 0 {
		t.Errorf("expected zero writes, got %d", store.writes)
	}
}

func TestForeignGymMemberRejectedBeforeAnyWrite(t *testing.T) {
	e, store := newFixture(false)

	// Admin gym B scan barcode member gym A (tanpa QR, seperti front desk)
	_, err := e.RecordScan(context.Background(), ScanInput{
		MemberIdentifier: "MBR-0000000001",
		ExpectedGymID:    &gymBID,
		OccurredAt:       at(9, 0),
	})
	if !errors.Is(err, ErrGymMismatch) {
		t.Fatalf("expected ErrGymMismatch, got %v", err)
	}
	if store.writes != 0 {
		t.Errorf("expected zero writes, got %d", store.writes)
	}

	// Tenant yang benar tetap lolos
	res, err := e.RecordScan(context.Background(), ScanInput{
		MemberIdentifier: "MBR-0000000001",
		ExpectedGymID:    &gymAID,
		OccurredAt:       at(9, 0),
	})
	if err != nil {
		t.Fatalf("same-tenant scan unexpected error: %v", err)
	}
	if res.Outcome != OutcomeCheckedIn {
		t.Fatalf("expected checked_in, got %s", res.Outcome)
	}
}

func TestUnknownGymCode(t *testing.T) {
	e, _ := newFixture(false)

	_, err := e.RecordScan(context.Background(), ScanInput{
		MemberIdentifier: "MBR-0000000001",
		GymQRCode:        "GYM-NOPE0000",
		OccurredAt:       at(9, 0),
	})
	if !errors.Is(err, ErrGymNotFound) {
		t.Fatalf("expected ErrGymNotFound, got %v", err)
	}
}

/* ===============================
   Retry idempotence & invariant
=============================== */

func TestRetryAfterFailedInsertYieldsSameOutcome(t *testing.T) {
	e, store := newFixture(false)
	store.insertErr = errors.New("connection reset")

	// Percobaan pertama: tulisan gagal, dibungkus PersistenceError
	_, err := e.RecordScan(context.Background(), ScanInput{
		MemberIdentifier: "MBR-0000000001",
		OccurredAt:       at(9, 0),
	})
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}

	// Retry dengan input identik: hasil sama seperti panggilan tunggal sukses
	res := scan(t, e, "MBR-0000000001", "", at(9, 0))
	if res.Outcome != OutcomeCheckedIn {
		t.Errorf("retry outcome = %s, want checked_in", res.Outcome)
	}
	if store.openRecordCount(memberMID, DateOf(at(9, 0))) != 1 {
		t.Errorf("expected exactly one open record after retry")
	}
}

func TestRetryAfterFailedCheckoutYieldsSameOutcome(t *testing.T) {
	e, store := newFixture(false)

	scan(t, e, "MBR-0000000001", "", at(9, 0))
	store.updateErr = errors.New("statement timeout")

	_, err := e.RecordScan(context.Background(), ScanInput{
		MemberIdentifier: "MBR-0000000001",
		OccurredAt:       at(10, 30),
	})
	var pe *PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}

	res := scan(t, e, "MBR-0000000001", "", at(10, 30))
	if res.Outcome != OutcomeCheckedOut {
		t.Errorf("retry outcome = %s, want checked_out", res.Outcome)
	}
	if res.DurationMinutes == nil || *res.DurationMinutes != 90 {
		t.Errorf("retry duration = %v, want 90", res.DurationMinutes)
	}
}

func TestAtMostOneOpenRecordUnderConcurrentScans(t *testing.T) {
	e, store := newFixture(false)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			_, _ = e.RecordScan(context.Background(), ScanInput{
				MemberIdentifier: "MBR-0000000001",
				OccurredAt:       at(9, 0),
			})
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	if n := store.openRecordCount(memberMID, DateOf(at(9, 0))); n > 1 {
		t.Errorf("invariant violated: %d open records for one member+date", n)
	}
}

/* ===============================
   Proyeksi read-only
=============================== */

func TestListAttendanceRoundTrip(t *testing.T) {
	e, _ := newFixture(false)

	scan(t, e, "MBR-0000000001", "GYM-AAAA2222", at(9, 0))
	scan(t, e, "MBR-0000000001", "GYM-AAAA2222", at(10, 30))

	recs, err := e.ListAttendance(context.Background(), gymAID, at(23, 59))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected exactly 1 record, got %d", len(recs))
	}
	r := recs[0]
	if r.AttendanceCheckOut == nil {
		t.Errorf("expected check_out populated")
	}
	if r.AttendanceDurationMinutes == nil || *r.AttendanceDurationMinutes != 90 {
		t.Errorf("duration = %v, want 90", r.AttendanceDurationMinutes)
	}
}

func TestCurrentlyPresentOnlyOpenRecords(t *testing.T) {
	e, _ := newFixture(true)

	dir := e.dir.(*fakeDirectory)
	otherID := uuid.New()
	dir.members["MBR-0000000002"] = &MemberRef{ID: otherID, Name: "Jane", Status: "active", GymID: &gymAID}

	scan(t, e, "MBR-0000000001", "GYM-AAAA2222", at(9, 0))  // masih di dalam
	scan(t, e, "MBR-0000000002", "GYM-AAAA2222", at(9, 30)) // masuk lalu keluar
	scan(t, e, "MBR-0000000002", "GYM-AAAA2222", at(10, 0))

	present, err := e.CurrentlyPresent(context.Background(), gymAID, at(11, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(present) != 1 {
		t.Fatalf("expected 1 member present, got %d", len(present))
	}
	if present[0].AttendanceMemberID != memberMID {
		t.Errorf("wrong member reported present")
	}
}
