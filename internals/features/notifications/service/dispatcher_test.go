package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	notifModel "gymku_backend/internals/features/notifications/model"
)

type fakeEmail struct {
	err   error
	calls int
}

func (f *fakeEmail) SendCredentials(ctx context.Context, creds Credentials) (string, error) {
	f.calls++
	return "msg-1", f.err
}

type fakeSMS struct {
	err   error
	calls int
}

func (f *fakeSMS) SendCredentials(ctx context.Context, creds Credentials) error {
	f.calls++
	return f.err
}

type fakeRecorder struct {
	entries []*notifModel.NotificationLogModel
	err     error
}

func (f *fakeRecorder) Record(ctx context.Context, entry *notifModel.NotificationLogModel) error {
	f.entries = append(f.entries, entry)
	return f.err
}

func sampleCreds() Credentials {
	return Credentials{
		RecipientName: "John Doe",
		Email:         "john@example.com",
		Phone:         "+1234567890",
		Username:      "john",
		Password:      "secret123",
		GymName:       "Iron Temple",
	}
}

func TestNotifyRecordsBothChannels(t *testing.T) {
	email := &fakeEmail{}
	sms := &fakeSMS{}
	rec := &fakeRecorder{}
	d := &Dispatcher{Email: email, SMS: sms, Rec: rec}

	d.Notify(context.Background(), sampleCreds())

	if email.calls != 1 || sms.calls != 1 {
		t.Fatalf("expected one call per channel, got email=%d sms=%d", email.calls, sms.calls)
	}
	if len(rec.entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(rec.entries))
	}
	for _, e := range rec.entries {
		if e.NotificationLogStatus != notifModel.DeliveryStatusSent {
			t.Errorf("expected status sent, got %s", e.NotificationLogStatus)
		}
	}
}

func TestNotifyFailureIsIsolatedAndLogged(t *testing.T) {
	email := &fakeEmail{err: errors.New("provider down")}
	rec := &fakeRecorder{}
	d := &Dispatcher{Email: email, Rec: rec}

	// Notify tidak mengembalikan error: kegagalan channel tidak boleh
	// menggagalkan operasi pemicunya.
	d.Notify(context.Background(), sampleCreds())

	if len(rec.entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(rec.entries))
	}
	e := rec.entries[0]
	if e.NotificationLogStatus != notifModel.DeliveryStatusFailed {
		t.Errorf("expected status failed, got %s", e.NotificationLogStatus)
	}
	if e.NotificationLogError == nil || !strings.Contains(*e.NotificationLogError, "provider down") {
		t.Errorf("expected error message recorded, got %v", e.NotificationLogError)
	}
}

func TestNotifySkipsChannelsWithoutContact(t *testing.T) {
	email := &fakeEmail{}
	sms := &fakeSMS{}
	rec := &fakeRecorder{}
	d := &Dispatcher{Email: email, SMS: sms, Rec: rec}

	creds := sampleCreds()
	creds.Phone = ""
	d.Notify(context.Background(), creds)

	if sms.calls != 0 {
		t.Errorf("expected SMS skipped without phone, got %d calls", sms.calls)
	}
	if len(rec.entries) != 1 {
		t.Errorf("expected only email logged, got %d entries", len(rec.entries))
	}
}

func TestCredentialsEmailHTMLContainsCredentials(t *testing.T) {
	html := CredentialsEmailHTML(sampleCreds())
	for _, want := range []string{"Iron Temple", "John Doe", "john", "secret123"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected rendered email to contain %q", want)
		}
	}
	if got := CredentialsEmailSubject("Iron Temple"); got != "Welcome to Iron Temple - Your Login Details" {
		t.Errorf("unexpected subject %q", got)
	}
}
