package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gymku_backend/internals/configs"
	notifModel "gymku_backend/internals/features/notifications/model"
)

// Credentials adalah payload kredensial login yang dikirim ke member
// atau admin gym baru.
type Credentials struct {
	RecipientName string
	Email         string
	Phone         string // opsional, untuk SMS
	Username      string
	Password      string
	GymName       string
	GymID         *uuid.UUID
}

type EmailSender interface {
	SendCredentials(ctx context.Context, creds Credentials) (messageID string, err error)
}

type SMSSender interface {
	SendCredentials(ctx context.Context, creds Credentials) error
}

type Recorder interface {
	Record(ctx context.Context, entry *notifModel.NotificationLogModel) error
}

// Dispatcher mengirim kredensial lewat channel yang tersedia dan mencatat
// setiap percobaan. Error channel TIDAK dipropagasikan ke pemanggil.
type Dispatcher struct {
	Email EmailSender
	SMS   SMSSender
	Rec   Recorder
}

var defaultDispatcher *Dispatcher

// InitDispatcher menyiapkan dispatcher global (dipanggil sekali dari main).
func InitDispatcher(db *gorm.DB) {
	d := &Dispatcher{Rec: &gormRecorder{DB: db}}
	if configs.ResendAPIKey != "" {
		d.Email = NewResendEmailSender(configs.ResendAPIKey, configs.GetEnv("NOTIF_EMAIL_FROM", "Gym Management <onboarding@resend.dev>"))
	}
	if configs.SMSWebhookURL != "" {
		d.SMS = NewWebhookSMSSender(configs.SMSWebhookURL)
	}
	defaultDispatcher = d
}

// NotifyCredentialsAsync: fire-and-forget dari controller. Operasi pemicu
// (create member/gym) tidak pernah gagal karena notifikasi.
func NotifyCredentialsAsync(creds Credentials) {
	d := defaultDispatcher
	if d == nil {
		log.Printf("[NOTIF] dispatcher belum diinisialisasi, kredensial utk %s tidak terkirim", creds.Email)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		d.Notify(ctx, creds)
	}()
}

// Notify mengirim ke semua channel yang terkonfigurasi dan mencatat hasilnya.
func (d *Dispatcher) Notify(ctx context.Context, creds Credentials) {
	if d.Email != nil && creds.Email != "" {
		subject := CredentialsEmailSubject(creds.GymName)
		_, err := d.Email.SendCredentials(ctx, creds)
		d.record(ctx, creds, notifModel.ChannelEmail, creds.Email, &subject, err)
	}
	if d.SMS != nil && creds.Phone != "" {
		err := d.SMS.SendCredentials(ctx, creds)
		d.record(ctx, creds, notifModel.ChannelSMS, creds.Phone, nil, err)
	}
}

func (d *Dispatcher) record(ctx context.Context, creds Credentials, channel, recipient string, subject *string, sendErr error) {
	entry := &notifModel.NotificationLogModel{
		NotificationLogGymID:     creds.GymID,
		NotificationLogChannel:   channel,
		NotificationLogRecipient: recipient,
		NotificationLogSubject:   subject,
		NotificationLogStatus:    notifModel.DeliveryStatusSent,
		NotificationLogPayload: datatypes.JSONMap{
			"recipient_name": creds.RecipientName,
			"username":       creds.Username,
			"gym_name":       creds.GymName,
		},
	}
	if sendErr != nil {
		msg := sendErr.Error()
		entry.NotificationLogStatus = notifModel.DeliveryStatusFailed
		entry.NotificationLogError = &msg
		log.Printf("[NOTIF] kirim %s ke %s gagal: %v", channel, recipient, sendErr)
	}
	if d.Rec == nil {
		return
	}
	if err := d.Rec.Record(ctx, entry); err != nil {
		// log saja; pencatatan bukan bagian kontrak operasi pemicu
		log.Printf("[NOTIF] gagal mencatat log notifikasi: %v", err)
	}
}

type gormRecorder struct {
	DB *gorm.DB
}

func (r *gormRecorder) Record(ctx context.Context, entry *notifModel.NotificationLogModel) error {
	return r.DB.WithContext(ctx).Create(entry).Error
}
