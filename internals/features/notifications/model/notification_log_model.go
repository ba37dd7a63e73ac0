package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

const (
	DeliveryStatusSent   = "sent"
	DeliveryStatusFailed = "failed"
)

// NotificationLogModel mencatat setiap percobaan kirim kredensial.
// Kegagalan di sini tidak pernah membatalkan operasi pemicunya; operator
// menindaklanjuti manual dari log ini.
type NotificationLogModel struct {
	NotificationLogID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notification_log_id" json:"notification_log_id"`

	NotificationLogGymID *uuid.UUID `gorm:"type:uuid;column:notification_log_gym_id;index:idx_notification_logs_gym" json:"notification_log_gym_id,omitempty"`

	NotificationLogChannel   string  `gorm:"type:varchar(8);not null;column:notification_log_channel" json:"notification_log_channel"`
	NotificationLogRecipient string  `gorm:"type:varchar(160);not null;column:notification_log_recipient" json:"notification_log_recipient"`
	NotificationLogSubject   *string `gorm:"type:varchar(200);column:notification_log_subject" json:"notification_log_subject,omitempty"`

	NotificationLogStatus string  `gorm:"type:varchar(8);not null;column:notification_log_status;index:idx_notification_logs_status" json:"notification_log_status"`
	NotificationLogError  *string `gorm:"column:notification_log_error" json:"notification_log_error,omitempty"`

	NotificationLogPayload datatypes.JSONMap `gorm:"type:jsonb;column:notification_log_payload" json:"notification_log_payload,omitempty"`

	NotificationLogCreatedAt time.Time `gorm:"column:notification_log_created_at;autoCreateTime" json:"notification_log_created_at"`
}

func (NotificationLogModel) TableName() string {
	return "notification_logs"
}
