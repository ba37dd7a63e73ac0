package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WebhookSMSSender mem-POST permintaan SMS ke webhook terkonfigurasi
// (gateway SMS dideploy terpisah, sama seperti edge function aslinya).
type WebhookSMSSender struct {
	url    string
	client *http.Client
}

func NewWebhookSMSSender(url string) *WebhookSMSSender {
	return &WebhookSMSSender{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *WebhookSMSSender) SendCredentials(ctx context.Context, creds Credentials) error {
	body, err := json.Marshal(map[string]string{
		"phone":       creds.Phone,
		"member_name": creds.RecipientName,
		"username":    creds.Username,
		"password":    creds.Password,
		"gym_name":    creds.GymName,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms webhook: unexpected status %d", resp.StatusCode)
	}
	return nil
}
