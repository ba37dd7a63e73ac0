package service

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendEmailSender mengirim email kredensial via Resend API.
type ResendEmailSender struct {
	client *resend.Client
	from   string
}

func NewResendEmailSender(apiKey, from string) *ResendEmailSender {
	return &ResendEmailSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *ResendEmailSender) SendCredentials(ctx context.Context, creds Credentials) (string, error) {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{creds.Email},
		Subject: CredentialsEmailSubject(creds.GymName),
		Html:    CredentialsEmailHTML(creds),
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("resend send failed: %w", err)
	}
	return sent.Id, nil
}

func CredentialsEmailSubject(gymName string) string {
	return fmt.Sprintf("Welcome to %s - Your Login Details", gymName)
}

// CredentialsEmailHTML merender isi email selamat datang berisi kredensial.
func CredentialsEmailHTML(creds Credentials) string {
	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
          <h1 style="color: #2563eb; text-align: center;">Welcome to %s!</h1>

          <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
            <h2 style="color: #334155; margin-top: 0;">Hello %s,</h2>
            <p style="color: #64748b;">Your membership has been successfully created. Below are your login details:</p>

            <div style="background-color: #ffffff; padding: 15px; border-radius: 6px; border-left: 4px solid #2563eb;">
              <p style="margin: 5px 0;"><strong>Username:</strong> %s</p>
              <p style="margin: 5px 0;"><strong>Password:</strong> %s</p>
            </div>

            <p style="color: #64748b; margin-top: 15px;">
              Please keep these credentials safe. You can use them to access member features and check in at the gym.
            </p>
          </div>

          <div style="text-align: center; margin-top: 30px;">
            <p style="color: #94a3b8; font-size: 14px;">
              Welcome to your fitness journey at %s!
            </p>
          </div>
        </div>`,
		creds.GymName, creds.RecipientName, creds.Username, creds.Password, creds.GymName)
}
