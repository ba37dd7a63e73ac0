package service

import (
	"testing"

	paymentModel "gymku_backend/internals/features/payments/model"
)

func TestMapGatewayStatus(t *testing.T) {
	cases := []struct {
		transactionStatus string
		fraudStatus       string
		want              string
	}{
		{"settlement", "", paymentModel.PaymentStatusPaid},
		{"capture", "accept", paymentModel.PaymentStatusPaid},
		{"capture", "deny", paymentModel.PaymentStatusFailed},
		{"capture", "challenge", ""}, // menunggu keputusan fraud
		{"deny", "", paymentModel.PaymentStatusFailed},
		{"cancel", "", paymentModel.PaymentStatusFailed},
		{"failure", "", paymentModel.PaymentStatusFailed},
		{"expire", "", paymentModel.PaymentStatusExpired},
		{"pending", "", ""},
		{"refund", "", ""},
	}
	for _, tc := range cases {
		got := MapGatewayStatus(tc.transactionStatus, tc.fraudStatus)
		if got != tc.want {
			t.Errorf("MapGatewayStatus(%q, %q) = %q, want %q",
				tc.transactionStatus, tc.fraudStatus, got, tc.want)
		}
	}
}

func TestGenerateSnapTokenRejectsInvalidInput(t *testing.T) {
	_, _, err := GenerateSnapToken(paymentModel.PaymentModel{
		PaymentOrderID:   "GYMPAY-TEST",
		PaymentAmountIDR: 0,
	}, CustomerInput{Name: "John"})
	if err == nil {
		t.Errorf("expected error for zero amount")
	}

	_, _, err = GenerateSnapToken(paymentModel.PaymentModel{
		PaymentOrderID:   "",
		PaymentAmountIDR: 150000,
	}, CustomerInput{Name: "John"})
	if err == nil {
		t.Errorf("expected error for missing order id")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Premium Membership 90 Hari", 10); got != "Premium Me" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("short", 50); got != "short" {
		t.Errorf("truncate should keep short strings, got %q", got)
	}
}
