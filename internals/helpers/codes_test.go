package helper

import (
	"strings"
	"testing"
)

func TestGenerateGymQRCodeFormat(t *testing.T) {
	code, err := GenerateGymQRCode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(code, "GYM-") {
		t.Errorf("expected GYM- prefix, got %q", code)
	}
	if len(code) != len("GYM-")+8 {
		t.Errorf("expected 8 random chars, got %q", code)
	}
	for _, r := range code[4:] {
		if strings.ContainsRune("0O1I", r) {
			t.Errorf("ambiguous char %q in code %q", r, code)
		}
	}
}

func TestGenerateMemberBarcodeFormat(t *testing.T) {
	bc, err := GenerateMemberBarcode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(bc, "MBR-") {
		t.Errorf("expected MBR- prefix, got %q", bc)
	}
	digits := bc[4:]
	if len(digits) != 10 {
		t.Errorf("expected 10 digits, got %q", digits)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			t.Errorf("non-digit %q in barcode %q", r, bc)
		}
	}
}

func TestGenerateRandomPasswordMinLength(t *testing.T) {
	pw, err := GenerateRandomPassword(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pw) != 8 {
		t.Errorf("expected min length 8, got %d", len(pw))
	}
}

func TestUsernameFromEmail(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"John.Doe@example.com", "john.doe"},
		{"jane+fit@gym.io", "janefit"},
		{"plainuser", "plainuser"},
	}
	for _, tc := range cases {
		if got := UsernameFromEmail(tc.in); got != tc.want {
			t.Errorf("UsernameFromEmail(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
