package helper

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	gymQRPrefix     = "GYM-"
	memberBCPrefix  = "MBR-"
	qrCodeAlphabet  = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // tanpa karakter ambigu (0/O, 1/I)
	passwordCharset = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

func randomFrom(charset string, n int) (string, error) {
	var sb strings.Builder
	max := big.NewInt(int64(len(charset)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(charset[idx.Int64()])
	}
	return sb.String(), nil
}

// GenerateGymQRCode menghasilkan kode unik gym untuk QR check-in,
// format GYM-XXXXXXXX (8 karakter).
func GenerateGymQRCode() (string, error) {
	s, err := randomFrom(qrCodeAlphabet, 8)
	if err != nil {
		return "", fmt.Errorf("generate gym qr code: %w", err)
	}
	return gymQRPrefix + s, nil
}

// GenerateMemberBarcode menghasilkan barcode kartu member, format MBR- + 10 digit.
func GenerateMemberBarcode() (string, error) {
	s, err := randomFrom("0123456789", 10)
	if err != nil {
		return "", fmt.Errorf("generate member barcode: %w", err)
	}
	return memberBCPrefix + s, nil
}

// GenerateRandomPassword untuk kredensial awal member/admin gym.
func GenerateRandomPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}
	s, err := randomFrom(passwordCharset, length)
	if err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}
	return s, nil
}

// UsernameFromEmail membentuk username default dari bagian lokal email.
func UsernameFromEmail(email string) string {
	local := email
	if i := strings.IndexByte(email, '@'); i > 0 {
		local = email[:i]
	}
	local = strings.ToLower(strings.TrimSpace(local))
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' || r == '_' {
			return r
		}
		return -1
	}, local)
}
