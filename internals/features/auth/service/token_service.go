package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	AccessTokenTTL  = 2 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

var (
	ErrInvalidToken = errors.New("token tidak valid")
	ErrExpiredToken = errors.New("token sudah kedaluwarsa")
)

// TokenSubject: identitas yang dibawa access token.
type TokenSubject struct {
	Subject  uuid.UUID  // id akun (gym, member, atau super admin)
	Role     string     // member | gym_admin | owner
	GymID    *uuid.UUID // terisi untuk gym_admin dan member
	MemberID *uuid.UUID // terisi untuk member
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // detik
}

func buildClaims(sub TokenSubject, ttl time.Duration, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"sub":  sub.Subject.String(),
		"role": sub.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	if sub.GymID != nil {
		claims["gym_id"] = sub.GymID.String()
	}
	if sub.MemberID != nil {
		claims["member_id"] = sub.MemberID.String()
	}
	return claims
}

// IssueTokenPair menandatangani access + refresh token HS256.
func IssueTokenPair(sub TokenSubject, accessSecret, refreshSecret string) (TokenPair, error) {
	now := time.Now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, buildClaims(sub, AccessTokenTTL, now))
	accessStr, err := access.SignedString([]byte(accessSecret))
	if err != nil {
		return TokenPair{}, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, buildClaims(sub, RefreshTokenTTL, now))
	refreshStr, err := refresh.SignedString([]byte(refreshSecret))
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  accessStr,
		RefreshToken: refreshStr,
		ExpiresIn:    int64(AccessTokenTTL.Seconds()),
	}, nil
}

// ParseToken memverifikasi tanda tangan lalu mengembalikan subject.
func ParseToken(tokenStr, secret string) (TokenSubject, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenSubject{}, ErrExpiredToken
		}
		return TokenSubject{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return TokenSubject{}, ErrInvalidToken
	}

	rawSub, _ := claims["sub"].(string)
	subject, err := uuid.Parse(rawSub)
	if err != nil {
		return TokenSubject{}, ErrInvalidToken
	}
	role, _ := claims["role"].(string)
	if role == "" {
		return TokenSubject{}, ErrInvalidToken
	}

	out := TokenSubject{Subject: subject, Role: role}
	if raw, ok := claims["gym_id"].(string); ok {
		if id, perr := uuid.Parse(raw); perr == nil {
			out.GymID = &id
		}
	}
	if raw, ok := claims["member_id"].(string); ok {
		if id, perr := uuid.Parse(raw); perr == nil {
			out.MemberID = &id
		}
	}
	return out, nil
}
