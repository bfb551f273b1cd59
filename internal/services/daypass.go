package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const dayPassTTL = 24 * time.Hour

// DayPassClaims is the signed day-pass payload. Expiry is carried both in
// the registered claims and as an explicit field, and verification checks
// both.
type DayPassClaims struct {
	SessionID   string `json:"sessionId"`
	PurchasedAt int64  `json:"purchasedAt"`
	ExpiresAt   int64  `json:"expiresAt"`
	jwt.RegisteredClaims
}

// DayPassService issues and verifies signed day-pass tokens. Tokens are
// stateless: validity is determined entirely by signature and expiry.
type DayPassService interface {
	Issue(sessionID string) (string, error)
	Verify(token string) (*DayPassClaims, bool)
}

type dayPassService struct {
	secret []byte
	now    func() time.Time
}

func NewDayPassService(secret string) (DayPassService, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret is required")
	}
	return &dayPassService{secret: []byte(secret), now: time.Now}, nil
}

// Issue signs a token for a confirmed payment session, valid for 24 hours.
func (s *dayPassService) Issue(sessionID string) (string, error) {
	now := s.now()
	expiresAt := now.Add(dayPassTTL)

	claims := DayPassClaims{
		SessionID:   sessionID,
		PurchasedAt: now.UnixMilli(),
		ExpiresAt:   expiresAt.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign day pass: %w", err)
	}

	return signed, nil
}

// Verify checks signature, structure, and expiry. Any failure yields false;
// callers treat that as "not premium", never as a hard error.
func (s *dayPassService) Verify(tokenString string) (*DayPassClaims, bool) {
	claims := &DayPassClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, false
	}

	if claims.ExpiresAt < s.now().UnixMilli() {
		return nil, false
	}

	return claims, true
}
