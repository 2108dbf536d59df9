package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every validation failure: absent or malformed input,
// a bad signature, and expiry. Callers treat all of them as unauthenticated.
var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"uid"`
}

// Service issues and validates signed session tokens. Validation is
// stateless: any instance sharing the secret can validate tokens issued by
// any other. There is no revocation; a token stays valid for the full
// validity window. Validation does not check that the embedded identity
// still exists — callers wanting that must re-check the account directory.
type Service struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewService(secret []byte, validity time.Duration) *Service {
	return &Service{secret: secret, validity: validity, now: time.Now}
}

func (s *Service) Issue(userID int) (string, error) {
	issuedAt := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.validity)),
		},
		UserID: userID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) Validate(tokenString string) (Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithIssuedAt(),
	)
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	return *claims, nil
}
