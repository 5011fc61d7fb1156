// Package sessiontoken verifies session tokens issued by the platform's auth
// service and extracts the buyer identity they carry. Token issuance, refresh
// and revocation all live in the auth service, not here.
package sessiontoken

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrTokenExpired = errors.New("session token expired")
)

type Claims struct {
	UserID        uuid.UUID
	OrgID         uuid.UUID
	Email         string
	FirstName     string
	LastName      string
	CountryCode   string
	EmailVerified bool
}

type sessionClaims struct {
	OrgID         string `json:"org_id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	CountryCode   string `json:"country_code"`
	EmailVerified bool   `json:"email_verified"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, ErrInvalidToken
	}
	orgID, err := uuid.Parse(claims.OrgID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID:        userID,
		OrgID:         orgID,
		Email:         claims.Email,
		FirstName:     claims.FirstName,
		LastName:      claims.LastName,
		CountryCode:   claims.CountryCode,
		EmailVerified: claims.EmailVerified,
	}, nil
}
