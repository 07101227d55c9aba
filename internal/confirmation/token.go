// Package confirmation mints and validates the signed token the mailer embeds
// in the account confirmation link. Email delivery itself is an external
// concern; the token is the derived attribute it needs.
package confirmation

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	id "regate/pkg/domain"
	dErrors "regate/pkg/domain-errors"
)

// Claims bind a confirmation token to one email in one organization.
type Claims struct {
	Email          string `json:"email"`
	OrganizationID string `json:"organization_id"`
	jwt.RegisteredClaims
}

// Service signs and validates confirmation tokens.
type Service struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
}

func NewService(signingKey string, ttl time.Duration) *Service {
	return &Service{
		signingKey: []byte(signingKey),
		issuer:     "regate",
		ttl:        ttl,
	}
}

// Mint issues a token for the given email. The issue time comes from the
// caller so request-scoped clocks stay consistent.
func (s *Service) Mint(email string, orgID id.OrganizationID, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email:          email,
		OrganizationID: orgID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	})
	return token.SignedString(s.signingKey)
}

// Validate parses a token string and returns its claims.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "confirmation token has expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid confirmation token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid confirmation token claims")
	}
	return claims, nil
}
