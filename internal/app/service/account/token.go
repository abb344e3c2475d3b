package account

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	types "github.com/fatflowers/membership/pkg/types"
)

const tokenIssuer = "membership"

// Claims is the JWT payload issued at sign-in.
type Claims struct {
	Email string     `json:"email"`
	Role  types.Role `json:"role"`
	jwt.StandardClaims
}

func (s *Service) issueToken(id, email string, role types.Role, now time.Time) (string, time.Time, error) {
	exp := now.Add(s.cfg.Auth.TokenTTL)
	claims := &Claims{
		Email: email,
		Role:  role,
		StandardClaims: jwt.StandardClaims{
			Subject:   id,
			Issuer:    tokenIssuer,
			IssuedAt:  now.Unix(),
			ExpiresAt: exp.Unix(),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, exp, nil
}

// ParseToken verifies a bearer token and returns the session it carries.
func (s *Service) ParseToken(token string) (*Session, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.Auth.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" || (claims.Role != types.RoleAdmin && claims.Role != types.RoleUser) {
		return nil, fmt.Errorf("%w: missing subject or role", ErrInvalidToken)
	}
	if claims.Issuer != tokenIssuer {
		return nil, fmt.Errorf("%w: unexpected issuer %q", ErrInvalidToken, claims.Issuer)
	}
	return &Session{IdentityID: claims.Subject, Email: claims.Email, Role: claims.Role}, nil
}
