package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"bloom/config"
	domainerrors "bloom/internal/domain/errors"
	"bloom/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface
// using HS256-signed JWTs. Tokens carry the account id as their subject
// plus issued-at and expiry claims.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.Auth == nil || cfg.Auth.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &jwtService{
		secret: cfg.Auth.Secret,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed session token asserting the given account id.
func (s *jwtService) Issue(accountID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(accountID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Decode verifies the token's signature and expiry and extracts the account
// id. Any failure (malformed token, wrong signing method, bad signature,
// expired claims, non-numeric subject) surfaces as ErrInvalidToken.
func (s *jwtService) Decode(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return 0, domainerrors.ErrInvalidToken
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, domainerrors.ErrInvalidToken
	}

	return accountID, nil
}
