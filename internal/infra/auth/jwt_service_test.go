package auth

import (
	"testing"
	"time"

	"bloom/config"
	domainerrors "bloom/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Secret:   secret,
			TokenTTL: time.Minute,
		},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	jwtSvc, ok := svc.(*jwtService)
	require.True(t, ok)

	return jwtSvc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{Secret: ""}})
	assert.Error(t, err)

	_, err = NewJWTService(nil)
	assert.Error(t, err)
}

func TestJWTService_IssueAndDecode(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	accountID, err := svc.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), accountID)
}

func TestJWTService_DecodeRejectsWrongSecret(t *testing.T) {
	issuer := newTestTokenService(t, "issuer-secret")
	verifier := newTestTokenService(t, "other-secret")

	token, err := issuer.Issue(42)
	require.NoError(t, err)

	_, err = verifier.Decode(token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_DecodeRejectsTamperedToken(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	token, err := svc.Issue(42)
	require.NoError(t, err)

	_, err = svc.Decode(token + "x")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_DecodeRejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	_, err := svc.Decode("not.a.jwt")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_DecodeRejectsExpiredToken(t *testing.T) {
	// A negative TTL produces a token that is already expired when issued.
	svc := &jwtService{secret: "test-secret", ttl: -time.Minute}

	token, err := svc.Issue(42)
	require.NoError(t, err)

	_, err = svc.Decode(token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
