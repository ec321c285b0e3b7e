package service_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/inotebook/server/internal/config"
	"github.com/inotebook/server/internal/domain"
	"github.com/inotebook/server/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenConfig(sessionTTL, resetTTL time.Duration) *config.Config {
	return &config.Config{
		JWTSecret:       "session-secret-for-tests",
		ResetSecret:     "reset-secret-for-tests",
		SessionTokenTTL: sessionTTL,
		ResetTokenTTL:   resetTTL,
		CookieSameSite:  http.SameSiteLaxMode,
	}
}

func TestTokenService_SessionRoundTrip(t *testing.T) {
	tokens := service.NewTokenService(tokenConfig(7*24*time.Hour, 15*time.Minute))
	userID := uuid.New()

	token, err := tokens.IssueSessionToken(userID, "Alice Smith")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := tokens.VerifySessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "Alice Smith", identity.Name)
}

func TestTokenService_ExpiredSessionToken(t *testing.T) {
	// Issuing with a negative TTL produces an already-expired token
	expired := service.NewTokenService(tokenConfig(-time.Hour, 15*time.Minute))

	token, err := expired.IssueSessionToken(uuid.New(), "Alice Smith")
	require.NoError(t, err)

	_, err = expired.VerifySessionToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_ResetRoundTrip(t *testing.T) {
	tokens := service.NewTokenService(tokenConfig(7*24*time.Hour, 15*time.Minute))
	userID := uuid.New()

	token, err := tokens.IssueResetToken(userID)
	require.NoError(t, err)

	got, err := tokens.VerifyResetToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenService_ExpiredResetToken(t *testing.T) {
	expired := service.NewTokenService(tokenConfig(7*24*time.Hour, -time.Minute))

	token, err := expired.IssueResetToken(uuid.New())
	require.NoError(t, err)

	_, err = expired.VerifyResetToken(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_SecretSeparation(t *testing.T) {
	tokens := service.NewTokenService(tokenConfig(7*24*time.Hour, 15*time.Minute))
	userID := uuid.New()

	sessionToken, err := tokens.IssueSessionToken(userID, "Alice Smith")
	require.NoError(t, err)
	resetToken, err := tokens.IssueResetToken(userID)
	require.NoError(t, err)

	// Each token class verifies only against its own secret
	_, err = tokens.VerifyResetToken(sessionToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)

	_, err = tokens.VerifySessionToken(resetToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_TamperedToken(t *testing.T) {
	tokens := service.NewTokenService(tokenConfig(7*24*time.Hour, 15*time.Minute))

	other := service.NewTokenService(&config.Config{
		JWTSecret:       "a-different-secret-entirely",
		ResetSecret:     "another-different-secret",
		SessionTokenTTL: 7 * 24 * time.Hour,
		ResetTokenTTL:   15 * time.Minute,
	})

	forged, err := other.IssueSessionToken(uuid.New(), "Mallory")
	require.NoError(t, err)

	_, err = tokens.VerifySessionToken(forged)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_MalformedToken(t *testing.T) {
	tokens := service.NewTokenService(tokenConfig(7*24*time.Hour, 15*time.Minute))

	for _, bad := range []string{"", "undefined", "not.a.jwt", "eyJhbGciOiJIUzI1NiJ9"} {
		_, err := tokens.VerifySessionToken(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidToken, "token %q", bad)

		_, err = tokens.VerifyResetToken(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidToken, "token %q", bad)
	}
}
