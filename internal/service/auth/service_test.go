package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(t *testing.T) (*Service, *fixedClock) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	clock := &fixedClock{now: time.Now()}
	svc := NewService(string(hash), "test-secret", time.Hour, nopLogger{})
	svc.timeProvider = clock
	return svc, clock
}

func TestLoginAndVerify(t *testing.T) {
	svc, clock := newService(t)

	resp, err := svc.Login(context.Background(), &LoginRequest{Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, clock.now.Add(time.Hour), resp.ExpiresAt)

	claims, err := svc.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, AdminSubject, claims.Subject)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login(context.Background(), &LoginRequest{Password: "guess"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerify_Expired(t *testing.T) {
	svc, clock := newService(t)

	resp, err := svc.Login(context.Background(), &LoginRequest{Password: "admin123"})
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Hour)
	_, err = svc.Verify(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Rejects(t *testing.T) {
	svc, clock := newService(t)

	otherSecret := NewService("", "other-secret", time.Hour, nopLogger{})
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: roleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   AdminSubject,
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	}).SignedString(otherSecret.secret)
	require.NoError(t, err)

	wrongSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: "customer",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "4567890",
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour)),
		},
	}).SignedString(svc.secret)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":       "not-a-token",
		"other secret":  forged,
		"wrong subject": wrongSubject,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
