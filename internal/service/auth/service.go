package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	issuer    = "court-booking-service"
	roleAdmin = "admin"
)

// Service выдаёт и проверяет токены администратора.
// Пароль сверяется с bcrypt хэшем из конфигурации, токен подписывается HS256.
type Service struct {
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(passwordHash, secret string, ttl time.Duration, logger Logger) *Service {
	return &Service{
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Login проверяет пароль и выдаёт токен
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Warn("Login: invalid admin password")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: failed to compare password hash: %v", err)
		return nil, fmt.Errorf("%w: Login - compare hash: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		Role: roleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   AdminSubject,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("Login: failed to sign token: %v", err)
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin token issued, expires at %s", expiresAt.Format(time.RFC3339))
	return &LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Verify проверяет подпись, срок действия и роль токена
func (s *Service) Verify(token string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.timeProvider.Now),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Role != roleAdmin || claims.Subject != AdminSubject {
		return nil, fmt.Errorf("%w: unexpected subject %q", ErrInvalidToken, claims.Subject)
	}

	return claims, nil
}
