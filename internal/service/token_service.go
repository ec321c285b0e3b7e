package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/inotebook/server/internal/config"
	"github.com/inotebook/server/internal/domain"
)

// Identity is the verified claim set carried by a session token.
type Identity struct {
	UserID uuid.UUID
	Name   string
}

// TokenService signs and verifies the two token classes. Session and reset
// tokens use distinct secrets so leaking one cannot forge the other.
type TokenService struct {
	sessionSecret []byte
	resetSecret   []byte
	sessionTTL    time.Duration
	resetTTL      time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		sessionSecret: []byte(cfg.JWTSecret),
		resetSecret:   []byte(cfg.ResetSecret),
		sessionTTL:    cfg.SessionTokenTTL,
		resetTTL:      cfg.ResetTokenTTL,
	}
}

func (s *TokenService) IssueSessionToken(userID uuid.UUID, name string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"name": name,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(s.sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.sessionSecret)
}

func (s *TokenService) VerifySessionToken(tokenString string) (*Identity, error) {
	claims, err := s.parse(tokenString, s.sessionSecret)
	if err != nil {
		return nil, err
	}

	userID, err := subjectID(claims)
	if err != nil {
		return nil, err
	}

	name, ok := claims["name"].(string)
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	return &Identity{UserID: userID, Name: name}, nil
}

func (s *TokenService) IssueResetToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.resetTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.resetSecret)
}

func (s *TokenService) VerifyResetToken(tokenString string) (uuid.UUID, error) {
	claims, err := s.parse(tokenString, s.resetSecret)
	if err != nil {
		return uuid.Nil, err
	}
	return subjectID(claims)
}

func (s *TokenService) parse(tokenString string, secret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	// Tokens without an expiry are never accepted
	if _, ok := claims["exp"]; !ok {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}

func subjectID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, domain.ErrInvalidToken
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	return userID, nil
}
