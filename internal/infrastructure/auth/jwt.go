package auth

import (
	"fmt"
	"time"

	"github.com/edifai-io/edifai/internal/shared/biztime"
	"github.com/golang-jwt/jwt/v5"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims carries the identity the middleware needs to scope requests to a
// tenant. CondominiumID is nil for platform operators.
type Claims struct {
	UserID        uint      `json:"user_id"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	CondominiumID *uint     `json:"condominium_id,omitempty"`
	TokenType     TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
	refreshExpDays   int
}

func NewJWTService(secret string, accessExpMinutes, refreshExpDays int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
		refreshExpDays:   refreshExpDays,
	}
}

// IssueTokens signs an access/refresh pair for the authenticated user.
func (s *JWTService) IssueTokens(userID uint, email, role string, condominiumID *uint) (string, string, error) {
	now := biztime.NowUTC()

	access, err := s.sign(userID, email, role, condominiumID, TokenTypeAccess, now,
		now.Add(time.Duration(s.accessExpMinutes)*time.Minute))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := s.sign(userID, email, role, condominiumID, TokenTypeRefresh, now,
		now.Add(time.Duration(s.refreshExpDays)*24*time.Hour))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return access, refresh, nil
}

func (s *JWTService) sign(userID uint, email, role string, condominiumID *uint, tokenType TokenType, now, exp time.Time) (string, error) {
	claims := &Claims{
		UserID:        userID,
		Email:         email,
		Role:          role,
		CondominiumID: condominiumID,
		TokenType:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// Refresh verifies a refresh token and mints a new access/refresh pair
// (refresh token rotation).
func (s *JWTService) Refresh(refreshTokenString string) (string, string, error) {
	claims, err := s.Verify(refreshTokenString)
	if err != nil {
		return "", "", fmt.Errorf("invalid refresh token: %w", err)
	}

	if claims.TokenType != TokenTypeRefresh {
		return "", "", fmt.Errorf("token is not a refresh token")
	}

	return s.IssueTokens(claims.UserID, claims.Email, claims.Role, claims.CondominiumID)
}

// AccessExpSeconds reports the access token lifetime for login responses.
func (s *JWTService) AccessExpSeconds() int64 {
	return int64(s.accessExpMinutes) * 60
}
