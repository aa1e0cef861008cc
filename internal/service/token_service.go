package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"postboard/internal/config"
)

const defaultTokenTTL = 15 * time.Minute

// TokenClaims is the verified claim set carried by an access token.
type TokenClaims struct {
	Subject   string
	UserID    string
	ExpiresAt time.Time
}

type TokenService interface {
	Issue(subjectEmail, userID string, ttl time.Duration) (string, error)
	Verify(tokenString string) (*TokenClaims, error)
}

type tokenService struct {
	cfg *config.Config
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) Issue(subjectEmail, userID string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	method := jwt.GetSigningMethod(s.cfg.JWTAlgorithm)
	if method == nil {
		return "", fmt.Errorf("unknown signing algorithm: %s", s.cfg.JWTAlgorithm)
	}

	claims := jwt.MapClaims{
		"sub":     subjectEmail,
		"user_id": userID,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(method, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify rejects tokens signed under any algorithm other than the configured
// one, so a token cannot downgrade or swap the signing method.
func (s *tokenService) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		if token.Method.Alg() != s.cfg.JWTAlgorithm {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenMalformed
	}

	subject, ok := mapClaims["sub"].(string)
	if !ok || subject == "" {
		return nil, fmt.Errorf("%w: missing subject claim", ErrTokenMalformed)
	}

	userID, ok := mapClaims["user_id"].(string)
	if !ok || userID == "" {
		return nil, fmt.Errorf("%w: missing user_id claim", ErrTokenMalformed)
	}

	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("%w: missing exp claim", ErrTokenMalformed)
	}

	return &TokenClaims{
		Subject:   subject,
		UserID:    userID,
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}
