package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/isp-registry/internal/domain"
)

// Token verification failure modes. ErrInvalidToken covers forged,
// malformed and expired tokens. ErrClaimShape covers tokens that verify
// cryptographically but whose claim payload does not have the expected
// shape; callers map it to a different status than a bad credential.
var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrClaimShape   = errors.New("token claims have unexpected shape")
)

// TokenData is the verified content of an access token.
type TokenData struct {
	UserName string
	Scope    domain.Scope
}

// TokenManager issues and verifies signed access tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Generate builds and signs a token carrying the subject and its scope.
// Issuance is stateless: validity is a function of signature and expiry only.
func (tm *TokenManager) Generate(userName string, scope domain.Scope) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := jwt.MapClaims{
		"sub":   userName,
		"scope": string(scope),
		"exp":   jwt.NewNumericDate(expiresAt),
		"iat":   jwt.NewNumericDate(now),
		"jti":   uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks signature and expiry, then extracts the typed claims.
// Signature, format and expiry failures return ErrInvalidToken; a valid
// token with missing or mistyped sub/scope claims returns ErrClaimShape.
func (tm *TokenManager) Verify(tokenStr string) (*TokenData, error) {
	parsed, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrClaimShape
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrClaimShape
	}
	scope, ok := claims["scope"].(string)
	if !ok || scope == "" {
		return nil, ErrClaimShape
	}

	return &TokenData{UserName: sub, Scope: domain.Scope(scope)}, nil
}
