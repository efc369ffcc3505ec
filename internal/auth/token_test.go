package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/isp-registry/internal/domain"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Minute)

	token, expiresAt, err := tm.Generate("jdoe", domain.ScopeEditor)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 5*time.Second)

	data, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "jdoe", data.UserName)
	assert.Equal(t, domain.ScopeEditor, data.Scope)
}

func TestVerifyExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":   "jdoe",
		"scope": "editor",
		"exp":   jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		"iat":   jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tm := NewTokenManager(testSecret, time.Minute)
	_, err = tm.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTamperedToken(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Minute)
	token, _, err := tm.Generate("jdoe", domain.ScopeUser)
	require.NoError(t, err)

	other := NewTokenManager("different-secret", time.Minute)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.Verify(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbageToken(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Minute)
	_, err := tm.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyClaimShape(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{
			name: "missing scope",
			claims: jwt.MapClaims{
				"sub": "jdoe",
				"exp": jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		},
		{
			name: "missing sub",
			claims: jwt.MapClaims{
				"scope": "editor",
				"exp":   jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		},
		{
			name: "numeric scope",
			claims: jwt.MapClaims{
				"sub":   "jdoe",
				"scope": 42,
				"exp":   jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		},
		{
			name: "empty sub",
			claims: jwt.MapClaims{
				"sub":   "",
				"scope": "editor",
				"exp":   jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		},
	}

	tm := NewTokenManager(testSecret, time.Minute)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tc.claims).SignedString([]byte(testSecret))
			require.NoError(t, err)

			_, err = tm.Verify(signed)
			assert.ErrorIs(t, err, ErrClaimShape)
		})
	}
}
