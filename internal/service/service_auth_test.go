// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/culinary-server/internal/config"
	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "test-secret"

func newTestAuthService() AuthService {
	return NewAuthService(config.App{TokenSignKey: testSignKey, TokenDuration: time.Hour}, logger.Nop())
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.Claims{Email: "a@x.io", Name: "A"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", claims.Email)
	assert.Equal(t, "A", claims.Name)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestAuthService_CreateToken_NoEmail(t *testing.T) {
	_, err := newTestAuthService().CreateToken(context.Background(), models.Claims{Name: "nobody"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_CreateToken_NoSignKey(t *testing.T) {
	svc := NewAuthService(config.App{TokenDuration: time.Hour}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.Claims{Email: "a@x.io"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Failures(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	sign := func(t *testing.T, claims models.Claims, key string) string {
		t.Helper()
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
		require.NoError(t, err)
		return s
	}

	expired := models.Claims{
		Email: "a@x.io",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	valid := models.Claims{
		Email: "a@x.io",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	noExpiry := models.Claims{Email: "a@x.io"}

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: sign(t, expired, testSignKey), wantErr: ErrTokenIsExpired},
		{name: "wrong key", token: sign(t, valid, "other-secret"), wantErr: ErrUnauthorized},
		{name: "no expiry", token: sign(t, noExpiry, testSignKey), wantErr: ErrUnauthorized},
		{name: "garbage", token: "not.a.token", wantErr: ErrUnauthorized},
		{name: "empty", token: "", wantErr: ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Issuer(t *testing.T) {
	ctx := context.Background()
	issuing := NewAuthService(config.App{TokenSignKey: testSignKey, TokenIssuer: "culinary", TokenDuration: time.Hour}, logger.Nop())
	other := NewAuthService(config.App{TokenSignKey: testSignKey, TokenIssuer: "someone-else", TokenDuration: time.Hour}, logger.Nop())

	token, err := issuing.CreateToken(ctx, models.Claims{Email: "a@x.io"})
	require.NoError(t, err)

	claims, err := issuing.ParseToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "culinary", claims.Issuer)

	_, err = other.ParseToken(ctx, token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
