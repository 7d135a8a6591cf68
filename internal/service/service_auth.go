package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/culinary-server/internal/config"
	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/internal/utils"
	"github.com/MKhiriev/culinary-server/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// Tokens are HS256 JWTs; nothing is persisted.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the optional "iss" claim embedded in every issued JWT.
	// When set, tokens whose issuer does not match are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService populated with token parameters
// from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed JWT for claims.
//
// Any identity is accepted: the caller is trusted to have authenticated the
// user with the external identity provider. Returns ErrInvalidDataProvided
// when claims carry no email.
func (a *authService) CreateToken(ctx context.Context, claims models.Claims) (string, error) {
	log := logger.FromContext(ctx)

	if claims.Email == "" {
		log.Error().Msg("token requested without email")
		return "", fmt.Errorf("%w: email is required", ErrInvalidDataProvided)
	}

	token, err := utils.GenerateJWTToken(claims, a.tokenIssuer, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("email", claims.Email).Msg("error generating token")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return models.Claims{}, ErrTokenIsExpired
	case err != nil:
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Claims{}, ErrUnauthorized
	}

	return claims, nil
}
