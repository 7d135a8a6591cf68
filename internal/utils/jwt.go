package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/culinary-server/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken signs claims into an HMAC-SHA256 JWT.
//
// IssuedAt and ExpiresAt are always overwritten: the token is valid from now
// until now+tokenDuration. Issuer is set when issuer is non-empty.
//
// Returns an error if claims carry no email, tokenDuration is not positive,
// or signKey is empty.
//
// Example usage:
//
//	signed, err := utils.GenerateJWTToken(models.Claims{Email: "a@x.com"}, "", time.Hour, "secret")
func GenerateJWTToken(claims models.Claims, issuer string, tokenDuration time.Duration, signKey string) (string, error) {
	if claims.Email == "" || tokenDuration <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	if issuer != "" {
		claims.Issuer = issuer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken verifies tokenString and returns its claims.
//
// Validation includes:
//   - HS256 signature verification with signKey (other algorithms are rejected)
//   - presence and validity of the expiration (exp) claim
//   - the issuer (iss) claim, only when issuer is non-empty
//   - presence of the email claim
//
// Errors from the jwt package are wrapped, so callers can match
// [jwt.ErrTokenExpired] with errors.Is.
func ValidateAndParseJWTToken(tokenString, signKey, issuer string) (models.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	var claims models.Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return models.Claims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Email == "" {
		return models.Claims{}, errors.New("token carries no email claim")
	}

	return claims, nil
}
