package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity carried by an access token.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (exp, iat, iss);
// Email is the only claim the server relies on downstream.
type Claims struct {
	// Email identifies the token holder. Required.
	Email string `json:"email"`

	// Name is the optional display name supplied at issuance.
	Name string `json:"name,omitempty"`

	jwt.RegisteredClaims
}
