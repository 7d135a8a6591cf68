package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/internal/service"
	"github.com/MKhiriev/culinary-server/internal/utils"
	"github.com/MKhiriev/culinary-server/models"
	"github.com/go-chi/chi/v5"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the "Authorization: <scheme> <token>" header, verifies the token
// via [service.AuthService.ParseToken] and stores the decoded claims in the
// request context under [utils.ClaimsCtxKey].
//
// The request is stopped with 401 when the header is absent or malformed, or
// the token is expired or otherwise invalid. The handler never runs in that
// case.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.metrics.RecordAuthFailure("missing_header")
			utils.WriteError(w, service.ErrUnauthorized.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.metrics.RecordAuthFailure("malformed_header")
			utils.WriteError(w, service.ErrUnauthorized.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				h.metrics.RecordAuthFailure("expired")
				utils.WriteError(w, service.ErrTokenIsExpired.Error(), http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				h.metrics.RecordAuthFailure("invalid_token")
				utils.WriteError(w, service.ErrUnauthorized.Error(), http.StatusUnauthorized)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
	})
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form "<scheme> <token>". The scheme is not checked.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

// requireRoles lets the request through only when the authenticated user
// currently holds one of roles. The role is read from the store on every
// request. Must run after auth.
func (h *Handler) requireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := utils.GetClaimsFromContext(r.Context())
			if !ok {
				h.metrics.RecordAuthFailure("missing_claims")
				utils.WriteError(w, service.ErrUnauthorized.Error(), http.StatusUnauthorized)
				return
			}

			allowed, err := h.services.UserService.HasAnyRole(r.Context(), claims.Email, roles...)
			if err != nil {
				h.writeError(w, r, err)
				return
			}
			if !allowed {
				logger.FromRequest(r).Warn().Str("email", claims.Email).Msg("role gate denied")
				h.metrics.RecordAuthFailure("forbidden_role")
				utils.WriteError(w, service.ErrForbidden.Error(), http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// sameIdentity reports whether the caller's email equals email. On mismatch
// it writes 403 and the handler must return.
func (h *Handler) sameIdentity(w http.ResponseWriter, r *http.Request, email string) bool {
	claims, _ := utils.GetClaimsFromContext(r.Context())
	if claims.Email != "" && claims.Email == email {
		return true
	}

	logger.FromRequest(r).Warn().Str("email", claims.Email).Str("requested", email).Msg("identity mismatch")
	h.metrics.RecordAuthFailure("identity_mismatch")
	utils.WriteError(w, service.ErrForbidden.Error(), http.StatusForbidden)

	return false
}

// callerEmail returns the authenticated email, or "" outside the auth group.
func callerEmail(r *http.Request) string {
	claims, _ := utils.GetClaimsFromContext(r.Context())
	return claims.Email
}

// pathParam returns the unescaped URL parameter name.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
