package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/culinary-server/internal/config"
	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/internal/metrics"
	"github.com/MKhiriev/culinary-server/internal/service"
	"github.com/MKhiriev/culinary-server/internal/utils"
	"github.com/MKhiriev/culinary-server/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

// ---- Fakes ----

type fakeAuthService struct {
	createTokenFn func(ctx context.Context, claims models.Claims) (string, error)
	parseTokenFn  func(ctx context.Context, token string) (models.Claims, error)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, claims models.Claims) (string, error) {
	return f.createTokenFn(ctx, claims)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, token string) (models.Claims, error) {
	return f.parseTokenFn(ctx, token)
}

type fakeUserService struct {
	service.UserService

	hasAnyRoleFn func(ctx context.Context, email string, roles ...models.Role) (bool, error)
}

func (f *fakeUserService) HasAnyRole(ctx context.Context, email string, roles ...models.Role) (bool, error) {
	return f.hasAnyRoleFn(ctx, email, roles...)
}

// ---- Helpers ----

func newFakeHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
		metrics:  metrics.Nop{},
		logger:   logger.Nop(),
	}
}

// withCaller puts claims for email into the request context, as auth does.
func withCaller(r *http.Request, email string) *http.Request {
	return r.WithContext(utils.WithClaims(r.Context(), models.Claims{Email: email}))
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestNewHandler(t *testing.T) {
	cfg := config.Server{CORSAllowedOrigins: []string{"https://culinary.example"}}
	h := NewHandler(&service.Services{}, cfg, prometheus.NewRegistry(), logger.Nop())

	assert.NotNil(t, h.metrics)
	assert.NotNil(t, h.metricsHandler)
	assert.Equal(t, cfg.CORSAllowedOrigins, h.corsAllowedOrigins)
}

func TestRoot(t *testing.T) {
	h := newFakeHandler(&service.Services{})
	rr := httptest.NewRecorder()

	h.root(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "culinary Server is running...", rr.Body.String())
}
