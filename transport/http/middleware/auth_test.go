package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sportshub/config"
	"sportshub/infras/jwt"
	jwtMocks "sportshub/infras/jwt/mocks"
	"sportshub/infras/otel/mocks"
	"sportshub/permissions"
	"sportshub/shared/constant"
	"sportshub/transport/http/middleware"
)

func newRouter(t *testing.T, mockJWT *jwtMocks.MockJWT) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	perms := &permissions.PermissionData{Endpoints: []permissions.Permission{
		{Path: "/v1/venues/", Method: http.MethodGet, Skip: true},
		{Path: "/v1/venues/", Method: http.MethodPost, Permissions: []string{constant.RoleAdmin}},
		{Path: "/v1/venues/{id}", Method: http.MethodPatch, Permissions: []string{constant.RoleAdmin, constant.RoleCoach}},
	}}

	authRole := middleware.NewAuthRoleMiddleware(mockJWT, mocks.NewOtel(), perms, cfg)

	ok := func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)
		w.Header().Set("X-Role", role)
		w.WriteHeader(http.StatusOK)
	}

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(authRole.APIKey)
		r.Use(authRole.Auth)
		r.Use(authRole.RBAC)

		r.Route("/v1", func(v chi.Router) {
			v.Route("/venues", func(venues chi.Router) {
				venues.Get("/", ok)
				venues.Post("/", ok)
				venues.Patch("/{id}", ok)
			})
		})
	})

	return router
}

func TestAuthRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	router := newRouter(t, mockJWT)

	tests := []struct {
		name      string
		method    string
		path      string
		headers   map[string]string
		setupMock func()
		wantCode  int
		wantRole  string
	}{
		{
			name:     "public route without token",
			method:   http.MethodGet,
			path:     "/v1/venues",
			wantCode: http.StatusOK,
		},
		{
			name:     "missing authorization header",
			method:   http.MethodPost,
			path:     "/v1/venues",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "malformed authorization header",
			method:   http.MethodPost,
			path:     "/v1/venues",
			headers:  map[string]string{constant.RequestHeaderAuthorization: "Token abc"},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "expired token",
			method:  http.MethodPost,
			path:    "/v1/venues",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer expired"},
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken("expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "admin allowed",
			method:  http.MethodPost,
			path:    "/v1/venues",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer admin"},
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken("admin", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "u-1", Email: "admin@campus.edu", Role: constant.RoleAdmin}, nil)
			},
			wantCode: http.StatusOK,
			wantRole: constant.RoleAdmin,
		},
		{
			name:    "coach forbidden on admin route",
			method:  http.MethodPost,
			path:    "/v1/venues",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer coach"},
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken("coach", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "u-2", Email: "coach@campus.edu", Role: constant.RoleCoach}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:    "coach allowed on parameterised route",
			method:  http.MethodPatch,
			path:    "/v1/venues/v-1",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer coach"},
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken("coach", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "u-2", Email: "coach@campus.edu", Role: constant.RoleCoach}, nil)
			},
			wantCode: http.StatusOK,
			wantRole: constant.RoleCoach,
		},
		{
			name:    "claims without email",
			method:  http.MethodPost,
			path:    "/v1/venues",
			headers: map[string]string{constant.RequestHeaderAuthorization: "Bearer partial"},
			setupMock: func() {
				mockJWT.EXPECT().ValidateToken("partial", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "u-3", Role: constant.RoleAdmin}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "valid api key acts as admin",
			method:   http.MethodPost,
			path:     "/v1/venues",
			headers:  map[string]string{constant.RequestHeaderAPIKey: "internal-key"},
			wantCode: http.StatusOK,
			wantRole: constant.RoleAdmin,
		},
		{
			name:     "wrong api key",
			method:   http.MethodPost,
			path:     "/v1/venues",
			headers:  map[string]string{constant.RequestHeaderAPIKey: "guess"},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setupMock != nil {
				tt.setupMock()
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantRole != "" {
				assert.Equal(t, tt.wantRole, rec.Header().Get("X-Role"))
			}
		})
	}
}

func TestAuthRole_TracesRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	recorder := mocks.NewRecorder()

	perms := &permissions.PermissionData{Endpoints: []permissions.Permission{
		{Path: "/v1/bookings/pending", Method: http.MethodGet, Permissions: []string{constant.RoleAdmin}},
	}}

	authRole := middleware.NewAuthRoleMiddleware(mockJWT, recorder, perms, &config.Config{})

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(authRole.Auth)
		r.Get("/v1/bookings/pending", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings/pending", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	scopes := recorder.Scopes("auth.middleware")
	if assert.Len(t, scopes, 1) {
		assert.True(t, scopes[0].Ended)
		assert.Len(t, scopes[0].Errors, 1)
		assert.Equal(t, "/v1/bookings/pending", scopes[0].Attributes["http.path"])
	}
}
