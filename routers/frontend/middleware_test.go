package frontend

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/exiby/exiby_admin/backend"
	"github.com/exiby/exiby_admin/utils/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func validSessionToken(t *testing.T, secret string) string {
	token, err := auth.NewSessionJWT(testAdmin, time.Now(), time.Now().Add(time.Hour), []byte(secret))
	assert.NoError(t, err)
	return token
}

func Test_sessionGate(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		session      bool
		wantNext     bool
		wantLocation string
	}{
		{name: "should redirect to login without session", path: "/events", wantLocation: loginPath},
		{name: "should allow login page without session", path: loginPath, wantNext: true},
		{name: "should allow static files without session", path: "/static/css/admin.css", wantNext: true},
		{name: "should redirect root to dashboard with session", path: "/", session: true, wantLocation: dashboardPath},
		{name: "should redirect login page to dashboard with session", path: "/login/", session: true, wantLocation: dashboardPath},
		{name: "should allow portal pages with session", path: "/events", session: true, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			nextCalled := false
			setup.testServer.GET("/*path", setup.router.sessionGate, func(ctx *gin.Context) {
				nextCalled = true
				user, ok := auth.GetSessionUser(ctx)
				assert.Equal(t, tt.session, ok)
				if tt.session {
					assert.Equal(t, testAdmin, user)
				}
				ctx.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.session {
				req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: validSessionToken(t, testSessionSecret)})
			}
			setup.testServer.ServeHTTP(setup.w, req)

			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantLocation != "" {
				assert.Equal(t, http.StatusSeeOther, setup.w.Code)
				assert.Equal(t, tt.wantLocation, setup.w.Header().Get("Location"))
			}
		})
	}
}

func Test_sessionGate__should_reject_token_signed_with_other_secret(t *testing.T) {
	setup := setupTest(t)
	setup.testServer.GET("/events", setup.router.sessionGate, func(ctx *gin.Context) {
		t.Fail()
	})

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: validSessionToken(t, "other_secret")})
	setup.testServer.ServeHTTP(setup.w, req)

	assert.Equal(t, http.StatusSeeOther, setup.w.Code)
	assert.Equal(t, loginPath, setup.w.Header().Get("Location"))
}

func Test_backendToken__should_expose_cookie_token_to_services(t *testing.T) {
	setup := setupTest(t)
	var token interface{}
	setup.testServer.GET("/events", setup.router.backendToken, func(ctx *gin.Context) {
		token, _ = ctx.Get(backend.AuthTokenKey)
	})

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.AddCookie(&http.Cookie{Name: authTokenCookieName, Value: "abc"})
	setup.testServer.ServeHTTP(setup.w, req)

	assert.Equal(t, "abc", token)
}

func Test_backendToken__should_not_set_token_without_cookie(t *testing.T) {
	setup := setupTest(t)
	exists := true
	setup.testServer.GET("/events", setup.router.backendToken, func(ctx *gin.Context) {
		_, exists = ctx.Get(backend.AuthTokenKey)
	})

	setup.testServer.ServeHTTP(setup.w, httptest.NewRequest(http.MethodGet, "/events", nil))

	assert.False(t, exists)
}

func Test_safeReturnPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/events?page=2", want: "/events?page=2"},
		{path: "", want: dashboardPath},
		{path: "https://evil.example.com", want: dashboardPath},
		{path: "//evil.example.com", want: dashboardPath},
		{path: "/\\evil.example.com", want: dashboardPath},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, safeReturnPath(tt.path, dashboardPath))
		})
	}
}
