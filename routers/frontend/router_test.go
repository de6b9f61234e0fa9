package frontend

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/utils/auth"
	"github.com/stretchr/testify/assert"
)

func Test_RegisterRoutes__should_register_required_routes(t *testing.T) {
	tests := []struct {
		route  string
		method string
	}{
		{route: "/", method: http.MethodGet},
		{route: "/dashboard", method: http.MethodGet},
		{route: "/logout", method: http.MethodPost},
		{route: "/theme", method: http.MethodPost},
		{route: "/organizations", method: http.MethodGet},
		{route: "/organizations/export", method: http.MethodGet},
		{route: "/organizations/new", method: http.MethodPost},
		{route: "/organizations/bulk-delete", method: http.MethodPost},
		{route: "/organizations/trash", method: http.MethodGet},
		{route: "/organizations/trash/1/restore", method: http.MethodPost},
		{route: "/organizations/trash/1/delete", method: http.MethodPost},
		{route: "/organizations/1/edit", method: http.MethodPost},
		{route: "/organizations/1/status", method: http.MethodPost},
		{route: "/organizations/1/delete", method: http.MethodPost},
		{route: "/companies", method: http.MethodGet},
		{route: "/companies/trash", method: http.MethodGet},
		{route: "/events", method: http.MethodGet},
		{route: "/events/export", method: http.MethodGet},
		{route: "/events/1", method: http.MethodGet},
		{route: "/team", method: http.MethodGet},
		{route: "/team/new", method: http.MethodPost},
		{route: "/team/1/edit", method: http.MethodGet},
		{route: "/team/1/delete", method: http.MethodPost},
		{route: "/payment-plans", method: http.MethodGet},
		{route: "/payment-plans/new", method: http.MethodGet},
		{route: "/payment-plans/1/edit", method: http.MethodPost},
		{route: "/payment-plans/1/delete", method: http.MethodPost},
		{route: "/email-templates", method: http.MethodGet},
		{route: "/email-templates/new", method: http.MethodPost},
		{route: "/email-templates/1/preview", method: http.MethodGet},
		{route: "/email-templates/1/send-test", method: http.MethodPost},
		{route: "/configuration", method: http.MethodGet},
		{route: "/configuration/email-gateway", method: http.MethodPost},
		{route: "/configuration/payment-gateway", method: http.MethodPost},
		{route: "/configuration/legal/terms", method: http.MethodGet},
		{route: "/settings", method: http.MethodGet},
		{route: "/settings/password", method: http.MethodPost},
		{route: "/notifications", method: http.MethodGet},
		{route: "/notifications/read-all", method: http.MethodPost},
		{route: "/notifications/1/read", method: http.MethodPost},
		{route: "/notifications/1/unread", method: http.MethodPost},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.route, func(t *testing.T) {
			setup := setupTest(t)
			setup.router.RegisterRoutes(&setup.testServer.RouterGroup)

			req := httptest.NewRequest(tt.method, tt.route, nil)
			setup.testServer.ServeHTTP(setup.w, req)

			// without a session every registered route sends the visitor to the login page
			assert.Equal(t, http.StatusSeeOther, setup.w.Code)
			assert.Equal(t, loginPath, setup.w.Header().Get("Location"))
		})
	}
}

func Test_RegisterRoutes__should_serve_login_page_without_session(t *testing.T) {
	setup := setupTest(t)
	setup.router.RegisterRoutes(&setup.testServer.RouterGroup)

	setup.testServer.ServeHTTP(setup.w, httptest.NewRequest(http.MethodGet, loginPath, nil))

	assert.Equal(t, http.StatusOK, setup.w.Code)
}

func Test_RegisterRoutes__should_render_403_when_role_lacks_permission(t *testing.T) {
	tests := []struct {
		name   string
		method string
		route  string
	}{
		{name: "module missing from role", method: http.MethodGet, route: "/organizations"},
		{name: "create without permission", method: http.MethodPost, route: "/events/new"},
		{name: "configuration without permission", method: http.MethodPost, route: "/configuration/email-gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			setup.allowLayout()
			setup.router.RegisterRoutes(&setup.testServer.RouterGroup)

			support := entities.SessionUser{ID: "2", Email: "support@exiby.com", Role: "support"}
			token, err := auth.NewSessionJWT(support, time.Now(), time.Now().Add(time.Hour), []byte(testSessionSecret))
			assert.NoError(t, err)

			req := httptest.NewRequest(tt.method, tt.route, nil)
			req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
			setup.testServer.ServeHTTP(setup.w, req)

			assert.Equal(t, http.StatusForbidden, setup.w.Code)
			assert.Contains(t, setup.w.Body.String(), "You do not have permission to do that")
		})
	}
}
