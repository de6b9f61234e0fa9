package frontend

import (
	"net/http"
	"time"

	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/environment"
	"github.com/exiby/exiby_admin/services"
	"github.com/exiby/exiby_admin/state"
	"github.com/exiby/exiby_admin/utils/auth"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const dashboardNotificationsLimit = 5

type loginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Root sends signed in admins to the dashboard
func (r *frontendRouter) Root(ctx *gin.Context) {
	ctx.Redirect(http.StatusSeeOther, dashboardPath)
}

func (r *frontendRouter) LoginPage(ctx *gin.Context) {
	r.renderPage(ctx, loginPage, pageRender{title: "Sign in", data: loginDataModel{}})
}

func (r *frontendRouter) Login(ctx *gin.Context) {
	var req loginForm
	if err := ctx.ShouldBind(&req); err != nil {
		r.logger.Debug("invalid login form", zap.Error(err))
		r.renderPage(ctx, loginPage, pageRender{
			status: http.StatusBadRequest,
			title:  "Sign in",
			alert:  "Email and password are required",
			data:   loginDataModel{Email: req.Email},
		})
		return
	}

	user, err := r.store.Login(ctx, req.Email, req.Password)
	if err != nil {
		status, alert := http.StatusInternalServerError, somethingWentWrong
		if errors.Cause(err) == services.ErrInvalidCredentials {
			status, alert = http.StatusUnauthorized, "Invalid email or password"
			r.logger.Info("failed login attempt", zap.String("email", req.Email))
		} else {
			r.logger.Error("could not sign in", zap.Error(err))
		}
		r.renderPage(ctx, loginPage, pageRender{status: status, title: "Sign in", alert: alert, data: loginDataModel{Email: req.Email}})
		return
	}

	now := r.timeProvider.Now()
	lifetime := time.Duration(r.cfg.Session.Lifetime) * time.Second
	token, err := auth.NewSessionJWT(*user, now, now.Add(lifetime), []byte(r.env.Get(environment.SessionSecret)))
	if err != nil {
		r.logger.Error("could not create session token", zap.String("user", user.ID), zap.Error(err))
		r.renderPage(ctx, loginPage, pageRender{
			status: http.StatusInternalServerError,
			title:  "Sign in",
			alert:  somethingWentWrong,
			data:   loginDataModel{Email: req.Email},
		})
		return
	}

	maxAge := int(r.cfg.Session.Lifetime)
	ctx.SetCookie(sessionCookieName, token, maxAge, "/", "", r.cfg.Session.Secure, true)
	ctx.SetCookie(authTokenCookieName, r.env.Get(environment.BackendAuthToken), maxAge, "/", "", r.cfg.Session.Secure, true)
	ctx.Redirect(http.StatusSeeOther, dashboardPath)
}

func (r *frontendRouter) Logout(ctx *gin.Context) {
	if user, ok := auth.GetSessionUser(ctx); ok {
		r.store.Logout(ctx, user.ID)
	}

	ctx.SetCookie(sessionCookieName, "", -1, "/", "", r.cfg.Session.Secure, true)
	ctx.SetCookie(authTokenCookieName, "", -1, "/", "", r.cfg.Session.Secure, true)
	ctx.Redirect(http.StatusSeeOther, loginPath)
}

// ToggleTheme switches the theme, or sets it when the form names one
func (r *frontendRouter) ToggleTheme(ctx *gin.Context) {
	var action state.Action = state.ToggleDarkMode{}
	switch ctx.PostForm("theme") {
	case darkTheme:
		action = state.SetDarkMode{Enabled: true}
	case lightTheme:
		action = state.SetDarkMode{Enabled: false}
	default:
		// the cookie outlives the store, so toggle what the admin currently sees
		if theme, err := ctx.Cookie(themeCookieName); err == nil && theme != "" {
			action = state.SetDarkMode{Enabled: theme != darkTheme}
		}
	}

	appState := r.store.Dispatch(currentUser(ctx), action)

	theme := lightTheme
	if appState.DarkMode {
		theme = darkTheme
	}
	ctx.SetCookie(themeCookieName, theme, 365*24*60*60, "/", "", r.cfg.Session.Secure, false)
	ctx.Redirect(http.StatusSeeOther, safeReturnPath(ctx.PostForm("return_to"), dashboardPath))
}

func (r *frontendRouter) DashboardPage(ctx *gin.Context) {
	appState := r.store.State(currentUser(ctx))

	var alert string
	stats, err := r.adminService.GetDashboardStats(ctx)
	if err != nil {
		r.logger.Error("could not fetch dashboard stats", zap.Error(err))
		alert = "Could not load the platform statistics"
		stats = &entities.DashboardStats{}
	}

	r.renderPage(ctx, dashboardPage, pageRender{
		title: "Dashboard",
		alert: alert,
		data: dashboardDataModel{
			Stats: []statCard{
				{Label: "Organizations", Value: stats.TotalOrganizations, Href: "/organizations"},
				{Label: "Companies", Value: stats.TotalCompanies, Href: "/companies"},
				{Label: "Events", Value: stats.TotalEvents, Href: "/events"},
				{Label: "Active Plans", Value: stats.ActivePlans, Href: "/payment-plans"},
			},
			Notifications: latestNotifications(appState.Notifications, dashboardNotificationsLimit),
			UnreadCount:   appState.UnreadCount(),
		},
	})
}
