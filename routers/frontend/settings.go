package frontend

import (
	"net/http"

	"github.com/exiby/exiby_admin/components/form"
	"github.com/exiby/exiby_admin/services"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const settingsPath = "/settings"

type changePasswordForm struct {
	CurrentPassword string `form:"current_password" binding:"required"`
	NewPassword     string `form:"new_password"`
	ConfirmPassword string `form:"confirm_password"`
}

func passwordForm() form.Form {
	return form.Form{
		Title:       "Change password",
		Action:      settingsPath + "/password",
		SubmitLabel: "Change password",
		Sections: []form.Section{{Fields: []form.Field{
			{Name: "current_password", Label: "Current password", Type: form.PasswordField, Required: true},
			{Name: "new_password", Label: "New password", Type: form.PasswordField, Required: true},
			{Name: "confirm_password", Label: "Confirm password", Type: form.PasswordField, Required: true},
		}}},
	}
}

func (r *frontendRouter) renderSettings(ctx *gin.Context, status int, f form.Form, alert string) {
	appState := r.store.State(currentUser(ctx))
	r.renderPage(ctx, settingsPage, pageRender{
		status: status,
		title:  "Settings",
		alert:  alert,
		data: settingsDataModel{
			DarkMode:     r.isDarkMode(ctx, appState.DarkMode),
			PasswordForm: f,
			User:         currentUser(ctx),
		},
	})
}

func (r *frontendRouter) SettingsPage(ctx *gin.Context) {
	r.renderSettings(ctx, http.StatusOK, passwordForm(), "")
}

func (r *frontendRouter) ChangePassword(ctx *gin.Context) {
	var req changePasswordForm
	if err := ctx.ShouldBind(&req); err != nil {
		errs := []*form.FieldError{{Field: "Current password", Message: "is required"}}
		r.renderSettings(ctx, http.StatusBadRequest, passwordForm().WithErrors(errs...), fieldErrorsAlert(errs))
		return
	}

	errs := validatePassword(req.NewPassword, req.ConfirmPassword)
	for _, err := range errs {
		if err.Field == "Password" {
			err.Field = "New password"
		}
	}
	if len(errs) > 0 {
		r.renderSettings(ctx, http.StatusBadRequest, passwordForm().WithErrors(errs...), fieldErrorsAlert(errs))
		return
	}

	err := r.adminService.ChangePassword(ctx, req.CurrentPassword, req.NewPassword)
	if errors.Cause(err) == services.ErrInvalidCredentials {
		errs := []*form.FieldError{{Field: "Current password", Message: "is incorrect"}}
		r.renderSettings(ctx, http.StatusBadRequest, passwordForm().WithErrors(errs...), "Current password is incorrect")
		return
	} else if err != nil {
		r.renderSettings(ctx, http.StatusOK, passwordForm(), r.alertFor(err, "change the password"))
		return
	}

	r.logger.Info("admin password changed", zap.String("user", currentUser(ctx).ID))
	r.redirectWithFlash(ctx, settingsPath, "Password changed")
}
