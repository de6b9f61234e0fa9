package frontend

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/exiby/exiby_admin/services"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	flashCookieName = "exiby_flash"
	darkTheme       = "dark"
	lightTheme      = "light"
)

var (
	loginPage                = newFrontendPage("LoginPage", "login.gohtml", nil)
	dashboardPage            = newFrontendPage("DashboardPage", "dashboard.gohtml", layoutComponents)
	listPage                 = newFrontendPage("ListPage", "list.gohtml", layoutComponents)
	trashPage                = newFrontendPage("TrashPage", "trash.gohtml", layoutComponents)
	formPage                 = newFrontendPage("FormPage", "form.gohtml", layoutComponents)
	eventPage                = newFrontendPage("EventPage", "event.gohtml", layoutComponents)
	teamMemberFormPage       = newFrontendPage("TeamMemberFormPage", "teamMemberForm.gohtml", layoutComponents)
	emailTemplateFormPage    = newFrontendPage("EmailTemplateFormPage", "emailTemplateForm.gohtml", layoutComponents)
	emailTemplatePreviewPage = newFrontendPage("EmailTemplatePreviewPage", "emailTemplatePreview.gohtml", layoutComponents)
	configurationPage        = newFrontendPage("ConfigurationPage", "configuration.gohtml", layoutComponents)
	settingsPage             = newFrontendPage("SettingsPage", "settings.gohtml", layoutComponents)
	notificationsPage        = newFrontendPage("NotificationsPage", "notifications.gohtml", layoutComponents)
	errorPage                = newFrontendPage("ErrorPage", "error.gohtml", layoutComponents)
)

func newFrontendPage(pageName, templateName string, components frontendComponents) frontendPage {
	return frontendPage{
		name:         pageName,
		templateName: templateName,
		components:   components,
	}
}

type frontendPage struct {
	name         string
	templateName string
	components   frontendComponents
}

// pageRender is everything a handler supplies when rendering a page
type pageRender struct {
	status int
	title  string
	alert  string
	data   interface{}
}

func (r *frontendRouter) renderPage(ctx *gin.Context, page frontendPage, render pageRender) {
	components := make(map[string]interface{}, len(page.components))
	for _, component := range page.components {
		model, err := component.dataProvider(ctx, r)
		if err != nil {
			r.logger.Error("could not load page component", zap.String("page", page.name),
				zap.String("component", component.name), zap.Error(err))
			continue
		}
		components[component.name] = model
	}

	darkMode := r.isDarkMode(ctx, false)
	if nav, ok := components[navbar.name].(navbarDataModel); ok {
		darkMode = nav.DarkMode
	}

	status := render.status
	if status == 0 {
		status = http.StatusOK
	}

	ctx.HTML(status, page.templateName, pageDataModel{
		Cfg:        *r.cfg,
		Title:      render.title,
		Alert:      render.alert,
		Flash:      r.takeFlash(ctx),
		DarkMode:   darkMode,
		Path:       ctx.Request.URL.Path,
		Components: components,
		Data:       render.data,
	})
}

// renderError renders the error page with the status matching err
func (r *frontendRouter) renderError(ctx *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch errors.Cause(err) {
	case services.ErrNotFound:
		status = http.StatusNotFound
		message = "The requested page could not be found"
	case services.ErrInvalidID:
		status = http.StatusBadRequest
		message = "The requested id is invalid"
	default:
		r.logger.Error(message, zap.String("path", ctx.Request.URL.Path), zap.Error(err))
		message = somethingWentWrong
	}

	r.renderPage(ctx, errorPage, pageRender{
		status: status,
		title:  http.StatusText(status),
		data:   errorDataModel{Message: message},
	})
}

func (r *frontendRouter) forbidden(ctx *gin.Context) {
	r.renderPage(ctx, errorPage, pageRender{
		status: http.StatusForbidden,
		title:  http.StatusText(http.StatusForbidden),
		data:   errorDataModel{Message: "You do not have permission to do that"},
	})
}

// alertFor turns a service error into a message fit for a form alert
func (r *frontendRouter) alertFor(err error, action string) string {
	switch errors.Cause(err) {
	case services.ErrInvalidInput:
		message := strings.TrimSuffix(err.Error(), ": "+services.ErrInvalidInput.Error())
		return fmt.Sprintf("Could not %s: %s", action, message)
	case services.ErrNotFound:
		return fmt.Sprintf("Could not %s: the record no longer exists", action)
	}
	r.logger.Error(fmt.Sprintf("could not %s", action), zap.Error(err))
	return somethingWentWrong
}

// redirectWithFlash redirects and shows message on the next rendered page
func (r *frontendRouter) redirectWithFlash(ctx *gin.Context, location, message string) {
	if message != "" {
		ctx.SetCookie(flashCookieName, message, 60, "/", "", r.cfg.Session.Secure, true)
	}
	ctx.Redirect(http.StatusSeeOther, location)
}

func (r *frontendRouter) takeFlash(ctx *gin.Context) string {
	message, err := ctx.Cookie(flashCookieName)
	if err != nil || message == "" {
		return ""
	}
	ctx.SetCookie(flashCookieName, "", -1, "/", "", r.cfg.Session.Secure, true)
	return message
}

// isDarkMode reads the theme cookie, falling back to the theme held in the state store
func (r *frontendRouter) isDarkMode(ctx *gin.Context, stored bool) bool {
	theme, err := ctx.Cookie(themeCookieName)
	if err != nil || theme == "" {
		return stored
	}
	return theme == darkTheme
}
