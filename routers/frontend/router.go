package frontend

import (
	"github.com/exiby/exiby_admin/authorization"
	"github.com/exiby/exiby_admin/config"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/environment"
	"github.com/exiby/exiby_admin/routers/api/models"
	"github.com/exiby/exiby_admin/services"
	"github.com/exiby/exiby_admin/state"
	"github.com/exiby/exiby_admin/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// names of the cookies set by the portal
const (
	sessionCookieName   = "exiby_user"
	authTokenCookieName = "authToken"
	themeCookieName     = "exiby_theme"
)

const somethingWentWrong = "Something went wrong, please try again"

// Router is the server-rendered admin portal
type Router interface {
	models.Router
}

type frontendRouter struct {
	models.BaseRouter
	logger               *zap.Logger
	cfg                  *config.AppConfig
	env                  *environment.Env
	store                state.Store
	organizationService  services.OrganizationService
	companyService       services.CompanyService
	eventService         services.EventService
	teamService          services.TeamService
	paymentPlanService   services.PaymentPlanService
	emailTemplateService services.EmailTemplateService
	adminService         services.AdminService
	configurationService services.ConfigurationService
	emailService         services.EmailService
	timeProvider         utils.TimeProvider
	authorizer           authorization.Authorizer
}

// NewRouter creates the portal router
func NewRouter(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env, store state.Store,
	organizationService services.OrganizationService, companyService services.CompanyService,
	eventService services.EventService, teamService services.TeamService,
	paymentPlanService services.PaymentPlanService, emailTemplateService services.EmailTemplateService,
	adminService services.AdminService, configurationService services.ConfigurationService,
	emailService services.EmailService, timeProvider utils.TimeProvider, authorizer authorization.Authorizer) Router {
	return &frontendRouter{
		logger:               logger,
		cfg:                  cfg,
		env:                  env,
		store:                store,
		organizationService:  organizationService,
		companyService:       companyService,
		eventService:         eventService,
		teamService:          teamService,
		paymentPlanService:   paymentPlanService,
		emailTemplateService: emailTemplateService,
		adminService:         adminService,
		configurationService: configurationService,
		emailService:         emailService,
		timeProvider:         timeProvider,
		authorizer:           authorizer,
	}
}

func (r *frontendRouter) RegisterRoutes(parent *gin.RouterGroup) {
	routerGroup := parent.Group("", r.sessionGate, r.backendToken)

	routerGroup.GET("", r.Root)
	routerGroup.GET("login", r.LoginPage)
	routerGroup.POST("login", r.Login)
	routerGroup.GET("logout", r.Logout)
	routerGroup.POST("logout", r.Logout)
	routerGroup.POST("theme", r.ToggleTheme)
	routerGroup.GET("dashboard", r.DashboardPage)

	r.registerDirectoryRoutes(routerGroup.Group("organizations", r.guard(entities.OrganizationsModule)), r.organizationsDirectory())
	r.registerDirectoryRoutes(routerGroup.Group("companies", r.guard(entities.CompaniesModule)), r.companiesDirectory())

	events := routerGroup.Group("events", r.guard(entities.EventsModule))
	events.GET("", r.EventsPage)
	events.GET("export", r.ExportEvents)
	events.GET(":id", r.EventPage)

	team := routerGroup.Group("team", r.guard(entities.TeamModule))
	team.GET("", r.TeamPage)
	team.GET("new", r.NewTeamMemberPage)
	team.POST("new", r.CreateTeamMember)
	team.GET(":id/edit", r.EditTeamMemberPage)
	team.POST(":id/edit", r.UpdateTeamMember)
	team.POST(":id/delete", r.DeleteTeamMember)

	plans := routerGroup.Group("payment-plans", r.guard(entities.PaymentPlansModule))
	plans.GET("", r.PaymentPlansPage)
	plans.GET("new", r.NewPaymentPlanPage)
	plans.POST("new", r.CreatePaymentPlan)
	plans.GET(":id/edit", r.EditPaymentPlanPage)
	plans.POST(":id/edit", r.UpdatePaymentPlan)
	plans.POST(":id/delete", r.DeletePaymentPlan)

	templates := routerGroup.Group("email-templates", r.guard(entities.EmailTemplatesModule))
	templates.GET("", r.EmailTemplatesPage)
	templates.GET("new", r.NewEmailTemplatePage)
	templates.POST("new", r.CreateEmailTemplate)
	templates.GET(":id/edit", r.EditEmailTemplatePage)
	templates.POST(":id/edit", r.UpdateEmailTemplate)
	templates.POST(":id/delete", r.DeleteEmailTemplate)
	templates.GET(":id/preview", r.EmailTemplatePreviewPage)
	templates.POST(":id/send-test", r.SendTestEmail)

	configuration := routerGroup.Group("configuration", r.guard(entities.ConfigurationModule))
	configuration.GET("", r.ConfigurationPage)
	configuration.POST("email-gateway", r.SaveEmailGateway)
	configuration.POST("payment-gateway", r.SavePaymentGateway)
	configuration.GET("legal/:kind", r.LegalDocumentPage)
	configuration.POST("legal/:kind", r.SaveLegalDocument)

	routerGroup.GET("settings", r.SettingsPage)
	routerGroup.POST("settings/password", r.ChangePassword)

	notifications := routerGroup.Group("notifications")
	notifications.GET("", r.NotificationsPage)
	notifications.POST("read-all", r.MarkAllNotificationsRead)
	notifications.POST(":id/read", r.MarkNotificationRead)
	notifications.POST(":id/unread", r.MarkNotificationUnread)
}

// guard rejects requests the session user's role does not permit on module
func (r *frontendRouter) guard(module string) gin.HandlerFunc {
	return r.authorizer.ModuleGuard(module, r.forbidden)
}
