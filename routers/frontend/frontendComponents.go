package frontend

import (
	"strings"

	"github.com/exiby/exiby_admin/entities"
	"github.com/gin-gonic/gin"
)

const navbarNotificationsLimit = 5

var (
	navbar = frontendComponent{
		name:         "Navbar",
		dataProvider: navbarDataProvider,
	}

	sidebar = frontendComponent{
		name:         "Sidebar",
		dataProvider: sidebarDataProvider,
	}

	layoutComponents = frontendComponents{navbar, sidebar}
)

// sidebarItems with a module are only shown to roles allowed to view it
var sidebarItems = []navItem{
	{Label: "Dashboard", Href: "/dashboard"},
	{Label: "Organizations", Href: "/organizations", module: entities.OrganizationsModule},
	{Label: "Companies", Href: "/companies", module: entities.CompaniesModule},
	{Label: "Events", Href: "/events", module: entities.EventsModule},
	{Label: "Team", Href: "/team", module: entities.TeamModule},
	{Label: "Payment Plans", Href: "/payment-plans", module: entities.PaymentPlansModule},
	{Label: "Email Templates", Href: "/email-templates", module: entities.EmailTemplatesModule},
	{Label: "Configuration", Href: "/configuration", module: entities.ConfigurationModule},
	{Label: "Settings", Href: "/settings"},
}

func navbarDataProvider(ctx *gin.Context, r *frontendRouter) (interface{}, error) {
	user := currentUser(ctx)
	appState := r.store.State(user)

	return navbarDataModel{
		User:          user,
		UnreadCount:   appState.UnreadCount(),
		Notifications: latestNotifications(appState.Notifications, navbarNotificationsLimit),
		DarkMode:      r.isDarkMode(ctx, appState.DarkMode),
		ReturnTo:      ctx.Request.URL.RequestURI(),
	}, nil
}

func sidebarDataProvider(ctx *gin.Context, r *frontendRouter) (interface{}, error) {
	path := ctx.Request.URL.Path
	user := currentUser(ctx)

	items := make([]navItem, 0, len(sidebarItems))
	for _, item := range sidebarItems {
		if item.module != "" && !r.authorizer.Allowed(user, item.module, entities.ViewAction) {
			continue
		}
		item.Active = path == item.Href || strings.HasPrefix(path, item.Href+"/")
		items = append(items, item)
	}
	return sidebarDataModel{Items: items}, nil
}

type frontendComponent struct {
	name         string
	dataProvider frontendComponentDataProvider
}

type frontendComponents []frontendComponent

type frontendComponentDataProvider func(*gin.Context, *frontendRouter) (interface{}, error)

func latestNotifications(notifications entities.Notifications, limit int) entities.Notifications {
	if len(notifications) > limit {
		return notifications[:limit]
	}
	return notifications
}
