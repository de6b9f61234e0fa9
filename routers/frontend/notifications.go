package frontend

import (
	"net/http"

	"github.com/exiby/exiby_admin/state"
	"github.com/gin-gonic/gin"
)

const notificationsPath = "/notifications"

func (r *frontendRouter) NotificationsPage(ctx *gin.Context) {
	appState := r.store.State(currentUser(ctx))

	r.renderPage(ctx, notificationsPage, pageRender{
		title: "Notifications",
		data: notificationsDataModel{
			Notifications: appState.Notifications,
			UnreadCount:   appState.UnreadCount(),
		},
	})
}

func (r *frontendRouter) MarkNotificationRead(ctx *gin.Context) {
	r.dispatchNotificationAction(ctx, state.MarkNotificationRead{ID: ctx.Param("id")})
}

func (r *frontendRouter) MarkNotificationUnread(ctx *gin.Context) {
	r.dispatchNotificationAction(ctx, state.MarkNotificationUnread{ID: ctx.Param("id")})
}

func (r *frontendRouter) MarkAllNotificationsRead(ctx *gin.Context) {
	r.dispatchNotificationAction(ctx, state.MarkAllNotificationsRead{})
}

// dispatchNotificationAction applies action and sends the admin back to the page the action was posted from
func (r *frontendRouter) dispatchNotificationAction(ctx *gin.Context, action state.Action) {
	r.store.Dispatch(currentUser(ctx), action)
	ctx.Redirect(http.StatusSeeOther, safeReturnPath(ctx.PostForm("return_to"), notificationsPath))
}
