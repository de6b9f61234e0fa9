package v1

import (
	"net/http"

	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/routers/api/models"
	"github.com/exiby/exiby_admin/state"
	"github.com/exiby/exiby_admin/utils/auth"
	"github.com/gin-gonic/gin"
)

// GET: /api/v1/notifications/
// Response: status int
//           error string
//           notifications []entities.Notification
//           unread_count int
func (r *apiV1Router) GetNotifications(ctx *gin.Context) {
	user, _ := auth.GetSessionUser(ctx)
	r.sendNotifications(ctx, r.store.State(user))
}

// POST: /api/v1/notifications/:id/read
// Response: same as GET /api/v1/notifications/
func (r *apiV1Router) MarkNotificationRead(ctx *gin.Context) {
	r.dispatch(ctx, state.MarkNotificationRead{ID: ctx.Param("id")})
}

// POST: /api/v1/notifications/:id/unread
// Response: same as GET /api/v1/notifications/
func (r *apiV1Router) MarkNotificationUnread(ctx *gin.Context) {
	r.dispatch(ctx, state.MarkNotificationUnread{ID: ctx.Param("id")})
}

// POST: /api/v1/notifications/read-all
// Response: same as GET /api/v1/notifications/
func (r *apiV1Router) MarkAllNotificationsRead(ctx *gin.Context) {
	r.dispatch(ctx, state.MarkAllNotificationsRead{})
}

func (r *apiV1Router) dispatch(ctx *gin.Context, action state.Action) {
	user, _ := auth.GetSessionUser(ctx)
	r.sendNotifications(ctx, r.store.Dispatch(user, action))
}

func (r *apiV1Router) sendNotifications(ctx *gin.Context, appState state.AppState) {
	notifications := appState.Notifications
	if notifications == nil {
		notifications = entities.Notifications{}
	}
	ctx.JSON(http.StatusOK, notificationsRes{
		Response:      models.Response{Status: http.StatusOK},
		Notifications: notifications,
		UnreadCount:   appState.UnreadCount(),
	})
}
