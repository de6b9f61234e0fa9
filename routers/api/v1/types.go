package v1

import (
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/routers/api/models"
)

type notificationsRes struct {
	models.Response
	Notifications entities.Notifications `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

type previewEmailTemplateReq struct {
	Subject string `form:"subject" json:"subject"`
	Content string `form:"content" json:"content" binding:"required"`
}

type previewEmailTemplateRes struct {
	models.Response
	Subject   string   `json:"subject"`
	Variables []string `json:"variables"`
	HTML      string   `json:"html"`
}
