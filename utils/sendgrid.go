package utils

import (
	"github.com/exiby/exiby_admin/environment"
	"github.com/sendgrid/sendgrid-go"
)

func NewSendgridClient(env *environment.Env) *sendgrid.Client {
	return sendgrid.NewSendClient(env.Get(environment.SendgridAPIKey))
}
