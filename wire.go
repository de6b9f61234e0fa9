//go:build wireinject
// +build wireinject

package main

import (
	"github.com/exiby/exiby_admin/authorization"
	"github.com/exiby/exiby_admin/backend"
	"github.com/exiby/exiby_admin/config"
	"github.com/exiby/exiby_admin/environment"
	"github.com/exiby/exiby_admin/repositories"
	"github.com/exiby/exiby_admin/routers"
	v1 "github.com/exiby/exiby_admin/routers/api/v1"
	"github.com/exiby/exiby_admin/routers/frontend"
	"github.com/exiby/exiby_admin/services/mongo"
	"github.com/exiby/exiby_admin/services/multiplexers"
	"github.com/exiby/exiby_admin/services/rest"
	"github.com/exiby/exiby_admin/state"
	"github.com/exiby/exiby_admin/utils"
	"github.com/google/wire"
)

func InitializeServer() (Server, error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		frontend.NewRouter,
		v1.NewAPIV1Router,
		state.NewStore,
		authorization.NewAuthorizer,
		rest.NewOrganizationService,
		rest.NewCompanyService,
		rest.NewEventService,
		rest.NewTeamService,
		rest.NewPaymentPlanService,
		rest.NewEmailTemplateService,
		rest.NewAdminService,
		mongo.NewMongoConfigurationService,
		multiplexers.NewEmailService,
		repositories.NewSettingsRepository,
		backend.NewClient,
		utils.NewDatabase,
		utils.NewSendgridClient,
		utils.NewSMTPClient,
		utils.NewTimeProvider,
		environment.NewEnv,
		utils.NewLogger,
		config.NewAppConfig,
	)
	return Server{}, nil
}
