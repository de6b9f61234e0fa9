package services

import (
	"context"

	"github.com/exiby/exiby_admin/entities"
)

// TeamService is the service for interactions with the admin team
type TeamService interface {
	GetTeamMembers(ctx context.Context) ([]entities.TeamMember, error)
	GetTeamMemberWithID(ctx context.Context, id string) (*entities.TeamMember, error)
	CreateTeamMember(ctx context.Context, member entities.TeamMember, password string) (*entities.TeamMember, error)
	UpdateTeamMemberWithID(ctx context.Context, id string, member entities.TeamMember) error
	DeleteTeamMemberWithID(ctx context.Context, id string) error
}
