package rest

import (
	"context"
	"net/http"

	"github.com/exiby/exiby_admin/backend"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/services"
	"go.uber.org/zap"
)

type teamService struct {
	logger *zap.Logger
	client backend.Client
}

type newTeamMember struct {
	FirstName   string                      `json:"first_name"`
	LastName    string                      `json:"last_name"`
	Email       string                      `json:"email"`
	Password    string                      `json:"password"`
	Role        string                      `json:"role"`
	Status      string                      `json:"status,omitempty"`
	Permissions []entities.ModulePermission `json:"permissions"`
}

// NewTeamService creates a new TeamService
func NewTeamService(logger *zap.Logger, client backend.Client) services.TeamService {
	return &teamService{
		logger: logger,
		client: client,
	}
}

func (s *teamService) GetTeamMembers(ctx context.Context) ([]entities.TeamMember, error) {
	members, _, err := getList[entities.TeamMember](ctx, s.client, endpoint("list_admins"), nil)
	return members, err
}

func (s *teamService) GetTeamMemberWithID(ctx context.Context, id string) (*entities.TeamMember, error) {
	return getOne[entities.TeamMember](ctx, s.client, endpoint("team"), id)
}

func (s *teamService) CreateTeamMember(ctx context.Context, member entities.TeamMember, password string) (*entities.TeamMember, error) {
	resp, err := invoke(ctx, s.client, http.MethodPost, endpoint("add_admin_team"), nil, newTeamMember{
		FirstName:   member.FirstName,
		LastName:    member.LastName,
		Email:       member.Email,
		Password:    password,
		Role:        member.Role,
		Status:      member.Status,
		Permissions: member.Permissions,
	})
	if err != nil {
		return nil, err
	}

	created := member
	if err := resp.Decode(&created); err != nil {
		return nil, err
	}
	s.logger.Info("team member created", zap.String("email", member.Email), zap.String("role", member.Role))
	return &created, nil
}

func (s *teamService) UpdateTeamMemberWithID(ctx context.Context, id string, member entities.TeamMember) error {
	return sendWithID(ctx, s.client, http.MethodPut, endpoint("team", "update"), id, member)
}

func (s *teamService) DeleteTeamMemberWithID(ctx context.Context, id string) error {
	return sendWithID(ctx, s.client, http.MethodDelete, endpoint("team", "delete"), id, nil)
}
