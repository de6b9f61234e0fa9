package rest

import (
	"context"
	"net/http"

	"github.com/exiby/exiby_admin/backend"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/services"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type adminService struct {
	logger *zap.Logger
	client backend.Client
}

type passwordChange struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// NewAdminService creates a new AdminService
func NewAdminService(logger *zap.Logger, client backend.Client) services.AdminService {
	return &adminService{
		logger: logger,
		client: client,
	}
}

func (s *adminService) GetDashboardStats(ctx context.Context) (*entities.DashboardStats, error) {
	resp, err := invoke(ctx, s.client, http.MethodGet, endpoint("dashboard", "stats"), nil, nil)
	if err != nil {
		return nil, err
	}

	var stats entities.DashboardStats
	if err := resp.Decode(&stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *adminService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	_, err := s.client.InvokeAPI(ctx, backend.Request{
		Path:     endpoint("change_password"),
		Method:   http.MethodPut,
		PostData: passwordChange{OldPassword: currentPassword, NewPassword: newPassword},
	})

	var backendErr *backend.Error
	if errors.As(err, &backendErr) && (backendErr.StatusCode == http.StatusBadRequest || backendErr.StatusCode == http.StatusUnauthorized) {
		return services.ErrInvalidCredentials
	}
	if err != nil {
		return mapBackendError(err)
	}

	s.logger.Info("admin password changed")
	return nil
}
