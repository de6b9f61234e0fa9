package services

import (
	"context"

	"github.com/exiby/exiby_admin/entities"
)

// AdminService covers the account of the signed in admin and platform wide figures
type AdminService interface {
	GetDashboardStats(ctx context.Context) (*entities.DashboardStats, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}
