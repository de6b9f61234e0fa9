package services

import (
	"context"

	"github.com/exiby/exiby_admin/entities"
)

// CompanyService is the service for interactions with companies stored by the backend
type CompanyService interface {
	GetCompanies(ctx context.Context, query entities.ListQuery) ([]entities.Company, int, error)
	GetCompanyWithID(ctx context.Context, id string) (*entities.Company, error)

	CreateCompany(ctx context.Context, company entities.Company) (*entities.Company, error)
	UpdateCompanyWithID(ctx context.Context, id string, company entities.Company) error
	SetCompanyStatus(ctx context.Context, id string, active bool) error

	DeleteCompanyWithID(ctx context.Context, id string) error
	GetDeletedCompanies(ctx context.Context, query entities.ListQuery) ([]entities.Company, int, error)
	RestoreCompanyWithID(ctx context.Context, id string) error
	PermanentlyDeleteCompanyWithID(ctx context.Context, id string) error
}
