package frontend

import (
	"context"

	"github.com/exiby/exiby_admin/entities"
)

func companyRecord(company entities.Company) directoryRecord {
	return directoryRecord{
		ID:             company.ID,
		OrganizationID: company.OrganizationID,
		OrgUser:        company.OrgUser,
		Bio:            company.Bio,
		SocialLinks:    company.SocialLinks,
		Status:         company.Status,
		Subscription:   company.Subscription,
		CreatedAt:      company.CreatedAt,
		DeletedAt:      company.DeletedAt,
	}
}

func (d directoryRecord) company() entities.Company {
	return entities.Company{
		ID:             d.ID,
		OrganizationID: d.OrganizationID,
		OrgUser:        d.OrgUser,
		Bio:            d.Bio,
		SocialLinks:    d.SocialLinks,
		Status:         d.Status,
		Subscription:   d.Subscription,
		CreatedAt:      d.CreatedAt,
		DeletedAt:      d.DeletedAt,
	}
}

func companyRecords(companies []entities.Company, total int, err error) ([]directoryRecord, int, error) {
	if err != nil {
		return nil, 0, err
	}
	records := make([]directoryRecord, 0, len(companies))
	for _, company := range companies {
		records = append(records, companyRecord(company))
	}
	return records, total, nil
}

func (r *frontendRouter) companiesDirectory() directoryPages {
	service := r.companyService
	return directoryPages{r: r, resource: directoryResource{
		path:   "companies",
		title:  "Companies",
		noun:   "company",
		nested: true,
		list: func(ctx context.Context, query entities.ListQuery) ([]directoryRecord, int, error) {
			return companyRecords(service.GetCompanies(ctx, query))
		},
		get: func(ctx context.Context, id string) (*directoryRecord, error) {
			company, err := service.GetCompanyWithID(ctx, id)
			if err != nil {
				return nil, err
			}
			record := companyRecord(*company)
			return &record, nil
		},
		create: func(ctx context.Context, record directoryRecord) error {
			_, err := service.CreateCompany(ctx, record.company())
			return err
		},
		update: func(ctx context.Context, id string, record directoryRecord) error {
			return service.UpdateCompanyWithID(ctx, id, record.company())
		},
		setStatus: service.SetCompanyStatus,
		remove:    service.DeleteCompanyWithID,
		listDeleted: func(ctx context.Context, query entities.ListQuery) ([]directoryRecord, int, error) {
			return companyRecords(service.GetDeletedCompanies(ctx, query))
		},
		restore: service.RestoreCompanyWithID,
		purge:   service.PermanentlyDeleteCompanyWithID,
	}}
}
