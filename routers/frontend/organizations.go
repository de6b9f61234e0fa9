package frontend

import (
	"context"

	"github.com/exiby/exiby_admin/entities"
)

func organizationRecord(organization entities.Organization) directoryRecord {
	return directoryRecord{
		ID:           organization.ID,
		OrgUser:      organization.OrgUser,
		Bio:          organization.Bio,
		SocialLinks:  organization.SocialLinks,
		Status:       organization.Status,
		Subscription: organization.Subscription,
		CreatedAt:    organization.CreatedAt,
		DeletedAt:    organization.DeletedAt,
	}
}

func (d directoryRecord) organization() entities.Organization {
	return entities.Organization{
		ID:           d.ID,
		OrgUser:      d.OrgUser,
		Bio:          d.Bio,
		SocialLinks:  d.SocialLinks,
		Status:       d.Status,
		Subscription: d.Subscription,
		CreatedAt:    d.CreatedAt,
		DeletedAt:    d.DeletedAt,
	}
}

func organizationRecords(organizations []entities.Organization, total int, err error) ([]directoryRecord, int, error) {
	if err != nil {
		return nil, 0, err
	}
	records := make([]directoryRecord, 0, len(organizations))
	for _, organization := range organizations {
		records = append(records, organizationRecord(organization))
	}
	return records, total, nil
}

func (r *frontendRouter) organizationsDirectory() directoryPages {
	service := r.organizationService
	return directoryPages{r: r, resource: directoryResource{
		path:  "organizations",
		title: "Organizations",
		noun:  "organization",
		list: func(ctx context.Context, query entities.ListQuery) ([]directoryRecord, int, error) {
			return organizationRecords(service.GetOrganizations(ctx, query))
		},
		get: func(ctx context.Context, id string) (*directoryRecord, error) {
			organization, err := service.GetOrganizationWithID(ctx, id)
			if err != nil {
				return nil, err
			}
			record := organizationRecord(*organization)
			return &record, nil
		},
		create: func(ctx context.Context, record directoryRecord) error {
			_, err := service.CreateOrganization(ctx, record.organization())
			return err
		},
		update: func(ctx context.Context, id string, record directoryRecord) error {
			return service.UpdateOrganizationWithID(ctx, id, record.organization())
		},
		setStatus: service.SetOrganizationStatus,
		remove:    service.DeleteOrganizationWithID,
		listDeleted: func(ctx context.Context, query entities.ListQuery) ([]directoryRecord, int, error) {
			return organizationRecords(service.GetDeletedOrganizations(ctx, query))
		},
		restore: service.RestoreOrganizationWithID,
		purge:   service.PermanentlyDeleteOrganizationWithID,
	}}
}
