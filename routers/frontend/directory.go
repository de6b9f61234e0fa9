package frontend

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/exiby/exiby_admin/components/filter"
	"github.com/exiby/exiby_admin/components/form"
	"github.com/exiby/exiby_admin/components/table"
	"github.com/exiby/exiby_admin/components/trash"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/utils/export"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// directoryRecord is the shape shared by organizations and companies
type directoryRecord struct {
	ID             string
	OrganizationID string
	OrgUser        entities.OrgUser
	Bio            entities.Bio
	SocialLinks    entities.SocialLinks
	Status         bool
	Subscription   entities.Subscription
	CreatedAt      *time.Time
	DeletedAt      *time.Time
}

// directoryResource adapts the organization or company service to the directory pages
type directoryResource struct {
	path   string
	title  string
	noun   string
	nested bool

	list        func(ctx context.Context, query entities.ListQuery) ([]directoryRecord, int, error)
	get         func(ctx context.Context, id string) (*directoryRecord, error)
	create      func(ctx context.Context, record directoryRecord) error
	update      func(ctx context.Context, id string, record directoryRecord) error
	setStatus   func(ctx context.Context, id string, active bool) error
	remove      func(ctx context.Context, id string) error
	listDeleted func(ctx context.Context, query entities.ListQuery) ([]directoryRecord, int, error)
	restore     func(ctx context.Context, id string) error
	purge       func(ctx context.Context, id string) error
}

// directoryPages serves the list, form and trash pages of a directory resource
type directoryPages struct {
	r        *frontendRouter
	resource directoryResource
}

type directoryForm struct {
	Name           string `form:"name" binding:"required"`
	Email          string `form:"email" binding:"required"`
	Phone          string `form:"phone"`
	OrganizationID string `form:"organization_id"`
	Description    string `form:"description"`
	Industry       string `form:"industry"`
	Website        string `form:"website"`
	Facebook       string `form:"facebook"`
	Twitter        string `form:"twitter"`
	LinkedIn       string `form:"linkedin"`
	Instagram      string `form:"instagram"`
	Status         string `form:"status"`
}

var directoryColumns = []table.Column{
	{Key: "name", Label: "Name", Sortable: true},
	{Key: "email", Label: "Email", Sortable: true},
	{Key: "phone", Label: "Phone"},
	{Key: "industry", Label: "Industry"},
	{Key: "plan", Label: "Plan", Type: table.BadgeColumn},
	{Key: "status", Label: "Status", Type: table.StatusColumn},
	{Key: "created", Label: "Created", Type: table.DateColumn, Sortable: true},
}

var directoryExportColumns = []table.Column{
	{Key: "name", Label: "Name"},
	{Key: "email", Label: "Email"},
	{Key: "phone", Label: "Phone"},
	{Key: "industry", Label: "Industry"},
	{Key: "website", Label: "Website"},
	{Key: "plan", Label: "Plan"},
	{Key: "status", Label: "Status", Type: table.StatusColumn},
	{Key: "created", Label: "Created", Type: table.DateColumn},
}

var directoryTrashColumns = []table.Column{
	{Key: "name", Label: "Name"},
	{Key: "email", Label: "Email"},
	{Key: "deleted", Label: "Deleted", Type: table.DateTimeColumn},
}

func (r *frontendRouter) registerDirectoryRoutes(routerGroup *gin.RouterGroup, pages directoryPages) {
	routerGroup.GET("", pages.List)
	routerGroup.GET("export", pages.Export)
	routerGroup.GET("new", pages.NewPage)
	routerGroup.POST("new", pages.Create)
	routerGroup.POST("bulk-delete", pages.BulkDelete)
	routerGroup.GET("trash", pages.Trash)
	routerGroup.POST("trash/:id/restore", pages.Restore)
	routerGroup.POST("trash/:id/delete", pages.PermanentDelete)
	routerGroup.GET(":id/edit", pages.EditPage)
	routerGroup.POST(":id/edit", pages.Update)
	routerGroup.POST(":id/status", pages.SetStatus)
	routerGroup.POST(":id/delete", pages.Delete)
}

func directoryRow(record directoryRecord) table.Row {
	return table.Row{
		ID: record.ID,
		Values: map[string]interface{}{
			"name":     record.OrgUser.Name,
			"email":    record.OrgUser.Email,
			"phone":    record.OrgUser.Phone,
			"industry": record.Bio.Industry,
			"website":  record.Bio.Website,
			"plan":     record.Subscription.PlanName,
			"status":   record.Status,
			"created":  record.CreatedAt,
			"deleted":  record.DeletedAt,
		},
	}
}

func (p directoryPages) List(ctx *gin.Context) {
	params := p.r.parseListParams(ctx)
	records, total, err := p.resource.list(ctx, params.Query)
	if err != nil {
		p.r.renderError(ctx, err, fmt.Sprintf("could not fetch %s", p.resource.path))
		return
	}
	if p.r.redirectPastLastPage(ctx, params, "/"+p.resource.path, total) {
		return
	}

	rows := table.Rows(records, directoryRow)
	selection := params.selection(table.LoadedIDs(rows))
	path := "/" + p.resource.path

	drawer := filter.New("Filter "+p.resource.title, path, params.Values,
		filter.Text("search", "Search", "Name or email"),
		filter.Select("status", "Status", filter.Option{Value: "active", Label: "Active"}, filter.Option{Value: "inactive", Label: "Inactive"}),
		filter.Date("from", "Created from"),
		filter.Date("to", "Created to"),
	)
	drawer.Warnings = params.Warnings

	p.r.renderPage(ctx, listPage, pageRender{
		title: p.resource.title,
		data: listDataModel{
			Heading:     p.resource.title,
			Path:        path,
			CreateHref:  path + "/new",
			CreateLabel: "Add " + p.resource.noun,
			TrashHref:   path + "/trash",
			ExportHref:  params.exportHref(path + "/export"),
			Drawer:      &drawer,
			Table: table.Render(table.Props{
				Rows:    rows,
				Columns: directoryColumns,
				MenuOptions: []table.MenuOption{
					{Label: "Edit", Href: path + "/{id}/edit"},
					{Label: "Toggle status", Href: path + "/{id}/status", Method: http.MethodPost},
					{Label: "Delete", Href: path + "/{id}/delete", Method: http.MethodPost, Danger: true,
						Confirm: fmt.Sprintf("Move this %s to the trash?", p.resource.noun)},
				},
				Pagination:    params.pagination(path, total, p.r.cfg.Pagination.PageSizeOptions),
				Selected:      selection,
				Checkbox:      true,
				EmptyMessage:  fmt.Sprintf("No %s found", p.resource.path),
				SelectionForm: "selection",
			}),
			BulkActions: []bulkAction{
				{Label: "Export selected", Href: path + "/export", Method: http.MethodGet},
				{Label: "Delete selected", Href: path + "/bulk-delete", Method: http.MethodPost, Danger: true,
					Confirm: fmt.Sprintf("Move the selected %s to the trash?", p.resource.path)},
			},
			Hidden: params.hiddenFields(),
		},
	})
}

func (p directoryPages) Export(ctx *gin.Context) {
	params := p.r.parseListParams(ctx)
	records, _, err := p.resource.list(ctx, params.allRowsQuery(p.r.exportLimit()))
	if err != nil {
		p.r.renderError(ctx, err, fmt.Sprintf("could not fetch %s for export", p.resource.path))
		return
	}

	rows := export.FilterSelected(table.Rows(records, directoryRow), params.Selection)
	p.r.writeCSV(ctx, p.resource.path, directoryExportColumns, rows, "/"+p.resource.path)
}

func (p directoryPages) form(title, action string, record directoryRecord) form.Form {
	contact := []form.Field{
		{Name: "name", Label: "Name", Type: form.TextField, Value: record.OrgUser.Name, Required: true},
		{Name: "email", Label: "Email", Type: form.EmailField, Value: record.OrgUser.Email, Required: true},
		{Name: "phone", Label: "Phone", Type: form.TextField, Value: record.OrgUser.Phone},
	}
	if p.resource.nested {
		contact = append(contact, form.Field{Name: "organization_id", Label: "Organization ID", Type: form.TextField, Value: record.OrganizationID})
	}

	return form.Form{
		Title:       title,
		Action:      action,
		SubmitLabel: "Save",
		CancelHref:  "/" + p.resource.path,
		Sections: []form.Section{
			{Title: "Contact", Fields: contact},
			{Title: "Profile", Fields: []form.Field{
				{Name: "description", Label: "Description", Type: form.TextareaField, Value: record.Bio.Description},
				{Name: "industry", Label: "Industry", Type: form.TextField, Value: record.Bio.Industry},
				{Name: "website", Label: "Website", Type: form.URLField, Value: record.Bio.Website},
			}},
			{Title: "Social links", Fields: []form.Field{
				{Name: "facebook", Label: "Facebook", Type: form.URLField, Value: record.SocialLinks.Facebook},
				{Name: "twitter", Label: "Twitter", Type: form.URLField, Value: record.SocialLinks.Twitter},
				{Name: "linkedin", Label: "LinkedIn", Type: form.URLField, Value: record.SocialLinks.LinkedIn},
				{Name: "instagram", Label: "Instagram", Type: form.URLField, Value: record.SocialLinks.Instagram},
			}},
			{Title: "Status", Fields: []form.Field{form.Checkbox("status", "Active", record.Status)}},
		},
	}
}

// apply merges the submitted form over record
func (f directoryForm) apply(record directoryRecord, nested bool) directoryRecord {
	record.OrgUser = entities.OrgUser{
		Name:  strings.TrimSpace(f.Name),
		Email: strings.TrimSpace(f.Email),
		Phone: strings.TrimSpace(f.Phone),
	}
	if nested {
		record.OrganizationID = strings.TrimSpace(f.OrganizationID)
	}
	record.Bio = entities.Bio{
		Description: strings.TrimSpace(f.Description),
		Industry:    strings.TrimSpace(f.Industry),
		Website:     strings.TrimSpace(f.Website),
	}
	record.SocialLinks = entities.SocialLinks{
		Facebook:  strings.TrimSpace(f.Facebook),
		Twitter:   strings.TrimSpace(f.Twitter),
		LinkedIn:  strings.TrimSpace(f.LinkedIn),
		Instagram: strings.TrimSpace(f.Instagram),
	}
	record.Status = f.Status == "true" || f.Status == "on"
	return record
}

func (p directoryPages) renderForm(ctx *gin.Context, status int, f form.Form, alert string) {
	p.r.renderPage(ctx, formPage, pageRender{status: status, title: f.Title, alert: alert, data: formDataModel{Form: f}})
}

func (p directoryPages) NewPage(ctx *gin.Context) {
	p.renderForm(ctx, http.StatusOK, p.form("Add "+p.resource.noun, "/"+p.resource.path+"/new", directoryRecord{Status: true}), "")
}

func (p directoryPages) Create(ctx *gin.Context) {
	title, action := "Add "+p.resource.noun, "/"+p.resource.path+"/new"

	var req directoryForm
	bindErr := ctx.ShouldBind(&req)
	record := req.apply(directoryRecord{}, p.resource.nested)
	if bindErr != nil {
		p.renderForm(ctx, http.StatusBadRequest, p.form(title, action, record), "Name and email are required")
		return
	}

	if err := p.resource.create(ctx, record); err != nil {
		p.renderForm(ctx, http.StatusOK, p.form(title, action, record), p.r.alertFor(err, "create the "+p.resource.noun))
		return
	}

	p.r.logger.Info(p.resource.noun+" created", zap.String("email", record.OrgUser.Email))
	p.r.redirectWithFlash(ctx, "/"+p.resource.path, capitalize(p.resource.noun)+" created")
}

func (p directoryPages) EditPage(ctx *gin.Context) {
	id := ctx.Param("id")
	record, err := p.resource.get(ctx, id)
	if err != nil {
		p.r.renderError(ctx, err, fmt.Sprintf("could not fetch %s %s", p.resource.noun, id))
		return
	}

	p.renderForm(ctx, http.StatusOK, p.form("Edit "+p.resource.noun, p.editPath(id), *record), "")
}

func (p directoryPages) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	title, action := "Edit "+p.resource.noun, p.editPath(id)

	existing, err := p.resource.get(ctx, id)
	if err != nil {
		p.r.renderError(ctx, err, fmt.Sprintf("could not fetch %s %s", p.resource.noun, id))
		return
	}

	var req directoryForm
	bindErr := ctx.ShouldBind(&req)
	record := req.apply(*existing, p.resource.nested)
	if bindErr != nil {
		p.renderForm(ctx, http.StatusBadRequest, p.form(title, action, record), "Name and email are required")
		return
	}

	if err := p.resource.update(ctx, id, record); err != nil {
		p.renderForm(ctx, http.StatusOK, p.form(title, action, record), p.r.alertFor(err, "update the "+p.resource.noun))
		return
	}

	p.r.redirectWithFlash(ctx, "/"+p.resource.path, capitalize(p.resource.noun)+" updated")
}

// SetStatus flips the status unless the form names one
func (p directoryPages) SetStatus(ctx *gin.Context) {
	id := ctx.Param("id")

	var active bool
	switch ctx.PostForm("status") {
	case "active":
		active = true
	case "inactive":
		active = false
	default:
		record, err := p.resource.get(ctx, id)
		if err != nil {
			p.r.renderError(ctx, err, fmt.Sprintf("could not fetch %s %s", p.resource.noun, id))
			return
		}
		active = !record.Status
	}

	if err := p.resource.setStatus(ctx, id, active); err != nil {
		p.r.renderError(ctx, err, fmt.Sprintf("could not update status of %s %s", p.resource.noun, id))
		return
	}

	message := capitalize(p.resource.noun) + " deactivated"
	if active {
		message = capitalize(p.resource.noun) + " activated"
	}
	p.r.redirectWithFlash(ctx, safeReturnPath(ctx.PostForm("return_to"), "/"+p.resource.path), message)
}

func (p directoryPages) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := p.resource.remove(ctx, id); err != nil {
		p.r.renderError(ctx, err, fmt.Sprintf("could not delete %s %s", p.resource.noun, id))
		return
	}

	p.r.redirectWithFlash(ctx, "/"+p.resource.path, capitalize(p.resource.noun)+" moved to the trash")
}

// BulkDelete soft-deletes every selected row. Deletion stops at the first failure.
func (p directoryPages) BulkDelete(ctx *gin.Context) {
	ids := ctx.PostFormArray(selectedParam)
	if len(ids) == 0 {
		p.r.redirectWithFlash(ctx, "/"+p.resource.path, fmt.Sprintf("No %s selected", p.resource.path))
		return
	}

	for i, id := range ids {
		if err := p.resource.remove(ctx, id); err != nil {
			p.r.logger.Error("bulk delete failed", zap.String("resource", p.resource.path), zap.String("id", id),
				zap.Int("deleted", i), zap.Error(err))
			p.r.redirectWithFlash(ctx, "/"+p.resource.path,
				fmt.Sprintf("Deleted %d of %d %s, the rest could not be deleted", i, len(ids), p.resource.path))
			return
		}
	}

	p.r.redirectWithFlash(ctx, "/"+p.resource.path, fmt.Sprintf("Moved %d %s to the trash", len(ids), p.resource.path))
}

func (p directoryPages) Trash(ctx *gin.Context) {
	params := p.r.parseListParams(ctx)
	records, total, err := p.resource.listDeleted(ctx, params.Query)
	if err != nil {
		p.r.renderError(ctx, err, fmt.Sprintf("could not fetch deleted %s", p.resource.path))
		return
	}
	if p.r.redirectPastLastPage(ctx, params, "/"+p.resource.path+"/trash", total) {
		return
	}

	path := "/" + p.resource.path
	deletedAt := make(map[string]*time.Time, len(records))
	for _, record := range records {
		deletedAt[record.ID] = record.DeletedAt
	}
	now := p.r.timeProvider.Now()
	retention := p.r.cfg.SoftDelete.RetentionDays

	pagination := params.pagination(path+"/trash", total, p.r.cfg.Pagination.PageSizeOptions)
	view := trash.Render(trash.Props{
		Table: table.Props{
			Rows:       table.Rows(records, directoryRow),
			Columns:    directoryTrashColumns,
			Pagination: pagination,
		},
		GetDaysUntilPermanentDelete: func(row table.Row) int {
			deleted := deletedAt[row.ID]
			if deleted == nil {
				return retention
			}
			return trash.DaysUntilPermanentDelete(*deleted, now, retention)
		},
		RestoreHref: path + "/trash/{id}/restore",
		DeleteHref:  path + "/trash/{id}/delete",
		Noun:        p.resource.noun,
	})

	p.r.renderPage(ctx, trashPage, pageRender{
		title: p.resource.title + " trash",
		data: trashDataModel{
			Heading:  fmt.Sprintf("Deleted %s", p.resource.path),
			BackHref: path,
			Table:    view,
			Pager:    view.Pager,
		},
	})
}

func (p directoryPages) Restore(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := p.resource.restore(ctx, id); err != nil {
		p.r.renderError(ctx, err, fmt.Sprintf("could not restore %s %s", p.resource.noun, id))
		return
	}

	p.r.redirectWithFlash(ctx, "/"+p.resource.path+"/trash", capitalize(p.resource.noun)+" restored")
}

func (p directoryPages) PermanentDelete(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := p.resource.purge(ctx, id); err != nil {
		p.r.renderError(ctx, err, fmt.Sprintf("could not permanently delete %s %s", p.resource.noun, id))
		return
	}

	p.r.logger.Info(p.resource.noun+" permanently deleted", zap.String("id", id))
	p.r.redirectWithFlash(ctx, "/"+p.resource.path+"/trash", capitalize(p.resource.noun)+" permanently deleted")
}

func (p directoryPages) editPath(id string) string {
	return fmt.Sprintf("/%s/%s/edit", p.resource.path, id)
}

// exportLimit asks for one row more than may be exported so that oversized exports are detected
func (r *frontendRouter) exportLimit() int {
	if r.cfg.Export.MaxRows <= 0 {
		return 0
	}
	return r.cfg.Export.MaxRows + 1
}

// writeCSV sends rows as a CSV download, or goes back to returnTo when there are too many
func (r *frontendRouter) writeCSV(ctx *gin.Context, resource string, columns []table.Column, rows []table.Row, returnTo string) {
	if r.cfg.Export.MaxRows > 0 && len(rows) > r.cfg.Export.MaxRows {
		r.redirectWithFlash(ctx, returnTo,
			fmt.Sprintf("Too many rows to export, narrow the filters to at most %d rows", r.cfg.Export.MaxRows))
		return
	}

	filename := export.Filename(resource, r.timeProvider.Now())
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Status(http.StatusOK)
	if err := export.WriteCSV(ctx.Writer, columns, rows, r.cfg.Export.MaxRows); err != nil {
		r.logger.Error("could not write csv export", zap.String("resource", resource), zap.Error(err))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
