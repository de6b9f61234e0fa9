package frontend

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/exiby/exiby_admin/components/filter"
	"github.com/exiby/exiby_admin/components/form"
	"github.com/exiby/exiby_admin/components/table"
	"github.com/exiby/exiby_admin/config/role"
	"github.com/exiby/exiby_admin/entities"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	teamPath          = "/team"
	minPasswordLength = 6
	applyRoleParam    = "apply_role"
)

var teamColumns = []table.Column{
	{Key: "name", Label: "Name", Sortable: true},
	{Key: "email", Label: "Email"},
	{Key: "role", Label: "Role", Type: table.BadgeColumn},
	{Key: "modules", Label: "Modules", Type: table.NumberColumn},
	{Key: "status", Label: "Status", Type: table.BadgeColumn},
}

var moduleLabels = map[string]string{
	entities.OrganizationsModule:  "Organizations",
	entities.CompaniesModule:      "Companies",
	entities.EventsModule:         "Events",
	entities.TeamModule:           "Team",
	entities.PaymentPlansModule:   "Payment Plans",
	entities.EmailTemplatesModule: "Email Templates",
	entities.ConfigurationModule:  "Configuration",
}

type teamMemberForm struct {
	FirstName       string `form:"first_name" binding:"required"`
	LastName        string `form:"last_name"`
	Email           string `form:"email" binding:"required"`
	Role            string `form:"role" binding:"required"`
	Status          string `form:"status"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

func teamMemberRow(member entities.TeamMember) table.Row {
	modules := 0
	for _, permission := range member.Permissions {
		if permission.View || permission.Create || permission.Edit || permission.Delete {
			modules++
		}
	}
	return table.Row{
		ID: member.ID,
		Values: map[string]interface{}{
			"name":    member.FullName(),
			"email":   member.Email,
			"role":    member.Role,
			"modules": modules,
			"status":  member.Status,
		},
	}
}

func matchesSearch(search string, values ...string) bool {
	if search == "" {
		return true
	}
	search = strings.ToLower(search)
	for _, value := range values {
		if strings.Contains(strings.ToLower(value), search) {
			return true
		}
	}
	return false
}

// TeamPage lists the team. The backend returns the whole team, so filtering and paging happen here.
func (r *frontendRouter) TeamPage(ctx *gin.Context) {
	params := r.parseListParams(ctx)
	members, err := r.teamService.GetTeamMembers(ctx)
	if err != nil {
		r.renderError(ctx, err, "could not fetch team members")
		return
	}

	roleFilter := params.Values.Get("role")
	var filtered []entities.TeamMember
	for _, member := range members {
		if !matchesSearch(params.Query.Search, member.FullName(), member.Email) {
			continue
		}
		if roleFilter != "" && member.Role != roleFilter {
			continue
		}
		filtered = append(filtered, member)
	}
	if r.redirectPastLastPage(ctx, params, teamPath, len(filtered)) {
		return
	}

	pagination := params.pagination(teamPath, len(filtered), r.cfg.Pagination.PageSizeOptions)
	from, to := table.Range(pagination.Page, pagination.PageSize, pagination.Total)
	var page []entities.TeamMember
	if from > 0 {
		page = filtered[from-1 : to]
	}

	var roleOptions []filter.Option
	for _, userRole := range r.cfg.Roles.Roles() {
		roleOptions = append(roleOptions, filter.Option{Value: string(userRole), Label: roleLabel(userRole)})
	}
	drawer := filter.New("Filter team", teamPath, params.Values,
		filter.Text("search", "Search", "Name or email"),
		filter.Select("role", "Role", roleOptions...),
	)

	r.renderPage(ctx, listPage, pageRender{
		title: "Team",
		data: listDataModel{
			Heading:     "Team",
			Path:        teamPath,
			CreateHref:  teamPath + "/new",
			CreateLabel: "Add team member",
			Drawer:      &drawer,
			Table: table.Render(table.Props{
				Rows:    table.Rows(page, teamMemberRow),
				Columns: teamColumns,
				MenuOptions: []table.MenuOption{
					{Label: "Edit", Href: teamPath + "/{id}/edit"},
					{Label: "Remove", Href: teamPath + "/{id}/delete", Method: http.MethodPost, Danger: true,
						Confirm: "Remove this team member? They will lose access to the portal."},
				},
				Pagination:   pagination,
				EmptyMessage: "No team members found",
			}),
			Hidden: params.hiddenFields(),
		},
	})
}

func roleLabel(userRole role.UserRole) string {
	words := strings.Split(string(userRole), "_")
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

func (r *frontendRouter) roleOptions() []form.Option {
	var options []form.Option
	for _, userRole := range r.cfg.Roles.Roles() {
		options = append(options, form.Option{Value: string(userRole), Label: roleLabel(userRole)})
	}
	return options
}

// rolePermissions is the default matrix of the role, empty for roles without one
func (r *frontendRouter) rolePermissions(userRole string) []entities.ModulePermission {
	permissions, err := r.cfg.Roles.GetRolePermissions(role.UserRole(userRole))
	if err != nil {
		r.logger.Debug("no default permissions for role", zap.String("role", userRole), zap.Error(err))
		permissions = make([]entities.ModulePermission, 0, len(entities.AdminModules))
		for _, module := range entities.AdminModules {
			permissions = append(permissions, entities.ModulePermission{Module: module})
		}
	}
	return permissions
}

func permissionFieldName(module string, action entities.PermissionAction) string {
	return fmt.Sprintf("perm_%s_%s", module, action)
}

// parsePermissions reads the permission matrix checkboxes
func parsePermissions(ctx *gin.Context) []entities.ModulePermission {
	if err := ctx.Request.ParseForm(); err != nil {
		return nil
	}

	permissions := make([]entities.ModulePermission, 0, len(entities.AdminModules))
	for _, module := range entities.AdminModules {
		permission := entities.ModulePermission{Module: module}
		for _, action := range entities.PermissionActions {
			if form.Bool(ctx.Request.PostForm, permissionFieldName(module, action)) {
				permission = permission.Grant(action)
			}
		}
		permissions = append(permissions, permission)
	}
	return permissions
}

func permissionMatrix(member entities.TeamMember) []permissionRowView {
	rows := make([]permissionRowView, 0, len(entities.AdminModules))
	for _, module := range entities.AdminModules {
		row := permissionRowView{Module: module, Label: moduleLabels[module]}
		for _, action := range entities.PermissionActions {
			row.Actions = append(row.Actions, permissionCell{
				Name:    permissionFieldName(module, action),
				Label:   capitalize(string(action)),
				Checked: member.Can(module, action),
			})
		}
		rows = append(rows, row)
	}
	return rows
}

func (r *frontendRouter) buildTeamMemberForm(title, action string, member entities.TeamMember, withPassword bool) form.Form {
	status := member.Status
	if status == "" {
		status = "active"
	}
	fields := []form.Field{
		{Name: "first_name", Label: "First name", Type: form.TextField, Value: member.FirstName, Required: true},
		{Name: "last_name", Label: "Last name", Type: form.TextField, Value: member.LastName},
		{Name: "email", Label: "Email", Type: form.EmailField, Value: member.Email, Required: true},
		form.Select("role", "Role", member.Role, true, r.roleOptions()...),
		form.Select("status", "Status", status, false, form.Options("active", "inactive")...),
	}

	sections := []form.Section{{Title: "Details", Fields: fields}}
	if withPassword {
		sections = append(sections, form.Section{Title: "Password", Fields: []form.Field{
			{Name: "password", Label: "Password", Type: form.PasswordField, Required: true,
				Help: fmt.Sprintf("At least %d characters", minPasswordLength)},
			{Name: "confirm_password", Label: "Confirm password", Type: form.PasswordField, Required: true},
		}})
	}

	return form.Form{
		Title:       title,
		Action:      action,
		SubmitLabel: "Save",
		CancelHref:  teamPath,
		Sections:    sections,
	}
}

func (r *frontendRouter) renderTeamMemberForm(ctx *gin.Context, status int, f form.Form, member entities.TeamMember, alert string) {
	r.renderPage(ctx, teamMemberFormPage, pageRender{
		status: status,
		title:  f.Title,
		alert:  alert,
		data:   teamMemberFormDataModel{Form: f, Permissions: permissionMatrix(member)},
	})
}

// validatePassword checks the password rules shared by team member creation and password change
func validatePassword(password, confirmation string) []*form.FieldError {
	var errs []*form.FieldError
	if len(password) < minPasswordLength {
		errs = append(errs, &form.FieldError{Field: "Password", Message: fmt.Sprintf("must be at least %d characters", minPasswordLength)})
	}
	if password != confirmation {
		errs = append(errs, &form.FieldError{Field: "Confirm password", Message: "does not match the password"})
	}
	return errs
}

func (req teamMemberForm) apply(member entities.TeamMember, permissions []entities.ModulePermission) entities.TeamMember {
	member.FirstName = strings.TrimSpace(req.FirstName)
	member.LastName = strings.TrimSpace(req.LastName)
	member.Email = strings.TrimSpace(req.Email)
	member.Role = req.Role
	member.Status = req.Status
	member.Permissions = permissions
	return member
}

func (r *frontendRouter) NewTeamMemberPage(ctx *gin.Context) {
	member := entities.TeamMember{Role: string(role.Admin), Status: "active"}
	member.Permissions = r.rolePermissions(member.Role)

	r.renderTeamMemberForm(ctx, http.StatusOK, r.buildTeamMemberForm("Add team member", teamPath+"/new", member, true), member, "")
}

func (r *frontendRouter) CreateTeamMember(ctx *gin.Context) {
	f := func(member entities.TeamMember) form.Form {
		return r.buildTeamMemberForm("Add team member", teamPath+"/new", member, true)
	}

	var req teamMemberForm
	bindErr := ctx.ShouldBind(&req)
	member := req.apply(entities.TeamMember{}, parsePermissions(ctx))

	if ctx.PostForm(applyRoleParam) != "" {
		member.Permissions = r.rolePermissions(member.Role)
		r.renderTeamMemberForm(ctx, http.StatusOK, f(member), member, "")
		return
	}
	if bindErr != nil {
		r.renderTeamMemberForm(ctx, http.StatusBadRequest, f(member), member, "First name, email and role are required")
		return
	}
	if errs := validatePassword(req.Password, req.ConfirmPassword); len(errs) > 0 {
		r.renderTeamMemberForm(ctx, http.StatusBadRequest, f(member).WithErrors(errs...), member, "Please fix the highlighted fields")
		return
	}

	if _, err := r.teamService.CreateTeamMember(ctx, member, req.Password); err != nil {
		r.renderTeamMemberForm(ctx, http.StatusOK, f(member), member, r.alertFor(err, "add the team member"))
		return
	}

	r.logger.Info("team member created", zap.String("email", member.Email), zap.String("role", member.Role))
	r.redirectWithFlash(ctx, teamPath, "Team member added")
}

func (r *frontendRouter) EditTeamMemberPage(ctx *gin.Context) {
	id := ctx.Param("id")
	member, err := r.teamService.GetTeamMemberWithID(ctx, id)
	if err != nil {
		r.renderError(ctx, err, fmt.Sprintf("could not fetch team member %s", id))
		return
	}

	r.renderTeamMemberForm(ctx, http.StatusOK, r.buildTeamMemberForm("Edit team member", r.teamEditPath(id), *member, false), *member, "")
}

func (r *frontendRouter) UpdateTeamMember(ctx *gin.Context) {
	id := ctx.Param("id")
	existing, err := r.teamService.GetTeamMemberWithID(ctx, id)
	if err != nil {
		r.renderError(ctx, err, fmt.Sprintf("could not fetch team member %s", id))
		return
	}

	var req teamMemberForm
	bindErr := ctx.ShouldBind(&req)
	member := req.apply(*existing, parsePermissions(ctx))
	f := r.buildTeamMemberForm("Edit team member", r.teamEditPath(id), member, false)

	if ctx.PostForm(applyRoleParam) != "" {
		member.Permissions = r.rolePermissions(member.Role)
		r.renderTeamMemberForm(ctx, http.StatusOK, f, member, "")
		return
	}
	if bindErr != nil {
		r.renderTeamMemberForm(ctx, http.StatusBadRequest, f, member, "First name, email and role are required")
		return
	}

	if err := r.teamService.UpdateTeamMemberWithID(ctx, id, member); err != nil {
		r.renderTeamMemberForm(ctx, http.StatusOK, f, member, r.alertFor(err, "update the team member"))
		return
	}

	r.redirectWithFlash(ctx, teamPath, "Team member updated")
}

func (r *frontendRouter) DeleteTeamMember(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == currentUser(ctx).ID {
		r.redirectWithFlash(ctx, teamPath, "You cannot remove yourself from the team")
		return
	}

	if err := r.teamService.DeleteTeamMemberWithID(ctx, id); err != nil {
		r.renderError(ctx, err, fmt.Sprintf("could not delete team member %s", id))
		return
	}

	r.redirectWithFlash(ctx, teamPath, "Team member removed")
}

func (r *frontendRouter) teamEditPath(id string) string {
	return fmt.Sprintf("%s/%s/edit", teamPath, id)
}
