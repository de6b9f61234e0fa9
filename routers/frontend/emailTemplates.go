package frontend

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/exiby/exiby_admin/components/filter"
	"github.com/exiby/exiby_admin/components/form"
	"github.com/exiby/exiby_admin/components/table"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/utils/templatevars"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	emailTemplatesPath = "/email-templates"
	previewParam       = "preview"
)

var emailTemplateColumns = []table.Column{
	{Key: "name", Label: "Name", Sortable: true},
	{Key: "subject", Label: "Subject"},
	{Key: "type", Label: "Type", Type: table.BadgeColumn},
	{Key: "variables", Label: "Variables", Type: table.NumberColumn},
	{Key: "active", Label: "Status", Type: table.StatusColumn},
}

type emailTemplateForm struct {
	Name         string `form:"name" binding:"required"`
	Subject      string `form:"subject" binding:"required"`
	TemplateType string `form:"template_type" binding:"required"`
	Content      string `form:"content" binding:"required"`
	IsActive     string `form:"is_active"`
}

type sendTestForm struct {
	Email string `form:"email" binding:"required,email"`
}

func emailTemplateRow(emailTemplate entities.EmailTemplate) table.Row {
	return table.Row{
		ID: emailTemplate.ID,
		Values: map[string]interface{}{
			"name":      emailTemplate.Name,
			"subject":   emailTemplate.Subject,
			"type":      emailTemplate.TemplateType,
			"variables": len(emailTemplate.Variables),
			"active":    emailTemplate.IsActive,
		},
	}
}

func (r *frontendRouter) EmailTemplatesPage(ctx *gin.Context) {
	params := r.parseListParams(ctx)
	emailTemplates, total, err := r.emailTemplateService.GetEmailTemplates(ctx, params.Query)
	if err != nil {
		r.renderError(ctx, err, "could not fetch email templates")
		return
	}
	if r.redirectPastLastPage(ctx, params, emailTemplatesPath, total) {
		return
	}

	var typeOptions []filter.Option
	for _, templateType := range r.cfg.EmailTemplates.Types {
		typeOptions = append(typeOptions, filter.Option{Value: templateType, Label: templateType})
	}
	drawer := filter.New("Filter email templates", emailTemplatesPath, params.Values,
		filter.Text("search", "Search", "Name or subject"),
		filter.Select("status", "Type", typeOptions...),
	)

	r.renderPage(ctx, listPage, pageRender{
		title: "Email Templates",
		data: listDataModel{
			Heading:     "Email Templates",
			Path:        emailTemplatesPath,
			CreateHref:  emailTemplatesPath + "/new",
			CreateLabel: "Add email template",
			Drawer:      &drawer,
			Table: table.Render(table.Props{
				Rows:    table.Rows(emailTemplates, emailTemplateRow),
				Columns: emailTemplateColumns,
				MenuOptions: []table.MenuOption{
					{Label: "Edit", Href: emailTemplatesPath + "/{id}/edit"},
					{Label: "Preview", Href: emailTemplatesPath + "/{id}/preview"},
					{Label: "Delete", Href: emailTemplatesPath + "/{id}/delete", Method: http.MethodPost, Danger: true,
						Confirm: "Delete this email template?"},
				},
				Pagination:   params.pagination(emailTemplatesPath, total, r.cfg.Pagination.PageSizeOptions),
				EmptyMessage: "No email templates found",
			}),
			Hidden: params.hiddenFields(),
		},
	})
}

func (r *frontendRouter) samples() map[string]string {
	return templatevars.MergeSamples(r.cfg.EmailTemplates.SampleValues)
}

func (r *frontendRouter) buildEmailTemplateForm(title, action string, emailTemplate entities.EmailTemplate) form.Form {
	return form.Form{
		Title:       title,
		Action:      action,
		SubmitLabel: "Save",
		CancelHref:  emailTemplatesPath,
		Sections: []form.Section{
			{Title: "Template", Fields: []form.Field{
				{Name: "name", Label: "Name", Type: form.TextField, Value: emailTemplate.Name, Required: true},
				{Name: "subject", Label: "Subject", Type: form.TextField, Value: emailTemplate.Subject, Required: true},
				form.Select("template_type", "Type", emailTemplate.TemplateType, true, form.Options(r.cfg.EmailTemplates.Types...)...),
				{Name: "content", Label: "Content", Type: form.TextareaField, Value: emailTemplate.Content, Required: true,
					Help: "Use {{variable_name}} to insert a variable"},
				form.Checkbox("is_active", "Active", emailTemplate.IsActive),
			}},
		},
	}
}

func (r *frontendRouter) renderEmailTemplateForm(ctx *gin.Context, status int, f form.Form, emailTemplate entities.EmailTemplate, alert string) {
	r.renderPage(ctx, emailTemplateFormPage, pageRender{
		status: status,
		title:  f.Title,
		alert:  alert,
		data: emailTemplateFormDataModel{
			Form:      f,
			Variables: templatevars.Extract(emailTemplate.Content),
			Preview:   templatevars.Preview(emailTemplate.Content, r.samples()),
		},
	})
}

// apply merges the submitted form over emailTemplate. Variables always follow the content.
func (req emailTemplateForm) apply(emailTemplate entities.EmailTemplate) entities.EmailTemplate {
	emailTemplate.Name = strings.TrimSpace(req.Name)
	emailTemplate.Subject = strings.TrimSpace(req.Subject)
	emailTemplate.TemplateType = req.TemplateType
	emailTemplate.Content = req.Content
	emailTemplate.Variables = templatevars.Extract(req.Content)
	emailTemplate.IsActive = req.IsActive == "true" || req.IsActive == "on"
	return emailTemplate
}

func (r *frontendRouter) NewEmailTemplatePage(ctx *gin.Context) {
	emailTemplate := entities.EmailTemplate{IsActive: true}
	if len(r.cfg.EmailTemplates.Types) > 0 {
		emailTemplate.TemplateType = r.cfg.EmailTemplates.Types[0]
	}

	r.renderEmailTemplateForm(ctx, http.StatusOK, r.buildEmailTemplateForm("Add email template", emailTemplatesPath+"/new", emailTemplate), emailTemplate, "")
}

func (r *frontendRouter) CreateEmailTemplate(ctx *gin.Context) {
	var req emailTemplateForm
	bindErr := ctx.ShouldBind(&req)
	emailTemplate := req.apply(entities.EmailTemplate{})
	f := r.buildEmailTemplateForm("Add email template", emailTemplatesPath+"/new", emailTemplate)

	if ctx.PostForm(previewParam) != "" {
		r.renderEmailTemplateForm(ctx, http.StatusOK, f, emailTemplate, "")
		return
	}
	if bindErr != nil {
		r.renderEmailTemplateForm(ctx, http.StatusBadRequest, f, emailTemplate, "Name, subject, type and content are required")
		return
	}

	if _, err := r.emailTemplateService.CreateEmailTemplate(ctx, emailTemplate); err != nil {
		r.renderEmailTemplateForm(ctx, http.StatusOK, f, emailTemplate, r.alertFor(err, "create the email template"))
		return
	}

	r.redirectWithFlash(ctx, emailTemplatesPath, "Email template created")
}

func (r *frontendRouter) EditEmailTemplatePage(ctx *gin.Context) {
	id := ctx.Param("id")
	emailTemplate, err := r.emailTemplateService.GetEmailTemplateWithID(ctx, id)
	if err != nil {
		r.renderError(ctx, err, fmt.Sprintf("could not fetch email template %s", id))
		return
	}

	r.renderEmailTemplateForm(ctx, http.StatusOK, r.buildEmailTemplateForm("Edit email template", r.emailTemplatePath(id, "edit"), *emailTemplate), *emailTemplate, "")
}

func (r *frontendRouter) UpdateEmailTemplate(ctx *gin.Context) {
	id := ctx.Param("id")
	existing, err := r.emailTemplateService.GetEmailTemplateWithID(ctx, id)
	if err != nil {
		r.renderError(ctx, err, fmt.Sprintf("could not fetch email template %s", id))
		return
	}

	var req emailTemplateForm
	bindErr := ctx.ShouldBind(&req)
	emailTemplate := req.apply(*existing)
	f := r.buildEmailTemplateForm("Edit email template", r.emailTemplatePath(id, "edit"), emailTemplate)

	if ctx.PostForm(previewParam) != "" {
		r.renderEmailTemplateForm(ctx, http.StatusOK, f, emailTemplate, "")
		return
	}
	if bindErr != nil {
		r.renderEmailTemplateForm(ctx, http.StatusBadRequest, f, emailTemplate, "Name, subject, type and content are required")
		return
	}

	if err := r.emailTemplateService.UpdateEmailTemplateWithID(ctx, id, emailTemplate); err != nil {
		r.renderEmailTemplateForm(ctx, http.StatusOK, f, emailTemplate, r.alertFor(err, "update the email template"))
		return
	}

	r.redirectWithFlash(ctx, emailTemplatesPath, "Email template updated")
}

func (r *frontendRouter) DeleteEmailTemplate(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := r.emailTemplateService.DeleteEmailTemplateWithID(ctx, id); err != nil {
		r.renderError(ctx, err, fmt.Sprintf("could not delete email template %s", id))
		return
	}

	r.redirectWithFlash(ctx, emailTemplatesPath, "Email template deleted")
}

func (r *frontendRouter) sendTestForm(id, email string) form.Form {
	return form.Form{
		Title:       "Send a test email",
		Action:      r.emailTemplatePath(id, "send-test"),
		SubmitLabel: "Send test",
		Sections: []form.Section{{Fields: []form.Field{
			{Name: "email", Label: "Email", Type: form.EmailField, Value: email, Required: true},
		}}},
	}
}

func (r *frontendRouter) renderEmailTemplatePreview(ctx *gin.Context, status int, emailTemplate entities.EmailTemplate, sendForm form.Form, alert string) {
	samples := r.samples()
	r.renderPage(ctx, emailTemplatePreviewPage, pageRender{
		status: status,
		title:  "Preview " + emailTemplate.Name,
		alert:  alert,
		data: emailTemplatePreviewDataModel{
			Template:  emailTemplate,
			Subject:   templatevars.Substitute(emailTemplate.Subject, samples),
			Preview:   templatevars.Preview(emailTemplate.Content, samples),
			Variables: templatevars.Extract(emailTemplate.Content),
			SendForm:  sendForm,
		},
	})
}

func (r *frontendRouter) EmailTemplatePreviewPage(ctx *gin.Context) {
	id := ctx.Param("id")
	emailTemplate, err := r.emailTemplateService.GetEmailTemplateWithID(ctx, id)
	if err != nil {
		r.renderError(ctx, err, fmt.Sprintf("could not fetch email template %s", id))
		return
	}

	r.renderEmailTemplatePreview(ctx, http.StatusOK, *emailTemplate, r.sendTestForm(id, currentUser(ctx).Email), "")
}

// SendTestEmail sends the template rendered with sample values to the given address
func (r *frontendRouter) SendTestEmail(ctx *gin.Context) {
	id := ctx.Param("id")
	emailTemplate, err := r.emailTemplateService.GetEmailTemplateWithID(ctx, id)
	if err != nil {
		r.renderError(ctx, err, fmt.Sprintf("could not fetch email template %s", id))
		return
	}

	var req sendTestForm
	if err := ctx.ShouldBind(&req); err != nil {
		sendForm := r.sendTestForm(id, req.Email).WithErrors(&form.FieldError{Field: "Email", Message: "must be a valid email address"})
		r.renderEmailTemplatePreview(ctx, http.StatusBadRequest, *emailTemplate, sendForm, "Please enter a valid email address")
		return
	}

	if err := r.emailService.SendTemplatePreview(*emailTemplate, r.samples(), req.Email); err != nil {
		r.logger.Error("could not send test email", zap.String("template", id), zap.Error(err))
		r.renderEmailTemplatePreview(ctx, http.StatusOK, *emailTemplate, r.sendTestForm(id, req.Email), "The test email could not be sent")
		return
	}

	r.redirectWithFlash(ctx, r.emailTemplatePath(id, "preview"), fmt.Sprintf("Test email sent to %s", req.Email))
}

func (r *frontendRouter) emailTemplatePath(id, action string) string {
	return fmt.Sprintf("%s/%s/%s", emailTemplatesPath, id, action)
}
