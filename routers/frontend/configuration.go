package frontend

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/exiby/exiby_admin/components/form"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/services"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const configurationPath = "/configuration"

var (
	emailProviders   = []string{"smtp", "sendgrid"}
	paymentProviders = []string{"stripe", "paypal", "razorpay"}
)

var legalDocumentTitles = map[entities.LegalDocumentKind]string{
	entities.TermsOfService: "Terms of Service",
	entities.PrivacyPolicy:  "Privacy Policy",
	entities.RefundPolicy:   "Refund Policy",
}

// secret fields are never echoed back; leaving them blank keeps the stored value
const secretHelp = "Leave blank to keep the current value"

func emailGatewayForm(gateway entities.EmailGatewayConfig, port string) form.Form {
	if port == "" && gateway.Port != 0 {
		port = fmt.Sprint(gateway.Port)
	}
	return form.Form{
		Title:       "Email gateway",
		Action:      configurationPath + "/email-gateway",
		SubmitLabel: "Save email gateway",
		Sections: []form.Section{{Fields: []form.Field{
			form.Select("provider", "Provider", gateway.Provider, true, form.Options(emailProviders...)...),
			{Name: "host", Label: "Host", Type: form.TextField, Value: gateway.Host, Placeholder: "smtp.example.com"},
			{Name: "port", Label: "Port", Type: form.NumberField, Value: port, Placeholder: "587"},
			{Name: "username", Label: "Username", Type: form.TextField, Value: gateway.Username},
			{Name: "password", Label: "Password", Type: form.PasswordField, Help: secretHelp},
			{Name: "sender_name", Label: "Sender name", Type: form.TextField, Value: gateway.SenderName},
			{Name: "sender_email", Label: "Sender email", Type: form.EmailField, Value: gateway.SenderEmail, Required: true},
		}}},
	}
}

func paymentGatewayForm(gateway entities.PaymentGatewayConfig) form.Form {
	return form.Form{
		Title:       "Payment gateway",
		Action:      configurationPath + "/payment-gateway",
		SubmitLabel: "Save payment gateway",
		Sections: []form.Section{{Fields: []form.Field{
			form.Select("provider", "Provider", gateway.Provider, true, form.Options(paymentProviders...)...),
			{Name: "publishable_key", Label: "Publishable key", Type: form.TextField, Value: gateway.PublishableKey},
			{Name: "secret_key", Label: "Secret key", Type: form.PasswordField, Help: secretHelp},
			{Name: "webhook_secret", Label: "Webhook secret", Type: form.PasswordField, Help: secretHelp},
			{Name: "currency", Label: "Currency", Type: form.TextField, Value: gateway.Currency, Placeholder: "USD"},
			form.Checkbox("test_mode", "Test mode", gateway.TestMode),
		}}},
	}
}

func legalDocumentLinks() []legalDocumentLink {
	links := make([]legalDocumentLink, 0, len(entities.LegalDocumentKinds))
	for _, kind := range entities.LegalDocumentKinds {
		links = append(links, legalDocumentLink{
			Kind:  kind,
			Title: legalDocumentTitles[kind],
			Href:  fmt.Sprintf("%s/legal/%s", configurationPath, kind),
		})
	}
	return links
}

func (r *frontendRouter) renderConfiguration(ctx *gin.Context, status int, emailForm, paymentForm form.Form, alert string) {
	r.renderPage(ctx, configurationPage, pageRender{
		status: status,
		title:  "Configuration",
		alert:  alert,
		data: configurationDataModel{
			EmailGateway:   emailForm,
			PaymentGateway: paymentForm,
			LegalDocuments: legalDocumentLinks(),
		},
	})
}

// loadGateways fetches both gateway configs, treating a missing config as an empty one
func (r *frontendRouter) loadGateways(ctx *gin.Context) (*entities.EmailGatewayConfig, *entities.PaymentGatewayConfig, error) {
	emailGateway, err := r.configurationService.GetEmailGatewayConfig(ctx)
	if errors.Cause(err) == services.ErrNotFound {
		emailGateway, err = &entities.EmailGatewayConfig{}, nil
	}
	if err != nil {
		return nil, nil, err
	}

	paymentGateway, err := r.configurationService.GetPaymentGatewayConfig(ctx)
	if errors.Cause(err) == services.ErrNotFound {
		paymentGateway, err = &entities.PaymentGatewayConfig{}, nil
	}
	if err != nil {
		return nil, nil, err
	}

	return emailGateway, paymentGateway, nil
}

func (r *frontendRouter) ConfigurationPage(ctx *gin.Context) {
	emailGateway, paymentGateway, err := r.loadGateways(ctx)
	if err != nil {
		r.renderError(ctx, err, "could not fetch the platform configuration")
		return
	}

	r.renderConfiguration(ctx, http.StatusOK, emailGatewayForm(*emailGateway, ""), paymentGatewayForm(*paymentGateway), "")
}

func (r *frontendRouter) SaveEmailGateway(ctx *gin.Context) {
	emailGateway, paymentGateway, err := r.loadGateways(ctx)
	if err != nil {
		r.renderError(ctx, err, "could not fetch the platform configuration")
		return
	}
	if err := ctx.Request.ParseForm(); err != nil {
		r.renderConfiguration(ctx, http.StatusBadRequest, emailGatewayForm(*emailGateway, ""), paymentGatewayForm(*paymentGateway), "The form could not be read")
		return
	}

	values := ctx.Request.PostForm
	gateway := *emailGateway
	gateway.Provider = values.Get("provider")
	gateway.Host = strings.TrimSpace(values.Get("host"))
	gateway.Username = strings.TrimSpace(values.Get("username"))
	gateway.SenderName = strings.TrimSpace(values.Get("sender_name"))
	gateway.SenderEmail = strings.TrimSpace(values.Get("sender_email"))
	if password := values.Get("password"); password != "" {
		gateway.Password = password
	}

	var errs []*form.FieldError
	port, err := form.Int(values, "port", "Port")
	if fieldErr, ok := err.(*form.FieldError); ok {
		errs = append(errs, fieldErr)
	} else if port < 0 || port > 65535 {
		errs = append(errs, &form.FieldError{Field: "Port", Message: "must be between 0 and 65535"})
	}
	if gateway.SenderEmail == "" {
		errs = append(errs, &form.FieldError{Field: "Sender email", Message: "is required"})
	}
	if len(errs) > 0 {
		f := emailGatewayForm(gateway, values.Get("port")).WithErrors(errs...)
		r.renderConfiguration(ctx, http.StatusBadRequest, f, paymentGatewayForm(*paymentGateway), fieldErrorsAlert(errs))
		return
	}
	gateway.Port = port

	if err := r.configurationService.SaveEmailGatewayConfig(ctx, gateway); err != nil {
		r.renderConfiguration(ctx, http.StatusOK, emailGatewayForm(gateway, ""), paymentGatewayForm(*paymentGateway), r.alertFor(err, "save the email gateway"))
		return
	}

	r.redirectWithFlash(ctx, configurationPath, "Email gateway saved")
}

func (r *frontendRouter) SavePaymentGateway(ctx *gin.Context) {
	emailGateway, paymentGateway, err := r.loadGateways(ctx)
	if err != nil {
		r.renderError(ctx, err, "could not fetch the platform configuration")
		return
	}
	if err := ctx.Request.ParseForm(); err != nil {
		r.renderConfiguration(ctx, http.StatusBadRequest, emailGatewayForm(*emailGateway, ""), paymentGatewayForm(*paymentGateway), "The form could not be read")
		return
	}

	values := ctx.Request.PostForm
	gateway := *paymentGateway
	gateway.Provider = values.Get("provider")
	gateway.PublishableKey = strings.TrimSpace(values.Get("publishable_key"))
	gateway.Currency = strings.ToUpper(strings.TrimSpace(values.Get("currency")))
	gateway.TestMode = form.Bool(values, "test_mode")
	if secret := values.Get("secret_key"); secret != "" {
		gateway.SecretKey = secret
	}
	if secret := values.Get("webhook_secret"); secret != "" {
		gateway.WebhookSecret = secret
	}

	if gateway.Provider == "" {
		errs := []*form.FieldError{{Field: "Provider", Message: "is required"}}
		r.renderConfiguration(ctx, http.StatusBadRequest, emailGatewayForm(*emailGateway, ""), paymentGatewayForm(gateway).WithErrors(errs...), fieldErrorsAlert(errs))
		return
	}

	if err := r.configurationService.SavePaymentGatewayConfig(ctx, gateway); err != nil {
		r.renderConfiguration(ctx, http.StatusOK, emailGatewayForm(*emailGateway, ""), paymentGatewayForm(gateway), r.alertFor(err, "save the payment gateway"))
		return
	}

	r.redirectWithFlash(ctx, configurationPath, "Payment gateway saved")
}

func legalDocumentForm(document entities.LegalDocument) form.Form {
	return form.Form{
		Title:       legalDocumentTitles[document.Kind],
		Action:      fmt.Sprintf("%s/legal/%s", configurationPath, document.Kind),
		SubmitLabel: "Save",
		CancelHref:  configurationPath,
		Sections: []form.Section{{Fields: []form.Field{
			{Name: "title", Label: "Title", Type: form.TextField, Value: document.Title, Required: true},
			{Name: "content", Label: "Content", Type: form.TextareaField, Value: document.Content},
		}}},
	}
}

// legalDocumentKind reads the :kind param, rendering a 404 for unknown kinds
func (r *frontendRouter) legalDocumentKind(ctx *gin.Context) (entities.LegalDocumentKind, bool) {
	kind := entities.LegalDocumentKind(ctx.Param("kind"))
	if !kind.Valid() {
		r.renderError(ctx, services.ErrNotFound, fmt.Sprintf("unknown legal document %s", kind))
		return "", false
	}
	return kind, true
}

func (r *frontendRouter) LegalDocumentPage(ctx *gin.Context) {
	kind, ok := r.legalDocumentKind(ctx)
	if !ok {
		return
	}

	document, err := r.configurationService.GetLegalDocument(ctx, kind)
	if errors.Cause(err) == services.ErrNotFound {
		document, err = &entities.LegalDocument{Kind: kind, Title: legalDocumentTitles[kind]}, nil
	}
	if err != nil {
		r.renderError(ctx, err, fmt.Sprintf("could not fetch legal document %s", kind))
		return
	}

	f := legalDocumentForm(*document)
	r.renderPage(ctx, formPage, pageRender{title: f.Title, data: formDataModel{Form: f}})
}

func (r *frontendRouter) SaveLegalDocument(ctx *gin.Context) {
	kind, ok := r.legalDocumentKind(ctx)
	if !ok {
		return
	}

	document := entities.LegalDocument{
		Kind:    kind,
		Title:   strings.TrimSpace(ctx.PostForm("title")),
		Content: ctx.PostForm("content"),
	}
	if document.Title == "" {
		errs := []*form.FieldError{{Field: "Title", Message: "is required"}}
		f := legalDocumentForm(document).WithErrors(errs...)
		r.renderPage(ctx, formPage, pageRender{status: http.StatusBadRequest, title: f.Title, alert: fieldErrorsAlert(errs), data: formDataModel{Form: f}})
		return
	}

	if err := r.configurationService.SaveLegalDocument(ctx, document); err != nil {
		f := legalDocumentForm(document)
		r.renderPage(ctx, formPage, pageRender{title: f.Title, alert: r.alertFor(err, "save the document"), data: formDataModel{Form: f}})
		return
	}

	r.redirectWithFlash(ctx, configurationPath, fmt.Sprintf("%s saved", legalDocumentTitles[kind]))
}
