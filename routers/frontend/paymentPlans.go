package frontend

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/exiby/exiby_admin/components/filter"
	"github.com/exiby/exiby_admin/components/form"
	"github.com/exiby/exiby_admin/components/table"
	"github.com/exiby/exiby_admin/entities"
	"github.com/gin-gonic/gin"
)

const paymentPlansPath = "/payment-plans"

var (
	planTypes     = []string{"free", "basic", "professional", "enterprise"}
	billingCycles = []string{"monthly", "quarterly", "yearly", "lifetime"}
)

var paymentPlanColumns = []table.Column{
	{Key: "name", Label: "Name", Sortable: true},
	{Key: "type", Label: "Type", Type: table.BadgeColumn},
	{Key: "cycle", Label: "Billing"},
	{Key: "price", Label: "Price", Render: func(row table.Row) string {
		price, _ := row.Values["price"].(float64)
		currency, _ := row.Values["currency"].(string)
		return strings.TrimSpace(table.FormatValue(table.CurrencyColumn, price) + " " + currency)
	}},
	{Key: "max_events", Label: "Max events", Type: table.NumberColumn},
	{Key: "popular", Label: "Popular"},
	{Key: "active", Label: "Status", Type: table.StatusColumn},
}

func paymentPlanRow(plan entities.PaymentPlan) table.Row {
	return table.Row{
		ID: plan.ID,
		Values: map[string]interface{}{
			"name":       plan.Name,
			"type":       plan.PlanType,
			"cycle":      plan.BillingCycle,
			"price":      plan.Price,
			"currency":   plan.Currency,
			"max_events": plan.MaxEvents,
			"popular":    plan.IsPopular,
			"active":     plan.IsActive,
		},
	}
}

func (r *frontendRouter) PaymentPlansPage(ctx *gin.Context) {
	params := r.parseListParams(ctx)
	plans, total, err := r.paymentPlanService.GetPaymentPlans(ctx, params.Query)
	if err != nil {
		r.renderError(ctx, err, "could not fetch payment plans")
		return
	}
	if r.redirectPastLastPage(ctx, params, paymentPlansPath, total) {
		return
	}

	drawer := filter.New("Filter payment plans", paymentPlansPath, params.Values,
		filter.Text("search", "Search", "Plan name"),
		filter.Select("status", "Status", filter.Option{Value: "active", Label: "Active"}, filter.Option{Value: "inactive", Label: "Inactive"}),
	)

	r.renderPage(ctx, listPage, pageRender{
		title: "Payment Plans",
		data: listDataModel{
			Heading:     "Payment Plans",
			Path:        paymentPlansPath,
			CreateHref:  paymentPlansPath + "/new",
			CreateLabel: "Add payment plan",
			Drawer:      &drawer,
			Table: table.Render(table.Props{
				Rows:    table.Rows(plans, paymentPlanRow),
				Columns: paymentPlanColumns,
				MenuOptions: []table.MenuOption{
					{Label: "Edit", Href: paymentPlansPath + "/{id}/edit"},
					{Label: "Delete", Href: paymentPlansPath + "/{id}/delete", Method: http.MethodPost, Danger: true,
						Confirm: "Delete this payment plan? Subscribed organizations keep their current plan."},
				},
				Pagination:   params.pagination(paymentPlansPath, total, r.cfg.Pagination.PageSizeOptions),
				EmptyMessage: "No payment plans found",
			}),
			Hidden: params.hiddenFields(),
		},
	})
}

func paymentPlanForm(title, action string, plan entities.PaymentPlan, raw url.Values) form.Form {
	// echo what was typed when a number could not be parsed
	number := func(name string, value string) string {
		if raw != nil {
			return raw.Get(name)
		}
		return value
	}

	return form.Form{
		Title:       title,
		Action:      action,
		SubmitLabel: "Save",
		CancelHref:  paymentPlansPath,
		Sections: []form.Section{
			{Title: "Plan", Fields: []form.Field{
				{Name: "name", Label: "Name", Type: form.TextField, Value: plan.Name, Required: true},
				{Name: "description", Label: "Description", Type: form.TextareaField, Value: plan.Description},
				form.Select("plan_type", "Plan type", plan.PlanType, true, form.Options(planTypes...)...),
				form.Select("billing_cycle", "Billing cycle", plan.BillingCycle, true, form.Options(billingCycles...)...),
			}},
			{Title: "Pricing", Fields: []form.Field{
				{Name: "price", Label: "Price", Type: form.NumberField, Value: number("price", table.FormatValue(table.CurrencyColumn, plan.Price))},
				{Name: "currency", Label: "Currency", Type: form.TextField, Value: plan.Currency, Placeholder: "USD"},
				{Name: "trial_days", Label: "Trial days", Type: form.NumberField, Value: number("trial_days", strconv.Itoa(plan.TrialDays))},
			}},
			{Title: "Limits", Fields: []form.Field{
				{Name: "max_events", Label: "Max events", Type: form.NumberField, Value: number("max_events", strconv.Itoa(plan.MaxEvents))},
				{Name: "max_attendees", Label: "Max attendees", Type: form.NumberField, Value: number("max_attendees", strconv.Itoa(plan.MaxAttendees))},
				{Name: "max_companies", Label: "Max companies", Type: form.NumberField, Value: number("max_companies", strconv.Itoa(plan.MaxCompanies))},
			}},
			{Title: "Visibility", Fields: []form.Field{
				form.Checkbox("is_active", "Active", plan.IsActive),
				form.Checkbox("is_popular", "Popular", plan.IsPopular),
			}},
		},
	}
}

// parsePaymentPlan merges the submitted form over plan, collecting one error per invalid field
func parsePaymentPlan(values url.Values, plan entities.PaymentPlan) (entities.PaymentPlan, []*form.FieldError) {
	var errs []*form.FieldError
	collect := func(err error) {
		if fieldErr, ok := err.(*form.FieldError); ok {
			errs = append(errs, fieldErr)
		}
	}

	plan.Name = strings.TrimSpace(values.Get("name"))
	plan.Description = strings.TrimSpace(values.Get("description"))
	plan.PlanType = values.Get("plan_type")
	plan.BillingCycle = values.Get("billing_cycle")
	plan.Currency = strings.ToUpper(strings.TrimSpace(values.Get("currency")))
	plan.IsActive = form.Bool(values, "is_active")
	plan.IsPopular = form.Bool(values, "is_popular")

	var err error
	if plan.Price, err = form.Float(values, "price", "Price"); err != nil {
		collect(err)
	}
	if plan.TrialDays, err = form.Int(values, "trial_days", "Trial days"); err != nil {
		collect(err)
	}
	if plan.MaxEvents, err = form.Int(values, "max_events", "Max events"); err != nil {
		collect(err)
	}
	if plan.MaxAttendees, err = form.Int(values, "max_attendees", "Max attendees"); err != nil {
		collect(err)
	}
	if plan.MaxCompanies, err = form.Int(values, "max_companies", "Max companies"); err != nil {
		collect(err)
	}

	if plan.Name == "" {
		errs = append(errs, &form.FieldError{Field: "Name", Message: "is required"})
	}
	return plan, errs
}

func (r *frontendRouter) renderPaymentPlanForm(ctx *gin.Context, status int, f form.Form, alert string) {
	r.renderPage(ctx, formPage, pageRender{status: status, title: f.Title, alert: alert, data: formDataModel{Form: f}})
}

func fieldErrorsAlert(errs []*form.FieldError) string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

func (r *frontendRouter) NewPaymentPlanPage(ctx *gin.Context) {
	plan := entities.PaymentPlan{PlanType: planTypes[1], BillingCycle: billingCycles[0], IsActive: true}
	r.renderPaymentPlanForm(ctx, http.StatusOK, paymentPlanForm("Add payment plan", paymentPlansPath+"/new", plan, nil), "")
}

func (r *frontendRouter) CreatePaymentPlan(ctx *gin.Context) {
	title, action := "Add payment plan", paymentPlansPath+"/new"
	if err := ctx.Request.ParseForm(); err != nil {
		r.renderPaymentPlanForm(ctx, http.StatusBadRequest, paymentPlanForm(title, action, entities.PaymentPlan{}, nil), "The form could not be read")
		return
	}

	values := ctx.Request.PostForm
	plan, errs := parsePaymentPlan(values, entities.PaymentPlan{})
	if len(errs) > 0 {
		r.renderPaymentPlanForm(ctx, http.StatusBadRequest, paymentPlanForm(title, action, plan, values).WithErrors(errs...), fieldErrorsAlert(errs))
		return
	}

	if _, err := r.paymentPlanService.CreatePaymentPlan(ctx, plan); err != nil {
		r.renderPaymentPlanForm(ctx, http.StatusOK, paymentPlanForm(title, action, plan, values), r.alertFor(err, "create the payment plan"))
		return
	}

	r.redirectWithFlash(ctx, paymentPlansPath, "Payment plan created")
}

func (r *frontendRouter) EditPaymentPlanPage(ctx *gin.Context) {
	id := ctx.Param("id")
	plan, err := r.paymentPlanService.GetPaymentPlanWithID(ctx, id)
	if err != nil {
		r.renderError(ctx, err, fmt.Sprintf("could not fetch payment plan %s", id))
		return
	}

	r.renderPaymentPlanForm(ctx, http.StatusOK, paymentPlanForm("Edit payment plan", r.paymentPlanEditPath(id), *plan, nil), "")
}

func (r *frontendRouter) UpdatePaymentPlan(ctx *gin.Context) {
	id := ctx.Param("id")
	title, action := "Edit payment plan", r.paymentPlanEditPath(id)

	existing, err := r.paymentPlanService.GetPaymentPlanWithID(ctx, id)
	if err != nil {
		r.renderError(ctx, err, fmt.Sprintf("could not fetch payment plan %s", id))
		return
	}
	if err := ctx.Request.ParseForm(); err != nil {
		r.renderPaymentPlanForm(ctx, http.StatusBadRequest, paymentPlanForm(title, action, *existing, nil), "The form could not be read")
		return
	}

	values := ctx.Request.PostForm
	plan, errs := parsePaymentPlan(values, *existing)
	if len(errs) > 0 {
		r.renderPaymentPlanForm(ctx, http.StatusBadRequest, paymentPlanForm(title, action, plan, values).WithErrors(errs...), fieldErrorsAlert(errs))
		return
	}

	if err := r.paymentPlanService.UpdatePaymentPlanWithID(ctx, id, plan); err != nil {
		r.renderPaymentPlanForm(ctx, http.StatusOK, paymentPlanForm(title, action, plan, values), r.alertFor(err, "update the payment plan"))
		return
	}

	r.redirectWithFlash(ctx, paymentPlansPath, "Payment plan updated")
}

func (r *frontendRouter) DeletePaymentPlan(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := r.paymentPlanService.DeletePaymentPlanWithID(ctx, id); err != nil {
		r.renderError(ctx, err, fmt.Sprintf("could not delete payment plan %s", id))
		return
	}

	r.redirectWithFlash(ctx, paymentPlansPath, "Payment plan deleted")
}

func (r *frontendRouter) paymentPlanEditPath(id string) string {
	return fmt.Sprintf("%s/%s/edit", paymentPlansPath, id)
}
