package frontend

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/services"
	"github.com/exiby/exiby_admin/testutils"
	"github.com/golang/mock/gomock"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var testPlan = entities.PaymentPlan{
	ID:           "p1",
	Name:         "Pro",
	PlanType:     "professional",
	BillingCycle: "monthly",
	Price:        49.5,
	Currency:     "USD",
	MaxEvents:    20,
	IsActive:     true,
	IsPopular:    true,
}

func Test_parsePaymentPlan(t *testing.T) {
	tests := []struct {
		name       string
		values     url.Values
		wantPlan   entities.PaymentPlan
		wantFields []string
	}{
		{
			name: "should parse every field",
			values: url.Values{
				"name": {" Pro "}, "plan_type": {"professional"}, "billing_cycle": {"yearly"},
				"price": {"99.99"}, "currency": {"eur"}, "trial_days": {"14"}, "max_events": {"20"},
				"max_attendees": {"500"}, "max_companies": {""}, "is_active": {"on"},
			},
			wantPlan: entities.PaymentPlan{
				Name: "Pro", PlanType: "professional", BillingCycle: "yearly", Price: 99.99, Currency: "EUR",
				TrialDays: 14, MaxEvents: 20, MaxAttendees: 500, IsActive: true,
			},
		},
		{
			name:       "should collect an error per invalid field",
			values:     url.Values{"price": {"free"}, "max_events": {"1.5"}},
			wantFields: []string{"Price", "Max events", "Name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, errs := parsePaymentPlan(tt.values, entities.PaymentPlan{})

			var fields []string
			for _, err := range errs {
				fields = append(fields, err.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
			if tt.wantFields == nil {
				assert.Equal(t, tt.wantPlan, plan)
			}
		})
	}
}

func Test_PaymentPlansPage__should_render_plans(t *testing.T) {
	setup := setupTest(t)
	setup.allowLayout()
	setup.mockPaymentPlanService.EXPECT().GetPaymentPlans(gomock.Any(), entities.ListQuery{Page: 1, Limit: 20}).
		Return([]entities.PaymentPlan{testPlan}, 1, nil).Times(1)
	setup.request(http.MethodGet, paymentPlansPath, nil)

	setup.router.PaymentPlansPage(setup.testCtx)
	setup.testCtx.Writer.WriteHeaderNow() // flush the pending status as gin does after the handler chain

	assert.Equal(t, http.StatusOK, setup.w.Code)
	assert.True(t, testutils.BodyContains(setup.w, "Pro", "49.50 USD", "/payment-plans/p1/edit", "Add payment plan"))
}

func Test_CreatePaymentPlan(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		prep       func(*testSetup)
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "should echo unparsable numbers with errors",
			form:       url.Values{"name": {"Pro"}, "price": {"abc"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{"Price must be a number", `value="abc"`},
		},
		{
			name: "should show the reason the backend rejected the plan",
			form: url.Values{"name": {"Pro"}, "price": {"10"}},
			prep: func(setup *testSetup) {
				setup.mockPaymentPlanService.EXPECT().CreatePaymentPlan(gomock.Any(), gomock.Any()).
					Return(nil, pkgerrors.Wrap(services.ErrInvalidInput, "name already used")).Times(1)
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{"Could not create the payment plan: name already used"},
		},
		{
			name: "should create the plan",
			form: url.Values{"name": {"Pro"}, "price": {"10"}, "currency": {"usd"}, "is_active": {"true"}},
			prep: func(setup *testSetup) {
				setup.mockPaymentPlanService.EXPECT().
					CreatePaymentPlan(gomock.Any(), entities.PaymentPlan{Name: "Pro", Price: 10, Currency: "USD", IsActive: true}).
					Return(&entities.PaymentPlan{ID: "p2"}, nil).Times(1)
			},
			wantStatus: http.StatusSeeOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			setup.allowLayout()
			if tt.prep != nil {
				tt.prep(setup)
			}
			setup.request(http.MethodPost, paymentPlansPath+"/new", tt.form)

			setup.router.CreatePaymentPlan(setup.testCtx)
			setup.testCtx.Writer.WriteHeaderNow() // flush the pending status as gin does after the handler chain

			assert.Equal(t, tt.wantStatus, setup.w.Code)
			assert.True(t, testutils.BodyContains(setup.w, tt.wantBody...))
			if tt.wantStatus == http.StatusSeeOther {
				setup.assertRedirect(t, paymentPlansPath)
				setup.assertFlash(t, "Payment plan created")
			}
		})
	}
}

func Test_EditPaymentPlanPage__should_prefill_the_form(t *testing.T) {
	setup := setupTest(t)
	setup.allowLayout()
	setup.mockPaymentPlanService.EXPECT().GetPaymentPlanWithID(gomock.Any(), "p1").Return(&testPlan, nil).Times(1)
	setup.request(http.MethodGet, "/payment-plans/p1/edit", nil)
	testutils.AddUrlParamsToCtx(setup.testCtx, map[string]string{"id": "p1"})

	setup.router.EditPaymentPlanPage(setup.testCtx)
	setup.testCtx.Writer.WriteHeaderNow() // flush the pending status as gin does after the handler chain

	assert.Equal(t, http.StatusOK, setup.w.Code)
	assert.True(t, testutils.BodyContains(setup.w, `value="Pro"`, `value="49.50"`, `value="20"`))
}

func Test_UpdatePaymentPlan__should_keep_the_id(t *testing.T) {
	setup := setupTest(t)
	setup.mockPaymentPlanService.EXPECT().GetPaymentPlanWithID(gomock.Any(), "p1").Return(&testPlan, nil).Times(1)
	setup.mockPaymentPlanService.EXPECT().UpdatePaymentPlanWithID(gomock.Any(), "p1", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, plan entities.PaymentPlan) error {
			assert.Equal(t, "p1", plan.ID)
			assert.Equal(t, "Pro Plus", plan.Name)
			assert.False(t, plan.IsPopular)
			return nil
		}).Times(1)
	setup.request(http.MethodPost, "/payment-plans/p1/edit", url.Values{"name": {"Pro Plus"}, "price": {"59"}})
	testutils.AddUrlParamsToCtx(setup.testCtx, map[string]string{"id": "p1"})

	setup.router.UpdatePaymentPlan(setup.testCtx)
	setup.testCtx.Writer.WriteHeaderNow() // flush the pending status as gin does after the handler chain

	setup.assertRedirect(t, paymentPlansPath)
	setup.assertFlash(t, "Payment plan updated")
}

func Test_DeletePaymentPlan(t *testing.T) {
	setup := setupTest(t)
	setup.mockPaymentPlanService.EXPECT().DeletePaymentPlanWithID(gomock.Any(), "p1").Return(nil).Times(1)
	setup.request(http.MethodPost, "/payment-plans/p1/delete", url.Values{})
	testutils.AddUrlParamsToCtx(setup.testCtx, map[string]string{"id": "p1"})

	setup.router.DeletePaymentPlan(setup.testCtx)
	setup.testCtx.Writer.WriteHeaderNow() // flush the pending status as gin does after the handler chain

	setup.assertRedirect(t, paymentPlansPath)
	setup.assertFlash(t, "Payment plan deleted")
}
