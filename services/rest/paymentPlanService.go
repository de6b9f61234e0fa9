package rest

import (
	"context"
	"net/http"

	"github.com/exiby/exiby_admin/backend"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/services"
	"go.uber.org/zap"
)

const paymentPlanResource = "payment_plan"

type paymentPlanService struct {
	logger *zap.Logger
	client backend.Client
}

// NewPaymentPlanService creates a new PaymentPlanService
func NewPaymentPlanService(logger *zap.Logger, client backend.Client) services.PaymentPlanService {
	return &paymentPlanService{
		logger: logger,
		client: client,
	}
}

func (s *paymentPlanService) GetPaymentPlans(ctx context.Context, query entities.ListQuery) ([]entities.PaymentPlan, int, error) {
	return getList[entities.PaymentPlan](ctx, s.client, endpoint(paymentPlanResource, "list"), query.Values())
}

func (s *paymentPlanService) GetPaymentPlanWithID(ctx context.Context, id string) (*entities.PaymentPlan, error) {
	return getOne[entities.PaymentPlan](ctx, s.client, endpoint(paymentPlanResource, "detail"), id)
}

func (s *paymentPlanService) CreatePaymentPlan(ctx context.Context, plan entities.PaymentPlan) (*entities.PaymentPlan, error) {
	return create(ctx, s.client, endpoint(paymentPlanResource, "add"), plan)
}

func (s *paymentPlanService) UpdatePaymentPlanWithID(ctx context.Context, id string, plan entities.PaymentPlan) error {
	return sendWithID(ctx, s.client, http.MethodPut, endpoint(paymentPlanResource, "update"), id, plan)
}

func (s *paymentPlanService) DeletePaymentPlanWithID(ctx context.Context, id string) error {
	return sendWithID(ctx, s.client, http.MethodDelete, endpoint(paymentPlanResource, "delete"), id, nil)
}
