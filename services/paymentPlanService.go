package services

import (
	"context"

	"github.com/exiby/exiby_admin/entities"
)

// PaymentPlanService is the service for interactions with payment plans
type PaymentPlanService interface {
	GetPaymentPlans(ctx context.Context, query entities.ListQuery) ([]entities.PaymentPlan, int, error)
	GetPaymentPlanWithID(ctx context.Context, id string) (*entities.PaymentPlan, error)
	CreatePaymentPlan(ctx context.Context, plan entities.PaymentPlan) (*entities.PaymentPlan, error)
	UpdatePaymentPlanWithID(ctx context.Context, id string, plan entities.PaymentPlan) error
	DeletePaymentPlanWithID(ctx context.Context, id string) error
}
