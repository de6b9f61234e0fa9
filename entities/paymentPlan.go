package entities

// PaymentPlan is a subscription plan organizations can buy
type PaymentPlan struct {
	ID           string  `json:"_id,omitempty"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	PlanType     string  `json:"plan_type"`
	BillingCycle string  `json:"billing_cycle"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	MaxEvents    int     `json:"max_events"`
	MaxAttendees int     `json:"max_attendees"`
	MaxCompanies int     `json:"max_companies"`
	IsActive     bool    `json:"is_active"`
	IsPopular    bool    `json:"is_popular"`
	TrialDays    int     `json:"trial_days"`
}
