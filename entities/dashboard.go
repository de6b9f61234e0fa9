package entities

// DashboardStats are the platform totals shown on the dashboard
type DashboardStats struct {
	TotalOrganizations int `json:"total_organizations"`
	TotalCompanies     int `json:"total_companies"`
	TotalEvents        int `json:"total_events"`
	ActivePlans        int `json:"active_plans"`
}
