package entities

import "time"

// OrgUser is the account owning an organization or company
type OrgUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Bio is the public description of an organization or company
type Bio struct {
	Description string `json:"description,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Website     string `json:"website,omitempty"`
}

// SocialLinks are the social media profiles of an organization or company
type SocialLinks struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Subscription is the payment plan an organization is subscribed to
type Subscription struct {
	PlanID    string     `json:"plan_id,omitempty"`
	PlanName  string     `json:"plan_name,omitempty"`
	Status    string     `json:"status,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Organization is an event organizer registered on the platform
type Organization struct {
	ID           string       `json:"_id,omitempty"`
	OrgUser      OrgUser      `json:"org_user"`
	Bio          Bio          `json:"bio"`
	SocialLinks  SocialLinks  `json:"social_links"`
	Status       bool         `json:"status"`
	Subscription Subscription `json:"subscription"`
	CreatedAt    *time.Time   `json:"createdAt,omitempty"`
	DeletedAt    *time.Time   `json:"deletedAt,omitempty"`
}

// Company is an exhibiting company belonging to an organization
type Company struct {
	ID             string       `json:"_id,omitempty"`
	OrganizationID string       `json:"organization_id,omitempty"`
	OrgUser        OrgUser      `json:"org_user"`
	Bio            Bio          `json:"bio"`
	SocialLinks    SocialLinks  `json:"social_links"`
	Status         bool         `json:"status"`
	Subscription   Subscription `json:"subscription"`
	CreatedAt      *time.Time   `json:"createdAt,omitempty"`
	DeletedAt      *time.Time   `json:"deletedAt,omitempty"`
}
