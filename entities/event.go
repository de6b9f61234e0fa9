package entities

import "time"

// VenueType is where an event takes place
type VenueType string

const (
	PhysicalVenue VenueType = "physical"
	VirtualVenue  VenueType = "virtual"
	HybridVenue   VenueType = "hybrid"
)

// Venue is the location of an event
type Venue struct {
	Type      VenueType `json:"type"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	Country   string    `json:"country,omitempty"`
	OnlineURL string    `json:"online_url,omitempty"`
}

// Pricing is the ticket price of an event
type Pricing struct {
	IsFree   bool    `json:"is_free"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency,omitempty"`
}

// Event is an event hosted by an organization
type Event struct {
	ID               string     `json:"_id,omitempty"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Venue            Venue      `json:"venue"`
	Pricing          Pricing    `json:"pricing"`
	Capacity         int        `json:"capacity"`
	IsPublic         bool       `json:"is_public"`
	Status           string     `json:"status"`
	OrganizationName string     `json:"organization_name,omitempty"`
}
