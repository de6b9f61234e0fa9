package entities

// EmailTemplate is an email the platform sends, with {{name}} variable tokens in its content
type EmailTemplate struct {
	ID           string   `json:"_id,omitempty"`
	Name         string   `json:"name"`
	Subject      string   `json:"subject"`
	TemplateType string   `json:"template_type"`
	Content      string   `json:"content"`
	Variables    []string `json:"variables"`
	IsActive     bool     `json:"is_active"`
}
