package entities

import "time"

// EmailGatewayConfig is the outgoing email provider configured for the platform
type EmailGatewayConfig struct {
	Provider    string    `json:"provider" bson:"provider"`
	Host        string    `json:"host" bson:"host"`
	Port        int       `json:"port" bson:"port"`
	Username    string    `json:"username" bson:"username"`
	Password    string    `json:"-" bson:"password"`
	SenderName  string    `json:"sender_name" bson:"sender_name"`
	SenderEmail string    `json:"sender_email" bson:"sender_email"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// PaymentGatewayConfig is the payment provider configured for the platform
type PaymentGatewayConfig struct {
	Provider       string    `json:"provider" bson:"provider"`
	PublishableKey string    `json:"publishable_key" bson:"publishable_key"`
	SecretKey      string    `json:"-" bson:"secret_key"`
	WebhookSecret  string    `json:"-" bson:"webhook_secret"`
	Currency       string    `json:"currency" bson:"currency"`
	TestMode       bool      `json:"test_mode" bson:"test_mode"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// LegalDocumentKind names a legal document shown to platform users
type LegalDocumentKind string

const (
	TermsOfService LegalDocumentKind = "terms"
	PrivacyPolicy  LegalDocumentKind = "privacy"
	RefundPolicy   LegalDocumentKind = "refund"
)

// LegalDocumentKinds lists the editable legal documents
var LegalDocumentKinds = []LegalDocumentKind{TermsOfService, PrivacyPolicy, RefundPolicy}

// Valid reports whether k is a known document kind
func (k LegalDocumentKind) Valid() bool {
	for _, kind := range LegalDocumentKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// LegalDocument is a legal text such as the terms of service
type LegalDocument struct {
	Kind      LegalDocumentKind `json:"kind" bson:"kind"`
	Title     string            `json:"title" bson:"title"`
	Content   string            `json:"content" bson:"content"`
	UpdatedAt time.Time         `json:"updated_at" bson:"updated_at"`
}
