// Package templatevars finds and substitutes the {{name}} variable tokens of email templates.
package templatevars

import (
	"html"
	"regexp"
	"strings"
)

var tokenRegex = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// DefaultSamples are the preview values used for well-known variables
var DefaultSamples = map[string]string{
	"user_name":         "John Doe",
	"first_name":        "John",
	"last_name":         "Doe",
	"email":             "john.doe@example.com",
	"event_name":        "Tech Conference 2025",
	"event_date":        "August 15, 2025",
	"event_time":        "10:00 AM",
	"event_location":    "Convention Center, New York",
	"organization_name": "Acme Events",
	"company_name":      "ExiBy",
	"ticket_number":     "TKT-000123",
	"amount":            "$99.00",
	"reset_link":        "https://exiby.com/reset-password?token=sample",
	"login_url":         "https://exiby.com/login",
	"support_email":     "support@exiby.com",
}

// Extract returns the variable names used in content in the order they first appear, without duplicates
func Extract(content string) []string {
	matches := tokenRegex.FindAllStringSubmatch(content, -1)

	seen := make(map[string]bool, len(matches))
	variables := make([]string, 0, len(matches))
	for _, match := range matches {
		name := strings.TrimSpace(match[1])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		variables = append(variables, name)
	}
	return variables
}

// Preview replaces every variable token in HTML content with its sample value.
// Unknown variables are rendered as [name]. Substituted values are HTML escaped.
func Preview(content string, samples map[string]string) string {
	return substitute(content, samples, html.EscapeString)
}

// Substitute is Preview for plain text such as subjects: values are inserted as is
func Substitute(text string, samples map[string]string) string {
	return substitute(text, samples, func(value string) string { return value })
}

func substitute(content string, samples map[string]string, escape func(string) string) string {
	return tokenRegex.ReplaceAllStringFunc(content, func(token string) string {
		name := strings.TrimSpace(token[2 : len(token)-2])
		if name == "" {
			return token
		}
		if value, ok := samples[name]; ok {
			return escape(value)
		}
		return escape("[" + name + "]")
	})
}

// MergeSamples returns DefaultSamples overridden by each of the given maps in turn
func MergeSamples(overrides ...map[string]string) map[string]string {
	merged := make(map[string]string, len(DefaultSamples))
	for name, value := range DefaultSamples {
		merged[name] = value
	}
	for _, override := range overrides {
		for name, value := range override {
			merged[name] = value
		}
	}
	return merged
}
