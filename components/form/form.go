// Package form describes create/edit forms declaratively so that one template renders them all.
package form

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// FieldType is the input kind of a field
type FieldType string

const (
	TextField     FieldType = "text"
	EmailField    FieldType = "email"
	PasswordField FieldType = "password"
	NumberField   FieldType = "number"
	TextareaField FieldType = "textarea"
	SelectField   FieldType = "select"
	CheckboxField FieldType = "checkbox"
	URLField      FieldType = "url"
	DateField     FieldType = "date"
)

// Option is a choice of a select field
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Field is one input of a form
type Field struct {
	Name        string
	Label       string
	Type        FieldType
	Value       string
	Placeholder string
	Required    bool
	Checked     bool
	Options     []Option
	Help        string
	Error       string
}

// Section groups fields under a heading
type Section struct {
	Title  string
	Fields []Field
}

// Form is the view model of the generic form template
type Form struct {
	Title       string
	Action      string
	SubmitLabel string
	CancelHref  string
	Sections    []Section
	Alert       string
}

// Select builds a select field, marking the option matching value
func Select(name, label, value string, required bool, options ...Option) Field {
	field := Field{Name: name, Label: label, Type: SelectField, Value: value, Required: required}
	for _, option := range options {
		option.Selected = option.Value == value
		field.Options = append(field.Options, option)
	}
	return field
}

// Checkbox builds a checkbox field
func Checkbox(name, label string, checked bool) Field {
	return Field{Name: name, Label: label, Type: CheckboxField, Value: "true", Checked: checked}
}

// Options turns plain values into select options labelled by themselves
func Options(values ...string) []Option {
	options := make([]Option, 0, len(values))
	for _, value := range values {
		options = append(options, Option{Value: value, Label: value})
	}
	return options
}

// FieldError describes an invalid submitted value
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Int reads an integer form value. An empty value is 0.
func Int(values url.Values, name, label string) (int, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &FieldError{Field: label, Message: "must be a whole number"}
	}
	return n, nil
}

// Float reads a decimal form value. An empty value is 0.
func Float(values url.Values, name, label string) (float64, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &FieldError{Field: label, Message: "must be a number"}
	}
	return n, nil
}

// Bool reads a checkbox value
func Bool(values url.Values, name string) bool {
	switch strings.ToLower(values.Get(name)) {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}

// WithErrors attaches field errors to the matching fields and returns the form
func (f Form) WithErrors(errs ...*FieldError) Form {
	byLabel := make(map[string]string, len(errs))
	for _, err := range errs {
		byLabel[err.Field] = err.Message
	}
	sections := make([]Section, len(f.Sections))
	for i, section := range f.Sections {
		fields := make([]Field, len(section.Fields))
		for j, field := range section.Fields {
			if message, ok := byLabel[field.Label]; ok {
				field.Error = message
			}
			fields[j] = field
		}
		sections[i] = Section{Title: section.Title, Fields: fields}
	}
	f.Sections = sections
	return f
}
