// Package filter builds the side drawer hosting the filter controls of a list page.
// The drawer holds no filter state; values come from the page's query string.
package filter

import (
	"net/url"
	"strings"
)

// ControlKind is the input type of a filter control
type ControlKind string

const (
	TextControl   ControlKind = "text"
	SelectControl ControlKind = "select"
	DateControl   ControlKind = "date"
)

// Option is a choice of a select control
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Control is one filter input hosted by the drawer
type Control struct {
	Name        string
	Label       string
	Kind        ControlKind
	Value       string
	Placeholder string
	Options     []Option
}

// Drawer is the view model of the filter drawer.
// Apply submits the controls to Action; Clear links to ClearHref. Either can be left out.
type Drawer struct {
	Title      string
	Open       bool
	Controls   []Control
	Action     string
	ApplyLabel string
	ClearHref  string
	ClearLabel string
	Warnings   []string
	// Preserved are hidden query parameters submitted alongside the controls
	Preserved map[string]string
}

// ShowApply reports whether the drawer renders the apply button
func (d Drawer) ShowApply() bool {
	return d.Action != ""
}

// ShowClear reports whether the drawer renders the clear button
func (d Drawer) ShowClear() bool {
	return d.ClearHref != ""
}

// Active returns the number of controls holding a value
func (d Drawer) Active() int {
	active := 0
	for _, control := range d.Controls {
		if strings.TrimSpace(control.Value) != "" {
			active++
		}
	}
	return active
}

// New creates a drawer submitting to path, with values of the controls taken from query.
// The drawer is opened when query has filter=open.
func New(title, path string, query url.Values, controls ...Control) Drawer {
	drawer := Drawer{
		Title:      title,
		Open:       query.Get("filter") == "open",
		Action:     path,
		ApplyLabel: "Apply",
		ClearHref:  path,
		ClearLabel: "Clear",
		Preserved:  map[string]string{},
	}
	if limit := query.Get("limit"); limit != "" {
		drawer.Preserved["limit"] = limit
	}

	for _, control := range controls {
		control.Value = query.Get(control.Name)
		control.Options = append([]Option(nil), control.Options...)
		for i := range control.Options {
			control.Options[i].Selected = control.Options[i].Value == control.Value
		}
		drawer.Controls = append(drawer.Controls, control)
	}
	return drawer
}

// Text creates a text control
func Text(name, label, placeholder string) Control {
	return Control{Name: name, Label: label, Kind: TextControl, Placeholder: placeholder}
}

// Date creates a date control
func Date(name, label string) Control {
	return Control{Name: name, Label: label, Kind: DateControl}
}

// Select creates a select control with an "All" option first
func Select(name, label string, options ...Option) Control {
	all := append([]Option{{Value: "", Label: "All"}}, options...)
	return Control{Name: name, Label: label, Kind: SelectControl, Options: all}
}
