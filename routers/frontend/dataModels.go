package frontend

import (
	"github.com/exiby/exiby_admin/components/filter"
	"github.com/exiby/exiby_admin/components/form"
	"github.com/exiby/exiby_admin/components/table"
	"github.com/exiby/exiby_admin/components/trash"
	"github.com/exiby/exiby_admin/config"
	"github.com/exiby/exiby_admin/entities"
)

type pageDataModel struct {
	Cfg        config.AppConfig
	Title      string
	Alert      string
	Flash      string
	DarkMode   bool
	Path       string
	Components map[string]interface{}
	Data       interface{}
}

type navbarDataModel struct {
	User          entities.SessionUser
	UnreadCount   int
	Notifications entities.Notifications
	DarkMode      bool
	ReturnTo      string
}

type navItem struct {
	Label  string
	Href   string
	Active bool
	module string
}

type sidebarDataModel struct {
	Items []navItem
}

type loginDataModel struct {
	Email string
}

type statCard struct {
	Label string
	Value int
	Href  string
}

type dashboardDataModel struct {
	Stats         []statCard
	Notifications entities.Notifications
	UnreadCount   int
}

// bulkAction is a button submitting the selected rows of a list
type bulkAction struct {
	Label   string
	Href    string
	Method  string
	Confirm string
	Danger  bool
}

type listDataModel struct {
	Heading     string
	Path        string
	CreateHref  string
	CreateLabel string
	TrashHref   string
	ExportHref  string
	Drawer      *filter.Drawer
	Table       table.View
	BulkActions []bulkAction
	// Hidden are the query parameters kept when the selection form is submitted
	Hidden map[string]string
}

type trashDataModel struct {
	Heading  string
	BackHref string
	Table    trash.View
	Pager    *table.PagerView
}

type formDataModel struct {
	Form form.Form
}

type eventDataModel struct {
	Event   entities.Event
	Details []detailRow
}

type detailRow struct {
	Label string
	Value string
}

type permissionRowView struct {
	Module  string
	Label   string
	Actions []permissionCell
}

type permissionCell struct {
	Name    string
	Label   string
	Checked bool
}

type teamMemberFormDataModel struct {
	Form        form.Form
	Permissions []permissionRowView
}

type emailTemplateFormDataModel struct {
	Form      form.Form
	Variables []string
	Preview   string
}

type emailTemplatePreviewDataModel struct {
	Template  entities.EmailTemplate
	Subject   string
	Preview   string
	Variables []string
	SendForm  form.Form
}

type legalDocumentLink struct {
	Kind  entities.LegalDocumentKind
	Title string
	Href  string
}

type configurationDataModel struct {
	EmailGateway   form.Form
	PaymentGateway form.Form
	LegalDocuments []legalDocumentLink
}

type settingsDataModel struct {
	DarkMode     bool
	PasswordForm form.Form
	User         entities.SessionUser
}

type notificationsDataModel struct {
	Notifications entities.Notifications
	UnreadCount   int
}

type errorDataModel struct {
	Message string
}
