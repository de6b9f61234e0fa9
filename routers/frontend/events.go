package frontend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/exiby/exiby_admin/components/filter"
	"github.com/exiby/exiby_admin/components/table"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/utils/export"
	"github.com/gin-gonic/gin"
)

const eventsPath = "/events"

var eventColumns = []table.Column{
	{Key: "title", Label: "Title", Sortable: true},
	{Key: "organization", Label: "Organization"},
	{Key: "start", Label: "Starts", Type: table.DateTimeColumn, Sortable: true},
	{Key: "end", Label: "Ends", Type: table.DateTimeColumn},
	{Key: "venue", Label: "Venue", Type: table.BadgeColumn},
	{Key: "price", Label: "Price", Render: func(row table.Row) string {
		text, _ := row.Values["price_text"].(string)
		return text
	}},
	{Key: "capacity", Label: "Capacity", Type: table.NumberColumn},
	{Key: "status", Label: "Status", Type: table.BadgeColumn},
}

var eventExportColumns = []table.Column{
	{Key: "title", Label: "Title"},
	{Key: "organization", Label: "Organization"},
	{Key: "start", Label: "Starts", Type: table.DateTimeColumn},
	{Key: "end", Label: "Ends", Type: table.DateTimeColumn},
	{Key: "venue", Label: "Venue"},
	{Key: "price_text", Label: "Price"},
	{Key: "capacity", Label: "Capacity", Type: table.NumberColumn},
	{Key: "public", Label: "Public"},
	{Key: "status", Label: "Status"},
}

func priceText(pricing entities.Pricing) string {
	if pricing.IsFree {
		return "Free"
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s", table.FormatValue(table.CurrencyColumn, pricing.Price), pricing.Currency))
}

func venueText(venue entities.Venue) string {
	var parts []string
	for _, part := range []string{venue.Address, venue.City, venue.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func eventRow(event entities.Event) table.Row {
	return table.Row{
		ID: event.ID,
		Values: map[string]interface{}{
			"title":        event.Title,
			"organization": event.OrganizationName,
			"start":        event.StartDate,
			"end":          event.EndDate,
			"venue":        string(event.Venue.Type),
			"price_text":   priceText(event.Pricing),
			"capacity":     event.Capacity,
			"public":       event.IsPublic,
			"status":       event.Status,
		},
	}
}

func (r *frontendRouter) EventsPage(ctx *gin.Context) {
	params := r.parseListParams(ctx)
	events, total, err := r.eventService.GetEvents(ctx, params.Query)
	if err != nil {
		r.renderError(ctx, err, "could not fetch events")
		return
	}
	if r.redirectPastLastPage(ctx, params, eventsPath, total) {
		return
	}

	rows := table.Rows(events, eventRow)
	drawer := filter.New("Filter events", eventsPath, params.Values,
		filter.Text("search", "Search", "Event title"),
		filter.Select("status", "Status",
			filter.Option{Value: "draft", Label: "Draft"},
			filter.Option{Value: "published", Label: "Published"},
			filter.Option{Value: "cancelled", Label: "Cancelled"},
			filter.Option{Value: "completed", Label: "Completed"},
		),
		filter.Date("from", "Starts after"),
		filter.Date("to", "Starts before"),
	)
	drawer.Warnings = params.Warnings

	r.renderPage(ctx, listPage, pageRender{
		title: "Events",
		data: listDataModel{
			Heading:    "Events",
			Path:       eventsPath,
			ExportHref: params.exportHref(eventsPath + "/export"),
			Drawer:     &drawer,
			Table: table.Render(table.Props{
				Rows:          rows,
				Columns:       eventColumns,
				MenuOptions:   []table.MenuOption{{Label: "View", Href: eventsPath + "/{id}"}},
				Pagination:    params.pagination(eventsPath, total, r.cfg.Pagination.PageSizeOptions),
				Selected:      params.selection(table.LoadedIDs(rows)),
				Checkbox:      true,
				EmptyMessage:  "No events found",
				SelectionForm: "selection",
			}),
			BulkActions: []bulkAction{{Label: "Export selected", Href: eventsPath + "/export", Method: "GET"}},
			Hidden:      params.hiddenFields(),
		},
	})
}

func (r *frontendRouter) ExportEvents(ctx *gin.Context) {
	params := r.parseListParams(ctx)
	events, _, err := r.eventService.GetEvents(ctx, params.allRowsQuery(r.exportLimit()))
	if err != nil {
		r.renderError(ctx, err, "could not fetch events for export")
		return
	}

	rows := export.FilterSelected(table.Rows(events, eventRow), params.Selection)
	r.writeCSV(ctx, "events", eventExportColumns, rows, eventsPath)
}

func (r *frontendRouter) EventPage(ctx *gin.Context) {
	id := ctx.Param("id")
	event, err := r.eventService.GetEventWithID(ctx, id)
	if err != nil {
		r.renderError(ctx, err, fmt.Sprintf("could not fetch event %s", id))
		return
	}

	details := []detailRow{
		{Label: "Organization", Value: table.FormatValue(table.TextColumn, event.OrganizationName)},
		{Label: "Status", Value: table.FormatValue(table.TextColumn, event.Status)},
		{Label: "Starts", Value: table.FormatValue(table.DateTimeColumn, event.StartDate)},
		{Label: "Ends", Value: table.FormatValue(table.DateTimeColumn, event.EndDate)},
		{Label: "Venue type", Value: table.FormatValue(table.TextColumn, string(event.Venue.Type))},
	}
	if event.Venue.Type != entities.VirtualVenue {
		details = append(details, detailRow{Label: "Location", Value: table.FormatValue(table.TextColumn, venueText(event.Venue))})
	}
	if event.Venue.Type != entities.PhysicalVenue {
		details = append(details, detailRow{Label: "Online URL", Value: table.FormatValue(table.TextColumn, event.Venue.OnlineURL)})
	}
	details = append(details,
		detailRow{Label: "Price", Value: priceText(event.Pricing)},
		detailRow{Label: "Capacity", Value: strconv.Itoa(event.Capacity)},
		detailRow{Label: "Public", Value: table.FormatValue(table.TextColumn, event.IsPublic)},
	)

	r.renderPage(ctx, eventPage, pageRender{
		title: event.Title,
		data:  eventDataModel{Event: *event, Details: details},
	})
}
