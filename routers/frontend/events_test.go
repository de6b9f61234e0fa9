package frontend

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/services"
	"github.com/exiby/exiby_admin/testutils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

var (
	testEventStart = time.Date(2025, 9, 1, 18, 0, 0, 0, time.UTC)

	testEvent = entities.Event{
		ID:               "e1",
		Title:            "Launch Day",
		Description:      "Product launch party",
		StartDate:        &testEventStart,
		Venue:            entities.Venue{Type: entities.PhysicalVenue, Address: "1 Main St", City: "Dublin"},
		Pricing:          entities.Pricing{Price: 25, Currency: "USD"},
		Capacity:         200,
		IsPublic:         true,
		Status:           "published",
		OrganizationName: "Acme Events",
	}
)

func Test_priceText(t *testing.T) {
	assert.Equal(t, "Free", priceText(entities.Pricing{IsFree: true, Price: 10}))
	assert.Equal(t, "25.00 USD", priceText(entities.Pricing{Price: 25, Currency: "USD"}))
	assert.Equal(t, "9.50", priceText(entities.Pricing{Price: 9.5}))
}

func Test_venueText__should_skip_empty_parts(t *testing.T) {
	assert.Equal(t, "1 Main St, Ireland", venueText(entities.Venue{Address: "1 Main St", Country: "Ireland"}))
}

func Test_EventsPage(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		prep       func(*testSetup)
		wantStatus int
		wantBody   []string
	}{
		{
			name:   "should render events with the status filter",
			target: "/events?status=published",
			prep: func(setup *testSetup) {
				setup.mockEventService.EXPECT().
					GetEvents(gomock.Any(), entities.ListQuery{Page: 1, Limit: 20, Status: "published"}).
					Return([]entities.Event{testEvent}, 1, nil).Times(1)
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{"Launch Day", "Acme Events", "25.00 USD", "/events/e1", "/events/export?status=published"},
		},
		{
			name:   "should render error page when service fails",
			target: "/events",
			prep: func(setup *testSetup) {
				setup.mockEventService.EXPECT().GetEvents(gomock.Any(), gomock.Any()).
					Return(nil, 0, errors.New("backend down")).Times(1)
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{somethingWentWrong},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			setup.allowLayout()
			tt.prep(setup)
			setup.request(http.MethodGet, tt.target, nil)

			setup.router.EventsPage(setup.testCtx)
			setup.testCtx.Writer.WriteHeaderNow() // flush the pending status as gin does after the handler chain

			assert.Equal(t, tt.wantStatus, setup.w.Code)
			assert.True(t, testutils.BodyContains(setup.w, tt.wantBody...))
		})
	}
}

func Test_ExportEvents__should_write_csv(t *testing.T) {
	setup := setupTest(t)
	setup.mockEventService.EXPECT().
		GetEvents(gomock.Any(), entities.ListQuery{Page: 1, Limit: 101}).
		Return([]entities.Event{testEvent}, 1, nil).Times(1)
	setup.mockTimeProvider.EXPECT().Now().Return(testNow).Times(1)
	setup.request(http.MethodGet, "/events/export", nil)

	setup.router.ExportEvents(setup.testCtx)
	setup.testCtx.Writer.WriteHeaderNow() // flush the pending status as gin does after the handler chain

	assert.Equal(t, http.StatusOK, setup.w.Code)
	assert.Equal(t, `attachment; filename="events-2025-08-15.csv"`, setup.w.Header().Get("Content-Disposition"))
	assert.Equal(t, "Title,Organization,Starts,Ends,Venue,Price,Capacity,Public,Status\n"+
		"Launch Day,Acme Events,\"Sep 1, 2025 18:00\",,physical,25.00 USD,200,Yes,published\n", setup.w.Body.String())
}

func Test_EventPage(t *testing.T) {
	tests := []struct {
		name        string
		event       *entities.Event
		err         error
		wantStatus  int
		wantBody    []string
		wantMissing string
	}{
		{
			name:        "should show location of physical events",
			event:       &testEvent,
			wantStatus:  http.StatusOK,
			wantBody:    []string{"Launch Day", "Product launch party", "1 Main St, Dublin", "Sep 1, 2025 18:00"},
			wantMissing: "Online URL",
		},
		{
			name: "should show online url of virtual events",
			event: &entities.Event{
				ID:      "e2",
				Title:   "Webinar",
				Venue:   entities.Venue{Type: entities.VirtualVenue, OnlineURL: "https://meet.example.com/x"},
				Pricing: entities.Pricing{IsFree: true},
			},
			wantStatus:  http.StatusOK,
			wantBody:    []string{"Webinar", "https://meet.example.com/x", "Free"},
			wantMissing: "Location",
		},
		{
			name:       "should render 404 for unknown events",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   []string{"The requested page could not be found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			setup.allowLayout()
			setup.mockEventService.EXPECT().GetEventWithID(gomock.Any(), "e1").Return(tt.event, tt.err).Times(1)
			setup.request(http.MethodGet, "/events/e1", nil)
			testutils.AddUrlParamsToCtx(setup.testCtx, map[string]string{"id": "e1"})

			setup.router.EventPage(setup.testCtx)
			setup.testCtx.Writer.WriteHeaderNow() // flush the pending status as gin does after the handler chain

			assert.Equal(t, tt.wantStatus, setup.w.Code)
			assert.True(t, testutils.BodyContains(setup.w, tt.wantBody...))
			if tt.wantMissing != "" {
				assert.NotContains(t, setup.w.Body.String(), tt.wantMissing)
			}
		})
	}
}
