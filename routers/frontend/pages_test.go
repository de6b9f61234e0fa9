package frontend

import (
	"errors"
	"net/http"
	"testing"

	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/services"
	"github.com/exiby/exiby_admin/state"
	"github.com/exiby/exiby_admin/testutils"
	"github.com/exiby/exiby_admin/utils/auth"
	"github.com/golang/mock/gomock"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_renderError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "should render 404 for missing records",
			err:         pkgerrors.Wrap(services.ErrNotFound, "event 1"),
			wantStatus:  http.StatusNotFound,
			wantMessage: "The requested page could not be found",
		},
		{
			name:        "should render 400 for invalid ids",
			err:         services.ErrInvalidID,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "The requested id is invalid",
		},
		{
			name:        "should render 500 for other errors",
			err:         errors.New("backend down"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: somethingWentWrong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			setup.allowLayout()

			setup.router.renderError(setup.testCtx, tt.err, "could not load page")

			assert.Equal(t, tt.wantStatus, setup.w.Code)
			assert.True(t, testutils.BodyContains(setup.w, tt.wantMessage))
		})
	}
}

func Test_alertFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "should show the reason of invalid input",
			err:  pkgerrors.Wrap(services.ErrInvalidInput, "name already taken"),
			want: "Could not save the plan: name already taken",
		},
		{
			name: "should explain missing records",
			err:  services.ErrNotFound,
			want: "Could not save the plan: the record no longer exists",
		},
		{
			name: "should hide unknown errors",
			err:  errors.New("connection refused"),
			want: somethingWentWrong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)

			assert.Equal(t, tt.want, setup.router.alertFor(tt.err, "save the plan"))
		})
	}
}

func Test_renderPage__should_show_and_clear_flash(t *testing.T) {
	setup := setupTest(t)
	setup.allowLayout()
	testutils.AddCookiesToCtx(setup.testCtx, map[string]string{flashCookieName: "Event saved"})

	setup.router.renderPage(setup.testCtx, notificationsPage, pageRender{title: "Notifications", data: notificationsDataModel{}})

	assert.True(t, testutils.BodyContains(setup.w, `<div class="flash" role="status">Event saved</div>`))
	flash, ok := testutils.ResponseCookie(setup.w, flashCookieName)
	assert.True(t, ok)
	assert.Empty(t, flash)
}

func Test_renderPage__should_prefer_theme_cookie_over_stored_theme(t *testing.T) {
	setup := setupTest(t)
	setup.mockStore.EXPECT().State(gomock.Any()).Return(state.AppState{User: testAdmin, DarkMode: false}).AnyTimes()
	testutils.AddCookiesToCtx(setup.testCtx, map[string]string{themeCookieName: darkTheme})

	setup.router.renderPage(setup.testCtx, notificationsPage, pageRender{data: notificationsDataModel{}})

	assert.True(t, testutils.BodyContains(setup.w, `<html lang="en" class="dark">`))
}

func Test_renderPage__should_use_stored_theme_without_cookie(t *testing.T) {
	setup := setupTest(t)
	setup.mockStore.EXPECT().State(gomock.Any()).Return(state.AppState{User: testAdmin, DarkMode: true}).AnyTimes()

	setup.router.renderPage(setup.testCtx, notificationsPage, pageRender{data: notificationsDataModel{}})

	assert.True(t, testutils.BodyContains(setup.w, `<html lang="en" class="dark">`))
}

func Test_redirectWithFlash__should_set_flash_cookie(t *testing.T) {
	setup := setupTest(t)

	setup.router.redirectWithFlash(setup.testCtx, eventsPath, "Moved 2 events to the trash")

	setup.assertRedirect(t, eventsPath)
	setup.assertFlash(t, "Moved 2 events to the trash")
}

func Test_navbarDataProvider__should_limit_notifications(t *testing.T) {
	setup := setupTest(t)
	notifications := make(entities.Notifications, 7)
	for i := range notifications {
		notifications[i] = entities.Notification{ID: string(rune('a' + i))}
	}
	setup.mockStore.EXPECT().State(testAdmin).Return(state.AppState{User: testAdmin, Notifications: notifications}).Times(1)
	setup.request(http.MethodGet, "/events?page=2", nil)

	model, err := navbarDataProvider(setup.testCtx, setup.router)

	assert.NoError(t, err)
	nav := model.(navbarDataModel)
	assert.Len(t, nav.Notifications, navbarNotificationsLimit)
	assert.Equal(t, 7, nav.UnreadCount)
	assert.Equal(t, "/events?page=2", nav.ReturnTo)
	assert.Equal(t, testAdmin, nav.User)
}

func Test_sidebarDataProvider__should_mark_active_section(t *testing.T) {
	setup := setupTest(t)
	setup.request(http.MethodGet, "/organizations/trash", nil)

	model, err := sidebarDataProvider(setup.testCtx, setup.router)

	assert.NoError(t, err)
	for _, item := range model.(sidebarDataModel).Items {
		assert.Equal(t, item.Href == "/organizations", item.Active, item.Href)
	}
}

func Test_sidebarDataProvider__should_hide_modules_the_role_cannot_view(t *testing.T) {
	setup := setupTest(t)
	setup.testCtx.Set(auth.SessionUserKey, entities.SessionUser{ID: "2", Role: "support"})

	model, err := sidebarDataProvider(setup.testCtx, setup.router)

	assert.NoError(t, err)
	var hrefs []string
	for _, item := range model.(sidebarDataModel).Items {
		hrefs = append(hrefs, item.Href)
	}
	assert.Equal(t, []string{"/dashboard", "/events", "/settings"}, hrefs)
}
