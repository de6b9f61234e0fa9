package state

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/exiby/exiby_admin/config"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/services"
	mock_utils "github.com/exiby/exiby_admin/mocks/utils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, time.August, 20, 12, 0, 0, 0, time.UTC)

var testUser = entities.SessionUser{ID: "1", Email: "admin@exiby.com", Name: "ExiBy Admin", Role: "super_admin"}

type storeTestSetup struct {
	ctrl  *gomock.Controller
	cfg   *config.AppConfig
	store Store
}

func setupStoreTest(t *testing.T, loginDelay int64) *storeTestSetup {
	ctrl := gomock.NewController(t)
	mockTimeProvider := mock_utils.NewMockTimeProvider(ctrl)
	mockTimeProvider.EXPECT().Now().Return(testNow).AnyTimes()

	cfg := &config.AppConfig{
		Admin: config.AdminConfig{
			ID:         "1",
			Email:      "admin@exiby.com",
			Name:       "ExiBy Admin",
			Role:       "super_admin",
			Password:   "admin123",
			LoginDelay: loginDelay,
		},
		Notifications: []config.NotificationSeed{
			{ID: "old", Type: "system_alert", Title: "Maintenance", Read: true, Age: 120},
			{ID: "new", Type: "new_organization", Title: "New organization", Age: 5},
			{ID: "mid", Type: "payment_received", Title: "Payment", Age: 60},
		},
	}

	s, err := NewStore(zap.NewNop(), cfg, mockTimeProvider)
	assert.NoError(t, err)

	return &storeTestSetup{
		ctrl:  ctrl,
		cfg:   cfg,
		store: s,
	}
}

func Test_NewStore__should_return_err_when_password_not_configured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockTimeProvider := mock_utils.NewMockTimeProvider(ctrl)

	s, err := NewStore(zap.NewNop(), &config.AppConfig{}, mockTimeProvider)

	assert.Error(t, err)
	assert.Nil(t, s)
}

func Test_Login(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "should return user for admin credentials",
			email:    "admin@exiby.com",
			password: "admin123",
		},
		{
			name:     "should ignore email case and surrounding spaces",
			email:    "  Admin@ExiBy.com ",
			password: "admin123",
		},
		{
			name:     "should return ErrInvalidCredentials for wrong password",
			email:    "admin@exiby.com",
			password: "wrong",
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "should return ErrInvalidCredentials for unknown email",
			email:    "x@y.com",
			password: "admin123",
			wantErr:  services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupStoreTest(t, 0)
			defer setup.ctrl.Finish()

			user, err := setup.store.Login(context.Background(), tt.email, tt.password)

			assert.Equal(t, tt.wantErr, err)
			if tt.wantErr == nil {
				assert.Equal(t, testUser, *user)
			} else {
				assert.Nil(t, user)
			}
		})
	}
}

func Test_Login__should_return_when_context_is_cancelled(t *testing.T) {
	setup := setupStoreTest(t, 60000)
	defer setup.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	user, err := setup.store.Login(ctx, "admin@exiby.com", "admin123")

	assert.Equal(t, context.Canceled, err)
	assert.Nil(t, user)
}

func Test_State__should_seed_notifications_newest_first(t *testing.T) {
	setup := setupStoreTest(t, 0)
	defer setup.ctrl.Finish()

	state := setup.store.State(testUser)

	assert.Equal(t, testUser, state.User)
	assert.False(t, state.DarkMode)
	assert.Len(t, state.Notifications, 3)
	assert.Equal(t, "new", state.Notifications[0].ID)
	assert.Equal(t, "mid", state.Notifications[1].ID)
	assert.Equal(t, "old", state.Notifications[2].ID)
	assert.Equal(t, testNow.Add(-5*time.Minute), state.Notifications[0].CreatedAt)
	assert.Equal(t, entities.NewOrganizationNotification, state.Notifications[0].NotificationType)
	assert.Equal(t, 2, state.UnreadCount())
}

func Test_Dispatch(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		check   func(t *testing.T, state AppState)
	}{
		{
			name:    "ToggleDarkMode should flip theme",
			actions: []Action{ToggleDarkMode{}},
			check: func(t *testing.T, state AppState) {
				assert.True(t, state.DarkMode)
			},
		},
		{
			name:    "ToggleDarkMode twice should restore theme",
			actions: []Action{ToggleDarkMode{}, ToggleDarkMode{}},
			check: func(t *testing.T, state AppState) {
				assert.False(t, state.DarkMode)
			},
		},
		{
			name:    "SetDarkMode should set theme",
			actions: []Action{SetDarkMode{Enabled: true}, SetDarkMode{Enabled: true}},
			check: func(t *testing.T, state AppState) {
				assert.True(t, state.DarkMode)
			},
		},
		{
			name:    "MarkNotificationRead should mark one notification",
			actions: []Action{MarkNotificationRead{ID: "new"}},
			check: func(t *testing.T, state AppState) {
				assert.True(t, state.Notifications[0].Read)
				assert.False(t, state.Notifications[1].Read)
				assert.Equal(t, 1, state.UnreadCount())
			},
		},
		{
			name:    "MarkNotificationUnread should mark one notification",
			actions: []Action{MarkNotificationUnread{ID: "old"}},
			check: func(t *testing.T, state AppState) {
				assert.False(t, state.Notifications[2].Read)
				assert.Equal(t, 3, state.UnreadCount())
			},
		},
		{
			name:    "MarkNotificationRead should ignore unknown id",
			actions: []Action{MarkNotificationRead{ID: "missing"}},
			check: func(t *testing.T, state AppState) {
				assert.Equal(t, 2, state.UnreadCount())
			},
		},
		{
			name:    "MarkAllNotificationsRead should mark every notification",
			actions: []Action{MarkAllNotificationsRead{}},
			check: func(t *testing.T, state AppState) {
				assert.Equal(t, 0, state.UnreadCount())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupStoreTest(t, 0)
			defer setup.ctrl.Finish()

			var state AppState
			for _, action := range tt.actions {
				state = setup.store.Dispatch(testUser, action)
			}

			tt.check(t, state)
			tt.check(t, setup.store.State(testUser))
		})
	}
}

func Test_Dispatch__should_not_leak_state_through_snapshots(t *testing.T) {
	setup := setupStoreTest(t, 0)
	defer setup.ctrl.Finish()

	snapshot := setup.store.State(testUser)
	snapshot.Notifications[0].Read = true

	assert.False(t, setup.store.State(testUser).Notifications[0].Read)
}

func Test_Logout__should_reset_state(t *testing.T) {
	setup := setupStoreTest(t, 0)
	defer setup.ctrl.Finish()

	setup.store.Dispatch(testUser, MarkAllNotificationsRead{})
	setup.store.Logout(context.Background(), testUser.ID)

	assert.Equal(t, 2, setup.store.State(testUser).UnreadCount())
}

func Test_Dispatch__should_be_safe_for_concurrent_use(t *testing.T) {
	setup := setupStoreTest(t, 0)
	defer setup.ctrl.Finish()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			setup.store.Dispatch(testUser, ToggleDarkMode{})
		}()
	}
	wg.Wait()

	assert.False(t, setup.store.State(testUser).DarkMode)
}
