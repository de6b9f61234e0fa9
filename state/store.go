// Package state holds the per-admin application state shared by the portal's pages:
// the signed in user, the theme and the notifications.
package state

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/exiby/exiby_admin/config"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/services"
	"github.com/exiby/exiby_admin/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// AppState is the state of one signed in admin
type AppState struct {
	User          entities.SessionUser
	DarkMode      bool
	Notifications entities.Notifications
}

// UnreadCount is the number of unread notifications
func (s AppState) UnreadCount() int {
	return s.Notifications.UnreadCount()
}

// Store keeps the application state of every admin
type Store interface {
	// Login checks the credentials against the configured admin account
	// and returns the signed in user
	Login(ctx context.Context, email, password string) (*entities.SessionUser, error)
	// Logout drops the state of the user
	Logout(ctx context.Context, userID string)
	// State returns a snapshot of the user's state
	State(user entities.SessionUser) AppState
	// Dispatch applies action to the user's state and returns the new snapshot
	Dispatch(user entities.SessionUser, action Action) AppState
}

type store struct {
	logger       *zap.Logger
	cfg          *config.AppConfig
	timeProvider utils.TimeProvider
	passwordHash string
	startedAt    time.Time

	mu     sync.Mutex
	states map[string]*AppState
}

// NewStore creates a Store for the admin account in cfg
func NewStore(logger *zap.Logger, cfg *config.AppConfig, timeProvider utils.TimeProvider) (Store, error) {
	passwordHash := cfg.Admin.PasswordHash
	if passwordHash == "" {
		if cfg.Admin.Password == "" {
			return nil, errors.New("admin password is not configured")
		}
		hash, err := utils.GetHashForPassword(cfg.Admin.Password)
		if err != nil {
			return nil, errors.Wrap(err, "could not hash admin password")
		}
		passwordHash = hash
	}

	return &store{
		logger:       logger,
		cfg:          cfg,
		timeProvider: timeProvider,
		passwordHash: passwordHash,
		startedAt:    timeProvider.Now(),
		states:       map[string]*AppState{},
	}, nil
}

func (s *store) Login(ctx context.Context, email, password string) (*entities.SessionUser, error) {
	if s.cfg.Admin.LoginDelay > 0 {
		timer := time.NewTimer(time.Duration(s.cfg.Admin.LoginDelay) * time.Millisecond)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if !strings.EqualFold(strings.TrimSpace(email), s.cfg.Admin.Email) {
		return nil, services.ErrInvalidCredentials
	}
	if err := utils.CompareHashAndPassword(s.passwordHash, password); err != nil {
		return nil, services.ErrInvalidCredentials
	}

	user := entities.SessionUser{
		ID:    s.cfg.Admin.ID,
		Email: s.cfg.Admin.Email,
		Name:  s.cfg.Admin.Name,
		Role:  s.cfg.Admin.Role,
	}

	s.mu.Lock()
	s.stateOf(user)
	s.mu.Unlock()

	s.logger.Info("admin signed in", zap.String("email", user.Email))
	return &user, nil
}

func (s *store) Logout(ctx context.Context, userID string) {
	s.mu.Lock()
	delete(s.states, userID)
	s.mu.Unlock()
}

func (s *store) State(user entities.SessionUser) AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateOf(user).snapshot()
}

func (s *store) Dispatch(user entities.SessionUser, action Action) AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.stateOf(user)
	action.apply(state)
	return state.snapshot()
}

// stateOf returns the user's state, seeding it on first access. Callers must hold s.mu.
func (s *store) stateOf(user entities.SessionUser) *AppState {
	state, ok := s.states[user.ID]
	if !ok {
		state = &AppState{User: user, Notifications: s.seedNotifications()}
		s.states[user.ID] = state
	}
	return state
}

func (s *store) seedNotifications() entities.Notifications {
	notifications := make(entities.Notifications, 0, len(s.cfg.Notifications))
	for _, seed := range s.cfg.Notifications {
		notifications = append(notifications, entities.Notification{
			ID:               seed.ID,
			NotificationType: entities.NotificationType(seed.Type),
			Title:            seed.Title,
			Message:          seed.Message,
			Read:             seed.Read,
			CreatedAt:        s.startedAt.Add(-time.Duration(seed.Age) * time.Minute),
		})
	}
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications
}

func (s *AppState) snapshot() AppState {
	copied := *s
	copied.Notifications = append(entities.Notifications(nil), s.Notifications...)
	return copied
}
