package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-study-shelf/internal/adapter"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/store"
	"github.com/MKhiriev/go-study-shelf/models"
)

// KeySession is the durable slot holding the JSON encoded session.
const KeySession = "session"

type sessionSubscriber struct {
	id int
	cb func(ctx context.Context, session models.Session)
}

type clientSessionService struct {
	prefs   store.KeyValueStore
	adapter adapter.ServerAdapter
	logger  *logger.Logger
	now     func() time.Time

	mu      sync.RWMutex
	session models.Session

	subMu       sync.Mutex
	nextID      int
	subscribers []sessionSubscriber
}

// NewClientSessionService creates the session holder. Nothing is loaded until
// Restore is called.
func NewClientSessionService(prefs store.KeyValueStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		prefs:   prefs,
		adapter: serverAdapter,
		logger:  logger.WithComponent("session"),
		now:     time.Now,
	}
}

func (s *clientSessionService) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, !s.session.IsZero()
}

func (s *clientSessionService) OnSessionChange(cb func(ctx context.Context, session models.Session)) func() {
	s.subMu.Lock()
	s.nextID++
	id := s.nextID
	s.subscribers = append(s.subscribers, sessionSubscriber{id: id, cb: cb})
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			defer s.subMu.Unlock()
			for i, sub := range s.subscribers {
				if sub.id == id {
					s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *clientSessionService) SetSession(ctx context.Context, session models.Session) error {
	if session.IsZero() {
		return fmt.Errorf("%w: empty session", ErrAuthenticationRequired)
	}

	s.apply(session)
	err := s.persist(ctx, session)
	s.fire(ctx, session)

	return err
}

func (s *clientSessionService) SignOut(ctx context.Context) error {
	if _, ok := s.Current(); ok {
		if err := s.adapter.Logout(ctx); err != nil {
			s.logger.Warn().Err(err).Str("func", "clientSessionService.SignOut").Msg("server logout failed, signing out locally")
		}
	}

	return s.forget(ctx)
}

func (s *clientSessionService) Restore(ctx context.Context) (bool, error) {
	raw, found, err := s.prefs.Get(ctx, KeySession)
	if err != nil {
		return false, fmt.Errorf("read saved session: %w", err)
	}
	if !found {
		return false, nil
	}

	var saved models.Session
	if err = json.Unmarshal([]byte(raw), &saved); err != nil || saved.IsZero() {
		s.logger.Warn().Err(err).Msg("saved session is unreadable, discarding")
		return false, s.prefs.Delete(ctx, KeySession)
	}

	s.apply(saved)

	if saved.Expired(s.now()) {
		if err = s.Refresh(ctx); err != nil {
			if errors.Is(err, ErrAuthenticationRequired) {
				return false, nil
			}
			return false, err
		}
		return true, nil
	}

	s.fire(ctx, saved)
	return true, nil
}

func (s *clientSessionService) Refresh(ctx context.Context) error {
	current, ok := s.Current()
	if !ok || current.RefreshToken == "" {
		return ErrAuthenticationRequired
	}

	refreshed, err := s.adapter.RefreshSession(ctx, current.RefreshToken)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			s.logger.Info().Int64("user_id", current.UserID).Msg("refresh token rejected, signing out")
			if forgetErr := s.forget(ctx); forgetErr != nil {
				s.logger.Warn().Err(forgetErr).Msg("failed to forget session")
			}
			return fmt.Errorf("%w: %w", ErrAuthenticationRequired, mapAdapterError(err))
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, mapAdapterError(err))
	}

	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = current.RefreshToken
	}

	return s.SetSession(ctx, refreshed)
}

func (s *clientSessionService) apply(session models.Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.adapter.SetToken(session.AccessToken)
}

func (s *clientSessionService) forget(ctx context.Context) error {
	s.apply(models.Session{})

	err := s.prefs.Delete(ctx, KeySession)
	if err != nil {
		err = fmt.Errorf("delete saved session: %w", err)
	}

	s.fire(ctx, models.Session{})
	return err
}

func (s *clientSessionService) persist(ctx context.Context, session models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err = s.prefs.Set(ctx, KeySession, string(raw)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// fire calls subscribers in registration order without holding any lock.
func (s *clientSessionService) fire(ctx context.Context, session models.Session) {
	s.subMu.Lock()
	subs := make([]sessionSubscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.cb(ctx, session)
	}
}
