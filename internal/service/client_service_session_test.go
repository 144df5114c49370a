package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-study-shelf/internal/adapter"
	"github.com/MKhiriev/go-study-shelf/internal/logger"
	"github.com/MKhiriev/go-study-shelf/internal/mock"
	"github.com/MKhiriev/go-study-shelf/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSessionSvc(t *testing.T) (*clientSessionService, *mock.MockServerAdapter, *mock.MockKeyValueStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockPrefs := mock.NewMockKeyValueStore(ctrl)

	svc := NewClientSessionService(mockPrefs, mockAdapter, logger.Nop()).(*clientSessionService)
	svc.now = func() time.Time { return baseTime }

	return svc, mockAdapter, mockPrefs
}

func sessionJSON(t *testing.T, s models.Session) string {
	t.Helper()
	raw, err := json.Marshal(s)
	require.NoError(t, err)
	return string(raw)
}

// sessionLog собирает сессии, с которыми вызывались подписчики.
type sessionLog struct {
	got []models.Session
}

func (l *sessionLog) record(_ context.Context, s models.Session) {
	l.got = append(l.got, s)
}

func TestClientSessionService_Current_Empty(t *testing.T) {
	svc, _, _ := newTestSessionSvc(t)

	s, ok := svc.Current()
	assert.False(t, ok)
	assert.True(t, s.IsZero())
}

func TestClientSessionService_SetSession(t *testing.T) {
	svc, mockAdapter, mockPrefs := newTestSessionSvc(t)
	ctx := context.Background()
	session := testSession
	session.ExpiresAt = baseTime.Add(time.Hour)

	log := &sessionLog{}
	svc.OnSessionChange(log.record)

	mockAdapter.EXPECT().SetToken("access")
	mockPrefs.EXPECT().Set(ctx, KeySession, sessionJSON(t, session)).Return(nil)

	require.NoError(t, svc.SetSession(ctx, session))

	current, ok := svc.Current()
	assert.True(t, ok)
	assert.Equal(t, session, current)
	assert.Equal(t, []models.Session{session}, log.got)
}

func TestClientSessionService_SetSession_Empty(t *testing.T) {
	svc, _, _ := newTestSessionSvc(t)

	err := svc.SetSession(context.Background(), models.Session{UserID: 1})
	require.ErrorIs(t, err, ErrAuthenticationRequired)
}

func TestClientSessionService_SetSession_PersistError(t *testing.T) {
	svc, mockAdapter, mockPrefs := newTestSessionSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().SetToken(gomock.Any())
	mockPrefs.EXPECT().Set(ctx, KeySession, gomock.Any()).Return(errors.New("readonly database"))

	err := svc.SetSession(ctx, testSession)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save session")

	// сессия всё равно действует до перезапуска
	_, ok := svc.Current()
	assert.True(t, ok)
}

func TestClientSessionService_Unsubscribe(t *testing.T) {
	svc, mockAdapter, mockPrefs := newTestSessionSvc(t)
	ctx := context.Background()

	first, second := &sessionLog{}, &sessionLog{}
	unsubscribe := svc.OnSessionChange(first.record)
	svc.OnSessionChange(second.record)

	unsubscribe()
	unsubscribe()

	mockAdapter.EXPECT().SetToken(gomock.Any())
	mockPrefs.EXPECT().Set(ctx, KeySession, gomock.Any()).Return(nil)
	require.NoError(t, svc.SetSession(ctx, testSession))

	assert.Empty(t, first.got)
	assert.Len(t, second.got, 1)
}

func TestClientSessionService_SignOut(t *testing.T) {
	svc, mockAdapter, mockPrefs := newTestSessionSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().SetToken("access")
	mockPrefs.EXPECT().Set(ctx, KeySession, gomock.Any()).Return(nil)
	require.NoError(t, svc.SetSession(ctx, testSession))

	log := &sessionLog{}
	svc.OnSessionChange(log.record)

	gomock.InOrder(
		mockAdapter.EXPECT().Logout(ctx).Return(fmt.Errorf("logout request: %w", errors.New("connection refused"))),
		mockAdapter.EXPECT().SetToken(""),
		mockPrefs.EXPECT().Delete(ctx, KeySession).Return(nil),
	)

	require.NoError(t, svc.SignOut(ctx))

	_, ok := svc.Current()
	assert.False(t, ok)
	require.Len(t, log.got, 1)
	assert.True(t, log.got[0].IsZero())
}

func TestClientSessionService_SignOut_WithoutSession(t *testing.T) {
	svc, mockAdapter, mockPrefs := newTestSessionSvc(t)
	ctx := context.Background()

	mockAdapter.EXPECT().SetToken("")
	mockPrefs.EXPECT().Delete(ctx, KeySession).Return(nil)

	require.NoError(t, svc.SignOut(ctx))
}

func TestClientSessionService_Restore(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing saved", func(t *testing.T) {
		svc, _, mockPrefs := newTestSessionSvc(t)
		mockPrefs.EXPECT().Get(ctx, KeySession).Return("", false, nil)

		ok, err := svc.Restore(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("store error", func(t *testing.T) {
		svc, _, mockPrefs := newTestSessionSvc(t)
		mockPrefs.EXPECT().Get(ctx, KeySession).Return("", false, errors.New("disk I/O error"))

		ok, err := svc.Restore(ctx)
		require.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("corrupt value is discarded", func(t *testing.T) {
		svc, _, mockPrefs := newTestSessionSvc(t)
		mockPrefs.EXPECT().Get(ctx, KeySession).Return("{not json", true, nil)
		mockPrefs.EXPECT().Delete(ctx, KeySession).Return(nil)

		ok, err := svc.Restore(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("valid session", func(t *testing.T) {
		svc, mockAdapter, mockPrefs := newTestSessionSvc(t)
		saved := testSession
		saved.ExpiresAt = baseTime.Add(time.Minute)

		log := &sessionLog{}
		svc.OnSessionChange(log.record)

		mockPrefs.EXPECT().Get(ctx, KeySession).Return(sessionJSON(t, saved), true, nil)
		mockAdapter.EXPECT().SetToken("access")

		ok, err := svc.Restore(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []models.Session{saved}, log.got)
	})

	t.Run("expired session is refreshed", func(t *testing.T) {
		svc, mockAdapter, mockPrefs := newTestSessionSvc(t)
		saved := testSession
		saved.ExpiresAt = baseTime.Add(-time.Minute)
		fresh := testSession
		fresh.AccessToken = "fresh"
		fresh.ExpiresAt = baseTime.Add(time.Hour)

		mockPrefs.EXPECT().Get(ctx, KeySession).Return(sessionJSON(t, saved), true, nil)
		gomock.InOrder(
			mockAdapter.EXPECT().SetToken("access"),
			mockAdapter.EXPECT().RefreshSession(ctx, "refresh").Return(fresh, nil),
			mockAdapter.EXPECT().SetToken("fresh"),
		)
		mockPrefs.EXPECT().Set(ctx, KeySession, sessionJSON(t, fresh)).Return(nil)

		ok, err := svc.Restore(ctx)
		require.NoError(t, err)
		assert.True(t, ok)

		current, _ := svc.Current()
		assert.Equal(t, "fresh", current.AccessToken)
	})

	t.Run("expired session with rejected refresh", func(t *testing.T) {
		svc, mockAdapter, mockPrefs := newTestSessionSvc(t)
		saved := testSession
		saved.ExpiresAt = baseTime.Add(-time.Minute)

		mockPrefs.EXPECT().Get(ctx, KeySession).Return(sessionJSON(t, saved), true, nil)
		mockAdapter.EXPECT().SetToken("access")
		mockAdapter.EXPECT().RefreshSession(ctx, "refresh").
			Return(models.Session{}, fmt.Errorf("refresh: %w: token is expired or invalid", adapter.ErrUnauthorized))
		mockAdapter.EXPECT().SetToken("")
		mockPrefs.EXPECT().Delete(ctx, KeySession).Return(nil)

		ok, err := svc.Restore(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestClientSessionService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("no session", func(t *testing.T) {
		svc, _, _ := newTestSessionSvc(t)
		require.ErrorIs(t, svc.Refresh(ctx), ErrAuthenticationRequired)
	})

	t.Run("server unreachable keeps session", func(t *testing.T) {
		svc, mockAdapter, mockPrefs := newTestSessionSvc(t)
		mockAdapter.EXPECT().SetToken(gomock.Any())
		mockPrefs.EXPECT().Set(ctx, KeySession, gomock.Any()).Return(nil)
		require.NoError(t, svc.SetSession(ctx, testSession))

		mockAdapter.EXPECT().RefreshSession(ctx, "refresh").
			Return(models.Session{}, fmt.Errorf("refresh: request: %w", errors.New("dial tcp: connection refused")))

		err := svc.Refresh(ctx)
		require.ErrorIs(t, err, ErrUnavailable)
		_, ok := svc.Current()
		assert.True(t, ok)
	})

	t.Run("keeps refresh token when server omits it", func(t *testing.T) {
		svc, mockAdapter, mockPrefs := newTestSessionSvc(t)
		mockAdapter.EXPECT().SetToken(gomock.Any()).Times(2)
		mockPrefs.EXPECT().Set(ctx, KeySession, gomock.Any()).Return(nil).Times(2)
		require.NoError(t, svc.SetSession(ctx, testSession))

		log := &sessionLog{}
		svc.OnSessionChange(log.record)

		mockAdapter.EXPECT().RefreshSession(ctx, "refresh").
			Return(models.Session{AccessToken: "next", UserID: 1}, nil)

		require.NoError(t, svc.Refresh(ctx))

		current, _ := svc.Current()
		assert.Equal(t, "next", current.AccessToken)
		assert.Equal(t, "refresh", current.RefreshToken)
		require.Len(t, log.got, 1)
		assert.Equal(t, int64(1), log.got[0].UserID)
	})
}
