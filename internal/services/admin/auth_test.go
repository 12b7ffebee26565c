package admin

import (
	"context"
	"testing"
	"time"

	"github.com/3Eeeecho/go-fileportal/internal/config"
	"github.com/3Eeeecho/go-fileportal/internal/models"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/cache"
	"github.com/3Eeeecho/go-fileportal/internal/pkg/xerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jwtCfg = &config.JWTConfig{SecretKey: "test-secret", ExpiresIn: time.Hour, Issuer: "go-fileportal"}

func newProvider(t *testing.T) (SessionProvider, *cache.MemoryCache) {
	t.Helper()
	c := cache.NewMemoryCache(time.Hour, time.Hour)
	p := NewSessionProvider(newMemUserRepo(), c, jwtCfg)
	_, err := p.Register(context.Background(), "Alice@X.com", "correct horse")
	require.NoError(t, err)
	return p, c
}

func TestRegisterDuplicateEmail(t *testing.T) {
	p, _ := newProvider(t)
	_, err := p.Register(context.Background(), "alice@x.com", "another pass")
	assert.ErrorIs(t, err, xerr.ErrEmailAlreadyExists)

	_, err = p.Register(context.Background(), "bob@x.com", "short")
	assert.ErrorIs(t, err, xerr.ErrInvalidParams)
}

func TestSignInAndCurrentSession(t *testing.T) {
	p, c := newProvider(t)
	ctx := context.Background()

	session, err := p.SignIn(ctx, "alice@x.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", session.User.Email)
	assert.NotEmpty(t, session.Token)

	ok, _ := c.Exists(ctx, cache.GenerateSessionKey(session.ID))
	assert.True(t, ok)

	current, err := p.GetCurrentSession(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, current.ID)
	assert.Equal(t, "alice@x.com", current.User.Email)
}

func TestSignInBadCredentials(t *testing.T) {
	p, _ := newProvider(t)
	_, err := p.SignIn(context.Background(), "alice@x.com", "wrong password")
	assert.ErrorIs(t, err, xerr.ErrInvalidCredentials)

	_, err = p.SignIn(context.Background(), "nobody@x.com", "correct horse")
	assert.ErrorIs(t, err, xerr.ErrInvalidCredentials)
}

func TestSignOutInvalidatesToken(t *testing.T) {
	p, _ := newProvider(t)
	ctx := context.Background()
	session, err := p.SignIn(ctx, "alice@x.com", "correct horse")
	require.NoError(t, err)

	require.NoError(t, p.SignOut(ctx, session.Token))
	_, err = p.GetCurrentSession(ctx, session.Token)
	assert.ErrorIs(t, err, xerr.ErrTokenInvalid)
	assert.ErrorIs(t, p.SignOut(ctx, session.Token), xerr.ErrTokenInvalid)
}

func TestGetCurrentSessionGarbageToken(t *testing.T) {
	p, _ := newProvider(t)
	_, err := p.GetCurrentSession(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, xerr.ErrTokenInvalid)
}

func TestSubscribeReceivesEventsUntilUnsubscribed(t *testing.T) {
	p, _ := newProvider(t)
	ctx := context.Background()

	var events []SessionEvent
	unsubscribe := p.Subscribe(func(e SessionEvent, s *models.Session) {
		events = append(events, e)
		assert.Equal(t, "alice@x.com", s.User.Email)
	})

	session, err := p.SignIn(ctx, "alice@x.com", "correct horse")
	require.NoError(t, err)
	require.NoError(t, p.SignOut(ctx, session.Token))
	assert.Equal(t, []SessionEvent{EventSignedIn, EventSignedOut}, events)

	unsubscribe()
	unsubscribe()
	_, err = p.SignIn(ctx, "alice@x.com", "correct horse")
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
