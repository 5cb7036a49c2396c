// api/dao/session_dao_test.go
package dao

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	"github.com/dev-anuragv/skillboard/api/model"
)

func TestRefreshSessionCreate(t *testing.T) {
	gdb := openTestDB(t)
	city := seedCity(t, gdb, "London")
	user := seedUser(t, gdb, "alice", city.ID)

	dao := NewRefreshSessionDAO(gdb, time.Hour)
	session, err := dao.Create(testCtx(), user.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.NotEmpty(t, session.Secret)
	assert.Equal(t, user.ID, session.UserID)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	second, err := dao.Create(testCtx(), user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, session.Secret, second.Secret)
}

func TestRotateReplacesSession(t *testing.T) {
	gdb := openTestDB(t)
	city := seedCity(t, gdb, "London")
	user := seedUser(t, gdb, "alice", city.ID)

	dao := NewRefreshSessionDAO(gdb, time.Hour)
	session, err := dao.Create(testCtx(), user.ID)
	require.NoError(t, err)

	next, err := dao.Rotate(testCtx(), session.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, next.UserID)
	assert.NotEqual(t, session.Secret, next.Secret)

	// The consumed secret is gone for good.
	_, err = dao.Rotate(testCtx(), session.Secret)
	assert.ErrorIs(t, err, board_errors.ErrSessionNotFound)

	// Exactly one session remains.
	var count int64
	require.NoError(t, gdb.Model(&model.RefreshSession{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRotateUnknownSecret(t *testing.T) {
	gdb := openTestDB(t)
	dao := NewRefreshSessionDAO(gdb, time.Hour)

	_, err := dao.Rotate(testCtx(), "no-such-secret")
	assert.ErrorIs(t, err, board_errors.ErrSessionNotFound)
}

func TestRotateExpiredSession(t *testing.T) {
	gdb := openTestDB(t)
	city := seedCity(t, gdb, "London")
	user := seedUser(t, gdb, "alice", city.ID)

	expired := NewRefreshSessionDAO(gdb, -time.Minute)
	session, err := expired.Create(testCtx(), user.ID)
	require.NoError(t, err)

	dao := NewRefreshSessionDAO(gdb, time.Hour)
	_, err = dao.Rotate(testCtx(), session.Secret)
	assert.ErrorIs(t, err, board_errors.ErrSessionExpired)

	// Expiry detection removed the row, so a retry is indistinguishable from
	// a secret that never existed.
	_, err = dao.Rotate(testCtx(), session.Secret)
	assert.ErrorIs(t, err, board_errors.ErrSessionNotFound)
}

func TestRotateConcurrentSingleUse(t *testing.T) {
	gdb := openTestDB(t)
	city := seedCity(t, gdb, "London")
	user := seedUser(t, gdb, "alice", city.ID)

	dao := NewRefreshSessionDAO(gdb, time.Hour)
	session, err := dao.Create(testCtx(), user.ID)
	require.NoError(t, err)

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = dao.Rotate(testCtx(), session.Secret)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, board_errors.ErrSessionNotFound)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one rotation may consume the secret")

	var count int64
	require.NoError(t, gdb.Model(&model.RefreshSession{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRevokeIsIdempotent(t *testing.T) {
	gdb := openTestDB(t)
	city := seedCity(t, gdb, "London")
	user := seedUser(t, gdb, "alice", city.ID)

	dao := NewRefreshSessionDAO(gdb, time.Hour)
	session, err := dao.Create(testCtx(), user.ID)
	require.NoError(t, err)

	require.NoError(t, dao.Revoke(testCtx(), session.Secret))
	require.NoError(t, dao.Revoke(testCtx(), session.Secret))

	_, err = dao.Rotate(testCtx(), session.Secret)
	assert.ErrorIs(t, err, board_errors.ErrSessionNotFound)
}

func TestRevokeAllForUser(t *testing.T) {
	gdb := openTestDB(t)
	city := seedCity(t, gdb, "London")
	alice := seedUser(t, gdb, "alice", city.ID)
	bob := seedUser(t, gdb, "bob", city.ID)

	dao := NewRefreshSessionDAO(gdb, time.Hour)
	_, err := dao.Create(testCtx(), alice.ID)
	require.NoError(t, err)
	_, err = dao.Create(testCtx(), alice.ID)
	require.NoError(t, err)
	bobSession, err := dao.Create(testCtx(), bob.ID)
	require.NoError(t, err)

	require.NoError(t, dao.RevokeAllForUser(testCtx(), alice.ID))

	var count int64
	require.NoError(t, gdb.Model(&model.RefreshSession{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Bob's session survives.
	_, err = dao.Rotate(testCtx(), bobSession.Secret)
	assert.NoError(t, err)
}
