// api/dao/user_dao_test.go
package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	"github.com/dev-anuragv/skillboard/api/model"
)

func TestCreateUserConflict(t *testing.T) {
	gdb := openTestDB(t)
	city := seedCity(t, gdb, "London")
	dao := NewUserDAO(gdb)

	user := &model.User{Name: "alice", Age: 30, Password: "hash", CityID: city.ID}
	require.NoError(t, dao.CreateUser(testCtx(), user))
	require.NotNil(t, user.City)
	assert.Equal(t, "London", user.City.Name)

	dup := &model.User{Name: "alice", Age: 25, Password: "hash", CityID: city.ID}
	err := dao.CreateUser(testCtx(), dup)
	assert.ErrorIs(t, err, board_errors.ErrUserConflict)
}

func TestGetUserNotFound(t *testing.T) {
	gdb := openTestDB(t)
	dao := NewUserDAO(gdb)

	_, err := dao.GetUser(testCtx(), 42)
	assert.ErrorIs(t, err, board_errors.ErrUserNotFound)

	_, err = dao.GetUserByName(testCtx(), "nobody")
	assert.ErrorIs(t, err, board_errors.ErrUserNotFound)
}

func TestListUsersPagination(t *testing.T) {
	gdb := openTestDB(t)
	city := seedCity(t, gdb, "London")
	dao := NewUserDAO(gdb)

	for _, name := range []string{"alice", "bob", "carol"} {
		seedUser(t, gdb, name, city.ID)
	}

	page, err := dao.ListUsers(testCtx(), 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "alice", page[0].Name)
	assert.Equal(t, "bob", page[1].Name)

	rest, err := dao.ListUsers(testCtx(), 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "carol", rest[0].Name)
}

func TestAddSkill(t *testing.T) {
	gdb := openTestDB(t)
	city := seedCity(t, gdb, "London")
	skill := seedSkill(t, gdb, "go")
	user := seedUser(t, gdb, "alice", city.ID)
	dao := NewUserDAO(gdb)

	updated, err := dao.AddSkill(testCtx(), user.ID, skill)
	require.NoError(t, err)
	require.Len(t, updated.Skills, 1)
	assert.Equal(t, "go", updated.Skills[0].Name)

	_, err = dao.AddSkill(testCtx(), user.ID, skill)
	assert.ErrorIs(t, err, board_errors.ErrSkillConflict)

	_, err = dao.AddSkill(testCtx(), 42, skill)
	assert.ErrorIs(t, err, board_errors.ErrUserNotFound)
}

func TestDeleteUserCascades(t *testing.T) {
	gdb := openTestDB(t)
	city := seedCity(t, gdb, "London")
	skill := seedSkill(t, gdb, "go")
	user := seedUser(t, gdb, "alice", city.ID)
	dao := NewUserDAO(gdb)

	_, err := dao.AddSkill(testCtx(), user.ID, skill)
	require.NoError(t, err)
	require.NoError(t, gdb.Create(&model.Post{Content: "hello", UserID: user.ID}).Error)

	require.NoError(t, dao.DeleteUser(testCtx(), user.ID))

	_, err = dao.GetUser(testCtx(), user.ID)
	assert.ErrorIs(t, err, board_errors.ErrUserNotFound)

	var posts int64
	require.NoError(t, gdb.Model(&model.Post{}).Where("user_id = ?", user.ID).Count(&posts).Error)
	assert.Zero(t, posts)

	// The skill itself stays registered.
	var skills int64
	require.NoError(t, gdb.Model(&model.Skill{}).Count(&skills).Error)
	assert.EqualValues(t, 1, skills)
}

func TestDeleteUserNotFound(t *testing.T) {
	gdb := openTestDB(t)
	dao := NewUserDAO(gdb)

	err := dao.DeleteUser(testCtx(), 42)
	assert.ErrorIs(t, err, board_errors.ErrUserNotFound)
}
