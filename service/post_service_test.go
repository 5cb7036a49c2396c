// api/service/post_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	"github.com/dev-anuragv/skillboard/api/model"
)

func TestCreatePostRequiresAuthor(t *testing.T) {
	env := newTestEnv(t)
	alice := registerAlice(t, env)
	ctx := context.Background()

	post, err := env.services.Post.CreatePost(ctx, alice.ID, model.PostCreate{Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", post.Content)
	require.NotNil(t, post.Author)
	assert.Equal(t, "alice", post.Author.Name)

	_, err = env.services.Post.CreatePost(ctx, 42, model.PostCreate{Content: "orphan"})
	assert.ErrorIs(t, err, board_errors.ErrUserNotFound)
}

func TestListPosts(t *testing.T) {
	env := newTestEnv(t)
	alice := registerAlice(t, env)
	ctx := context.Background()

	_, err := env.services.Post.CreatePost(ctx, alice.ID, model.PostCreate{Content: "first"})
	require.NoError(t, err)
	_, err = env.services.Post.CreatePost(ctx, alice.ID, model.PostCreate{Content: "second"})
	require.NoError(t, err)

	posts, err := env.services.Post.ListPosts(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "first", posts[0].Content)
	require.NotNil(t, posts[0].Author)
	assert.Equal(t, alice.ID, posts[0].Author.ID)
}
