// api/controller/post_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	"github.com/dev-anuragv/skillboard/api/model"
	"github.com/dev-anuragv/skillboard/api/service"
	"github.com/dev-anuragv/skillboard/api/util"
	helper_util "github.com/dev-anuragv/skillboard/api/util/helper"
)

type PostController struct {
	postService service.IPostService
}

func NewPostController(postService service.IPostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// CreatePost endpoint
func (pc *PostController) CreatePost(c *gin.Context) {
	userID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	var req model.PostCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid post data", err)
		return
	}

	post, err := pc.postService.CreatePost(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, board_errors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create post", err)
		}
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ListPosts endpoint
func (pc *PostController) ListPosts(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	posts, err := pc.postService.ListPosts(c.Request.Context(), limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list posts", err)
		return
	}

	c.JSON(http.StatusOK, posts)
}
