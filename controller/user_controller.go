// api/controller/user_controller.go
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

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// CreateUser endpoint
func (uc *UserController) CreateUser(c *gin.Context) {
	var req model.UserCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", err)
		return
	}

	createdUser, err := uc.userService.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, board_errors.ErrUserConflict):
			util.RespondWithError(c, http.StatusConflict, "User already exists", err)
		case errors.Is(err, board_errors.ErrCityNotFound):
			util.RespondWithError(c, http.StatusBadRequest, "Unknown city", err)
		case errors.Is(err, board_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create user", err)
		}
		return
	}

	c.JSON(http.StatusCreated, createdUser)
}

// ListUsers endpoint
func (uc *UserController) ListUsers(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	users, err := uc.userService.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list users", err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser endpoint
func (uc *UserController) GetUser(c *gin.Context) {
	userID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	user, err := uc.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, board_errors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to get user", err)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUserSkills endpoint
func (uc *UserController) GetUserSkills(c *gin.Context) {
	userID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	user, err := uc.userService.GetUserSkills(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, board_errors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to get user skills", err)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser endpoint
func (uc *UserController) DeleteUser(c *gin.Context) {
	userID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	if err := uc.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, board_errors.ErrUserNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// AddSkill endpoint
func (uc *UserController) AddSkill(c *gin.Context) {
	userID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	var req model.SkillAdd
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid skill data", err)
		return
	}

	user, err := uc.userService.AddSkill(c.Request.Context(), userID, req.Skill)
	if err != nil {
		switch {
		case errors.Is(err, board_errors.ErrUserNotFound):
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		case errors.Is(err, board_errors.ErrSkillNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Skill not found", err)
		case errors.Is(err, board_errors.ErrSkillConflict):
			util.RespondWithError(c, http.StatusConflict, "Skill already attached", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to add skill", err)
		}
		return
	}

	c.JSON(http.StatusAccepted, user)
}
