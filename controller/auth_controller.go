// api/controller/auth_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	"github.com/dev-anuragv/skillboard/api/model"
	"github.com/dev-anuragv/skillboard/api/service"
	"github.com/dev-anuragv/skillboard/api/util"
)

type AuthController struct {
	authService service.IAuthService
	cookieName  string
}

func NewAuthController(authService service.IAuthService, cookieName string) *AuthController {
	return &AuthController{
		authService: authService,
		cookieName:  cookieName,
	}
}

// Login endpoint
func (ac *AuthController) Login(c *gin.Context) {
	var creds model.Credentials
	if err := c.ShouldBind(&creds); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid credentials payload", err)
		return
	}

	pair, err := ac.authService.Login(c.Request.Context(), creds.Username, creds.Password, c.ClientIP())
	if err != nil {
		if errors.Is(err, board_errors.ErrAuth) {
			util.RespondWithError(c, http.StatusUnauthorized, "Invalid username or password", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to log in", err)
		}
		return
	}

	ac.setRefreshCookie(c, pair.RefreshSecret, pair.RefreshExpiresAt)
	c.JSON(http.StatusOK, pair)
}

// Refresh endpoint
func (ac *AuthController) Refresh(c *gin.Context) {
	secret, err := c.Cookie(ac.cookieName)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Refresh cookie missing", err)
		return
	}

	pair, err := ac.authService.Refresh(c.Request.Context(), secret, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, board_errors.ErrSessionNotFound):
			util.RespondWithError(c, http.StatusUnauthorized, "Session not found", err)
		case errors.Is(err, board_errors.ErrSessionExpired):
			util.RespondWithError(c, http.StatusUnauthorized, "Session expired", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to refresh session", err)
		}
		return
	}

	ac.setRefreshCookie(c, pair.RefreshSecret, pair.RefreshExpiresAt)
	c.JSON(http.StatusOK, pair)
}

// Logout endpoint
func (ac *AuthController) Logout(c *gin.Context) {
	secret, err := c.Cookie(ac.cookieName)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Refresh cookie missing", err)
		return
	}

	if err := ac.authService.Logout(c.Request.Context(), secret, c.ClientIP()); err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to log out", err)
		return
	}

	ac.clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}

func (ac *AuthController) setRefreshCookie(c *gin.Context, secret string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ac.cookieName, secret, maxAge, "/", "", true, true)
}

func (ac *AuthController) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ac.cookieName, "", -1, "/", "", true, true)
}
