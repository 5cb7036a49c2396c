// api/router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-anuragv/skillboard/api/auth"
	"github.com/dev-anuragv/skillboard/api/controller"
	"github.com/dev-anuragv/skillboard/api/middleware"
	"github.com/dev-anuragv/skillboard/api/model"
	"github.com/dev-anuragv/skillboard/api/service"
	"github.com/dev-anuragv/skillboard/api/util"
)

// RateLimits holds the per-endpoint fixed-window budgets.
type RateLimits struct {
	ListUsersLimit  int64
	ListUsersWindow time.Duration
	ListPostsLimit  int64
	ListPostsWindow time.Duration
}

// SetupRouter wires every route with its middleware chain. Where a route
// carries more than one concern the order is always rate limiting, then the
// response cache, then authentication, so a throttled or cached request never
// pays for token verification.
func SetupRouter(
	controllers *controller.Controllers,
	services *service.Services,
	issuer *auth.TokenIssuer,
	cacheService *util.CacheService,
	rateLimiter *util.RateLimiter,
	limits RateLimits,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	api := router.Group("/api/v1")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/login", controllers.Auth.Login)
		authRoutes.POST("/refresh", controllers.Auth.Refresh)
		authRoutes.POST("/logout", controllers.Auth.Logout)
	}

	users := api.Group("/users")
	{
		users.POST("", controllers.User.CreateUser)
		users.GET("",
			middleware.RateLimit(rateLimiter, service.HandlerListUsers, limits.ListUsersLimit, limits.ListUsersWindow, middleware.ByClientIP),
			middleware.CacheResponse(cacheService, service.HandlerListUsers, util.ListOf[model.User]()),
			middleware.Authenticate(issuer, services.User, "admin", "user"),
			controllers.User.ListUsers)
		users.GET("/:id",
			middleware.CacheResponse(cacheService, service.HandlerGetUser, util.SingleOf[model.User]()),
			controllers.User.GetUser)
		users.GET("/:id/skills",
			middleware.CacheResponse(cacheService, service.HandlerGetUserSkills, util.SingleOf[model.User]()),
			controllers.User.GetUserSkills)
		users.DELETE("/:id",
			middleware.Authenticate(issuer, services.User, "admin"),
			controllers.User.DeleteUser)
		users.POST("/:id/skills",
			middleware.Authenticate(issuer, services.User),
			controllers.User.AddSkill)
		users.POST("/:id/posts",
			middleware.Authenticate(issuer, services.User),
			controllers.Post.CreatePost)
	}

	posts := api.Group("/posts")
	{
		posts.GET("",
			middleware.RateLimit(rateLimiter, service.HandlerListPosts, limits.ListPostsLimit, limits.ListPostsWindow, middleware.ByClientIP),
			middleware.CacheResponse(cacheService, service.HandlerListPosts, util.ListOf[model.Post]()),
			controllers.Post.ListPosts)
	}

	auditRoutes := api.Group("/audit")
	{
		auditRoutes.GET("/events",
			middleware.Authenticate(issuer, services.User, "admin"),
			controllers.Audit.QueryEvents)
	}

	return router
}
