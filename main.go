package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-anuragv/skillboard/api/audit"
	"github.com/dev-anuragv/skillboard/api/auth"
	"github.com/dev-anuragv/skillboard/api/config"
	"github.com/dev-anuragv/skillboard/api/controller"
	"github.com/dev-anuragv/skillboard/api/dao"
	"github.com/dev-anuragv/skillboard/api/db"
	logger "github.com/dev-anuragv/skillboard/api/logging"
	"github.com/dev-anuragv/skillboard/api/router"
	"github.com/dev-anuragv/skillboard/api/service"
	"github.com/dev-anuragv/skillboard/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	// Initialize the relational database
	if err := db.InitDB(); err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.CloseDB()

	// Initialize Redis
	if err := db.InitRedis(); err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eventBus.Start(ctx)

	// Initialize utilities
	util.NewValidationUtil()
	store := db.NewRedisStore(db.RedisClient)
	cacheService := util.NewCacheService(store, config.GetDuration("redis.defaultCacheTTL"))
	rateLimiter := util.NewRateLimiter(store)
	notificationService := util.NewNotificationService()
	issuer := auth.NewTokenIssuer(config.GetString("auth.secret"))

	auditRepository, err := audit.NewElasticsearchRepository(config.GetString("audit.elasticsearchUrl"))
	if err != nil {
		logger.Fatal("Failed to initialize audit repository", zap.Error(err))
	}
	auditService := audit.NewService(auditRepository)

	// Initialize services
	services, err := service.InitializeServices(
		db.DB,
		issuer,
		config.GetDuration("auth.accessTokenTTL"),
		config.GetDuration("auth.refreshSessionTTL"),
		auditService,
		cacheService,
		notificationService,
		eventBus,
	)
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	// Seed the lookup tables and warm the name resolution maps before the
	// server accepts traffic.
	lookupDAO := dao.NewLookupDAO(db.DB)
	if err := lookupDAO.SeedDefaults(ctx, config.GetStringSlice("lookup.cities"), config.GetStringSlice("lookup.skills")); err != nil {
		logger.Fatal("Failed to seed lookup tables", zap.Error(err))
	}
	if err := services.Lookup.Refresh(ctx); err != nil {
		logger.Fatal("Failed to load lookup tables", zap.Error(err))
	}

	// Initialize controllers
	controllers := controller.InitializeControllers(services, auditService, config.GetString("auth.refreshCookieName"))

	// Set up Gin
	gin.SetMode(gin.ReleaseMode)
	engine := router.SetupRouter(
		controllers,
		services,
		issuer,
		cacheService,
		rateLimiter,
		router.RateLimits{
			ListUsersLimit:  int64(config.GetInt("ratelimit.listUsers.limit")),
			ListUsersWindow: config.GetDuration("ratelimit.listUsers.window"),
			ListPostsLimit:  int64(config.GetInt("ratelimit.listPosts.limit")),
			ListPostsWindow: config.GetDuration("ratelimit.listPosts.window"),
		},
	)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
