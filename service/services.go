// api/service/services.go
package service

import (
	"time"

	"gorm.io/gorm"

	"github.com/dev-anuragv/skillboard/api/audit"
	"github.com/dev-anuragv/skillboard/api/auth"
	"github.com/dev-anuragv/skillboard/api/dao"
	"github.com/dev-anuragv/skillboard/api/util"
)

// Handler identities used as cache namespaces. The router declares them on
// routes, the services invalidate under them after writes.
const (
	HandlerListUsers      = "list_users"
	HandlerGetUser        = "get_user"
	HandlerGetUserSkills  = "get_user_skills"
	HandlerListPosts      = "list_posts"
	HandlerResolveSubject = "resolve_subject"
)

type Services struct {
	Auth   IAuthService
	User   IUserService
	Post   IPostService
	Lookup *LookupService
}

func InitializeServices(
	gdb *gorm.DB,
	issuer *auth.TokenIssuer,
	accessTTL time.Duration,
	refreshTTL time.Duration,
	auditService audit.Service,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	userDAO := dao.NewUserDAO(gdb)
	postDAO := dao.NewPostDAO(gdb)
	lookupDAO := dao.NewLookupDAO(gdb)
	sessionDAO := dao.NewRefreshSessionDAO(gdb, refreshTTL)

	lookupSvc := NewLookupService(lookupDAO)

	services := &Services{
		Auth:   NewAuthService(userDAO, sessionDAO, issuer, accessTTL, auditService),
		User:   NewUserService(userDAO, sessionDAO, lookupSvc, cacheService, notificationSvc, eventBus),
		Post:   NewPostService(postDAO, userDAO, cacheService, notificationSvc, eventBus),
		Lookup: lookupSvc,
	}

	return services, nil
}
