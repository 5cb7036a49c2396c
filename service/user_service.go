// api/service/user_service.go
package service

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/dev-anuragv/skillboard/api/dao"
	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	logger "github.com/dev-anuragv/skillboard/api/logging"
	"github.com/dev-anuragv/skillboard/api/model"
	"github.com/dev-anuragv/skillboard/api/util"
)

// IUserService defines the interface for user operations
type IUserService interface {
	Register(ctx context.Context, req model.UserCreate) (*model.User, error)
	GetUser(ctx context.Context, userID uint) (*model.User, error)
	GetUserSkills(ctx context.Context, userID uint) (*model.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]model.User, error)
	DeleteUser(ctx context.Context, userID uint) error
	AddSkill(ctx context.Context, userID uint, skillName string) (*model.User, error)
	ResolveSubject(ctx context.Context, subject string) (*model.User, error)
}

// UserService handles business logic for user operations
type UserService struct {
	userDAO         *dao.UserDAO
	sessionDAO      *dao.RefreshSessionDAO
	lookupSvc       *LookupService
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IUserService = &UserService{}

// NewUserService creates a new instance of UserService
func NewUserService(
	userDAO *dao.UserDAO,
	sessionDAO *dao.RefreshSessionDAO,
	lookupSvc *LookupService,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) *UserService {
	service := &UserService{
		userDAO:         userDAO,
		sessionDAO:      sessionDAO,
		lookupSvc:       lookupSvc,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	eventBus.Subscribe(util.EventUserCreated, service.handleUserCreated)
	eventBus.Subscribe(util.EventUserDeleted, service.handleUserDeleted)

	return service
}

func (s *UserService) handleUserCreated(ctx context.Context, event util.Event) error {
	user := event.Payload.(model.User)
	logger.Info("User created event received", zap.Uint("userID", user.ID))
	return s.notificationSvc.NotifyUserChange(ctx, "created", user)
}

func (s *UserService) handleUserDeleted(ctx context.Context, event util.Event) error {
	user := event.Payload.(model.User)
	logger.Info("User deleted event received", zap.Uint("userID", user.ID))
	return s.notificationSvc.NotifyUserChange(ctx, "deleted", user)
}

func (s *UserService) Register(ctx context.Context, req model.UserCreate) (*model.User, error) {
	cityID, err := s.lookupSvc.CityID(req.City)
	if err != nil {
		return nil, err
	}

	hash, err := util.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		return nil, board_errors.ErrInternalServer
	}

	user := &model.User{
		Name:     req.Name,
		Age:      req.Age,
		Password: hash,
		Role:     "user",
		CityID:   cityID,
	}
	if err := s.userDAO.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	// The user list and any cached name resolution are stale now.
	s.cacheService.Invalidate(ctx, HandlerListUsers)
	s.cacheService.Invalidate(ctx, HandlerResolveSubject)

	s.eventBus.Publish(ctx, util.EventUserCreated, *user)
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, userID uint) (*model.User, error) {
	return s.userDAO.GetUser(ctx, userID)
}

func (s *UserService) GetUserSkills(ctx context.Context, userID uint) (*model.User, error) {
	return s.userDAO.GetUserWithSkills(ctx, userID)
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]model.User, error) {
	return s.userDAO.ListUsers(ctx, limit, offset)
}

func (s *UserService) DeleteUser(ctx context.Context, userID uint) error {
	if err := s.userDAO.DeleteUser(ctx, userID); err != nil {
		return err
	}

	// A deleted user must not keep live refresh sessions.
	if err := s.sessionDAO.RevokeAllForUser(ctx, userID); err != nil {
		logger.Error("Failed to revoke sessions of deleted user", zap.Error(err), zap.Uint("userID", userID))
	}

	s.cacheService.Invalidate(ctx, HandlerListUsers)
	s.cacheService.Invalidate(ctx, HandlerGetUser)
	s.cacheService.Invalidate(ctx, HandlerGetUserSkills)
	s.cacheService.Invalidate(ctx, HandlerResolveSubject)

	s.eventBus.Publish(ctx, util.EventUserDeleted, model.User{ID: userID})
	return nil
}

func (s *UserService) AddSkill(ctx context.Context, userID uint, skillName string) (*model.User, error) {
	skillID, err := s.lookupSvc.SkillID(skillName)
	if err != nil {
		return nil, err
	}

	user, err := s.userDAO.AddSkill(ctx, userID, model.Skill{ID: skillID, Name: skillName})
	if err != nil {
		return nil, err
	}

	s.cacheService.Invalidate(ctx, HandlerGetUserSkills)
	return user, nil
}

// ResolveSubject maps an access-token subject to a user. Login tokens carry
// the username, refreshed tokens carry the numeric user ID as a string; both
// forms resolve here. Results are served cache-aside so that every request
// on a protected route does not hit the database.
func (s *UserService) ResolveSubject(ctx context.Context, subject string) (*model.User, error) {
	key := s.cacheService.KeyFor(HandlerResolveSubject, map[string]interface{}{"subject": subject})
	resolved, err := s.cacheService.ReadThrough(ctx, key, util.SingleOf[model.User](),
		func(ctx context.Context) (interface{}, error) {
			if id, convErr := strconv.ParseUint(subject, 10, 32); convErr == nil {
				user, err := s.userDAO.GetUser(ctx, uint(id))
				if err != nil {
					return nil, err
				}
				return *user, nil
			}
			user, err := s.userDAO.GetUserByName(ctx, subject)
			if err != nil {
				return nil, err
			}
			return *user, nil
		})
	if err != nil {
		return nil, err
	}
	user := resolved.(model.User)
	return &user, nil
}
