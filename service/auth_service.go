// api/service/auth_service.go
package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/dev-anuragv/skillboard/api/audit"
	"github.com/dev-anuragv/skillboard/api/auth"
	"github.com/dev-anuragv/skillboard/api/dao"
	board_errors "github.com/dev-anuragv/skillboard/api/errors"
	logger "github.com/dev-anuragv/skillboard/api/logging"
	"github.com/dev-anuragv/skillboard/api/model"
	"github.com/dev-anuragv/skillboard/api/util"
)

// IAuthService orchestrates the session lifecycle: login, refresh, logout.
type IAuthService interface {
	Login(ctx context.Context, username, password, sourceIP string) (*model.TokenPair, error)
	Refresh(ctx context.Context, refreshSecret, sourceIP string) (*model.TokenPair, error)
	Logout(ctx context.Context, refreshSecret, sourceIP string) error
}

type AuthService struct {
	userDAO    *dao.UserDAO
	sessionDAO *dao.RefreshSessionDAO
	issuer     *auth.TokenIssuer
	accessTTL  time.Duration
	auditSvc   audit.Service
}

var _ IAuthService = &AuthService{}

func NewAuthService(
	userDAO *dao.UserDAO,
	sessionDAO *dao.RefreshSessionDAO,
	issuer *auth.TokenIssuer,
	accessTTL time.Duration,
	auditSvc audit.Service,
) *AuthService {
	return &AuthService{
		userDAO:    userDAO,
		sessionDAO: sessionDAO,
		issuer:     issuer,
		accessTTL:  accessTTL,
		auditSvc:   auditSvc,
	}
}

// Login verifies credentials and opens a new session. Unknown user and wrong
// password both come back as ErrAuth so responses cannot be used to probe
// for usernames.
func (s *AuthService) Login(ctx context.Context, username, password, sourceIP string) (*model.TokenPair, error) {
	user, err := s.userDAO.GetUserByName(ctx, username)
	if errors.Is(err, board_errors.ErrUserNotFound) {
		s.recordEvent(ctx, username, audit.ActionLoginFailed, sourceIP, false, "unknown user")
		return nil, board_errors.ErrAuth
	}
	if err != nil {
		return nil, err
	}
	if !util.CheckPassword(password, user.Password) {
		s.recordEvent(ctx, username, audit.ActionLoginFailed, sourceIP, false, "wrong password")
		return nil, board_errors.ErrAuth
	}

	accessToken, err := s.issuer.Mint(map[string]interface{}{"sub": user.Name}, s.accessTTL)
	if err != nil {
		logger.Error("Failed to mint access token", zap.Error(err))
		return nil, board_errors.ErrInternalServer
	}

	session, err := s.sessionDAO.Create(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.recordEvent(ctx, username, audit.ActionLogin, sourceIP, true, "")
	return &model.TokenPair{
		AccessToken:      accessToken,
		TokenType:        "bearer",
		RefreshSecret:    session.Secret,
		RefreshExpiresAt: session.ExpiresAt,
	}, nil
}

// Refresh consumes the presented secret and returns a new token pair. The
// rotation itself guarantees the secret is single use.
func (s *AuthService) Refresh(ctx context.Context, refreshSecret, sourceIP string) (*model.TokenPair, error) {
	session, err := s.sessionDAO.Rotate(ctx, refreshSecret)
	if err != nil {
		s.recordEvent(ctx, "", audit.ActionRefreshFailed, sourceIP, false, err.Error())
		return nil, err
	}

	subject := strconv.FormatUint(uint64(session.UserID), 10)
	accessToken, err := s.issuer.Mint(map[string]interface{}{"sub": subject}, s.accessTTL)
	if err != nil {
		logger.Error("Failed to mint access token", zap.Error(err))
		return nil, board_errors.ErrInternalServer
	}

	s.recordEvent(ctx, subject, audit.ActionRefresh, sourceIP, true, "")
	return &model.TokenPair{
		AccessToken:      accessToken,
		TokenType:        "bearer",
		RefreshSecret:    session.Secret,
		RefreshExpiresAt: session.ExpiresAt,
	}, nil
}

// Logout revokes the session. Revoking an already dead secret succeeds.
func (s *AuthService) Logout(ctx context.Context, refreshSecret, sourceIP string) error {
	if err := s.sessionDAO.Revoke(ctx, refreshSecret); err != nil {
		return err
	}
	s.recordEvent(ctx, "", audit.ActionLogout, sourceIP, true, "")
	return nil
}

// recordEvent writes to the audit trail best effort; auth outcomes never
// depend on the sink being up.
func (s *AuthService) recordEvent(ctx context.Context, username, action, sourceIP string, success bool, detail string) {
	if s.auditSvc == nil {
		return
	}
	event := audit.Event{
		Timestamp: time.Now(),
		Username:  username,
		Action:    action,
		SourceIP:  sourceIP,
		Success:   success,
		Detail:    detail,
	}
	if err := s.auditSvc.LogEvent(ctx, event); err != nil {
		logger.Warn("Failed to record audit event", zap.Error(err), zap.String("action", action))
	}
}
