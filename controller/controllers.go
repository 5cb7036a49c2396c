// api/controller/controllers.go
package controller

import (
	"github.com/dev-anuragv/skillboard/api/audit"
	"github.com/dev-anuragv/skillboard/api/service"
)

type Controllers struct {
	Auth  *AuthController
	User  *UserController
	Post  *PostController
	Audit *AuditController
}

func InitializeControllers(services *service.Services, auditService audit.Service, refreshCookieName string) *Controllers {
	return &Controllers{
		Auth:  NewAuthController(services.Auth, refreshCookieName),
		User:  NewUserController(services.User),
		Post:  NewPostController(services.Post),
		Audit: NewAuditController(auditService),
	}
}
