// api/controller/audit_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-anuragv/skillboard/api/audit"
	"github.com/dev-anuragv/skillboard/api/util"
	helper_util "github.com/dev-anuragv/skillboard/api/util/helper"
)

type AuditController struct {
	auditService audit.Service
}

func NewAuditController(auditService audit.Service) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// QueryEvents endpoint. from/to are RFC3339; from defaults to 24h ago.
func (ac *AuditController) QueryEvents(c *gin.Context) {
	now := time.Now()

	from, err := helper_util.ParseTime(c.Query("from"), now.Add(-24*time.Hour))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid 'from' timestamp", err)
		return
	}
	to, err := helper_util.ParseTime(c.Query("to"), now)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid 'to' timestamp", err)
		return
	}

	events, err := ac.auditService.QueryEvents(c.Request.Context(), from, to, c.Query("username"), c.Query("action"))
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to query audit events", err)
		return
	}

	c.JSON(http.StatusOK, events)
}
