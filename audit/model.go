// api/audit/model.go
package audit

import "time"

// Security-event actions recorded by the auth flow.
const (
	ActionLogin         = "login"
	ActionLoginFailed   = "login_failed"
	ActionRefresh       = "refresh"
	ActionRefreshFailed = "refresh_failed"
	ActionLogout        = "logout"
)

// Event is one auth-related occurrence worth keeping an audit trail of.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	SourceIP  string    `json:"source_ip,omitempty"`
	Success   bool      `json:"success"`
	Detail    string    `json:"detail,omitempty"`
}
