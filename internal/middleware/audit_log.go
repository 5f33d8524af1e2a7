// Package middleware provides audit logging utilities.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Reidvanvliet/golden-chopsticks-service/internal/domain/model"
	"github.com/Reidvanvliet/golden-chopsticks-service/internal/service"
)

// auditEntry builds a log entry from the request, picking up the admin
// identity when the JWT middleware has set it.
func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Fields:     fields,
	}

	if username, exists := c.Get("username"); exists {
		if name, ok := username.(string); ok {
			entry.Username = name
		}
	}
	if role, exists := c.Get("user_role"); exists {
		if r, ok := role.(string); ok {
			entry.Role = r
		}
	}

	return entry
}

// AuditLog records an action against the audit trail. Use it for the calls
// that change state: login, catalog updates, cart mutations.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := auditEntry(c, "info", actionType, message, fields)

	// Store asynchronously to avoid blocking the request
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

// AuditLogError records a failed action against the audit trail.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := auditEntry(c, "error", actionType, message, fields)
	entry.Error = err.Error()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
