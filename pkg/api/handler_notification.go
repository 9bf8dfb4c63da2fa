package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promsight/promsight/pkg/services"
)

// UpsertNotificationRequest is the body of PUT /api/v1/notifications.
type UpsertNotificationRequest struct {
	UserID     string   `json:"user_id" binding:"required"`
	Channel    string   `json:"channel" binding:"required"`
	Enabled    bool     `json:"enabled"`
	WebhookURL string   `json:"webhook_url"`
	Recipients []string `json:"recipients"`
}

func (s *Server) listNotificationsHandler(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}
	configs, err := s.notifications.List(c.Request.Context(), userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, configs)
}

func (s *Server) upsertNotificationHandler(c *gin.Context) {
	var req UpsertNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := s.notifications.Upsert(c.Request.Context(), services.UpsertNotificationInput{
		UserID:     req.UserID,
		Channel:    req.Channel,
		Enabled:    req.Enabled,
		WebhookURL: req.WebhookURL,
		Recipients: req.Recipients,
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}
