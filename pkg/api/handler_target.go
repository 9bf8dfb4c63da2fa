package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promsight/promsight/pkg/services"
)

// CreateTargetRequest is the body of POST /api/v1/targets.
type CreateTargetRequest struct {
	UserID   string            `json:"user_id" binding:"required"`
	Name     string            `json:"name" binding:"required"`
	Endpoint string            `json:"endpoint" binding:"required"`
	Labels   map[string]string `json:"labels"`
	Enabled  *bool             `json:"enabled"`
}

// UpdateTargetRequest is the body of PATCH /api/v1/targets/:id. Absent
// fields are left untouched.
type UpdateTargetRequest struct {
	Name    *string           `json:"name"`
	Labels  map[string]string `json:"labels"`
	Enabled *bool             `json:"enabled"`
}

func (s *Server) createTargetHandler(c *gin.Context) {
	var req CreateTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.targets.CreateTarget(c.Request.Context(), services.CreateTargetInput{
		UserID:   req.UserID,
		Name:     req.Name,
		Endpoint: req.Endpoint,
		Labels:   req.Labels,
		Enabled:  req.Enabled,
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) listTargetsHandler(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}
	targets, err := s.targets.ListTargets(c.Request.Context(), userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, targets)
}

func (s *Server) getTargetHandler(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}
	target, err := s.targets.GetTarget(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, target)
}

func (s *Server) updateTargetHandler(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}
	var req UpdateTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := s.targets.UpdateTarget(c.Request.Context(), userID, c.Param("id"), services.UpdateTargetInput{
		Name:    req.Name,
		Labels:  req.Labels,
		Enabled: req.Enabled,
	})
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteTargetHandler(c *gin.Context) {
	userID, ok := tenantID(c)
	if !ok {
		return
	}
	if err := s.targets.DeleteTarget(c.Request.Context(), userID, c.Param("id")); err != nil {
		abortServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
