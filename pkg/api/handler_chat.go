package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) createChatSessionHandler(c *gin.Context) {
	c.JSON(http.StatusCreated, s.chat.Create())
}

func (s *Server) getChatSessionHandler(c *gin.Context) {
	session, ok := s.chat.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}
