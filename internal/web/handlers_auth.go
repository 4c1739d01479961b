package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "message": err.Error()})
		return
	}

	sess, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email": sess.Email,
		"name":  sess.Name,
		"role":  sess.Role,
	})
}

func (s *Server) register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_INPUT", "message": err.Error()})
		return
	}

	sess, err := s.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"email": sess.Email,
		"name":  sess.Name,
	})
}

func (s *Server) logout(c *gin.Context) {
	s.auth.Logout()
	c.Status(http.StatusNoContent)
}

func (s *Server) me(c *gin.Context) {
	sess, ok := s.auth.Current()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHENTICATED", "message": "no active session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":     sess.Email,
		"name":      sess.Name,
		"role":      sess.Role,
		"expiresAt": sess.ExpiresAt,
	})
}
