package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reelvault/reelvault/internal/common"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type identityResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	identity, err := s.accounts.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered successfully",
		"user":    identityResponse{ID: identity.ID, Email: identity.Email},
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	identity, err := s.authn.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	token, err := s.sessions.Issue(identity)
	if err != nil {
		s.writeError(c, common.ErrorInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) handleSession(c *gin.Context) {
	identity, _ := currentIdentity(c)
	c.JSON(http.StatusOK, identityResponse{ID: identity.ID, Email: identity.Email})
}

type changePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// handleChangePassword replaces the secret of the authenticated account
// only. The account to change comes from the session, never from the request
// body, so knowing an email is not enough to overwrite its password.
func (s *Server) handleChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "newPassword is required"})
		return
	}

	identity, _ := currentIdentity(c)

	updated, err := s.accounts.ChangeSecret(c.Request.Context(), identity.ID, req.NewPassword)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "password updated successfully",
		"user":    identityResponse{ID: updated.ID, Email: updated.Email},
	})
}

// writeError maps service errors onto the response contract. Credential
// rejections stay generic; store unavailability is the one infrastructure
// fault clients may retry.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrorInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
	case errors.Is(err, common.ErrorConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "user already registered"})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, common.ErrorStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable, please try again"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
