package api

import (
	"net/http"

	"freshmart/storefront/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionHandler toggles the login-state gate. Real authentication is owned
// by an external collaborator; this only flips the flag the cart consults.
type SessionHandler struct {
	sessions *session.Manager
}

func NewSessionHandler(sessions *session.Manager) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
	}
}

func (h *SessionHandler) Login(c *gin.Context) {
	h.sessions.SetLoggedIn(true)
	c.JSON(http.StatusOK, gin.H{"isLogin": true})
}

func (h *SessionHandler) Logout(c *gin.Context) {
	h.sessions.SetLoggedIn(false)
	c.JSON(http.StatusOK, gin.H{"isLogin": false})
}
