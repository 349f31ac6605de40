package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LoginPath is where visitors without an admin session are sent
const LoginPath = "/admin/login"

// AdminCredentials is the single username/password pair that unlocks the
// admin panel
type AdminCredentials struct {
	Username string
	Password string
}

// Check compares both values in constant time
func (a AdminCredentials) Check(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.Password)) == 1
	return userOK && passOK
}

// RequireAdmin redirects to the login page unless the session carries the
// admin flag
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := GetSessionState(c)
		if err != nil || !state.Admin {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Next()
	}
}
