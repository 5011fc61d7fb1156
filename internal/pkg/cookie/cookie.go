// Package cookie reads the platform session cookie. Issuing and clearing the
// cookie belongs to the auth service; the checkout only ever reads it.
package cookie

import (
	"github.com/gin-gonic/gin"
)

const SessionTokenCookieName = "session_token"

func GetSessionToken(c *gin.Context) string {
	token, _ := c.Cookie(SessionTokenCookieName)
	return token
}
