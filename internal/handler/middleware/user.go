package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	UserEmailHeader = "X-User-Email"
	ctxUserEmailKey = "user_email"
)

// UserIdentity records the caller's email from the X-User-Email header.
// The header is trusted as given; a missing value is left for the usecase
// to reject.
func UserIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if email := strings.TrimSpace(c.GetHeader(UserEmailHeader)); email != "" {
			c.Set(ctxUserEmailKey, email)
		}
		c.Next()
	}
}

func GetUserEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUserEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok
}
