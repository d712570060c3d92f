package middleware

import "github.com/gin-gonic/gin"

// User is the identity attached to a request. There are no accounts, so every request
// runs as the same anonymous user.
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

var anonymous = User{ID: 1, Username: "anonymous", Email: "anonymous@example.com"}

const userKey = "user"

// LoginRequired 占位鉴权：直接放行，仅注入固定用户
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userKey, anonymous)
		c.Next()
	}
}

func CurrentUser(c *gin.Context) User {
	if u, ok := c.Get(userKey); ok {
		if user, ok := u.(User); ok {
			return user
		}
	}
	return anonymous
}
