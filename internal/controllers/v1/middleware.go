package v1

import (
	"strings"

	"github.com/centavo/backend/internal/auth"
	"github.com/centavo/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// contextUser is the gin context key the authenticated user is stored under.
const contextUser = "centavo-user"

// RequireAuth authenticates the request with a bearer token.
//
// Every failure aborts with the same 401 response: a missing header, a
// token that does not validate and a subject without a matching user are
// indistinguishable to the caller.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			abortUnauthorized(c)
			return
		}

		email, err := tokens.Validate(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		var user models.User
		err = models.DB.First(&user, "email = ?", email).Error
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(contextUser, user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(status(auth.ErrUnauthorized), httpError{
		Error: auth.ErrUnauthorized.Error(),
	})
}

// currentUser returns the user authenticated by RequireAuth.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(contextUser).(models.User)
}
