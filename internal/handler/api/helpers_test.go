//go:build unit

package api_test

import (
	"net/http"

	"booking-engine/internal/domain/actor"
	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// fakeAuth authenticates every request carrying an Authorization header as *caller.
func fakeAuth(caller *actor.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetActor(c, *caller)
		c.Next()
	}
}

// the usecase layer wraps sentinels before they reach handlers
func wrapped(sentinel error) error {
	return errs.Wrap(sentinel, "usecase")
}

var errStorage = shared.Internal(errs.New("connection reset"), "load")
