package api

import (
	"errors"
	"net/http"

	"booking-engine/internal/domain/actor"
	"booking-engine/internal/handler/httperr"
	"booking-engine/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errors.New("caller is not authenticated")

func requireActor(c *gin.Context) (actor.Actor, bool) {
	caller, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return actor.Actor{}, false
	}
	return caller, true
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
