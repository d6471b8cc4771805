package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/glamsuite/salon-scheduler/internal/httperr"
	"github.com/glamsuite/salon-scheduler/internal/middleware"
)

func currentSalonID(c *gin.Context) uint {
	v, _ := c.Get(middleware.ContextSalonID)
	id, _ := v.(uint)
	return id
}

func currentUserID(c *gin.Context) uint {
	v, _ := c.Get(middleware.ContextUserID)
	id, _ := v.(uint)
	return id
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Identifiant invalide.")
		return 0, false
	}
	return uint(id), true
}
