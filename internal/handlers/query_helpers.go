package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bandboard/bandboard/internal/middleware"
)

// queryUintPtr reads an optional numeric filter. Absent or unparsable
// values behave as "filter not supplied"; unknown keys are never errors.
func queryUintPtr(c *gin.Context, key string) *uint {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}

	id := uint(v)
	return &id
}

func actorID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextAccountID).(uint)
}
