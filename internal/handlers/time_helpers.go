package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Harika-001-tech/prenatal-app/internal/httperr"
)

// uuidParam reads a path parameter as a UUID, writing a 400 when it is not one.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// dayQuery parses an optional YYYY-MM-DD query value as midnight in loc.
func dayQuery(c *gin.Context, key string, loc *time.Location) (time.Time, bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, false, nil
	}
	day, err := time.ParseInLocation("2006-01-02", raw, loc)
	if err != nil {
		return time.Time{}, false, err
	}
	return day, true, nil
}
