package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by the state storage.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports whether the storage backend answers. Never exposes the
// backend error itself.
func Health(storage Pinger, driver string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		storageStatus := "connected"
		if storage.Ping(ctx) != nil {
			storageStatus = "error"
		}

		status := http.StatusOK
		if storageStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":      status == http.StatusOK,
			"storage": storageStatus,
			"driver":  driver,
		})
	}
}
