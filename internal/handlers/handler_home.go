package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// homeHandler serves liveness/readiness probes.
type homeHandler struct {
	dbPool *pgxpool.Pool
}

func registerHomeRoutes(r *gin.Engine, dbPool *pgxpool.Pool) {
	h := &homeHandler{dbPool: dbPool}
	r.GET("/health", h.health)
}

// health godoc
// @Summary Health check
// @Description Reports service and database health.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *homeHandler) health(c *gin.Context) {
	if h.dbPool == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.dbPool.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
}
