package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/statcalc/statcalc/internal/app/subsystems/api"
	"github.com/statcalc/statcalc/internal/metrics"
)

const requestIdHeader = "X-Request-Id"

func requestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIdHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("id", id)
		c.Header(requestIdHeader, id)
		c.Next()
	}
}

func logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"id", c.GetString("id"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		}

		if len(c.Errors) > 0 {
			slog.Warn("http", append(attrs, "err", c.Errors.String())...)
			return
		}

		slog.Debug("http", attrs...)
	}
}

func observe(metrics *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		start := time.Now()
		metrics.ApiInFlight.WithLabelValues(route).Inc()
		defer metrics.ApiInFlight.WithLabelValues(route).Dec()

		c.Next()

		metrics.ApiTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.ApiDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func recovery(c *gin.Context, err any) {
	slog.Error("panic in http handler", "id", c.GetString("id"), "path", c.Request.URL.Path, "err", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, api.ServerError(fmt.Errorf("%v", err)).Response())
}
