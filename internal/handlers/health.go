package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/hebrew-cv/cv-api/internal/config"
)

// HealthResponse reports the service and its dependencies
type HealthResponse struct {
	Status    string            `json:"status" example:"healthy"`
	Services  map[string]string `json:"services"`
	Timestamp time.Time         `json:"timestamp"`
}

// HealthCheck godoc
// @Summary Health check
// @Description Reports service health including MongoDB and Redis connectivity.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Service is healthy"
// @Failure 503 {object} HealthResponse "One or more dependencies are down"
// @Router /v1/health [get]
func HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	response := HealthResponse{
		Status:    "healthy",
		Services:  map[string]string{},
		Timestamp: time.Now().UTC(),
	}

	if config.MongoDB == nil {
		response.Services["mongodb"] = "not configured"
		response.Status = "unhealthy"
		status = http.StatusServiceUnavailable
	} else if err := config.MongoDB.Client().Ping(ctx, readpref.Primary()); err != nil {
		response.Services["mongodb"] = "unhealthy: " + err.Error()
		response.Status = "unhealthy"
		status = http.StatusServiceUnavailable
	} else {
		response.Services["mongodb"] = "healthy"
	}

	if config.Redis == nil {
		response.Services["redis"] = "not configured"
	} else if err := config.Redis.Ping(ctx).Err(); err != nil {
		response.Services["redis"] = "unhealthy: " + err.Error()
		response.Status = "unhealthy"
		status = http.StatusServiceUnavailable
	} else {
		response.Services["redis"] = "healthy"
	}

	c.JSON(status, response)
}
