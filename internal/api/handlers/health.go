package handlers

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/denisAlshanov/clipgrab/internal/database"
	"github.com/denisAlshanov/clipgrab/internal/utils"
)

type HealthHandler struct {
	store       database.Store
	storeDriver string
}

type HealthResponse struct {
	Status    string                   `json:"status"`
	Timestamp string                   `json:"timestamp"`
	Version   string                   `json:"version"`
	Services  map[string]ServiceHealth `json:"services"`
	System    SystemStats              `json:"system"`
}

// SystemStats is best effort. Fields the platform cannot report stay zero.
type SystemStats struct {
	Goroutines        int     `json:"goroutines"`
	ProcessRSSBytes   uint64  `json:"process_rss_bytes"`
	MemoryUsedPercent float64 `json:"memory_used_percent"`
	Load1             float64 `json:"load1"`
	HostUptimeSeconds uint64  `json:"host_uptime_seconds"`
}

type ServiceHealth struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time,omitempty"`
	Error        string `json:"error,omitempty"`
}

func NewHealthHandler(store database.Store, storeDriver string) *HealthHandler {
	return &HealthHandler{
		store:       store,
		storeDriver: storeDriver,
	}
}

// Health godoc
// @Summary Health check endpoint
// @Description Check the health of the service and its store
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Success 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   "1.0.0",
		Services:  make(map[string]ServiceHealth),
		System:    collectSystemStats(ctx),
	}

	storeHealth := h.checkStore(ctx)
	response.Services[h.storeDriver] = storeHealth

	if storeHealth.Status != "healthy" {
		response.Status = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Readiness godoc
// @Summary Readiness check endpoint
// @Description Check if the service is ready to accept requests
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Success 503 {object} map[string]interface{}
// @Router /ready [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx := c.Request.Context()

	ready := true
	checks := make(map[string]interface{})

	if err := h.store.Ping(ctx); err != nil {
		ready = false
		checks[h.storeDriver] = map[string]interface{}{
			"ready": false,
			"error": err.Error(),
		}
	} else {
		checks[h.storeDriver] = map[string]interface{}{
			"ready": true,
		}
	}

	response := map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	}

	if ready {
		c.JSON(http.StatusOK, response)
	} else {
		c.JSON(http.StatusServiceUnavailable, response)
	}
}

// Liveness godoc
// @Summary Liveness check endpoint
// @Description Check if the service is alive
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /live [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *HealthHandler) checkStore(ctx context.Context) ServiceHealth {
	start := time.Now()

	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := h.store.Ping(checkCtx)
	responseTime := time.Since(start).String()

	if err != nil {
		utils.LogError(ctx, "Store health check failed", err, utils.Fields{"driver": h.storeDriver})
		return ServiceHealth{
			Status:       "unhealthy",
			ResponseTime: responseTime,
			Error:        err.Error(),
		}
	}

	return ServiceHealth{
		Status:       "healthy",
		ResponseTime: responseTime,
	}
}

func collectSystemStats(ctx context.Context) SystemStats {
	stats := SystemStats{Goroutines: runtime.NumGoroutine()}

	if proc, err := process.NewProcessWithContext(ctx, int32(os.Getpid())); err == nil {
		if info, err := proc.MemoryInfoWithContext(ctx); err == nil {
			stats.ProcessRSSBytes = info.RSS
		}
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		stats.MemoryUsedPercent = vm.UsedPercent
	}
	if avg, err := load.AvgWithContext(ctx); err == nil {
		stats.Load1 = avg.Load1
	}
	if uptime, err := host.UptimeWithContext(ctx); err == nil {
		stats.HostUptimeSeconds = uptime
	}

	return stats
}
