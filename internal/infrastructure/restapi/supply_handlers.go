package restapi

import (
	"net/http"

	"supply_checker/internal/app/port"

	"github.com/gin-gonic/gin"
)

// fetchFailedMessage is the only failure detail exposed to API callers.
const fetchFailedMessage = "Failed to fetch data"

// APIErrorResponse is the body of every failed API response.
type APIErrorResponse struct {
	Error string `json:"error"`
}

// SupplyHandler serves the aggregated supply and price.
type SupplyHandler struct {
	snapshotService port.SnapshotService
	logger          port.Logger
}

// NewSupplyHandler creates a new instance of SupplyHandler.
func NewSupplyHandler(ss port.SnapshotService, l port.Logger) *SupplyHandler {
	return &SupplyHandler{
		snapshotService: ss,
		logger:          l,
	}
}

// GetSupplyHandler handles GET /api/.
func (h *SupplyHandler) GetSupplyHandler(c *gin.Context) {
	snapshot, err := h.snapshotService.Snapshot(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to build supply snapshot", "error", err)
		c.JSON(http.StatusInternalServerError, APIErrorResponse{Error: fetchFailedMessage})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// HealthHandler reports liveness without touching upstreams.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
