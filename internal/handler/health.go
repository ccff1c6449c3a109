package handler

import (
	"context"
	"log/slog"
	"net/http"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgNoSoil         = "soil grid not generated"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Tiles   int    `json:"tiles,omitempty"`
}

// TileCounter reports how many soil tiles are in play
type TileCounter interface {
	TileCount(ctx context.Context) int
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz reports ready once the soil grid has been generated
// @Summary Readiness check
// @Description Returns OK if the farm has soil tiles and can accept commands
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(farm TileCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tiles := farm.TileCount(r.Context())
		if tiles == 0 {
			slog.Warn("Readiness check failed", "reason", HealthMsgNoSoil)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  HealthStatusUnavailable,
				Message: HealthMsgNoSoil,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK, Tiles: tiles})
	}
}
