package handlers

import (
	"net/http"
	"time"

	helpers "newsportal/internal/utils/helpres"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Check godoc
// @Summary Проверка работоспособности
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Router /rpc/health.check [post]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
	})
}
