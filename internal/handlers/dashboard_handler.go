package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/skemono/Proyecto-3-BD/internal/models"
	"github.com/skemono/Proyecto-3-BD/internal/services"
)

type dashboardSummarizer interface {
	Summary(ctx context.Context, now time.Time) (*models.DashboardSummary, error)
}

type DashboardHandler struct {
	service dashboardSummarizer
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.service.Summary(c.Context(), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "No se pudieron obtener las estadísticas del dashboard",
			"details": err.Error(),
		})
	}
	return c.JSON(summary)
}
