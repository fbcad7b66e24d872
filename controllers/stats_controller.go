package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"bistroboss/services"
)

type StatsController struct {
	Svc *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{Svc: svc}
}

// GET /admin-stats (admin)
func (h *StatsController) AdminStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	stats, err := h.Svc.AdminStats(ctx)
	if err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusOK, "admin stats get successfully", gin.H{
		"users":     stats.Users,
		"menuItems": stats.MenuItems,
		"payments":  stats.Payments,
		"revenue":   stats.Revenue,
	})
}

// GET /order-stats (admin)
func (h *StatsController) OrderStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	stats, err := h.Svc.OrderStats(ctx)
	if err != nil {
		failFromErr(c, err)
		return
	}
	respond(c, http.StatusOK, "order stats get successfully", gin.H{"result": stats})
}
