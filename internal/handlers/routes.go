package handlers

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the portfolio API under /api/v1/portfolio
func RegisterRoutes(e *echo.Echo, portfolio *PortfolioHandler, health *HealthCheckHandler) {
	e.GET("/health", health.HealthCheck)

	api := e.Group("/api/v1")

	p := api.Group("/portfolio")
	p.POST("/totals", portfolio.GetTotals)
	p.POST("/ranking/cost", portfolio.GetCostRanking)
	p.POST("/sort", portfolio.SortAccounts)
	p.POST("/strategy/:strategy", portfolio.GetPayoffOrder)
	p.POST("/thresholds", portfolio.GetThresholds)
	p.POST("/transfer-plan", portfolio.PlanTransfer)
	p.POST("/dashboard", portfolio.GetDashboard)
}
