package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skemono/Proyecto-3-BD/internal/config"
	"github.com/skemono/Proyecto-3-BD/internal/handlers"
	"github.com/skemono/Proyecto-3-BD/internal/reports"
	"github.com/skemono/Proyecto-3-BD/internal/repository"
	"github.com/skemono/Proyecto-3-BD/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	reportRepo := repository.NewReportRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	reportService := services.NewReportService(reportRepo)
	dashboardService := services.NewDashboardService(dashboardRepo)

	reportHandler := handlers.NewReportHandler(reportService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	api := app.Group("/api")

	reportes := api.Group("/reportes")
	reportes.Get("/dashboard", dashboardHandler.GetSummary)
	for _, kind := range reports.Kinds() {
		reportes.Post("/"+string(kind), reportHandler.Generate(kind))
		reportes.Get("/"+string(kind)+"/export_csv", reportHandler.ExportCSV(kind))
	}
}
