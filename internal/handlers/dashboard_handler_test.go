package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/skemono/Proyecto-3-BD/internal/models"
)

type stubDashboardService struct {
	summary *models.DashboardSummary
	err     error
}

func (s *stubDashboardService) Summary(context.Context, time.Time) (*models.DashboardSummary, error) {
	return s.summary, s.err
}

func TestGetSummaryReturnsStats(t *testing.T) {
	service := &stubDashboardService{
		summary: &models.DashboardSummary{
			Members:           100,
			Sessions:          500,
			Exercises:         20,
			Trainers:          10,
			ActiveMemberships: 80,
			Retention:         125.0,
			RetentionChange:   25.0,
			Revenue:           1500.0,
			AvgDuration:       22.5,
		},
	}
	handler := &DashboardHandler{service: service}

	app := fiber.New()
	app.Get("/api/reportes/dashboard", handler.GetSummary)

	req := httptest.NewRequest(http.MethodGet, "/api/reportes/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body["members"] != float64(100) {
		t.Fatalf("expected members 100, got %v", body["members"])
	}
	if body["activeMemberships"] != float64(80) {
		t.Fatalf("expected activeMemberships 80, got %v", body["activeMemberships"])
	}
	if body["retention"] != 125.0 {
		t.Fatalf("expected retention 125, got %v", body["retention"])
	}
	if body["retention_change"] != 25.0 {
		t.Fatalf("expected retention_change 25, got %v", body["retention_change"])
	}
	if body["avg_duration"] != 22.5 {
		t.Fatalf("expected avg_duration 22.5, got %v", body["avg_duration"])
	}
}

func TestGetSummaryReturnsServerErrorOnFailure(t *testing.T) {
	service := &stubDashboardService{err: errors.New("pool exhausted")}
	handler := &DashboardHandler{service: service}

	app := fiber.New()
	app.Get("/api/reportes/dashboard", handler.GetSummary)

	req := httptest.NewRequest(http.MethodGet, "/api/reportes/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	var body struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Error != "No se pudieron obtener las estadísticas del dashboard" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
	if body.Details != "pool exhausted" {
		t.Fatalf("unexpected details: %q", body.Details)
	}
}
