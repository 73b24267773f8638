package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/skemono/Proyecto-3-BD/internal/models"
	"github.com/skemono/Proyecto-3-BD/internal/reports"
	"github.com/skemono/Proyecto-3-BD/internal/services"
)

type stubReportService struct {
	result      *models.ResultSet
	err         error
	lastKind    reports.ReportKind
	lastFilters map[string]string
}

func (s *stubReportService) Generate(_ context.Context, kind reports.ReportKind, filters map[string]string) (*models.ResultSet, error) {
	s.lastKind = kind
	s.lastFilters = filters
	return s.result, s.err
}

func TestGenerateReturnsRowsInSelectOrder(t *testing.T) {
	service := &stubReportService{
		result: &models.ResultSet{
			Columns: []string{"nombre", "tipo", "veces"},
			Rows: [][]any{
				{"Press banca", "Fuerza", int64(12)},
				{"Sentadilla", "Fuerza", int64(9)},
			},
		},
	}
	handler := &ReportHandler{service: service}

	app := fiber.New()
	app.Post("/api/reportes/ejercicios", handler.Generate(reports.PopularExercises))

	req := httptest.NewRequest(http.MethodPost, "/api/reportes/ejercicios", strings.NewReader(`{
		"tipo_ejercicio": "Fuerza",
		"fecha_inicio": "2024-01-01"
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastKind != reports.PopularExercises {
		t.Fatalf("expected ejercicios kind, got %q", service.lastKind)
	}
	if service.lastFilters["tipo_ejercicio"] != "Fuerza" {
		t.Fatalf("unexpected filters: %+v", service.lastFilters)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	expected := `[{"nombre":"Press banca","tipo":"Fuerza","veces":12},{"nombre":"Sentadilla","tipo":"Fuerza","veces":9}]`
	if strings.TrimSpace(string(body)) != expected {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestGenerateStringifiesNumericBodyFilters(t *testing.T) {
	service := &stubReportService{result: &models.ResultSet{}}
	handler := &ReportHandler{service: service}

	app := fiber.New()
	app.Post("/api/reportes/progreso", handler.Generate(reports.MemberProgress))

	req := httptest.NewRequest(http.MethodPost, "/api/reportes/progreso", strings.NewReader(`{
		"miembro_id": 7,
		"imc_min": 24.5
	}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastFilters["miembro_id"] != "7" {
		t.Fatalf("expected miembro_id 7, got %q", service.lastFilters["miembro_id"])
	}
	if service.lastFilters["imc_min"] != "24.5" {
		t.Fatalf("expected imc_min 24.5, got %q", service.lastFilters["imc_min"])
	}
}

func TestGenerateAcceptsEmptyBody(t *testing.T) {
	service := &stubReportService{result: &models.ResultSet{Columns: []string{"plan", "membresias"}}}
	handler := &ReportHandler{service: service}

	app := fiber.New()
	app.Post("/api/reportes/membresias", handler.Generate(reports.MembershipTrends))

	req := httptest.NewRequest(http.MethodPost, "/api/reportes/membresias", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(service.lastFilters) != 0 {
		t.Fatalf("expected no filters, got %+v", service.lastFilters)
	}
}

func TestGenerateReturnsBadRequestForInvalidFilter(t *testing.T) {
	service := &stubReportService{
		err: &reports.ValidationError{Field: "fecha_inicio", Message: "Invalid fecha_inicio format"},
	}
	handler := &ReportHandler{service: service}

	app := fiber.New()
	app.Post("/api/reportes/progreso", handler.Generate(reports.MemberProgress))

	req := httptest.NewRequest(http.MethodPost, "/api/reportes/progreso", strings.NewReader(`{"fecha_inicio":"ayer"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if body.Error != "Invalid fecha_inicio format" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
}

func TestGenerateReturnsServerErrorWithDetails(t *testing.T) {
	service := &stubReportService{
		err: fmt.Errorf("%w: connection refused", services.ErrQueryExecution),
	}
	handler := &ReportHandler{service: service}

	app := fiber.New()
	app.Post("/api/reportes/sesiones", handler.Generate(reports.SessionFrequency))

	req := httptest.NewRequest(http.MethodPost, "/api/reportes/sesiones", nil)
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
	if body.Error != "Error al obtener el reporte" {
		t.Fatalf("unexpected error message: %q", body.Error)
	}
	if !strings.Contains(body.Details, "connection refused") {
		t.Fatalf("expected details, got %q", body.Details)
	}
}

func TestExportCSVSetsAttachmentHeaders(t *testing.T) {
	service := &stubReportService{
		result: &models.ResultSet{
			Columns: []string{"nombre", "imc"},
			Rows:    [][]any{{"Ana López", 21.6}},
		},
	}
	handler := &ReportHandler{service: service}

	app := fiber.New()
	app.Get("/api/reportes/progreso/export_csv", handler.ExportCSV(reports.MemberProgress))

	req := httptest.NewRequest(http.MethodGet, "/api/reportes/progreso/export_csv?fecha_inicio=2024-01-01&imc_min=20", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if contentType := resp.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "text/csv") {
		t.Fatalf("expected text/csv, got %q", contentType)
	}
	if disposition := resp.Header.Get("Content-Disposition"); disposition != "attachment; filename=reporte_progreso.csv" {
		t.Fatalf("unexpected disposition: %q", disposition)
	}
	if service.lastFilters["fecha_inicio"] != "2024-01-01" || service.lastFilters["imc_min"] != "20" {
		t.Fatalf("unexpected filters: %+v", service.lastFilters)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(body) != "nombre,imc\nAna López,21.6\n" {
		t.Fatalf("unexpected csv body: %q", body)
	}
}

func TestExportCSVValidatesLikeJSONPath(t *testing.T) {
	service := &stubReportService{
		err: &reports.ValidationError{Field: "sesiones_min", Message: "sesiones_min must be a positive integer"},
	}
	handler := &ReportHandler{service: service}

	app := fiber.New()
	app.Get("/api/reportes/entrenadores/export_csv", handler.ExportCSV(reports.CoachWorkload))

	req := httptest.NewRequest(http.MethodGet, "/api/reportes/entrenadores/export_csv?sesiones_min=muchas", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestMapReportErrorDefaultsToInternalServerError(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return mapReportError(c, errors.New("boom"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
}
