package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/skemono/Proyecto-3-BD/internal/models"
	"github.com/skemono/Proyecto-3-BD/internal/reports"
	"github.com/skemono/Proyecto-3-BD/internal/services"
)

type reportGenerator interface {
	Generate(ctx context.Context, kind reports.ReportKind, filters map[string]string) (*models.ResultSet, error)
}

type ReportHandler struct {
	service reportGenerator
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Generate serves the JSON report path: filters in the request body, rows
// out as a JSON array in select-list order.
func (h *ReportHandler) Generate(kind reports.ReportKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters, err := filtersFromBody(c, kind)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		result, err := h.service.Generate(c.Context(), kind, filters)
		if err != nil {
			return mapReportError(c, err)
		}
		return c.JSON(result)
	}
}

// ExportCSV serves the same report as a CSV attachment, with filters taken
// from the query string. Validation is identical to the JSON path.
func (h *ReportHandler) ExportCSV(kind reports.ReportKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filters := filtersFromQuery(c, kind)

		result, err := h.service.Generate(c.Context(), kind, filters)
		if err != nil {
			return mapReportError(c, err)
		}

		var buf bytes.Buffer
		if err := reports.WriteCSV(&buf, result); err != nil {
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "Error al exportar", "details": err.Error()})
		}

		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=reporte_%s.csv", kind))
		return c.Send(buf.Bytes())
	}
}

// filtersFromBody picks the report's recognized filter keys out of the JSON
// body. Clients send numeric filters as either strings or numbers.
func filtersFromBody(c *fiber.Ctx, kind reports.ReportKind) (map[string]string, error) {
	raw := map[string]any{}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&raw); err != nil {
			return nil, err
		}
	}

	filters := map[string]string{}
	for _, key := range reports.FilterKeys(kind) {
		if value, ok := raw[key]; ok {
			filters[key] = stringifyFilterValue(value)
		}
	}
	return filters, nil
}

func filtersFromQuery(c *fiber.Ctx, kind reports.ReportKind) map[string]string {
	filters := map[string]string{}
	for _, key := range reports.FilterKeys(kind) {
		if value := c.Query(key); value != "" {
			filters[key] = value
		}
	}
	return filters
}

func stringifyFilterValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

func mapReportError(c *fiber.Ctx, err error) error {
	var validationErr *reports.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Message})
	case errors.Is(err, reports.ErrInvalidFilterCombination):
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Invalid filter combination"})
	case errors.Is(err, services.ErrQueryExecution):
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Error al obtener el reporte", "details": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"error": "Error al obtener el reporte"})
	}
}
