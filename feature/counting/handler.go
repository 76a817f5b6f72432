package counting

import (
	"fmt"

	"stock-counter/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for counting sessions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the counting routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Post("/salvar_contagem", h.HandleSaveSession)
	group.Get("/historico", h.HandleHistory)
}

// HandleSaveSession applies a counting session to stock.
// @Summary Save Counting Session
// @Description Adds each counted quantity to the stock of its barcode and records history, all in one transaction. Unregistered barcodes are ignored and listed in "ignorados".
// @Tags contagem
// @Accept json
// @Produce json
// @Param body body map[string]object true "Barcode -> {quantidade}"
// @Success 200 {object} SaveResponse
// @Failure 400 {object} SaveResponse
// @Router /api/salvar_contagem [post]
func (h *Handler) HandleSaveSession(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var session Session
	if err := c.BodyParser(&session); err != nil {
		l.Warn("Rejected counting session", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(SaveResponse{
			Message: fmt.Sprintf(MsgSaveFailed, err),
			Skipped: []string{},
		})
	}

	result, err := h.service.SaveSession(c.UserContext(), session)
	if err != nil {
		l.Error("Counting session failed", zap.Error(err))
		return c.JSON(SaveResponse{
			Message: fmt.Sprintf(MsgSaveFailed, err),
			Skipped: []string{},
		})
	}

	return c.JSON(SaveResponse{
		Success: true,
		Message: MsgSaved,
		Applied: result.Applied,
		Skipped: result.Skipped,
	})
}

// HandleHistory returns recorded counts, newest first.
// @Summary Count History
// @Description Returns history rows for one barcode, or the latest rows of all products.
// @Tags contagem
// @Produce json
// @Param codigo_barra query string false "Scanned barcode"
// @Param limite query int false "Maximum rows (default 100)"
// @Success 200 {array} HistoryView
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/historico [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	barcode := c.Query("codigo_barra")
	limit := c.QueryInt("limite", 100)

	rows, err := h.service.History(c.UserContext(), barcode, limit)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("History query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(NewHistoryViews(rows))
}
