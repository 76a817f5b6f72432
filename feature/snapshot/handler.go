package snapshot

import (
	"errors"

	"stock-counter/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ExportResponse answers POST /api/snapshots.
type ExportResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Snapshot *Info  `json:"snapshot,omitempty"`
}

// Handler handles HTTP requests for snapshots.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the snapshot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/snapshots")
	group.Post("/", h.HandleExport)
	group.Get("/", h.HandleList)
	group.Get("/:name", h.HandleGet)
}

// HandleExport writes a snapshot of the full listing.
// @Summary Export Snapshot
// @Description Writes the complete product listing as a JSON object to the snapshot bucket.
// @Tags snapshots
// @Produce json
// @Success 201 {object} ExportResponse
// @Failure 500 {object} ExportResponse
// @Router /api/snapshots [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	info, err := h.service.Export(c.UserContext())
	if err != nil {
		l.Error("Snapshot export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ExportResponse{
			Message: "Erro ao exportar estoque: " + err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(ExportResponse{
		Success:  true,
		Message:  "Estoque exportado com sucesso.",
		Snapshot: info,
	})
}

// HandleList lists stored snapshots.
// @Summary List Snapshots
// @Description Returns stored snapshots, newest first.
// @Tags snapshots
// @Produce json
// @Success 200 {array} Info
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/snapshots [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	infos, err := h.service.List(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Snapshot listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(infos)
}

// HandleGet returns the content of one snapshot.
// @Summary Get Snapshot
// @Description Returns the listing stored in a snapshot.
// @Tags snapshots
// @Produce json
// @Param name path string true "Snapshot name"
// @Success 200 {object} Document
// @Failure 400 {object} map[string]string "Invalid name"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/snapshots/{name} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	doc, err := h.service.Get(c.UserContext(), c.Params("name"))
	switch {
	case err == nil:
		return c.JSON(doc)
	case errors.Is(err, ErrInvalidName):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Snapshot read failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
