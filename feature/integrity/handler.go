package integrity

import (
	"stock-counter/core/logger"
	"stock-counter/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/ledger", h.HandleLedgerCheck)
	group.Get("/storage", h.HandleStorageCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs the schema, ledger and storage checks. A failing check is reported in place and does not stop the others.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.UserContext()
	report := make(map[string]interface{})

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if ledger, err := h.service.CheckLedger(ctx); err != nil {
		report["ledger"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["ledger"] = ledger
	}

	if st, err := h.service.CheckStorage(ctx); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = st
	}

	return c.JSON(report)
}

// HandleSchemaCheck checks the inventory tables.
// @Summary Check Schema
// @Description Checks that the Produtos and Historico_Contagem tables match the expected models (columns, types).
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting schema check")

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleLedgerCheck verifies stock against history.
// @Summary Check Stock Ledger
// @Description Lists products whose stock differs from the sum of their counted quantities.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.LedgerReport "Ledger Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/ledger [get]
func (h *Handler) HandleLedgerCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckLedger(c.UserContext())
	if err != nil {
		l.Error("Ledger check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Matched {
		l.Warn("Stock ledger mismatch", zap.Int("issues", len(report.Issues)))
	}

	return c.JSON(report)
}

// HandleStorageCheck checks and optionally fixes the snapshot bucket.
// @Summary Check Snapshot Storage
// @Description Checks that the snapshot bucket and its folder exist. Optionally creates them.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Create what is missing"
// @Success 200 {object} map[string]interface{} "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckStorage(c.UserContext())
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.OK() {
		l.Warn("Snapshot storage incomplete",
			zap.Bool("bucket_exists", report.BucketExists),
			zap.Strings("missing", report.MissingFolders))

		if fix {
			l.Info("Attempting to fix snapshot storage")
			if err := h.service.FixStorage(c.UserContext(), report); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix storage",
					"details": err.Error(),
					"missing": report.MissingFolders,
				})
			}
			return c.JSON(fiber.Map{
				"status":         "fixed",
				"bucket_created": !report.BucketExists,
				"fixed":          report.MissingFolders,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":        "checked",
		"bucket":        report.Bucket,
		"bucket_exists": report.BucketExists,
		"missing":       report.MissingFolders,
	})
}
