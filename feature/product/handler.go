package product

import (
	"errors"
	"fmt"

	"stock-counter/core/logger"
	"stock-counter/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for products.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the product routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Post("/escanear", h.HandleScan)
	group.Post("/cadastrar_produto", h.HandleRegister)
	group.Get("/dados_completos", h.HandleList)
}

// HandleScan looks a barcode up.
// @Summary Scan Barcode
// @Description Looks a product up by exact barcode. An unknown barcode answers success=false.
// @Tags produtos
// @Accept json
// @Produce json
// @Param body body ScanRequest true "Scanned barcode"
// @Success 200 {object} ScanResponse
// @Failure 400 {object} MessageResponse
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/escanear [post]
func (h *Handler) HandleScan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "Corpo da requisição inválido."})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: validation.Message(err)})
	}

	p, err := h.service.FindByBarcode(c.UserContext(), req.Barcode)
	if errors.Is(err, ErrNotFound) {
		l.Info("Barcode not registered", zap.String("barcode", req.Barcode))
		return c.JSON(ScanResponse{Success: false, Message: MsgNotFound, Barcode: req.Barcode})
	}
	if err != nil {
		l.Error("Scan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(ScanResponse{
		Success: true,
		Message: fmt.Sprintf(MsgFound, p.Name),
		Barcode: req.Barcode,
		Name:    p.Name,
	})
}

// HandleRegister registers a new product with zero stock.
// @Summary Register Product
// @Description Registers a barcode and name. A barcode that already exists answers success=false and changes nothing.
// @Tags produtos
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "New product"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} MessageResponse
// @Router /api/cadastrar_produto [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "Corpo da requisição inválido."})
	}
	req.Normalize()
	if err := validation.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: validation.Message(err)})
	}

	if _, err := h.service.Register(c.UserContext(), req.Barcode, req.Name); err != nil {
		if errors.Is(err, ErrDuplicateBarcode) {
			l.Warn("Duplicate barcode", zap.String("barcode", req.Barcode))
			return c.JSON(MessageResponse{Success: false, Message: MsgDuplicate})
		}
		l.Error("Product registration failed", zap.Error(err))
		return c.JSON(MessageResponse{Success: false, Message: fmt.Sprintf("Erro ao cadastrar produto: %v", err)})
	}

	l.Info("Product registered", zap.String("barcode", req.Barcode), zap.String("name", req.Name))
	return c.JSON(MessageResponse{Success: true, Message: fmt.Sprintf(MsgRegistered, req.Name)})
}

// HandleList returns every product with its current stock.
// @Summary List Products
// @Description Returns all products with their persisted stock, in registration order.
// @Tags produtos
// @Produce json
// @Success 200 {array} ProductView
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/dados_completos [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	products, err := h.service.List(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(NewProductViews(products))
}
