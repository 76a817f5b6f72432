package product

import (
	"context"
	"errors"
	"fmt"

	"stock-counter/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no product has the barcode.
	ErrNotFound = errors.New("product not found")
	// ErrDuplicateBarcode is returned when registering a barcode that already exists.
	ErrDuplicateBarcode = errors.New("barcode already registered")
)

// Service handles product lookup, registration and listing.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new product service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// FindByBarcode returns the product with exactly this barcode.
func (s *Service) FindByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).Where("codigo_barra = ?", barcode).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up barcode %q: %w", barcode, err)
	}
	return &p, nil
}

// Register inserts a new product with zero stock.
// Existing data is left untouched when the barcode is already taken.
func (s *Service) Register(ctx context.Context, barcode, name string) (*models.Product, error) {
	p := models.Product{Barcode: barcode, Name: name, Stock: 0}
	err := s.db.WithContext(ctx).Create(&p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateBarcode
	}
	if err != nil {
		return nil, fmt.Errorf("failed to register barcode %q: %w", barcode, err)
	}
	return &p, nil
}

// List returns every product in registration order.
func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
