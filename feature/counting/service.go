package counting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stock-counter/feature/inventory/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Result summarizes a saved session.
type Result struct {
	// Applied is the number of entries added to stock.
	Applied int
	// Skipped lists barcodes with no registered product, in session order.
	Skipped []string
	// CountedAt is the timestamp shared by every history row of the session.
	CountedAt time.Time
}

// Service applies counting sessions to stock and reads the count history.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new counting service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger, now: time.Now}
}

// SaveSession adds every entry's quantity to the stock of the product with
// that barcode and appends one history row per applied entry.
//
// Entries run in order against the evolving stock, so a repeated barcode
// accumulates. Barcodes without a product are skipped and reported in
// Result.Skipped. The batch runs in a single transaction: on any error
// nothing is persisted.
func (s *Service) SaveSession(ctx context.Context, session Session) (*Result, error) {
	result := &Result{Skipped: []string{}, CountedAt: s.now()}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range session {
			var p models.Product
			// FOR UPDATE on mysql and postgres; sqlite serializes writers with _txlock=immediate.
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("codigo_barra = ?", entry.Barcode).
				Take(&p).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				result.Skipped = append(result.Skipped, entry.Barcode)
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to look up barcode %q: %w", entry.Barcode, err)
			}

			err = tx.Model(&models.Product{}).
				Where("id = ?", p.ID).
				Update("estoque_atual", gorm.Expr("estoque_atual + ?", entry.Quantity)).Error
			if err != nil {
				return fmt.Errorf("failed to update stock of %q: %w", entry.Barcode, err)
			}

			productID := p.ID
			history := models.CountHistory{
				ProductID: &productID,
				Barcode:   entry.Barcode,
				Quantity:  entry.Quantity,
				CountedAt: result.CountedAt,
			}
			if err := tx.Create(&history).Error; err != nil {
				return fmt.Errorf("failed to record history of %q: %w", entry.Barcode, err)
			}
			result.Applied++
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Counting session rolled back", zap.Int("entries", len(session)), zap.Error(err))
		return nil, err
	}

	if len(result.Skipped) > 0 {
		s.logger.Warn("Unregistered barcodes ignored", zap.Strings("barcodes", result.Skipped))
	}
	s.logger.Info("Counting session saved",
		zap.Int("entries", len(session)),
		zap.Int("applied", result.Applied),
		zap.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

// History returns history rows, newest first. An empty barcode returns rows
// of every product. A non-positive limit defaults to 100.
func (s *Service) History(ctx context.Context, barcode string, limit int) ([]models.CountHistory, error) {
	if limit <= 0 {
		limit = 100
	}
	q := s.db.WithContext(ctx).Order("id DESC").Limit(limit)
	if barcode != "" {
		q = q.Where("codigo_barra_lido = ?", barcode)
	}

	var rows []models.CountHistory
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return rows, nil
}
