package checks

import (
	"context"
	"fmt"

	"stock-counter/feature/inventory/models"

	"gorm.io/gorm"
)

// LedgerReport compares each product's stock with the sum of its history.
type LedgerReport struct {
	Products int           `json:"produtos"`
	Matched  bool          `json:"matched"`
	Issues   []LedgerIssue `json:"issues"`
	Unlinked int64         `json:"sem_produto"`
}

// LedgerIssue is a product whose stock was written outside a counting session.
type LedgerIssue struct {
	Barcode      string `json:"codigo_barra"`
	Stock        int    `json:"estoque_atual"`
	HistoryTotal int64  `json:"soma_historico"`
	Difference   int64  `json:"diferenca"`
}

type historySum struct {
	ProductID uint  `gorm:"column:produto_id"`
	Total     int64 `gorm:"column:total"`
}

// CheckLedger verifies that stock equals the sum of the recorded deltas.
func CheckLedger(ctx context.Context, db *gorm.DB) (*LedgerReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	db = db.WithContext(ctx)

	var products []models.Product
	if err := db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	var sums []historySum
	err := db.Model(&models.CountHistory{}).
		Select("produto_id, SUM(quantidade) AS total").
		Where("produto_id IS NOT NULL").
		Group("produto_id").
		Scan(&sums).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum history: %w", err)
	}

	totals := make(map[uint]int64, len(sums))
	for _, s := range sums {
		totals[s.ProductID] = s.Total
	}

	report := &LedgerReport{
		Products: len(products),
		Matched:  true,
		Issues:   []LedgerIssue{},
	}

	for _, p := range products {
		total := totals[p.ID]
		if int64(p.Stock) == total {
			continue
		}
		report.Matched = false
		report.Issues = append(report.Issues, LedgerIssue{
			Barcode:      p.Barcode,
			Stock:        p.Stock,
			HistoryTotal: total,
			Difference:   int64(p.Stock) - total,
		})
	}

	if err := db.Model(&models.CountHistory{}).Where("produto_id IS NULL").Count(&report.Unlinked).Error; err != nil {
		return nil, fmt.Errorf("failed to count unlinked history: %w", err)
	}

	return report, nil
}
