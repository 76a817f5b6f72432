package integrity

import (
	"context"

	"stock-counter/core/storage"
	"stock-counter/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
	}
}

// CheckSchema compares the live tables with the models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db)
}

// CheckLedger compares stock with the sum of history deltas.
func (s *Service) CheckLedger(ctx context.Context) (*checks.LedgerReport, error) {
	return checks.CheckLedger(ctx, s.db)
}

// CheckStorage reports whether the snapshot bucket is usable.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	return checks.CheckStorage(ctx, s.client, s.bucket)
}

// FixStorage creates what the report lists as missing.
func (s *Service) FixStorage(ctx context.Context, report *checks.StorageReport) error {
	return checks.FixStorage(ctx, s.client, s.logger, report)
}
