// Package testutil sets up throwaway inventory databases for tests.
package testutil

import (
	"testing"

	"stock-counter/core/database"
	"stock-counter/feature/inventory/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory sqlite store closed at the end of the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, models.Migrate(db))
	return db
}

// SeedProduct inserts a product with the given stock and returns it.
func SeedProduct(t *testing.T, db *gorm.DB, barcode, name string, stock int) models.Product {
	t.Helper()
	p := models.Product{Barcode: barcode, Name: name}
	require.NoError(t, db.Create(&p).Error)
	if stock != 0 {
		require.NoError(t, db.Model(&p).Update("estoque_atual", stock).Error)
		p.Stock = stock
	}
	return p
}

// Stock reads the persisted stock of a barcode.
func Stock(t *testing.T, db *gorm.DB, barcode string) int {
	t.Helper()
	var p models.Product
	require.NoError(t, db.Where("codigo_barra = ?", barcode).Take(&p).Error)
	return p.Stock
}

// HistoryCount counts history rows, optionally for a single barcode.
func HistoryCount(t *testing.T, db *gorm.DB, barcode string) int64 {
	t.Helper()
	q := db.Model(&models.CountHistory{})
	if barcode != "" {
		q = q.Where("codigo_barra_lido = ?", barcode)
	}
	var n int64
	require.NoError(t, q.Count(&n).Error)
	return n
}

// NewMockDB returns a gorm handle over go-sqlmock with the mysql dialect.
func NewMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	return db, mock
}
