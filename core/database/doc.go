// Package database handles database connections and schema inspection.
//
// It wraps GORM and supports three dialects selected by Config.Driver:
// sqlite (the default, a local estoque.db file), mysql and postgres.
//
// # Connect
//
// Connect opens the pool, enables gorm error translation (so a unique
// constraint violation is reported as gorm.ErrDuplicatedKey on every
// dialect) and pings the server. An in-memory sqlite store is pinned to a
// single connection because each sqlite connection to :memory: is its own
// database. sqlite connections enforce foreign keys.
//
// # Schema Inspection
//
// GetTableColumns lists the live columns of a table using PRAGMA table_info,
// SHOW COLUMNS or information_schema depending on the dialect. The integrity
// feature compares this against the gorm models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//	defer database.Close(db)
//
//	columns, err := database.GetTableColumns(db, "Produtos")
package database
