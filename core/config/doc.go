// Package config provides configuration management for the stock counter.
//
// Values come from environment variables, optionally seeded from a .env
// file, and fall back to the `default` struct tags of each section. Nested
// keys map to upper-case env names joined by underscores, so database.driver
// is read from DATABASE_DRIVER.
//
// # Configuration Structure
//
//   - Server: listen host/port and request body limit
//   - Database: driver (sqlite, mysql, postgres) and connection details
//   - Storage: S3/MinIO credentials, snapshot bucket and retention
//   - Log: level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
