// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration. The wardrobe cache can persist its
// entries in either backend.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table. The server integrity check uses
// it to verify that the cache table matches the expected model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "wardrobe_cache_entries")
package database
