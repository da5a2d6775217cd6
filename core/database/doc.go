// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure either a MySQL connection (production) or a SQLite
// database (local runs and tests) from the application's configuration.
//
// # Connect
//
// Connect selects the dialector from Config.Driver, applies pool settings and
// pings the database before handing it back.
//
// # Schema Inspection
//
// GetTableColumns and MissingColumns are used by the migrate command to confirm
// that the queue tables carry the columns the store relies on.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", zap.Error(err))
//	}
package database
