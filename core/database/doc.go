// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL (production) or SQLite (local tooling and
// tests) connections from the application's configuration. Connect returns a
// handle that callers inject into repositories; nothing here is global.
//
// # Connect
//
// The DSN carries connection, read and write timeouts, and pins the location
// DATE and TIME columns are parsed in, so calendar values do not depend on the
// server's local zone.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table. The integrity feature uses it
// to verify that the scheduling tables match the models the availability
// feature reads.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(ctx, db, "poc_schedules")
package database
