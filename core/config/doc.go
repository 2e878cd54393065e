// Package config provides configuration management for the availability service.
//
// It uses Viper for environment variables and godotenv for an optional .env file.
// Defaults live next to each section's struct as `default` tags.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key, timeouts
//   - Database: MySQL (or SQLite) connection details
//   - Log: level and format
//   - Storage: S3/MinIO credentials and snapshot bucket
//   - Availability: evaluation time zone, rule match policy, default POC id
//   - Snapshot: export schedule, targets and retention
//   - RateLimit: per-client limits and optional Redis counters
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
